package ui

// Package ui contains the Fyne-based user interface for the picker.
// It forwards button presses to a draw.Picker and renders its snapshots as
// coloured balls, a history list and toast notices. All UI strings are localized
// via Localization.
