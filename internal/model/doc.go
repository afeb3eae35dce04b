package model

// Package model defines domain data structures used across the app: the number
// range, selection modes, draw results, ball categories, and draw history
// records. Structures are designed for direct binding in the UI and explicit
// state transitions.
