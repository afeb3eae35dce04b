package ui

import "time"

const IconSettings = "⚙"

// HistoryEntryPattern formats a history row as time then numbers
const HistoryEntryPattern = "%s   %s"

// Ball sizing
const (
	BallSize       float32 = 48
	MobileBallSize float32 = 56
	BallTextSize   float32 = 18
	BallStroke     float32 = 1.5
)

// Layout
const (
	DesktopBallColumns         = 6
	MobileBallColumns          = 3
	MinTouchTargetSize float32 = 44
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastMargin   float32 = 20
	ToastAutoHide         = 2500 * time.Millisecond
)

// Settings dialog
const (
	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 300
)
