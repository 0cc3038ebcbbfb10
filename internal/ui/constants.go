package ui

import "time"

// AppID is the fyne application identifier
const AppID = "com.cointracker.dashboard"

// Layout sizing
const (
	IconSize float32 = 24
)

// Debounce durations
const (
	IconRefreshDebounce = 250 * time.Millisecond
)
