package ui

// Package ui contains the Fyne-based desktop user interface for the dashboard.
// It renders the view model built by package view and forwards search and
// sort interactions to the dashboard state.
