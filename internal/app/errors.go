package app

import "errors"

// Run outcomes, checked by main with errors.Is.
var (
	// ErrAppStartup means the HTTP listener could not start.
	ErrAppStartup = errors.New("app startup error")
	// ErrAppShutdownNormal means ctx was cancelled or the server closed cleanly.
	ErrAppShutdownNormal = errors.New("app shutdown normal")
	// ErrAppShutdownWithError means graceful shutdown did not finish in time.
	ErrAppShutdownWithError = errors.New("app shutdown with error")
)
