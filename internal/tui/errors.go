package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoSession is returned by admin commands that need a login first.
	ErrNoSession = errors.New("tui: not logged in")
)
