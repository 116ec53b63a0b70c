package core

import (
	"errors"
)

var (
	ErrInvalidDocument  = errors.New("invalid transform document")
	ErrUnknownTransform = errors.New("unknown transform")
	ErrWatcherClosed    = errors.New("watcher closed")
	ErrUnknown          = errors.New("unknown")
)
