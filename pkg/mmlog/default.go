package mmlog

import (
	"errors"
	"sync"
)

// ErrAlreadyInitialized is returned by SetDefault when a process-wide
// default Logger is already installed.
var ErrAlreadyInitialized = errors.New("default logger already initialized")

var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// SetDefault installs l as the process-wide default Logger. It may be
// called once per process (or once after each CloseDefault); a second
// call returns ErrAlreadyInitialized. There is no lazy initialization:
// callers decide when the default exists and when it is torn down.
func SetDefault(l *Logger) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger != nil {
		return ErrAlreadyInitialized
	}
	defaultLogger = l
	return nil
}

// Default returns the installed default Logger, or nil when none is set.
func Default() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultLogger
}

// CloseDefault flushes and closes the default Logger and clears the
// installation so SetDefault may be used again. It is a no-op when no
// default is installed.
func CloseDefault() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		return nil
	}
	err := defaultLogger.Close()
	defaultLogger = nil
	return err
}
