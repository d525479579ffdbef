package solstate

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerMu  sync.RWMutex
	pkgLogger *zap.Logger
)

// logger returns the package logger, a no-op logger by default.
func logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	if pkgLogger == nil {
		return zap.NewNop()
	}
	return pkgLogger
}

// SetLogger installs l as the package logger. Pass nil to restore the
// default no-op logger.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	pkgLogger = l
}
