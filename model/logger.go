// SPDX-License-Identifier: MIT

package model

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger; SetLogger may race with logging calls.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger installs l as the package logger. By default the package logs
// nothing; nil restores that.
//
// Levels:
//   - Debug: calculation failures, instance lifecycle.
//
// Example:
//
//	logger, _ := zap.NewDevelopment()
//	model.SetLogger(logger)
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
