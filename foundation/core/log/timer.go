// File: timer.go
// Title: Performance Timer
// Description: Timers that log the duration of an operation with optional
//              intermediate checkpoints.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with operation timing
// - 2026-10-14 v0.2.0: Single stop path, removed StopWithResult

package log

import (
	"time"
)

// Timer measures one operation. The completion message is logged at debug
// level unless WithLevel says otherwise.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	level     Level
	done      bool
}

// NewTimer starts a timer for operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		fields:    Fields{},
		level:     LevelDebug,
	}
}

// WithLevel sets the level of the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to every message of the timer
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs the completion and returns the elapsed time. Later calls
// return 0 and log nothing.
func (t *Timer) Stop() time.Duration {
	return t.stop(nil)
}

// StopWithError logs err as a warning together with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	return t.stop(err)
}

func (t *Timer) stop(err error) time.Duration {
	if t.done {
		return 0
	}
	t.done = true
	elapsed := t.Elapsed()
	if t.logger == nil {
		return elapsed
	}

	fields := t.fields.Merge(Fields{"operation": t.operation, "duration_ms": millis(elapsed)})
	if err != nil {
		fields["success"] = false
		t.logger.WarnWithErr(t.operation+" failed", err, fields)
	} else {
		t.logger.log(t.level, t.operation+" completed", nil, fields)
	}
	return elapsed
}

// Checkpoint logs an intermediate step at trace level
func (t *Timer) Checkpoint(name string, fields ...Fields) {
	if t.done || t.logger == nil {
		return
	}
	combined := t.fields.Merge(Fields{
		"operation":  t.operation,
		"checkpoint": name,
		"elapsed_ms": millis(t.Elapsed()),
	})
	for _, f := range fields {
		combined = combined.Merge(f)
	}
	t.logger.Trace(t.operation+" checkpoint: "+name, combined)
}

// IsRunning reports whether the timer has not been stopped yet
func (t *Timer) IsRunning() bool {
	return !t.done
}

func millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
