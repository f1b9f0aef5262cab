// Package observer is the debug/notification collaborator threaded
// through every decoder (spec §9: "abstract it as a trait-like Observer
// with no-op default so decoders remain pure"). It wraps a
// github.com/go-logr/logr.Logger; when none is supplied decoders run
// silently via logr.Discard(), matching libfwsi's optional notify stream.
package observer

import (
	"github.com/go-logr/logr"
)

const (
	LevelInfo  = 0
	LevelDebug = 1
	LevelTrace = 2
)

// New wraps log as an Observer. A zero-value logr.Logger is treated as
// Discard so the core never panics when no collaborator is attached.
func New(log logr.Logger) *Observer {
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Observer{log: log}
}

// Discard returns an Observer that drops everything, the default when no
// logger is configured on the decode Options.
func Discard() *Observer {
	return &Observer{log: logr.Discard()}
}

// Observer is the notification/debug printing collaborator. It carries no
// decoding state of its own and is safe to share across concurrent calls.
type Observer struct {
	log logr.Logger
}

func (o *Observer) Debug(msg string, keysAndValues ...interface{}) {
	if o == nil {
		return
	}
	o.log.V(LevelDebug).Info(msg, keysAndValues...)
}

func (o *Observer) Info(msg string, keysAndValues ...interface{}) {
	if o == nil {
		return
	}
	o.log.Info(msg, keysAndValues...)
}

func (o *Observer) Trace(msg string, keysAndValues ...interface{}) {
	if o == nil {
		return
	}
	o.log.V(LevelTrace).Info(msg, keysAndValues...)
}

// ChecksumMismatch records a non-fatal offset-to-version disagreement
// (§4.4 step 7, §7): the value is still returned, the mismatch is only
// surfaced through this collaborator.
func (o *Observer) ChecksumMismatch(err error, msg string, keysAndValues ...interface{}) {
	if o == nil {
		return
	}
	o.log.Error(err, msg, keysAndValues...)
}

func (o *Observer) Error(err error, msg string, keysAndValues ...interface{}) {
	if o == nil {
		return
	}
	o.log.Error(err, msg, keysAndValues...)
}
