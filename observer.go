package xlog

import "time"

// Entry is sent to Observers when an event is emitted.
type Entry struct {
	At      time.Time
	Level   Level
	Message string
	Source  Source
	Fields  []Field // copy per emit; safe to hold
}

// Observer is notified for each emitted entry (Observer pattern).
// Implementations MUST be concurrency-safe.
type Observer interface {
	OnLog(entry Entry)
}

// ObserverFunc adapter.
type ObserverFunc func(Entry)

func (f ObserverFunc) OnLog(e Entry) { f(e) }
