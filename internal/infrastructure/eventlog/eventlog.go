package eventlog

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a recorded event.

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Entry is one admin-visible system event.

type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     Level     `json:"type"`
	Source    string    `json:"source"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
}

// Ring keeps the most recent events in memory for the admin log viewer,
// newest first, capped at a fixed size. Safe for concurrent use.

type Ring struct {
	mu      sync.Mutex
	entries []Entry
	max     int
}

const defaultMax = 50

func NewRing(max int) *Ring {
	if max <= 0 {
		max = defaultMax
	}
	return &Ring{max: max}
}

// Add records an event and mirrors it to the process log.
func (r *Ring) Add(level Level, source, message string, details ...string) {
	e := Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Level:     level,
		Source:    source,
		Message:   message,
	}
	if len(details) > 0 {
		e.Details = details[0]
	}

	r.mu.Lock()
	r.entries = append([]Entry{e}, r.entries...)
	if len(r.entries) > r.max {
		r.entries = r.entries[:r.max]
	}
	r.mu.Unlock()

	log.Printf("[%s] %s %s", source, message, e.Details)
}

// List returns a snapshot, newest first.
func (r *Ring) List() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Clear drops every recorded event.
func (r *Ring) Clear() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}
