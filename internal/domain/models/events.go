package models

import "time"

// EventKind distinguishes the store lifecycle events on the board stream.
type EventKind string

const (
	EventStatus   EventKind = "status"
	EventRefresh  EventKind = "refresh"
	EventAnalysis EventKind = "analysis"
)

// StoreEvent is one lifecycle event pushed to board subscribers.
type StoreEvent struct {
	Kind    EventKind `json:"kind"`
	Domain  Domain    `json:"domain,omitempty"`
	Topic   Topic     `json:"topic,omitempty"`
	Status  Status    `json:"status,omitempty"`
	Source  Source    `json:"source,omitempty"`
	Outcome string    `json:"outcome,omitempty"`
	At      time.Time `json:"at"`
}
