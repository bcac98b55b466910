package domain

import "time"

// RecordKind identifies which calculator produced a record.
type RecordKind string

const (
	RecordLCM      RecordKind = "lcm"
	RecordPlayback RecordKind = "playback"
)

// CalculationRecord is a persisted calculation.
type CalculationRecord struct {
	ID        string     `json:"id"`
	Kind      RecordKind `json:"kind"`
	Input     string     `json:"input"`
	CreatedAt time.Time  `json:"created_at"`

	LCM      *LCMResult      `json:"lcm,omitempty"`
	Playback *PlaybackResult `json:"playback,omitempty"`
}

// RecordRef is a lightweight index entry pointing at a saved record.
type RecordRef struct {
	ID        string     `json:"id"`
	File      string     `json:"file"`
	Kind      RecordKind `json:"kind"`
	Input     string     `json:"input"`
	CreatedAt time.Time  `json:"created_at"`
}
