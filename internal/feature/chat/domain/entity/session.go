// Package entity defines the domain models for the chat feature.
package entity

import "time"

// ChatSession remembers the last timeframe selection of one conversation so a
// timezone toggle can re-run the fetch without re-prompting the user. It is
// convenience state: losing it only costs a catalog re-resolution, never
// correctness.
type ChatSession struct {
	ChatID     int64     `json:"chat_id"`
	Interval   string    `json:"interval"`
	Label      string    `json:"label"`
	OutputSize int       `json:"output_size"`
	UpdatedAt  time.Time `json:"updated_at"`
}
