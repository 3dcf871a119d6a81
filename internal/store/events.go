package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is one recorded gesture state transition.
type Event struct {
	ID    string    `json:"id"`
	State string    `json:"state"`
	At    time.Time `json:"at"`
}

// RecordEvent inserts a gesture transition and returns its ID.
func (s *Store) RecordEvent(state string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO gesture_events (id, state) VALUES (?, ?)",
		id, state,
	)
	if err != nil {
		return "", fmt.Errorf("record event: %w", err)
	}
	return id, nil
}

// RecentEvents returns up to limit events, newest first.
func (s *Store) RecentEvents(limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		"SELECT id, state, at FROM gesture_events ORDER BY at DESC, id LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.State, &e.At); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
