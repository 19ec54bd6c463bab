// Package audit emits deletion events to the external append-only compliance
// log.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// TypePersonalDataDeletion is the event type recorded for a committed purge.
const TypePersonalDataDeletion = "personal-data-deletion"

// DeletionEvent captures one committed purge for the compliance log. Keep it
// transport-agnostic so sinks can fan out.
type DeletionEvent struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	SubjectID    string    `json:"subjectId"`
	RequestedBy  string    `json:"requestedBy"`
	RequestedFor string    `json:"requestedFor"`
	Timestamp    time.Time `json:"timestamp"`
}
