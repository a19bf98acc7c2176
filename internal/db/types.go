package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/ats-scorer/internal/types"
)

// ScoreRecord is a persisted score report.
type ScoreRecord struct {
	ID        uuid.UUID          `json:"id"`
	JobTitle  string             `json:"job_title,omitempty"`
	Overall   int                `json:"overall"`
	Result    *types.ScoreResult `json:"result"`
	CreatedAt time.Time          `json:"created_at"`
}

// ScoreSummary is the list-view projection of a score report, without the
// full result payload.
type ScoreSummary struct {
	ID        uuid.UUID `json:"id"`
	JobTitle  string    `json:"job_title,omitempty"`
	Overall   int       `json:"overall"`
	CreatedAt time.Time `json:"created_at"`
}
