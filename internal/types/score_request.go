package types

import (
	"github.com/go-playground/validator/v10"
)

// ScoreRequest represents the request body for POST /score.
// The top-level fields are required; everything inside them is optional
// and absorbed by the engine without error.
type ScoreRequest struct {
	Candidate      *CandidateProfile `json:"candidate" validate:"required"`
	JobDescription *JobDescription   `json:"jobDescription" validate:"required"`
}

// BatchScoreRequest represents the request body for POST /score/batch:
// many candidates scored against a single job description.
type BatchScoreRequest struct {
	Candidates     []CandidateProfile `json:"candidates" validate:"required,min=1"`
	JobDescription *JobDescription    `json:"jobDescription" validate:"required"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchScoreRequest using the validator.
func (r *BatchScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
