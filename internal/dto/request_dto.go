package dto

import (
	"time"

	"github.com/nkuroda/purposesurvey/internal/model"
)

// CreatePurposeRequest creates a survey after (AI-assisted) question design.
// Required-field checks live in the controller so each endpoint keeps its own
// error wording.
type CreatePurposeRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []model.Question `json:"questions"`
	Deadline    *time.Time       `json:"deadline"`
	CreatedBy   string           `json:"createdBy"`
}

// UpdatePurposeRequest replaces a purpose's mutable fields wholesale.
type UpdatePurposeRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []model.Question `json:"questions"`
	Deadline    *time.Time       `json:"deadline"`
}

type GenerateQuestionsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SubmitResponseRequest creates or overwrites a response. A non-empty
// ClientID makes the submission an upsert keyed by (purposeId, clientId).
type SubmitResponseRequest struct {
	PurposeID      string         `json:"purposeId"`
	ClientID       *string        `json:"clientId"`
	RespondentName *string        `json:"respondentName"`
	Answers        []model.Answer `json:"answers"`
}
