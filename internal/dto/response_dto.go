package dto

import (
	"time"

	"github.com/nkuroda/purposesurvey/internal/model"
)

type PurposeResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []model.Question `json:"questions"`
	Deadline    *time.Time       `json:"deadline"`
	ShareToken  string           `json:"shareToken"`
	CreatedBy   string           `json:"createdBy"`
	Responses   []ResponseDetail `json:"responses,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// PurposeSummary is a listing row: no questions, but a response count.
type PurposeSummary struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	ShareToken    string     `json:"shareToken"`
	Deadline      *time.Time `json:"deadline"`
	CreatedAt     time.Time  `json:"createdAt"`
	ResponseCount int        `json:"responseCount"`
}

// SharedPurposeResponse is the public projection served to respondents via
// the share token. No responses, no creator id.
type SharedPurposeResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []model.Question `json:"questions"`
	Deadline    *time.Time       `json:"deadline"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// AnsweredSurvey is one entry of the deduplicated "surveys this client has
// answered" listing.
type AnsweredSurvey struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ShareToken  string     `json:"shareToken"`
	Deadline    *time.Time `json:"deadline"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type ResponseDetail struct {
	ID             string         `json:"id"`
	PurposeID      string         `json:"purposeId"`
	ClientID       *string        `json:"clientId"`
	RespondentName *string        `json:"respondentName"`
	Answers        []model.Answer `json:"answers"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type GeneratedQuestionsResponse struct {
	Questions []model.Question `json:"questions"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
