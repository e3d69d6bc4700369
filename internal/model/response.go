package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Response is one respondent's submission for one purpose. The composite
// unique index enforces at most one response per (purpose, client) pair;
// NULL client ids are exempt from the unique check, so anonymous
// submissions may repeat.
type Response struct {
	ID             string                      `json:"id" gorm:"primarykey;size:36"`
	PurposeID      string                      `json:"purposeId" gorm:"not null;index;uniqueIndex:idx_responses_purpose_client"`
	Purpose        *Purpose                    `json:"purpose,omitempty" gorm:"foreignKey:PurposeID"`
	ClientID       *string                     `json:"clientId" gorm:"uniqueIndex:idx_responses_purpose_client"`
	RespondentName *string                     `json:"respondentName"`
	Answers        datatypes.JSONSlice[Answer] `json:"answers"`
	CreatedAt      time.Time                   `json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
}

func (r *Response) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
