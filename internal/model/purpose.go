package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/xid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Purpose is a survey definition: a goal described by its creator plus the
// generated question list. Questions are owned by the purpose (copy
// semantics) and stored in a JSON column rather than a separate table.
type Purpose struct {
	ID          string                        `json:"id" gorm:"primarykey;size:36"`
	Title       string                        `json:"title" gorm:"not null"`
	Description string                        `json:"description" gorm:"type:text;not null"`
	Questions   datatypes.JSONSlice[Question] `json:"questions"`
	Deadline    *time.Time                    `json:"deadline"` // nil means no expiry
	ShareToken  string                        `json:"shareToken" gorm:"uniqueIndex;not null"`
	CreatedBy   string                        `json:"createdBy" gorm:"index;not null"`
	Responses   []Response                    `json:"responses,omitempty" gorm:"foreignKey:PurposeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time                     `json:"createdAt"`
	UpdatedAt   time.Time                     `json:"updatedAt"`
}

// BeforeCreate assigns the identifier and the opaque share token. The share
// token is the sole lookup key for the public response flow.
func (p *Purpose) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.ShareToken == "" {
		p.ShareToken = xid.New().String()
	}
	return nil
}

// Expired reports whether the deadline has passed. A nil deadline never
// expires.
func (p *Purpose) Expired(now time.Time) bool {
	return p.Deadline != nil && p.Deadline.Before(now)
}
