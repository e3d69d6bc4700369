package dto

import (
	"encoding/json"
	"math"
	"time"

	"github.com/nkuroda/purposesurvey/internal/model"
)

// Stat carries a numeric aggregate. Aggregation over an empty answer set
// yields +Inf/-Inf/NaN sentinels, which encoding/json refuses to emit, so
// Stat serializes non-finite values as null; clients treat null as "no data".
type Stat float64

func (s Stat) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// QuestionSummary is one aggregation record. Exactly one is emitted per
// question, in stored question order; only the fields for the question's
// type are populated.
type QuestionSummary struct {
	QuestionID     string             `json:"questionId"`
	Label          string             `json:"label"`
	Type           model.QuestionType `json:"type"`
	TotalResponses int                `json:"totalResponses"`

	// single_choice / multi_choice / tags
	Distribution map[string]int `json:"distribution,omitempty"`

	// number / scale / rating
	Min     *Stat `json:"min,omitempty"`
	Max     *Stat `json:"max,omitempty"`
	Average *Stat `json:"average,omitempty"`

	// text / date / range: raw values verbatim, truncation is a
	// presentation concern
	Responses []string           `json:"responses,omitempty"`
	Dates     []string           `json:"dates,omitempty"`
	Ranges    []model.RangeValue `json:"ranges,omitempty"`
}

// AISummary is the parsed narrative produced from the response transcript.
type AISummary struct {
	Insights        string `json:"insights"`
	Recommendations string `json:"recommendations"`
}

type AnalysisPurpose struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	ShareToken  string     `json:"shareToken"`
}

type AnalysisResponse struct {
	Purpose        AnalysisPurpose   `json:"purpose"`
	Aggregation    []QuestionSummary `json:"aggregation"`
	AISummary      *AISummary        `json:"aiSummary"`
	TotalResponses int               `json:"totalResponses"`
}
