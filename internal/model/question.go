package model

// QuestionType enumerates the supported question formats.
type QuestionType string

const (
	SingleChoice QuestionType = "single_choice"
	MultiChoice  QuestionType = "multi_choice"
	Text         QuestionType = "text"
	Number       QuestionType = "number"
	Date         QuestionType = "date"
	Scale        QuestionType = "scale"
	Rating       QuestionType = "rating"
	Range        QuestionType = "range"
	Tags         QuestionType = "tags"
)

// HasOptions reports whether the format carries a fixed option list.
// Generation must populate Options for these types.
func (t QuestionType) HasOptions() bool {
	switch t {
	case SingleChoice, MultiChoice, Scale, Rating, Tags:
		return true
	}
	return false
}

// IsChoice reports whether answers are tallied per option during aggregation.
func (t QuestionType) IsChoice() bool {
	switch t {
	case SingleChoice, MultiChoice, Tags:
		return true
	}
	return false
}

// IsNumeric reports whether answers are aggregated as min/max/average.
func (t QuestionType) IsNumeric() bool {
	switch t {
	case Number, Scale, Rating:
		return true
	}
	return false
}

// Question is embedded in a Purpose's question list and persisted as part of
// its JSON column; it is not a table of its own. IDs are unique within the
// owning purpose (q1, q2, ...).
type Question struct {
	ID       string       `json:"id"`
	Label    string       `json:"label"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required"`
}
