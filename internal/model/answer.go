package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Answer is one respondent's value for a single question, embedded in a
// Response's JSON answer list. The referenced question is expected to belong
// to the parent purpose; the schema does not enforce that.
type Answer struct {
	QuestionID string      `json:"questionId"`
	Value      AnswerValue `json:"value"`
}

// ValueKind tags the dynamic shape of an answer value.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueString
	ValueList
	ValueNumber
	ValueRange
)

// RangeValue is the {min,max} shape submitted for range questions.
type RangeValue struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AnswerValue is a tagged union over the shapes a respondent can submit:
// null, string, []string, number, or {min,max}. Keeping the tag explicit lets
// aggregation switch exhaustively instead of poking at interface{}.
type AnswerValue struct {
	Kind  ValueKind
	Str   string
	List  []string
	Num   float64
	Range RangeValue
}

func NullValue() AnswerValue             { return AnswerValue{} }
func StringValue(s string) AnswerValue   { return AnswerValue{Kind: ValueString, Str: s} }
func ListValue(vs ...string) AnswerValue { return AnswerValue{Kind: ValueList, List: vs} }
func NumberValue(n float64) AnswerValue  { return AnswerValue{Kind: ValueNumber, Num: n} }

func RangeVal(min, max float64) AnswerValue {
	return AnswerValue{Kind: ValueRange, Range: RangeValue{Min: min, Max: max}}
}

// IsNull reports an unanswered question.
func (v AnswerValue) IsNull() bool { return v.Kind == ValueNull }

// Strings flattens the value into a string list, treating a scalar as a
// singleton. Used when tallying choice-type distributions.
func (v AnswerValue) Strings() []string {
	switch v.Kind {
	case ValueList:
		return v.List
	case ValueString:
		return []string{v.Str}
	case ValueNumber:
		return []string{strconv.FormatFloat(v.Num, 'f', -1, 64)}
	default:
		return nil
	}
}

// String renders the value for prompts and verbatim listings: lists joined by
// ", ", ranges as "min - max". Null renders empty; callers that need an
// explicit marker check IsNull first.
func (v AnswerValue) String() string {
	switch v.Kind {
	case ValueString:
		return v.Str
	case ValueList:
		return strings.Join(v.List, ", ")
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case ValueRange:
		return fmt.Sprintf("%s - %s",
			strconv.FormatFloat(v.Range.Min, 'f', -1, 64),
			strconv.FormatFloat(v.Range.Max, 'f', -1, 64))
	default:
		return ""
	}
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueString:
		return json.Marshal(v.Str)
	case ValueList:
		return json.Marshal(v.List)
	case ValueNumber:
		return json.Marshal(v.Num)
	case ValueRange:
		return json.Marshal(v.Range)
	default:
		return []byte("null"), nil
	}
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = AnswerValue{}
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = AnswerValue{Kind: ValueString, Str: s}
	case '[':
		var list []string
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("answer value: list elements must be strings: %w", err)
		}
		*v = AnswerValue{Kind: ValueList, List: list}
	case '{':
		var r RangeValue
		if err := json.Unmarshal(trimmed, &r); err != nil {
			return fmt.Errorf("answer value: object must be a {min,max} range: %w", err)
		}
		*v = AnswerValue{Kind: ValueRange, Range: r}
	default:
		var n float64
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return fmt.Errorf("answer value: unsupported shape %s", string(trimmed))
		}
		*v = AnswerValue{Kind: ValueNumber, Num: n}
	}
	return nil
}
