package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerValueUnmarshalShapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want AnswerValue
	}{
		{"null", `null`, NullValue()},
		{"string", `"Italian"`, StringValue("Italian")},
		{"list", `["Monday","Friday"]`, ListValue("Monday", "Friday")},
		{"empty list", `[]`, AnswerValue{Kind: ValueList, List: []string{}}},
		{"integer", `3`, NumberValue(3)},
		{"float", `4.5`, NumberValue(4.5)},
		{"range", `{"min":1000,"max":2000}`, RangeVal(1000, 2000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v AnswerValue
			require.NoError(t, json.Unmarshal([]byte(tt.in), &v))
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestAnswerValueUnmarshalRejectsMixedList(t *testing.T) {
	var v AnswerValue
	err := json.Unmarshal([]byte(`["a", 3]`), &v)
	assert.Error(t, err)
}

func TestAnswerValueMarshalRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   AnswerValue
		want string
	}{
		{"null", NullValue(), `null`},
		{"string", StringValue("Yes"), `"Yes"`},
		{"list", ListValue("a", "b"), `["a","b"]`},
		{"number", NumberValue(42), `42`},
		{"range", RangeVal(1, 5), `{"min":1,"max":5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestAnswerValueStrings(t *testing.T) {
	assert.Equal(t, []string{"A"}, StringValue("A").Strings())
	assert.Equal(t, []string{"A", "B"}, ListValue("A", "B").Strings())
	assert.Equal(t, []string{"3"}, NumberValue(3).Strings())
	assert.Equal(t, []string{"2.5"}, NumberValue(2.5).Strings())
	assert.Nil(t, NullValue().Strings())
	assert.Nil(t, RangeVal(1, 2).Strings())
}

func TestAnswerValueString(t *testing.T) {
	assert.Equal(t, "Pasta", StringValue("Pasta").String())
	assert.Equal(t, "Mon, Tue", ListValue("Mon", "Tue").String())
	assert.Equal(t, "7", NumberValue(7).String())
	assert.Equal(t, "1000 - 1500", RangeVal(1000, 1500).String())
	assert.Equal(t, "", NullValue().String())
}

func TestAnswerListUnmarshal(t *testing.T) {
	raw := `[
		{"questionId":"q1","value":"Yes"},
		{"questionId":"q2","value":null},
		{"questionId":"q3","value":[ "A", "B" ]}
	]`
	var answers []Answer
	require.NoError(t, json.Unmarshal([]byte(raw), &answers))
	require.Len(t, answers, 3)
	assert.Equal(t, "q1", answers[0].QuestionID)
	assert.False(t, answers[0].Value.IsNull())
	assert.True(t, answers[1].Value.IsNull())
	assert.Equal(t, ValueList, answers[2].Value.Kind)
}

func TestQuestionTypePredicates(t *testing.T) {
	assert.True(t, SingleChoice.IsChoice())
	assert.True(t, MultiChoice.IsChoice())
	assert.True(t, Tags.IsChoice())
	assert.False(t, Scale.IsChoice())

	assert.True(t, Number.IsNumeric())
	assert.True(t, Scale.IsNumeric())
	assert.True(t, Rating.IsNumeric())
	assert.False(t, Text.IsNumeric())

	assert.True(t, SingleChoice.HasOptions())
	assert.True(t, Rating.HasOptions())
	assert.False(t, Text.HasOptions())
	assert.False(t, Range.HasOptions())
}
