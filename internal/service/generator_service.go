package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nkuroda/purposesurvey/internal/llm"
	"github.com/nkuroda/purposesurvey/internal/model"
	"github.com/rs/zerolog/log"
)

// QuestionGeneratorService turns a creator's goal into a survey question
// list via the LLM gateway. A reply that fails to parse is a hard error;
// there is no partial-result fallback and no retry at this layer.
type QuestionGeneratorService interface {
	GenerateQuestions(ctx context.Context, title, description string) ([]model.Question, error)
}

type questionGeneratorService struct {
	provider llm.Provider
}

func NewQuestionGeneratorService(provider llm.Provider) QuestionGeneratorService {
	return &questionGeneratorService{provider: provider}
}

func (s *questionGeneratorService) GenerateQuestions(ctx context.Context, title, description string) ([]model.Question, error) {
	prompt := buildGenerationPrompt(title, description)

	result, err := s.provider.GenerateText(ctx, prompt, &llm.GenerateOptions{
		Temperature: llmTemperature,
		MaxTokens:   llmMaxTokens,
	})
	if err != nil {
		log.Error().Err(err).Str("provider", s.provider.Name()).Msg("LLM call failed during question generation")
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	if result.Usage != nil {
		log.Debug().
			Int("input_tokens", result.Usage.InputTokens).
			Int("output_tokens", result.Usage.OutputTokens).
			Msg("Question generation token usage")
	}

	jsonText := stripCodeFences(result.Content)

	var questions []model.Question
	if err := json.Unmarshal([]byte(jsonText), &questions); err != nil {
		log.Error().Err(err).Str("raw", jsonText).Msg("Failed to parse LLM response as a question list")
		return nil, fmt.Errorf("failed to generate questions: invalid JSON response from LLM: %w", err)
	}
	return questions, nil
}
