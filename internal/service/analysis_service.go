package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/nkuroda/purposesurvey/internal/dto"
	"github.com/nkuroda/purposesurvey/internal/llm"
	"github.com/nkuroda/purposesurvey/internal/model"
	"github.com/nkuroda/purposesurvey/internal/repository"
	"github.com/rs/zerolog/log"
)

// AnalysisService builds the creator-facing results view: per-question
// aggregation over every response, plus an optional AI narrative summary.
type AnalysisService interface {
	AnalyzePurpose(ctx context.Context, purposeID string) (*dto.AnalysisResponse, error)
}

type analysisService struct {
	purposeRepo repository.PurposeRepository
	provider    llm.Provider
}

func NewAnalysisService(purposeRepo repository.PurposeRepository, provider llm.Provider) AnalysisService {
	return &analysisService{purposeRepo: purposeRepo, provider: provider}
}

func (s *analysisService) AnalyzePurpose(ctx context.Context, purposeID string) (*dto.AnalysisResponse, error) {
	purpose, err := s.purposeRepo.FindByIDWithResponses(purposeID)
	if err != nil {
		return nil, err
	}

	questions := []model.Question(purpose.Questions)
	answerSets := make([][]model.Answer, 0, len(purpose.Responses))
	for _, r := range purpose.Responses {
		answerSets = append(answerSets, []model.Answer(r.Answers))
	}

	aggregation := Aggregate(questions, answerSets)

	// Summary failures only degrade the payload to aiSummary = null; the
	// aggregation is always served.
	var aiSummary *dto.AISummary
	if len(answerSets) > 0 {
		summary, err := s.generateSummary(ctx, purpose, questions, answerSets)
		if err != nil {
			log.Error().Err(err).Str("purposeID", purposeID).Msg("Failed to generate AI summary")
		} else {
			aiSummary = summary
		}
	}

	return &dto.AnalysisResponse{
		Purpose: dto.AnalysisPurpose{
			ID:          purpose.ID,
			Title:       purpose.Title,
			Description: purpose.Description,
			Deadline:    purpose.Deadline,
			ShareToken:  purpose.ShareToken,
		},
		Aggregation:    aggregation,
		AISummary:      aiSummary,
		TotalResponses: len(purpose.Responses),
	}, nil
}

// Aggregate buckets each respondent's answers under every question, in
// stored question order, and computes per-type statistics. It is a pure
// function of its inputs; a question with zero non-null answers still
// produces a record, and each question's total counts independently of the
// others.
func Aggregate(questions []model.Question, answerSets [][]model.Answer) []dto.QuestionSummary {
	summaries := make([]dto.QuestionSummary, 0, len(questions))
	for _, question := range questions {
		answered := make([]model.AnswerValue, 0, len(answerSets))
		for _, answers := range answerSets {
			for _, a := range answers {
				if a.QuestionID != question.ID {
					continue
				}
				// First matching answer per respondent; nulls mean
				// "not answered" and are excluded from the total.
				if !a.Value.IsNull() {
					answered = append(answered, a.Value)
				}
				break
			}
		}

		summary := dto.QuestionSummary{
			QuestionID:     question.ID,
			Label:          question.Label,
			Type:           question.Type,
			TotalResponses: len(answered),
		}

		switch {
		case question.Type.IsChoice():
			counts := make(map[string]int, len(question.Options))
			for _, value := range answered {
				for _, option := range value.Strings() {
					counts[option]++
				}
			}
			summary.Distribution = counts
		case question.Type.IsNumeric():
			min, max := math.Inf(1), math.Inf(-1)
			var sum float64
			for _, value := range answered {
				if value.Num < min {
					min = value.Num
				}
				if value.Num > max {
					max = value.Num
				}
				sum += value.Num
			}
			// Zero answers leave the Inf sentinels and a NaN average;
			// serialization turns them into null.
			average := sum / float64(len(answered))
			summary.Min = statPtr(min)
			summary.Max = statPtr(max)
			summary.Average = statPtr(average)
		case question.Type == model.Text:
			texts := make([]string, 0, len(answered))
			for _, value := range answered {
				texts = append(texts, value.String())
			}
			summary.Responses = texts
		case question.Type == model.Date:
			dates := make([]string, 0, len(answered))
			for _, value := range answered {
				dates = append(dates, value.String())
			}
			summary.Dates = dates
		case question.Type == model.Range:
			ranges := make([]model.RangeValue, 0, len(answered))
			for _, value := range answered {
				ranges = append(ranges, value.Range)
			}
			summary.Ranges = ranges
		}
		// Unrecognized types get no type-specific fields.

		summaries = append(summaries, summary)
	}
	return summaries
}

func statPtr(f float64) *dto.Stat {
	s := dto.Stat(f)
	return &s
}

func (s *analysisService) generateSummary(ctx context.Context, purpose *model.Purpose, questions []model.Question, answerSets [][]model.Answer) (*dto.AISummary, error) {
	prompt := buildSummaryPrompt(purpose.Title, purpose.Description, questions, answerSets)

	result, err := s.provider.GenerateText(ctx, prompt, &llm.GenerateOptions{
		Temperature: llmTemperature,
		MaxTokens:   llmMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary: %w", err)
	}

	jsonText := stripCodeFences(result.Content)

	var summary dto.AISummary
	if err := json.Unmarshal([]byte(jsonText), &summary); err != nil {
		return nil, fmt.Errorf("failed to parse summary response as JSON: %w", err)
	}
	return &summary, nil
}
