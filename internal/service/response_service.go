package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/nkuroda/purposesurvey/internal/dto"
	"github.com/nkuroda/purposesurvey/internal/model"
	"github.com/nkuroda/purposesurvey/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ResponseService interface {
	// SubmitResponse upserts when a client id is supplied and creates a new
	// row otherwise.
	SubmitResponse(req dto.SubmitResponseRequest) (*dto.ResponseDetail, error)
	GetResponse(purposeID, clientID string) (*dto.ResponseDetail, error)
	// GetAnsweredSurveys lists the purposes a client has responded to,
	// deduplicated, most recent response first.
	GetAnsweredSurveys(clientID string) ([]dto.AnsweredSurvey, error)
}

type responseService struct {
	responseRepo repository.ResponseRepository
}

func NewResponseService(responseRepo repository.ResponseRepository) ResponseService {
	return &responseService{responseRepo: responseRepo}
}

func (s *responseService) SubmitResponse(req dto.SubmitResponseRequest) (*dto.ResponseDetail, error) {
	// The find-then-write pair is not transactional; two concurrent submits
	// from the same client race and the later write wins, which is
	// acceptable for a human resubmitting their own answers.
	if req.ClientID != nil && *req.ClientID != "" {
		existing, err := s.responseRepo.FindByPurposeAndClient(req.PurposeID, *req.ClientID)
		switch {
		case err == nil:
			existing.RespondentName = req.RespondentName
			existing.Answers = datatypes.NewJSONSlice(req.Answers)
			if err := s.responseRepo.Update(existing); err != nil {
				log.Error().Err(err).Str("responseID", existing.ID).Msg("Failed to update existing response")
				return nil, err
			}
			detail := responseToDetail(existing)
			return &detail, nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	response := model.Response{
		PurposeID:      req.PurposeID,
		ClientID:       req.ClientID,
		RespondentName: req.RespondentName,
		Answers:        datatypes.NewJSONSlice(req.Answers),
	}
	if err := s.responseRepo.Create(&response); err != nil {
		log.Error().Err(err).Str("purposeID", req.PurposeID).Msg("Failed to create response")
		return nil, err
	}
	detail := responseToDetail(&response)
	return &detail, nil
}

func (s *responseService) GetResponse(purposeID, clientID string) (*dto.ResponseDetail, error) {
	response, err := s.responseRepo.FindByPurposeAndClient(purposeID, clientID)
	if err != nil {
		return nil, err
	}
	detail := responseToDetail(response)
	return &detail, nil
}

func (s *responseService) GetAnsweredSurveys(clientID string) ([]dto.AnsweredSurvey, error) {
	responses, err := s.responseRepo.FindByClient(clientID)
	if err != nil {
		log.Error().Err(err).Str("clientID", clientID).Msg("Failed to list responses by client")
		return nil, err
	}

	// Responses arrive newest first; UniqBy keeps the first occurrence, so
	// each purpose appears once at its most recent response's position.
	unique := lo.UniqBy(responses, func(r model.Response) string { return r.PurposeID })

	surveys := make([]dto.AnsweredSurvey, 0, len(unique))
	for _, r := range unique {
		if r.Purpose == nil {
			continue
		}
		surveys = append(surveys, dto.AnsweredSurvey{
			ID:          r.Purpose.ID,
			Title:       r.Purpose.Title,
			Description: r.Purpose.Description,
			ShareToken:  r.Purpose.ShareToken,
			Deadline:    r.Purpose.Deadline,
			CreatedAt:   r.Purpose.CreatedAt,
		})
	}
	return surveys, nil
}

func responseToDetail(response *model.Response) dto.ResponseDetail {
	var detail dto.ResponseDetail
	copier.Copy(&detail, response)
	detail.Answers = []model.Answer(response.Answers)
	return detail
}
