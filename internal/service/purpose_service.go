package service

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/nkuroda/purposesurvey/internal/dto"
	"github.com/nkuroda/purposesurvey/internal/model"
	"github.com/nkuroda/purposesurvey/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type PurposeService interface {
	CreatePurpose(req dto.CreatePurposeRequest) (*dto.PurposeResponse, error)
	// GetPurposes lists non-expired purposes, newest first, optionally
	// filtered by creator. Empty createdBy means no filter.
	GetPurposes(createdBy string) ([]dto.PurposeSummary, error)
	GetPurposeWithResponses(id string) (*dto.PurposeResponse, error)
	UpdatePurpose(id string, req dto.UpdatePurposeRequest) (*dto.PurposeResponse, error)
	DeletePurpose(id string) error
	GetPurposeByShareToken(token string) (*dto.SharedPurposeResponse, error)
}

type purposeService struct {
	purposeRepo repository.PurposeRepository
}

func NewPurposeService(purposeRepo repository.PurposeRepository) PurposeService {
	return &purposeService{purposeRepo: purposeRepo}
}

func (s *purposeService) CreatePurpose(req dto.CreatePurposeRequest) (*dto.PurposeResponse, error) {
	purpose := model.Purpose{
		Title:       req.Title,
		Description: req.Description,
		Questions:   datatypes.NewJSONSlice(req.Questions),
		Deadline:    req.Deadline,
		CreatedBy:   req.CreatedBy,
	}

	if err := s.purposeRepo.Create(&purpose); err != nil {
		log.Error().Err(err).Msg("Failed to create purpose")
		return nil, err
	}
	return purposeToDTO(&purpose), nil
}

func (s *purposeService) GetPurposes(createdBy string) ([]dto.PurposeSummary, error) {
	rows, err := s.purposeRepo.FindActiveWithResponseCount(createdBy, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list purposes")
		return nil, err
	}

	summaries := make([]dto.PurposeSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, dto.PurposeSummary{
			ID:            row.ID,
			Title:         row.Title,
			Description:   row.Description,
			ShareToken:    row.ShareToken,
			Deadline:      row.Deadline,
			CreatedAt:     row.CreatedAt,
			ResponseCount: row.ResponseCount,
		})
	}
	return summaries, nil
}

func (s *purposeService) GetPurposeWithResponses(id string) (*dto.PurposeResponse, error) {
	purpose, err := s.purposeRepo.FindByIDWithResponses(id)
	if err != nil {
		return nil, err
	}
	return purposeToDTO(purpose), nil
}

// UpdatePurpose is a full-field update: title, description, questions, and
// deadline are replaced wholesale.
func (s *purposeService) UpdatePurpose(id string, req dto.UpdatePurposeRequest) (*dto.PurposeResponse, error) {
	purpose, err := s.purposeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	purpose.Title = req.Title
	purpose.Description = req.Description
	purpose.Questions = datatypes.NewJSONSlice(req.Questions)
	purpose.Deadline = req.Deadline

	if err := s.purposeRepo.Update(purpose); err != nil {
		log.Error().Err(err).Str("purposeID", id).Msg("Failed to update purpose")
		return nil, err
	}
	return purposeToDTO(purpose), nil
}

func (s *purposeService) DeletePurpose(id string) error {
	if _, err := s.purposeRepo.FindByID(id); err != nil {
		return err
	}
	return s.purposeRepo.Delete(id)
}

func (s *purposeService) GetPurposeByShareToken(token string) (*dto.SharedPurposeResponse, error) {
	purpose, err := s.purposeRepo.FindByShareToken(token)
	if err != nil {
		return nil, err
	}
	return &dto.SharedPurposeResponse{
		ID:          purpose.ID,
		Title:       purpose.Title,
		Description: purpose.Description,
		Questions:   []model.Question(purpose.Questions),
		Deadline:    purpose.Deadline,
		CreatedAt:   purpose.CreatedAt,
	}, nil
}

func purposeToDTO(purpose *model.Purpose) *dto.PurposeResponse {
	var resp dto.PurposeResponse
	copier.Copy(&resp, purpose)
	// JSON-column slices need explicit conversion; copier only handles the
	// flat fields reliably.
	resp.Questions = []model.Question(purpose.Questions)
	if len(purpose.Responses) > 0 {
		resp.Responses = make([]dto.ResponseDetail, 0, len(purpose.Responses))
		for i := range purpose.Responses {
			resp.Responses = append(resp.Responses, responseToDetail(&purpose.Responses[i]))
		}
	}
	return &resp
}
