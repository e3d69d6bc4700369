package repository

import (
	"github.com/nkuroda/purposesurvey/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(response *model.Response) error
	Update(response *model.Response) error
	// FindByPurposeAndClient is the upsert lookup; returns
	// gorm.ErrRecordNotFound when the client has not answered yet.
	FindByPurposeAndClient(purposeID, clientID string) (*model.Response, error)
	// FindByClient lists a client's responses newest first with the owning
	// purpose preloaded.
	FindByClient(clientID string) ([]model.Response, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *model.Response) error {
	return r.db.Create(response).Error
}

func (r *responseRepository) Update(response *model.Response) error {
	return r.db.Save(response).Error
}

func (r *responseRepository) FindByPurposeAndClient(purposeID, clientID string) (*model.Response, error) {
	var response model.Response
	err := r.db.
		Where("purpose_id = ? AND client_id = ?", purposeID, clientID).
		First(&response).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindByClient(clientID string) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.
		Preload("Purpose").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&responses).Error
	return responses, err
}
