package repository

import (
	"time"

	"github.com/nkuroda/purposesurvey/internal/model"
	"gorm.io/gorm"
)

// PurposeWithCount carries a purpose row plus its response count for the
// listing endpoint.
type PurposeWithCount struct {
	model.Purpose
	ResponseCount int
}

type PurposeRepository interface {
	Create(purpose *model.Purpose) error
	FindByID(id string) (*model.Purpose, error)
	FindByIDWithResponses(id string) (*model.Purpose, error)
	FindByShareToken(token string) (*model.Purpose, error)
	// FindActiveWithResponseCount lists non-expired purposes (deadline null
	// or >= now), newest first, optionally filtered by creator.
	FindActiveWithResponseCount(createdBy string, now time.Time) ([]PurposeWithCount, error)
	Update(purpose *model.Purpose) error
	Delete(id string) error
}

type purposeRepository struct {
	db *gorm.DB
}

func NewPurposeRepository(db *gorm.DB) PurposeRepository {
	return &purposeRepository{db: db}
}

func (r *purposeRepository) Create(purpose *model.Purpose) error {
	return r.db.Create(purpose).Error
}

func (r *purposeRepository) FindByID(id string) (*model.Purpose, error) {
	var purpose model.Purpose
	if err := r.db.First(&purpose, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &purpose, nil
}

func (r *purposeRepository) FindByIDWithResponses(id string) (*model.Purpose, error) {
	var purpose model.Purpose
	err := r.db.
		Preload("Responses", func(db *gorm.DB) *gorm.DB {
			return db.Order("responses.created_at ASC")
		}).
		First(&purpose, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &purpose, nil
}

func (r *purposeRepository) FindByShareToken(token string) (*model.Purpose, error) {
	var purpose model.Purpose
	if err := r.db.First(&purpose, "share_token = ?", token).Error; err != nil {
		return nil, err
	}
	return &purpose, nil
}

func (r *purposeRepository) FindActiveWithResponseCount(createdBy string, now time.Time) ([]PurposeWithCount, error) {
	var results []PurposeWithCount
	query := r.db.Model(&model.Purpose{}).
		Select("purposes.*, (SELECT COUNT(*) FROM responses WHERE responses.purpose_id = purposes.id) AS response_count").
		Where("purposes.deadline IS NULL OR purposes.deadline >= ?", now).
		Order("purposes.created_at DESC")
	if createdBy != "" {
		query = query.Where("purposes.created_by = ?", createdBy)
	}
	err := query.Scan(&results).Error
	return results, err
}

func (r *purposeRepository) Update(purpose *model.Purpose) error {
	return r.db.Save(purpose).Error
}

// Delete removes the purpose and its responses in one transaction.
func (r *purposeRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purpose_id = ?", id).Delete(&model.Response{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Purpose{}).Error
	})
}
