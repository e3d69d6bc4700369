package repository

import (
	"testing"
	"time"

	"github.com/nkuroda/purposesurvey/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Purpose{}, &model.Response{}))
	return db
}

func createTestPurpose(t *testing.T, repo PurposeRepository, createdBy string, deadline *time.Time) *model.Purpose {
	t.Helper()
	purpose := &model.Purpose{
		Title:       "Team lunch",
		Description: "Plan the next team lunch",
		Questions: datatypes.NewJSONSlice([]model.Question{
			{ID: "q1", Label: "Cuisine", Type: model.SingleChoice, Options: []string{"A", "B", "Other"}, Required: true},
		}),
		Deadline:  deadline,
		CreatedBy: createdBy,
	}
	require.NoError(t, repo.Create(purpose))
	return purpose
}

func TestPurposeCreateAssignsIDAndToken(t *testing.T) {
	repo := NewPurposeRepository(newTestDB(t))

	purpose := createTestPurpose(t, repo, "client-1", nil)
	assert.NotEmpty(t, purpose.ID)
	assert.NotEmpty(t, purpose.ShareToken)

	other := createTestPurpose(t, repo, "client-1", nil)
	assert.NotEqual(t, purpose.ShareToken, other.ShareToken)
}

func TestPurposeFindByIDRoundTripsQuestions(t *testing.T) {
	repo := NewPurposeRepository(newTestDB(t))
	created := createTestPurpose(t, repo, "client-1", nil)

	found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	require.Len(t, found.Questions, 1)
	assert.Equal(t, "q1", found.Questions[0].ID)
	assert.Equal(t, model.SingleChoice, found.Questions[0].Type)
	assert.Equal(t, []string{"A", "B", "Other"}, found.Questions[0].Options)
}

func TestPurposeFindByIDNotFound(t *testing.T) {
	repo := NewPurposeRepository(newTestDB(t))

	_, err := repo.FindByID("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPurposeFindByShareToken(t *testing.T) {
	repo := NewPurposeRepository(newTestDB(t))
	created := createTestPurpose(t, repo, "client-1", nil)

	found, err := repo.FindByShareToken(created.ShareToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByShareToken("bogus")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPurposeFindActiveFiltersExpired(t *testing.T) {
	db := newTestDB(t)
	repo := NewPurposeRepository(db)

	now := time.Now()
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	active := createTestPurpose(t, repo, "client-1", &future)
	createTestPurpose(t, repo, "client-1", &past)
	noDeadline := createTestPurpose(t, repo, "client-1", nil)

	rows, err := repo.FindActiveWithResponseCount("", now)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	ids := []string{rows[0].ID, rows[1].ID}
	assert.Contains(t, ids, active.ID)
	assert.Contains(t, ids, noDeadline.ID)
}

func TestPurposeFindActiveFiltersByCreator(t *testing.T) {
	repo := NewPurposeRepository(newTestDB(t))

	mine := createTestPurpose(t, repo, "client-1", nil)
	createTestPurpose(t, repo, "client-2", nil)

	rows, err := repo.FindActiveWithResponseCount("client-1", time.Now())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, mine.ID, rows[0].ID)
}

func TestPurposeFindActiveCountsResponses(t *testing.T) {
	db := newTestDB(t)
	repo := NewPurposeRepository(db)
	responses := NewResponseRepository(db)

	counted := createTestPurpose(t, repo, "client-1", nil)
	empty := createTestPurpose(t, repo, "client-1", nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, responses.Create(&model.Response{PurposeID: counted.ID}))
	}

	rows, err := repo.FindActiveWithResponseCount("client-1", time.Now())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	counts := map[string]int{}
	for _, row := range rows {
		counts[row.ID] = row.ResponseCount
	}
	assert.Equal(t, 3, counts[counted.ID])
	assert.Equal(t, 0, counts[empty.ID])
}

func TestPurposeFindByIDWithResponsesOrdersOldestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPurposeRepository(db)

	purpose := createTestPurpose(t, repo, "client-1", nil)

	older := model.Response{PurposeID: purpose.ID, CreatedAt: time.Now().Add(-time.Hour)}
	newer := model.Response{PurposeID: purpose.ID, CreatedAt: time.Now()}
	require.NoError(t, db.Create(&newer).Error)
	require.NoError(t, db.Create(&older).Error)

	found, err := repo.FindByIDWithResponses(purpose.ID)
	require.NoError(t, err)
	require.Len(t, found.Responses, 2)
	assert.Equal(t, older.ID, found.Responses[0].ID)
	assert.Equal(t, newer.ID, found.Responses[1].ID)
}

func TestPurposeDeleteRemovesResponses(t *testing.T) {
	db := newTestDB(t)
	repo := NewPurposeRepository(db)

	purpose := createTestPurpose(t, repo, "client-1", nil)
	require.NoError(t, db.Create(&model.Response{PurposeID: purpose.ID}).Error)

	require.NoError(t, repo.Delete(purpose.ID))

	_, err := repo.FindByID(purpose.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&model.Response{}).Where("purpose_id = ?", purpose.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPurposeUpdatePersistsNewQuestions(t *testing.T) {
	repo := NewPurposeRepository(newTestDB(t))
	purpose := createTestPurpose(t, repo, "client-1", nil)

	purpose.Title = "Renamed"
	purpose.Questions = datatypes.NewJSONSlice([]model.Question{
		{ID: "q1", Label: "Changed", Type: model.Text},
		{ID: "q2", Label: "Added", Type: model.Number},
	})
	require.NoError(t, repo.Update(purpose))

	found, err := repo.FindByID(purpose.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Title)
	require.Len(t, found.Questions, 2)
	assert.Equal(t, "Added", found.Questions[1].Label)
}
