package service

import (
	"testing"

	"github.com/nkuroda/purposesurvey/internal/dto"
	"github.com/nkuroda/purposesurvey/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type stubResponseRepo struct {
	existing *model.Response
	byClient []model.Response

	created *model.Response
	updated *model.Response
	findErr error
}

func (s *stubResponseRepo) Create(r *model.Response) error {
	if r.ID == "" {
		r.ID = "generated-id"
	}
	s.created = r
	return nil
}

func (s *stubResponseRepo) Update(r *model.Response) error {
	s.updated = r
	return nil
}

func (s *stubResponseRepo) FindByPurposeAndClient(purposeID, clientID string) (*model.Response, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.existing != nil && s.existing.PurposeID == purposeID && s.existing.ClientID != nil && *s.existing.ClientID == clientID {
		return s.existing, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubResponseRepo) FindByClient(string) ([]model.Response, error) {
	return s.byClient, nil
}

func strPtr(s string) *string { return &s }

func TestSubmitResponseCreatesWhenClientIsNew(t *testing.T) {
	repo := &stubResponseRepo{}
	svc := NewResponseService(repo)

	detail, err := svc.SubmitResponse(dto.SubmitResponseRequest{
		PurposeID: "p1",
		ClientID:  strPtr("c1"),
		Answers:   answers(ans("q1", model.StringValue("A"))),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.Nil(t, repo.updated)
	assert.Equal(t, "p1", detail.PurposeID)
	require.NotNil(t, detail.ClientID)
	assert.Equal(t, "c1", *detail.ClientID)
	require.Len(t, detail.Answers, 1)
}

func TestSubmitResponseOverwritesExistingForSameClient(t *testing.T) {
	repo := &stubResponseRepo{existing: &model.Response{
		ID:             "r1",
		PurposeID:      "p1",
		ClientID:       strPtr("c1"),
		RespondentName: strPtr("Old Name"),
		Answers:        datatypes.NewJSONSlice(answers(ans("q1", model.StringValue("A")))),
	}}
	svc := NewResponseService(repo)

	detail, err := svc.SubmitResponse(dto.SubmitResponseRequest{
		PurposeID:      "p1",
		ClientID:       strPtr("c1"),
		RespondentName: strPtr("New Name"),
		Answers:        answers(ans("q1", model.StringValue("B"))),
	})
	require.NoError(t, err)

	assert.Nil(t, repo.created)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "r1", detail.ID)
	require.NotNil(t, detail.RespondentName)
	assert.Equal(t, "New Name", *detail.RespondentName)
	require.Len(t, detail.Answers, 1)
	assert.Equal(t, "B", detail.Answers[0].Value.Str)
}

func TestSubmitResponseWithoutClientAlwaysCreates(t *testing.T) {
	repo := &stubResponseRepo{existing: &model.Response{
		ID:        "r1",
		PurposeID: "p1",
		ClientID:  strPtr("c1"),
	}}
	svc := NewResponseService(repo)

	_, err := svc.SubmitResponse(dto.SubmitResponseRequest{
		PurposeID: "p1",
		Answers:   answers(ans("q1", model.StringValue("A"))),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.Nil(t, repo.created.ClientID)
	assert.Nil(t, repo.updated)
}

func TestSubmitResponseEmptyClientIDTreatedAsAnonymous(t *testing.T) {
	repo := &stubResponseRepo{}
	svc := NewResponseService(repo)

	_, err := svc.SubmitResponse(dto.SubmitResponseRequest{
		PurposeID: "p1",
		ClientID:  strPtr(""),
		Answers:   answers(ans("q1", model.StringValue("A"))),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
}

func TestGetResponseNotFoundPassesThrough(t *testing.T) {
	repo := &stubResponseRepo{}
	svc := NewResponseService(repo)

	_, err := svc.GetResponse("p1", "c1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetAnsweredSurveysDeduplicatesByPurpose(t *testing.T) {
	p1 := &model.Purpose{ID: "p1", Title: "First", ShareToken: "t1"}
	p2 := &model.Purpose{ID: "p2", Title: "Second", ShareToken: "t2"}
	// Newest first, as the repository returns them. The duplicate for p1
	// keeps its first (most recent) slot.
	repo := &stubResponseRepo{byClient: []model.Response{
		{ID: "r3", PurposeID: "p1", Purpose: p1},
		{ID: "r2", PurposeID: "p2", Purpose: p2},
		{ID: "r1", PurposeID: "p1", Purpose: p1},
	}}
	svc := NewResponseService(repo)

	surveys, err := svc.GetAnsweredSurveys("c1")
	require.NoError(t, err)
	require.Len(t, surveys, 2)
	assert.Equal(t, "p1", surveys[0].ID)
	assert.Equal(t, "p2", surveys[1].ID)
}

func TestGetAnsweredSurveysSkipsMissingPurpose(t *testing.T) {
	repo := &stubResponseRepo{byClient: []model.Response{
		{ID: "r1", PurposeID: "p1", Purpose: nil},
	}}
	svc := NewResponseService(repo)

	surveys, err := svc.GetAnsweredSurveys("c1")
	require.NoError(t, err)
	assert.Empty(t, surveys)
}
