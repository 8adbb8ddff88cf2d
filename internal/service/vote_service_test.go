package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/teacher-eval-api/internal/dto"
	"github.com/noah-isme/teacher-eval-api/internal/models"
	appErrors "github.com/noah-isme/teacher-eval-api/pkg/errors"
)

type fakeSubmitter struct {
	batches [][]models.RatingEntry
	err     error
}

func (f *fakeSubmitter) SubmitRatings(_ context.Context, entries []models.RatingEntry) ([]models.Rating, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.batches = append(f.batches, entries)
	return make([]models.Rating, len(entries)), nil
}

func newVoteFixture(t *testing.T) (*VoteService, *fakeSubmitter) {
	store := newDirectoryFixture()
	store.byClass["9A"] = []models.Teacher{
		{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}, {ID: "d", Name: "D"}, {ID: "e", Name: "E"},
	}
	submitter := &fakeSubmitter{}
	svc := NewVoteService(VoteServiceParams{
		Directory:  NewDirectoryService(store, nil),
		Ratings:    submitter,
		Translator: newCatalog(t),
	})
	return svc, submitter
}

func requireCode(t *testing.T, err error, code string) *appErrors.Error {
	t.Helper()
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func TestVoteServiceRequiredCount(t *testing.T) {
	svc, _ := newVoteFixture(t)
	assert.Equal(t, 0, svc.RequiredCount(0))
	assert.Equal(t, 1, svc.RequiredCount(1))
	assert.Equal(t, 1, svc.RequiredCount(2))
	assert.Equal(t, 3, svc.RequiredCount(5))
	assert.Equal(t, 3, svc.RequiredCount(6))
}

func TestVoteServiceForm(t *testing.T) {
	svc, _ := newVoteFixture(t)
	ctx := context.Background()

	empty := svc.Form(ctx, "", "en")
	assert.Equal(t, []string{"5A", "7A", "7B", "10A"}, empty.Classes)
	assert.Empty(t, empty.Teachers)
	assert.Zero(t, empty.RequiredCount)
	assert.Equal(t, "Rate at least half of the teachers", empty.Labels["submit_recommendation"])

	form := svc.Form(ctx, "9A", "en")
	assert.Equal(t, "9A", form.SelectedClass)
	assert.Len(t, form.Teachers, 5)
	assert.Equal(t, 3, form.RequiredCount)
}

func TestVoteServiceSubmit(t *testing.T) {
	svc, submitter := newVoteFixture(t)

	resp, err := svc.Submit(context.Background(), dto.VoteRequest{
		ClassName:   "9A",
		StudentName: "  Ali Valiyev ",
		Ratings:     map[string]int{"a": 5, "b": 4, "c": 3, "d": 0},
		Comments:    map[string]string{"a": "Very clear", "b": "   ", "d": "skipped teacher"},
	}, "en")
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Stored)
	assert.Equal(t, "Thank you!", resp.Title)

	require.Len(t, submitter.batches, 1)
	batch := submitter.batches[0]
	require.Len(t, batch, 3)
	assert.Equal(t, "a", batch[0].TeacherID)
	assert.Equal(t, "Ali Valiyev", *batch[0].StudentName)
	assert.Equal(t, "9A", batch[0].ClassName)
	require.NotNil(t, batch[0].Comment)
	assert.Equal(t, "Very clear", *batch[0].Comment)
	assert.Nil(t, batch[1].Comment)
}

func TestVoteServiceSubmitRules(t *testing.T) {
	svc, submitter := newVoteFixture(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, dto.VoteRequest{ClassName: "9A", Ratings: map[string]int{"a": 5, "b": 5, "c": 5}}, "en")
	appErr := requireCode(t, err, appErrors.ErrIncompleteVote.Code)
	assert.Equal(t, "Please enter your name", appErr.Message)

	_, err = svc.Submit(ctx, dto.VoteRequest{ClassName: "9A", StudentName: "Ali", Ratings: map[string]int{"a": 5, "b": 5}}, "en")
	appErr = requireCode(t, err, appErrors.ErrIncompleteVote.Code)
	assert.Equal(t, "Rate at least 3 of 5 teachers", appErr.Message)

	_, err = svc.Submit(ctx, dto.VoteRequest{ClassName: "9A", StudentName: "Ali", Ratings: map[string]int{"a": 5, "b": 5, "zz": 4}}, "en")
	requireCode(t, err, appErrors.ErrValidation.Code)

	_, err = svc.Submit(ctx, dto.VoteRequest{ClassName: "9A", StudentName: "Ali", Ratings: map[string]int{"a": 7, "b": 5, "c": 5}}, "en")
	requireCode(t, err, appErrors.ErrValidation.Code)

	_, err = svc.Submit(ctx, dto.VoteRequest{ClassName: "12Z", StudentName: "Ali", Ratings: map[string]int{"a": 5}}, "en")
	requireCode(t, err, appErrors.ErrValidation.Code)

	_, err = svc.Submit(ctx, dto.VoteRequest{StudentName: "Ali"}, "en")
	requireCode(t, err, appErrors.ErrValidation.Code)

	assert.Empty(t, submitter.batches)
}

func TestVoteServiceSubmitFailureTranslated(t *testing.T) {
	svc, submitter := newVoteFixture(t)
	submitter.err = appErrors.WrapAs(appErrors.ErrSubmissionFailed, errors.New("tx aborted"), "")

	_, err := svc.Submit(context.Background(), dto.VoteRequest{
		ClassName:   "7A",
		StudentName: "Ali",
		Ratings:     map[string]int{"t1": 4},
	}, "ru")
	appErr := requireCode(t, err, appErrors.ErrSubmissionFailed.Code)
	assert.Equal(t, 500, appErr.Status)
	assert.NotEqual(t, appErrors.ErrSubmissionFailed.Message, appErr.Message)
}
