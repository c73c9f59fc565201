package tour

import (
	"context"
	"errors"
	"testing"
	"time"

	"motorover/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTourRepo struct {
	tours   []models.Tour
	updates map[string]map[string]interface{}
	listErr error
}

func (f *fakeTourRepo) GetByID(ctx context.Context, id string) (*models.Tour, error) {
	for _, t := range f.tours {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeTourRepo) List(ctx context.Context, filter models.TourFilter) ([]models.Tour, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tours, nil
}

func (f *fakeTourRepo) UpdateStatus(ctx context.Context, id string, updates map[string]interface{}) error {
	if f.updates == nil {
		f.updates = make(map[string]map[string]interface{})
	}
	f.updates[id] = updates
	return nil
}

func fixedNow(t *testing.T, value string) func() time.Time {
	t.Helper()
	now, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return func() time.Time { return now }
}

func TestRefreshStatuses(t *testing.T) {
	repo := &fakeTourRepo{tours: []models.Tour{
		{ID: "past", Status: models.TourStatusActive, StartDate: "2026-01-01", EndDate: "2026-01-10"},
		{ID: "future", Status: models.TourStatusActive, StartDate: "2026-09-01", EndDate: "2026-09-10"},
		{ID: "running", Status: models.TourStatusActive, StartDate: "2026-06-10", EndDate: "2026-06-20"},
		{ID: "done", Status: models.TourStatusCompleted, StartDate: "TBA", EndDate: "TBA"},
		{ID: "tba", Status: models.TourStatusUpcoming, StartDate: "TBA", EndDate: "TBA"},
	}}
	svc := &DefaultTourService{
		Repo:   repo,
		Logger: zap.NewNop(),
		Now:    fixedNow(t, "2026-06-15"),
	}

	require.NoError(t, svc.RefreshStatuses(context.Background()))

	// The tour whose season has passed is completed and its dates reset.
	pastUpdate := repo.updates["past"]
	require.NotNil(t, pastUpdate)
	assert.Equal(t, models.TourStatusCompleted, pastUpdate["status"])
	assert.Equal(t, models.DateTBA, pastUpdate["start_date"])
	assert.Equal(t, models.DateTBA, pastUpdate["end_date"])

	// The tour that has not started yet becomes upcoming.
	futureUpdate := repo.updates["future"]
	require.NotNil(t, futureUpdate)
	assert.Equal(t, models.TourStatusUpcoming, futureUpdate["status"])
	assert.NotContains(t, futureUpdate, "start_date", "future tours keep their dates")

	// In-season, already-completed and TBA tours are untouched.
	assert.NotContains(t, repo.updates, "running")
	assert.NotContains(t, repo.updates, "done")
	assert.NotContains(t, repo.updates, "tba")
}

func TestRefreshStatusesListFailure(t *testing.T) {
	repo := &fakeTourRepo{listErr: errors.New("db down")}
	svc := &DefaultTourService{
		Repo:   repo,
		Logger: zap.NewNop(),
		Now:    fixedNow(t, "2026-06-15"),
	}

	err := svc.RefreshStatuses(context.Background())
	assert.Error(t, err)
	assert.Empty(t, repo.updates)
}

func TestListToursWithoutCache(t *testing.T) {
	repo := &fakeTourRepo{tours: []models.Tour{
		{ID: "t1", Name: "Ladakh Expedition", Region: "ladakh"},
	}}
	svc := &DefaultTourService{Repo: repo, Logger: zap.NewNop()}

	tours, err := svc.ListTours(context.Background(), models.TourFilter{Region: "ladakh"})

	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, "t1", tours[0].ID)
}
