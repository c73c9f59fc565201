package wizard

import (
	"context"
	"errors"
	"testing"

	"motorover/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryStore is an in-memory SessionStore for tests.
type memoryStore struct {
	sessions map[string]Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]Session)}
}

func (m *memoryStore) Save(ctx context.Context, session *Session) error {
	m.sessions[session.ID] = *session
	return nil
}

func (m *memoryStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (m *memoryStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

type fakeSubmitter struct {
	calls     int
	err       error
	booking   *models.Booking
	gotDraft  models.BookingDraft
	gotMethod string
}

func (f *fakeSubmitter) SubmitInquiry(ctx context.Context, inquiry models.Inquiry) (*models.Inquiry, error) {
	return nil, errors.New("not used")
}

func (f *fakeSubmitter) SubmitBooking(ctx context.Context, draft models.BookingDraft, paymentMethod string) (*models.Booking, error) {
	f.calls++
	f.gotDraft = draft
	f.gotMethod = paymentMethod
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

func testTour() models.Tour {
	return models.Tour{ID: "t1", Name: "Ladakh Expedition", BasePrice: 100}
}

func filledSession() *Session {
	s := &Session{ID: "s1", Status: StatusActive}
	s.SetTour(testTour())
	s.SetDates("2026-06-01", "2026-06-10")
	s.SetTravelers([]models.Traveler{{Name: "A"}, {Name: "B"}})
	s.SetContact("asha@example.com", "9999999999")
	return s
}

func TestSessionStepNavigation(t *testing.T) {
	t.Run("five next calls reach review", func(t *testing.T) {
		s := filledSession()
		for i := 0; i < 5; i++ {
			s.Next()
		}
		assert.Equal(t, StepReview, s.Step)
	})

	t.Run("next at review is a no-op", func(t *testing.T) {
		s := filledSession()
		s.Step = StepReview
		assert.False(t, s.Next())
		assert.Equal(t, StepReview, s.Step)
	})

	t.Run("prev at first step is a no-op", func(t *testing.T) {
		s := &Session{}
		assert.False(t, s.Prev())
		assert.Equal(t, StepTourSelection, s.Step)
	})

	t.Run("data survives a prev then next round trip", func(t *testing.T) {
		s := filledSession()
		s.Step = StepTravelerInfo

		require.True(t, s.Prev())
		require.True(t, s.Next())

		assert.Equal(t, "2026-06-01", s.Draft.Dates.Start)
		assert.Equal(t, "2026-06-10", s.Draft.Dates.End)
		assert.Len(t, s.Draft.Travelers, 2)
	})
}

func TestSessionStepGating(t *testing.T) {
	t.Run("tour step requires a tour", func(t *testing.T) {
		s := &Session{}
		assert.False(t, s.Next())
		assert.Equal(t, StepTourSelection, s.Step)

		s.SetTour(testTour())
		assert.True(t, s.Next())
	})

	t.Run("dates step requires both bounds", func(t *testing.T) {
		s := &Session{Step: StepDateSelection}
		s.SetTour(testTour())

		s.SetDates("2026-06-01", "")
		assert.False(t, s.Next())

		s.SetDates("2026-06-01", "2026-06-10")
		assert.True(t, s.Next())
	})

	t.Run("traveler step requires at least one traveler", func(t *testing.T) {
		s := &Session{Step: StepTravelerInfo}
		assert.False(t, s.Next())

		s.SetTravelers([]models.Traveler{{Name: "A"}})
		assert.True(t, s.Next())
	})

	t.Run("addon step advances without addons", func(t *testing.T) {
		s := &Session{Step: StepAddonSelection}
		assert.True(t, s.Next())
		assert.Equal(t, StepReview, s.Step)
	})
}

func TestSessionRepricing(t *testing.T) {
	s := &Session{}
	s.SetTour(testTour())
	s.SetTravelers([]models.Traveler{{Name: "A"}, {Name: "B"}, {Name: "C"}})
	s.SetAddons([]models.Addon{{ID: "a1", Label: "Pillion seat", Price: 20}, {ID: "a2", Label: "Helmet", Price: 5}})
	assert.Equal(t, 375.0, s.Draft.TotalPrice)

	s.ToggleAddon(models.Addon{ID: "a2", Label: "Helmet", Price: 5})
	assert.Len(t, s.Draft.Addons, 1)
	assert.Equal(t, 360.0, s.Draft.TotalPrice)

	s.ToggleAddon(models.Addon{ID: "a2", Label: "Helmet", Price: 5})
	assert.Len(t, s.Draft.Addons, 2)
	assert.Equal(t, 375.0, s.Draft.TotalPrice)
}

func newTestWizard() (*DefaultWizardService, *memoryStore, *fakeSubmitter) {
	store := newMemoryStore()
	submitter := &fakeSubmitter{booking: &models.Booking{ID: "bk-1"}}
	svc := &DefaultWizardService{
		Store:     store,
		Submitter: submitter,
		Logger:    zap.NewNop(),
	}
	return svc, store, submitter
}

func TestStartSession(t *testing.T) {
	svc, store, _ := newTestWizard()

	session, err := svc.StartSession(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, StepTourSelection, session.Step)
	assert.Equal(t, StatusActive, session.Status)
	assert.Contains(t, store.sessions, session.ID)
}

func TestUpdateSession(t *testing.T) {
	t.Run("unknown action", func(t *testing.T) {
		svc, _, _ := newTestWizard()
		session, err := svc.StartSession(context.Background())
		require.NoError(t, err)

		_, err = svc.UpdateSession(context.Background(), session.ID, UpdateRequest{Action: "teleport"})

		var unknownErr *UnknownActionError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "teleport", unknownErr.Action)
	})

	t.Run("missing session", func(t *testing.T) {
		svc, _, _ := newTestWizard()
		_, err := svc.UpdateSession(context.Background(), "nope", UpdateRequest{Action: ActionNext})
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("set_tour then next persists the mutation", func(t *testing.T) {
		svc, store, _ := newTestWizard()
		session, err := svc.StartSession(context.Background())
		require.NoError(t, err)

		tour := testTour()
		_, err = svc.UpdateSession(context.Background(), session.ID, UpdateRequest{Action: ActionSetTour, Tour: &tour})
		require.NoError(t, err)

		updated, err := svc.UpdateSession(context.Background(), session.ID, UpdateRequest{Action: ActionNext})
		require.NoError(t, err)
		assert.Equal(t, StepDateSelection, updated.Step)

		stored := store.sessions[session.ID]
		assert.Equal(t, StepDateSelection, stored.Step)
		require.NotNil(t, stored.Draft.Tour)
		assert.Equal(t, "t1", stored.Draft.Tour.ID)
	})

	t.Run("set_tour without payload", func(t *testing.T) {
		svc, _, _ := newTestWizard()
		session, err := svc.StartSession(context.Background())
		require.NoError(t, err)

		_, err = svc.UpdateSession(context.Background(), session.ID, UpdateRequest{Action: ActionSetTour})
		assert.Error(t, err)
	})
}

func TestConfirmBooking(t *testing.T) {
	seed := func(store *memoryStore, step Step) *Session {
		session := filledSession()
		session.Step = step
		store.sessions[session.ID] = *session
		return session
	}

	t.Run("only the review step can confirm", func(t *testing.T) {
		svc, store, submitter := newTestWizard()
		session := seed(store, StepAddonSelection)

		_, err := svc.ConfirmBooking(context.Background(), session.ID, "stripe")

		assert.Error(t, err)
		assert.Zero(t, submitter.calls)
	})

	t.Run("success removes the session", func(t *testing.T) {
		svc, store, submitter := newTestWizard()
		session := seed(store, StepReview)

		booking, err := svc.ConfirmBooking(context.Background(), session.ID, "stripe")

		require.NoError(t, err)
		assert.Equal(t, "bk-1", booking.ID)
		assert.Equal(t, 1, submitter.calls)
		assert.Equal(t, "stripe", submitter.gotMethod)
		require.NotNil(t, submitter.gotDraft.Tour)
		assert.Equal(t, "t1", submitter.gotDraft.Tour.ID)
		assert.NotContains(t, store.sessions, session.ID)

		// Confirmed sessions are deleted outright, not kept in a terminal state.
		_, err = svc.GetSession(context.Background(), session.ID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("failure keeps the session for retry", func(t *testing.T) {
		svc, store, submitter := newTestWizard()
		submitter.err = errors.New("card declined")
		session := seed(store, StepReview)

		_, err := svc.ConfirmBooking(context.Background(), session.ID, "stripe")

		assert.Error(t, err)
		assert.Contains(t, store.sessions, session.ID)
	})
}

func TestCancelSession(t *testing.T) {
	svc, store, _ := newTestWizard()
	session, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.CancelSession(context.Background(), session.ID))
	assert.NotContains(t, store.sessions, session.ID)

	_, err = svc.GetSession(context.Background(), session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
