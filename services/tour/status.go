package tour

import (
	"context"
	"time"

	"motorover/models"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// RefreshStatuses walks the catalog once and reconciles every tour's status
// with today's date: a tour whose end date has passed is completed and its
// dates reset to TBA; a tour whose start date is still ahead is upcoming.
// Runs daily from the background worker.
func (s *DefaultTourService) RefreshStatuses(ctx context.Context) error {
	tours, err := s.Repo.List(ctx, models.TourFilter{})
	if err != nil {
		return err
	}

	today := s.now().Truncate(24 * time.Hour)
	updated := 0

	for _, t := range tours {
		if end, ok := parseDate(t.EndDate); ok && end.Before(today) {
			if t.Status == models.TourStatusCompleted {
				continue
			}
			err := s.Repo.UpdateStatus(ctx, t.ID, map[string]interface{}{
				"start_date": models.DateTBA,
				"end_date":   models.DateTBA,
				"status":     models.TourStatusCompleted,
			})
			if err != nil {
				s.Logger.Warn("tour: status update failed",
					zap.String("tourId", t.ID), zap.Error(err))
				continue
			}
			updated++
			continue
		}

		if start, ok := parseDate(t.StartDate); ok && start.After(today) && t.Status != models.TourStatusUpcoming {
			err := s.Repo.UpdateStatus(ctx, t.ID, map[string]interface{}{
				"status": models.TourStatusUpcoming,
			})
			if err != nil {
				s.Logger.Warn("tour: status update failed",
					zap.String("tourId", t.ID), zap.Error(err))
				continue
			}
			updated++
		}
	}

	s.Logger.Info("tour: status refresh completed",
		zap.Int("tours", len(tours)), zap.Int("updated", updated))
	return nil
}

// parseDate parses a catalog date, rejecting "TBA" and empty values.
func parseDate(value string) (time.Time, bool) {
	if value == "" || value == models.DateTBA {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
