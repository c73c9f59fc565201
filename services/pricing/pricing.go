// Package pricing computes booking totals. Totals are always derived fresh
// from the draft; nothing here caches across mutations.
package pricing

import "motorover/models"

// ComputeTotal returns (basePrice + sum of addon prices) multiplied by the
// traveler count, which floors to 1 so a draft without travelers still prices
// a single seat.
func ComputeTotal(basePrice float64, addons []models.Addon, travelerCount int) float64 {
	total := basePrice
	for _, addon := range addons {
		total += addon.Price
	}
	if travelerCount < 1 {
		travelerCount = 1
	}
	return total * float64(travelerCount)
}

// DraftTotal recomputes the running total for a wizard draft.
func DraftTotal(draft models.BookingDraft) float64 {
	var base float64
	if draft.Tour != nil {
		base = draft.Tour.BasePrice
	}
	return ComputeTotal(base, draft.Addons, len(draft.Travelers))
}
