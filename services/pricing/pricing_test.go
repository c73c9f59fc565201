package pricing

import (
	"testing"

	"motorover/models"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name      string
		basePrice float64
		addons    []models.Addon
		travelers int
		want      float64
	}{
		{
			name:      "base with addons and three travelers",
			basePrice: 100,
			addons:    []models.Addon{{Label: "Pillion seat", Price: 20}, {Label: "Helmet", Price: 5}},
			travelers: 3,
			want:      375,
		},
		{
			name:      "zero travelers floors to one",
			basePrice: 100,
			addons:    nil,
			travelers: 0,
			want:      100,
		},
		{
			name:      "negative travelers floors to one",
			basePrice: 50,
			addons:    []models.Addon{{Label: "Fuel surcharge", Price: 10}},
			travelers: -2,
			want:      60,
		},
		{
			name:      "single traveler no addons",
			basePrice: 24999,
			addons:    []models.Addon{},
			travelers: 1,
			want:      24999,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotal(tt.basePrice, tt.addons, tt.travelers)
			if got != tt.want {
				t.Errorf("ComputeTotal(%v, %v, %d) = %v, want %v", tt.basePrice, tt.addons, tt.travelers, got, tt.want)
			}
		})
	}
}

func TestDraftTotal(t *testing.T) {
	t.Run("draft without a tour prices to zero", func(t *testing.T) {
		draft := models.BookingDraft{
			Travelers: []models.Traveler{{Name: "A"}, {Name: "B"}},
		}
		if got := DraftTotal(draft); got != 0 {
			t.Errorf("DraftTotal = %v, want 0", got)
		}
	})

	t.Run("draft total tracks tour, addons and travelers", func(t *testing.T) {
		draft := models.BookingDraft{
			Tour:      &models.Tour{ID: "t1", BasePrice: 100},
			Addons:    []models.Addon{{Label: "Pillion seat", Price: 20}, {Label: "Helmet", Price: 5}},
			Travelers: []models.Traveler{{Name: "A"}, {Name: "B"}, {Name: "C"}},
		}
		if got := DraftTotal(draft); got != 375 {
			t.Errorf("DraftTotal = %v, want 375", got)
		}
	})
}
