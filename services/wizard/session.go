// Package wizard drives the five-step booking flow: tour → dates → travelers
// → add-ons → review. Each browser session owns exactly one draft; sessions
// never share state.
package wizard

import (
	"time"

	"motorover/models"
	"motorover/services/pricing"
)

// Step indexes the wizard's ordered steps.
type Step int

const (
	StepTourSelection Step = iota
	StepDateSelection
	StepTravelerInfo
	StepAddonSelection
	StepReview

	stepCount
)

var stepTitles = [stepCount]string{
	"Choose Tour",
	"Select Dates",
	"Add Travelers",
	"Choose Add-ons",
	"Review & Pay",
}

// Title returns the display title for a step.
func (s Step) Title() string {
	if s < 0 || s >= stepCount {
		return ""
	}
	return stepTitles[s]
}

// StatusActive marks a live session. Sessions have no terminal status: both
// confirm and cancel delete them outright.
const StatusActive = "active"

// Session is one in-progress booking wizard. It is stored as JSON in the
// session cache between requests.
type Session struct {
	ID        string              `json:"sessionId"`
	Step      Step                `json:"step"`
	Status    string              `json:"status"`
	Draft     models.BookingDraft `json:"draft"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// Next advances one step when the current step's data is present. It reports
// whether the step changed; at Review it is a no-op.
func (s *Session) Next() bool {
	if s.Step >= stepCount-1 || !s.canAdvance() {
		return false
	}
	s.Step++
	return true
}

// Prev moves back one step, preserving all entered data. At the first step it
// is a no-op.
func (s *Session) Prev() bool {
	if s.Step <= 0 {
		return false
	}
	s.Step--
	return true
}

// canAdvance gates forward navigation on the current step's local data. The
// dates step requires both bounds so the review step can never show a
// half-filled range.
func (s *Session) canAdvance() bool {
	switch s.Step {
	case StepTourSelection:
		return s.Draft.Tour != nil
	case StepDateSelection:
		return s.Draft.Dates.Start != "" && s.Draft.Dates.End != ""
	case StepTravelerInfo:
		return len(s.Draft.Travelers) > 0
	case StepAddonSelection:
		return true // add-ons are optional
	default:
		return false
	}
}

// SetTour selects the tour and reprices the draft.
func (s *Session) SetTour(tour models.Tour) {
	s.Draft.Tour = &tour
	s.recalc()
}

// SetDates records the travel window.
func (s *Session) SetDates(start, end string) {
	s.Draft.Dates = models.DateRange{Start: start, End: end}
}

// SetTravelers replaces the traveler list and reprices the draft.
func (s *Session) SetTravelers(travelers []models.Traveler) {
	s.Draft.Travelers = travelers
	s.recalc()
}

// SetContact records the lead traveler's contact details.
func (s *Session) SetContact(email, phone string) {
	s.Draft.Email = email
	s.Draft.Phone = phone
}

// SetAddons replaces the add-on selection and reprices the draft.
func (s *Session) SetAddons(addons []models.Addon) {
	s.Draft.Addons = addons
	s.recalc()
}

// ToggleAddon adds the add-on if absent, removes it if present, then reprices.
func (s *Session) ToggleAddon(addon models.Addon) {
	for i, existing := range s.Draft.Addons {
		if existing.ID == addon.ID {
			s.Draft.Addons = append(s.Draft.Addons[:i], s.Draft.Addons[i+1:]...)
			s.recalc()
			return
		}
	}
	s.Draft.Addons = append(s.Draft.Addons, addon)
	s.recalc()
}

// recalc rederives the running total. Called on every mutation so the UI's
// live total is never stale.
func (s *Session) recalc() {
	s.Draft.TotalPrice = pricing.DraftTotal(s.Draft)
}
