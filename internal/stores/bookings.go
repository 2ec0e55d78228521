package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tempustours/tempus-backend/internal/models"
	"github.com/tempustours/tempus-backend/internal/services"
	"github.com/tempustours/tempus-backend/pkg/utils"
)

const bookingsSnapshotKey = "tempus-tours-bookings"

// Workflow steps, derived from which draft fields are populated
const (
	StepCalendar     = 0
	StepTravelerInfo = 1
	StepPayment      = 2
	StepConfirmation = 3
)

type bookingsSnapshot struct {
	Bookings []models.Booking `json:"bookings"`
}

// BookingStore owns the booking workflow: one in-flight draft per user
// and the durable list of committed bookings. Drafts are session-only;
// the durable list is persisted as a whole-blob snapshot after every
// mutation. The durable list is replaced wholesale on write, never
// mutated in place, so concurrent readers never observe a partially
// updated record.
type BookingStore struct {
	mu       sync.RWMutex
	bookings []models.Booking
	drafts   map[string]*models.Booking
	writer   *services.SnapshotWriter
	now      func() time.Time
}

// NewBookingStore creates the store and loads the persisted durable
// list, if any.
func NewBookingStore(snapshots services.SnapshotStore) (*BookingStore, error) {
	s := &BookingStore{
		drafts: make(map[string]*models.Booking),
		writer: services.NewSnapshotWriter(snapshots, bookingsSnapshotKey),
		now:    time.Now,
	}

	data, err := snapshots.Load(context.Background(), bookingsSnapshotKey)
	if err == services.ErrSnapshotNotFound {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %v", err)
	}

	var snap bookingsSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode bookings snapshot: %v", err)
	}
	s.bookings = snap.Bookings

	return s, nil
}

// StartBooking creates a fresh draft for the user, replacing any draft
// already in flight.
func (s *BookingStore) StartBooking(userID, tourID string) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := &models.Booking{
		ID:        uuid.NewString(),
		UserID:    userID,
		TourID:    tourID,
		Travelers: []models.Traveler{},
		Status:    models.BookingStatusDraft,
		CreatedAt: s.now(),
	}
	s.drafts[userID] = draft

	return *draft
}

// SetTravelDates attaches the selected travel window to the draft
func (s *BookingStore) SetTravelDates(userID string, start, end time.Time) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[userID]
	if !ok {
		return models.Booking{}, ErrNoActiveDraft
	}

	draft.TravelDates = &models.TravelDates{StartDate: start, EndDate: end}
	return *draft, nil
}

// SetTravelers attaches traveler details and special requests to the draft
func (s *BookingStore) SetTravelers(userID string, info models.TravelerInfo) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[userID]
	if !ok {
		return models.Booking{}, ErrNoActiveDraft
	}

	draft.Travelers = info.Travelers
	draft.SpecialRequests = info.SpecialRequests
	return *draft, nil
}

// CalculateTotal computes and records the draft total: the per-person
// tour price times the traveler count. A draft with no travelers yields
// zero.
func (s *BookingStore) CalculateTotal(userID string, unitPrice float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[userID]
	if !ok {
		return 0, ErrNoActiveDraft
	}

	total := unitPrice * float64(len(draft.Travelers))
	draft.TotalPrice = total
	return total, nil
}

// SetPaymentInfo attaches the payment method and marks the draft confirmed
func (s *BookingStore) SetPaymentInfo(userID string, method models.PaymentMethod) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[userID]
	if !ok {
		return models.Booking{}, ErrNoActiveDraft
	}

	draft.PaymentMethod = method
	draft.Status = models.BookingStatusConfirmed
	return *draft, nil
}

// ConfirmBooking finalizes the draft: assigns the confirmation code,
// stamps confirmedAt, appends the record to the durable list and clears
// the draft slot. The confirmation code is assigned exactly once.
func (s *BookingStore) ConfirmBooking(userID string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[userID]
	if !ok {
		return models.Booking{}, ErrNoActiveDraft
	}

	confirmedAt := s.now()
	confirmed := *draft
	confirmed.Status = models.BookingStatusConfirmed
	confirmed.ConfirmationCode = utils.GenerateConfirmationCode()
	confirmed.ConfirmedAt = &confirmedAt

	next := make([]models.Booking, 0, len(s.bookings)+1)
	next = append(next, s.bookings...)
	next = append(next, confirmed)
	s.bookings = next

	delete(s.drafts, userID)
	s.persist()

	return confirmed, nil
}

// CancelBookingProcess discards the in-flight draft without persisting it
func (s *BookingStore) CancelBookingProcess(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, userID)
}

// CancelBooking transitions a committed booking from confirmed to
// cancelled. The record stays in the durable list for history.
func (s *BookingStore) CancelBooking(userID, id string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, b := range s.bookings {
		if b.ID == id && b.UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Booking{}, ErrBookingNotFound
	}
	if s.bookings[idx].Status != models.BookingStatusConfirmed {
		return models.Booking{}, ErrBookingNotCancellable
	}

	cancelledAt := s.now()
	next := make([]models.Booking, len(s.bookings))
	copy(next, s.bookings)
	next[idx].Status = models.BookingStatusCancelled
	next[idx].CancelledAt = &cancelledAt
	s.bookings = next

	s.persist()

	return s.bookings[idx], nil
}

// CurrentBooking returns the user's in-flight draft
func (s *BookingStore) CurrentBooking(userID string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.drafts[userID]
	if !ok {
		return models.Booking{}, ErrNoActiveDraft
	}
	return *draft, nil
}

// CurrentStep reports the workflow step implied by the draft's
// populated fields. There is no separate step counter to drift out of
// sync with the draft itself.
func (s *BookingStore) CurrentStep(userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.drafts[userID]
	if !ok {
		return 0, ErrNoActiveDraft
	}

	switch {
	case draft.PaymentMethod != "":
		return StepConfirmation, nil
	case len(draft.Travelers) > 0:
		return StepPayment, nil
	case draft.TravelDates != nil:
		return StepTravelerInfo, nil
	default:
		return StepCalendar, nil
	}
}

// GetAllBookings returns every committed booking for the user
func (s *BookingStore) GetAllBookings(userID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result
}

// GetActiveBookings returns confirmed bookings whose travel end date
// has not yet passed. Bookings without travel dates are excluded.
func (s *BookingStore) GetActiveBookings(userID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	result := []models.Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID &&
			b.Status == models.BookingStatusConfirmed &&
			b.TravelDates != nil &&
			!b.TravelDates.EndDate.Before(now) {
			result = append(result, b)
		}
	}
	return result
}

// GetBookingHistory returns confirmed bookings whose travel end date
// has passed. Bookings without travel dates are excluded.
func (s *BookingStore) GetBookingHistory(userID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	result := []models.Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID &&
			b.Status == models.BookingStatusConfirmed &&
			b.TravelDates != nil &&
			b.TravelDates.EndDate.Before(now) {
			result = append(result, b)
		}
	}
	return result
}

// GetBookingByID looks up a committed booking by id
func (s *BookingStore) GetBookingByID(userID, id string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id && b.UserID == userID {
			return b, nil
		}
	}
	return models.Booking{}, ErrBookingNotFound
}

// persist queues the whole durable list as one snapshot. Only the
// durable list is persisted; drafts are session-only. Called with the
// write lock held; the marshaled blob captures a consistent snapshot
// and the writer saves off the caller's path, in mutation order.
func (s *BookingStore) persist() {
	snap := bookingsSnapshot{Bookings: s.bookings}
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("Error marshaling bookings snapshot: %v", err)
		return
	}

	s.writer.Write(data)
}
