// Package ledger owns all seat accounting. Every booking, cancellation, and
// modification runs as a single store transaction that re-checks capacity
// together with the write, so concurrent conversations can never oversell a
// slot. Callers interact only through these operations; nothing else touches
// slot occupancy.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/foodiespot/foodiebot/internal/catalog"
	"github.com/foodiespot/foodiebot/internal/store"
)

// errRejected forces a transaction rollback for a domain rejection. The
// human-readable reason travels in the captured Result, not in the error.
var errRejected = errors.New("ledger: rejected")

// Availability is the answer to a slot query.
type Availability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// Result is the outcome of a booking operation. Domain rejections are
// values, not errors: OK=false with a reason the user can read.
type Result struct {
	OK        bool          `json:"success"`
	Reason    string        `json:"reason,omitempty"`
	BookingID string        `json:"booking_id,omitempty"`
	Details   store.Booking `json:"details,omitempty"`
}

// Ledger enforces the capacity invariant over the booking store.
type Ledger struct {
	DB      *store.DB
	Catalog *catalog.Catalog
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

// New builds a ledger over the given store and catalog.
func New(db *store.DB, cat *catalog.Catalog) *Ledger {
	return &Ledger{DB: db, Catalog: cat, Now: time.Now}
}

// FormatBookingID renders the public booking id for a row id. Public ids
// are monotonic, starting at BK101.
func FormatBookingID(rowID int64) string {
	return fmt.Sprintf("BK%d", 100+rowID)
}

// ParseBookingID maps a public booking id back to its row id. Returns false
// for anything that is not a well-formed BK id.
func ParseBookingID(id string) (int64, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(id), "BK")
	if s == id || s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 100 {
		return 0, false
	}
	return n - 100, true
}

// Availability reports whether a party fits the slot. Unknown restaurants
// fail closed.
func (l *Ledger) Availability(ctx context.Context, restaurantID, date, timeOfDay string, partySize int) Availability {
	capacity := l.Catalog.Capacity(restaurantID)
	if capacity == 0 {
		return Availability{Available: false, Reason: "Invalid restaurant ID."}
	}
	if partySize <= 0 {
		return Availability{Available: false, Reason: "Party size must be at least 1."}
	}

	var out Availability
	err := l.DB.WithTx(ctx, func(tx *sql.Tx) error {
		seats, err := store.SlotSeats(tx, restaurantID, date, timeOfDay)
		if err != nil {
			return err
		}
		if seats+partySize <= capacity {
			out = Availability{Available: true}
		} else {
			out = Availability{Available: false, Reason: fmt.Sprintf("Not enough seats. Only %d left.", capacity-seats)}
		}
		return nil
	})
	if err != nil {
		log.Printf("[LEDGER] availability check failed: %v", err)
		return Availability{Available: false, Reason: "Availability check failed. Please try again."}
	}
	return out
}

// Book reserves seats if the slot has capacity. The capacity check and the
// occupancy write happen in one transaction; there is no read-then-write gap
// for a concurrent caller to slip into.
func (l *Ledger) Book(ctx context.Context, restaurantID, date, timeOfDay string, partySize int, customerName, customerContact string) Result {
	r, ok := l.Catalog.ByID(restaurantID)
	if !ok {
		return Result{OK: false, Reason: "Invalid restaurant ID."}
	}
	if partySize <= 0 {
		return Result{OK: false, Reason: "Party size must be at least 1."}
	}
	if customerContact == "" {
		customerContact = "Not Provided"
	}

	var out Result
	err := l.DB.WithTx(ctx, func(tx *sql.Tx) error {
		seats, err := store.SlotSeats(tx, restaurantID, date, timeOfDay)
		if err != nil {
			return err
		}
		if seats+partySize > r.Capacity {
			out = Result{OK: false, Reason: fmt.Sprintf("Not enough capacity. Only %d seats available at %s.", r.Capacity-seats, timeOfDay)}
			return errRejected
		}
		if err := store.SetSlotSeats(tx, restaurantID, date, timeOfDay, seats+partySize); err != nil {
			return err
		}
		b := store.Booking{
			RestaurantID:    restaurantID,
			RestaurantName:  r.Name,
			Date:            date,
			Time:            timeOfDay,
			PartySize:       partySize,
			CustomerName:    customerName,
			CustomerContact: customerContact,
			Status:          store.StatusConfirmed,
			UpdatedAt:       l.Now().UTC(),
		}
		rowID, err := store.InsertBooking(tx, b)
		if err != nil {
			return err
		}
		b.ID = rowID
		out = Result{OK: true, BookingID: FormatBookingID(rowID), Details: b}
		return nil
	})
	return l.finish("book", out, err)
}

// Cancel releases a booking's seats and marks it Cancelled. Cancelling an
// already-cancelled booking is rejected rather than double-decrementing the
// slot. The occupancy decrement floors at zero defensively.
func (l *Ledger) Cancel(ctx context.Context, bookingID string) Result {
	rowID, ok := ParseBookingID(bookingID)
	if !ok {
		return Result{OK: false, Reason: "Booking ID not found."}
	}

	var out Result
	err := l.DB.WithTx(ctx, func(tx *sql.Tx) error {
		b, err := store.GetBooking(tx, rowID)
		if err == sql.ErrNoRows {
			out = Result{OK: false, Reason: "Booking ID not found."}
			return errRejected
		}
		if err != nil {
			return err
		}
		if b.Status == store.StatusCancelled {
			out = Result{OK: false, Reason: fmt.Sprintf("Booking %s is already cancelled.", bookingID)}
			return errRejected
		}
		seats, err := store.SlotSeats(tx, b.RestaurantID, b.Date, b.Time)
		if err != nil {
			return err
		}
		remaining := seats - b.PartySize
		if remaining < 0 {
			log.Printf("[LEDGER] occupancy underflow on cancel of %s (%d - %d); flooring at 0", bookingID, seats, b.PartySize)
			remaining = 0
		}
		if err := store.SetSlotSeats(tx, b.RestaurantID, b.Date, b.Time, remaining); err != nil {
			return err
		}
		b.Status = store.StatusCancelled
		b.UpdatedAt = l.Now().UTC()
		if err := store.UpdateBooking(tx, b); err != nil {
			return err
		}
		out = Result{OK: true, BookingID: bookingID, Details: b}
		return nil
	})
	return l.finish("cancel", out, err)
}

// Modify moves a booking to a new date, time, or party size. The old slot's
// release and the new slot's commit happen atomically: capacity is
// re-validated at the target slot after the release, and any rejection rolls
// the whole transaction back, leaving the original booking and occupancy
// untouched.
func (l *Ledger) Modify(ctx context.Context, bookingID string, newDate, newTime string, newPartySize int) Result {
	rowID, ok := ParseBookingID(bookingID)
	if !ok {
		return Result{OK: false, Reason: "Booking ID not found."}
	}
	if newDate == "" && newTime == "" && newPartySize == 0 {
		return Result{OK: false, Reason: "Nothing to modify: provide a new date, time, or party size."}
	}
	if newPartySize < 0 {
		return Result{OK: false, Reason: "Party size must be at least 1."}
	}

	var out Result
	err := l.DB.WithTx(ctx, func(tx *sql.Tx) error {
		b, err := store.GetBooking(tx, rowID)
		if err == sql.ErrNoRows {
			out = Result{OK: false, Reason: "Booking ID not found."}
			return errRejected
		}
		if err != nil {
			return err
		}
		if b.Status == store.StatusCancelled {
			out = Result{OK: false, Reason: fmt.Sprintf("Booking %s is cancelled and cannot be modified.", bookingID)}
			return errRejected
		}

		capacity := l.Catalog.Capacity(b.RestaurantID)
		if capacity == 0 {
			return fmt.Errorf("booking %s references unknown restaurant %s", bookingID, b.RestaurantID)
		}

		// Release the old slot first so a same-slot party-size change is
		// judged against the freed occupancy. A rejection below rolls this
		// back with everything else.
		oldSeats, err := store.SlotSeats(tx, b.RestaurantID, b.Date, b.Time)
		if err != nil {
			return err
		}
		released := oldSeats - b.PartySize
		if released < 0 {
			log.Printf("[LEDGER] occupancy underflow on modify of %s (%d - %d); flooring at 0", bookingID, oldSeats, b.PartySize)
			released = 0
		}
		if err := store.SetSlotSeats(tx, b.RestaurantID, b.Date, b.Time, released); err != nil {
			return err
		}

		if newDate != "" {
			b.Date = newDate
		}
		if newTime != "" {
			b.Time = newTime
		}
		if newPartySize > 0 {
			b.PartySize = newPartySize
		}

		targetSeats, err := store.SlotSeats(tx, b.RestaurantID, b.Date, b.Time)
		if err != nil {
			return err
		}
		if targetSeats+b.PartySize > capacity {
			out = Result{OK: false, Reason: fmt.Sprintf("Not enough capacity. Only %d seats available at %s on %s.", capacity-targetSeats, b.Time, b.Date)}
			return errRejected
		}
		if err := store.SetSlotSeats(tx, b.RestaurantID, b.Date, b.Time, targetSeats+b.PartySize); err != nil {
			return err
		}
		b.Status = store.StatusModified
		b.UpdatedAt = l.Now().UTC()
		if err := store.UpdateBooking(tx, b); err != nil {
			return err
		}
		out = Result{OK: true, BookingID: bookingID, Details: b}
		return nil
	})
	return l.finish("modify", out, err)
}

// finish maps transaction outcomes to results: nil commits pass through,
// errRejected carries a domain reason in out, anything else is an internal
// fault that must not leak raw to the user.
func (l *Ledger) finish(op string, out Result, err error) Result {
	if err == nil || errors.Is(err, errRejected) {
		return out
	}
	log.Printf("[LEDGER] %s failed: %v", op, err)
	return Result{OK: false, Reason: "Unexpected error updating the reservation ledger. Please try again."}
}
