package ledger

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/foodiespot/foodiebot/internal/catalog"
	"github.com/foodiespot/foodiebot/internal/store"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Restaurant{
		{ID: "R1", Name: "Test Grill", LocationArea: "Downtown", Cuisine: []string{"American"}, Capacity: 50, PriceRange: "$$"},
		{ID: "R2", Name: "Test Bistro", LocationArea: "Seaside", Cuisine: []string{"French"}, Capacity: 10, PriceRange: "$$$"},
	})
}

func setupLedger(t *testing.T) (*Ledger, *store.DB) {
	t.Helper()
	db, err := store.Open(context.Background(), t.TempDir()+"/test.db")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db, testCatalog()), db
}

// checkBalanced asserts the ledger's core correctness property: occupancy
// equals the sum of non-cancelled booking party sizes for every slot.
func checkBalanced(t *testing.T, db *store.DB) {
	t.Helper()
	bad, err := db.SlotImbalances()
	if err != nil {
		t.Fatalf("verify occupancy: %v", err)
	}
	if len(bad) > 0 {
		t.Errorf("occupancy out of balance for slots: %v", bad)
	}
}

func TestBookFillsCapacityExactly(t *testing.T) {
	l, db := setupLedger(t)
	ctx := context.Background()

	res := l.Book(ctx, "R1", "2025-06-01", "19:00", 50, "Ada", "")
	if !res.OK {
		t.Fatalf("first booking should succeed, got reason %q", res.Reason)
	}
	if res.BookingID != "BK101" {
		t.Errorf("first booking id = %q, want BK101", res.BookingID)
	}

	res = l.Book(ctx, "R1", "2025-06-01", "19:00", 1, "Bob", "")
	if res.OK {
		t.Fatal("booking past capacity should fail")
	}
	if !strings.Contains(res.Reason, "0 seats available") {
		t.Errorf("reason should mention 0 seats available, got %q", res.Reason)
	}
	checkBalanced(t, db)
}

func TestBookRejections(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		restaurant string
		partySize  int
		wantReason string
	}{
		{"unknown restaurant", "R9", 2, "Invalid restaurant ID."},
		{"zero party", "R1", 0, "Party size must be at least 1."},
		{"negative party", "R1", -3, "Party size must be at least 1."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := l.Book(ctx, tt.restaurant, "2025-06-01", "19:00", tt.partySize, "Ada", "")
			if res.OK {
				t.Fatal("expected rejection")
			}
			if res.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", res.Reason, tt.wantReason)
			}
		})
	}
}

func TestAvailability(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	if a := l.Availability(ctx, "R9", "2025-06-01", "19:00", 2); a.Available || a.Reason != "Invalid restaurant ID." {
		t.Errorf("unknown restaurant should fail closed, got %+v", a)
	}
	if a := l.Availability(ctx, "R2", "2025-06-01", "19:00", 10); !a.Available {
		t.Errorf("exact-capacity party should be available, got %+v", a)
	}

	if res := l.Book(ctx, "R2", "2025-06-01", "19:00", 8, "Ada", ""); !res.OK {
		t.Fatalf("booking failed: %s", res.Reason)
	}
	a := l.Availability(ctx, "R2", "2025-06-01", "19:00", 3)
	if a.Available {
		t.Fatal("oversubscribing party should not be available")
	}
	if !strings.Contains(a.Reason, "Only 2 left") {
		t.Errorf("reason should name remaining seats, got %q", a.Reason)
	}
	if a := l.Availability(ctx, "R2", "2025-06-01", "20:00", 10); !a.Available {
		t.Errorf("other slot should be unaffected, got %+v", a)
	}
}

func TestCancelRestoresSeatsOnce(t *testing.T) {
	l, db := setupLedger(t)
	ctx := context.Background()

	booked := l.Book(ctx, "R2", "2025-06-01", "19:00", 6, "Ada", "")
	if !booked.OK {
		t.Fatalf("booking failed: %s", booked.Reason)
	}

	cancelled := l.Cancel(ctx, booked.BookingID)
	if !cancelled.OK {
		t.Fatalf("cancel failed: %s", cancelled.Reason)
	}
	if cancelled.Details.Status != store.StatusCancelled {
		t.Errorf("status = %q, want %q", cancelled.Details.Status, store.StatusCancelled)
	}
	if a := l.Availability(ctx, "R2", "2025-06-01", "19:00", 10); !a.Available {
		t.Errorf("cancel should restore full capacity, got %+v", a)
	}

	// Re-cancel must be rejected, not double-decrement.
	again := l.Cancel(ctx, booked.BookingID)
	if again.OK {
		t.Fatal("re-cancel should be rejected")
	}
	if !strings.Contains(again.Reason, "already cancelled") {
		t.Errorf("reason = %q, want mention of already cancelled", again.Reason)
	}
	checkBalanced(t, db)
}

func TestCancelUnknownBooking(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	for _, id := range []string{"BK999", "garbage", "", "BK100"} {
		if res := l.Cancel(ctx, id); res.OK || res.Reason != "Booking ID not found." {
			t.Errorf("Cancel(%q) = %+v, want not-found rejection", id, res)
		}
	}
}

func TestModifyMovesBookingAtomically(t *testing.T) {
	l, db := setupLedger(t)
	ctx := context.Background()

	booked := l.Book(ctx, "R2", "2025-06-01", "19:00", 4, "Ada", "")
	if !booked.OK {
		t.Fatalf("booking failed: %s", booked.Reason)
	}

	moved := l.Modify(ctx, booked.BookingID, "2025-06-02", "20:00", 6)
	if !moved.OK {
		t.Fatalf("modify failed: %s", moved.Reason)
	}
	if moved.Details.Date != "2025-06-02" || moved.Details.Time != "20:00" || moved.Details.PartySize != 6 {
		t.Errorf("details = %+v, want moved slot", moved.Details)
	}
	if moved.Details.Status != store.StatusModified {
		t.Errorf("status = %q, want %q", moved.Details.Status, store.StatusModified)
	}
	if a := l.Availability(ctx, "R2", "2025-06-01", "19:00", 10); !a.Available {
		t.Errorf("old slot should be fully released, got %+v", a)
	}
	if a := l.Availability(ctx, "R2", "2025-06-02", "20:00", 5); a.Available {
		t.Errorf("new slot should hold 6 seats, got %+v", a)
	}
	checkBalanced(t, db)
}

func TestModifyFailureLeavesEverythingUntouched(t *testing.T) {
	l, db := setupLedger(t)
	ctx := context.Background()

	// Old slot: 5 free seats after this booking. New slot: only 3 free.
	booked := l.Book(ctx, "R1", "2025-06-01", "19:00", 10, "Ada", "")
	if !booked.OK {
		t.Fatalf("booking failed: %s", booked.Reason)
	}
	if res := l.Book(ctx, "R1", "2025-06-01", "19:00", 35, "Crowd", ""); !res.OK {
		t.Fatalf("filler booking failed: %s", res.Reason)
	}
	if res := l.Book(ctx, "R1", "2025-06-02", "20:00", 47, "Crowd", ""); !res.OK {
		t.Fatalf("filler booking failed: %s", res.Reason)
	}

	res := l.Modify(ctx, booked.BookingID, "2025-06-02", "20:00", 12)
	if res.OK {
		t.Fatal("modify into a full slot should fail")
	}
	if !strings.Contains(res.Reason, "Not enough capacity") {
		t.Errorf("reason = %q, want capacity rejection", res.Reason)
	}

	// Original booking and both slots must be exactly as before the call.
	if a := l.Availability(ctx, "R1", "2025-06-01", "19:00", 5); !a.Available {
		t.Errorf("old slot occupancy changed, got %+v", a)
	}
	if a := l.Availability(ctx, "R1", "2025-06-01", "19:00", 6); a.Available {
		t.Error("old slot should still hold the original 45 seats")
	}
	if a := l.Availability(ctx, "R1", "2025-06-02", "20:00", 3); !a.Available {
		t.Errorf("target slot occupancy changed, got %+v", a)
	}
	unchanged := l.Cancel(ctx, booked.BookingID)
	if !unchanged.OK || unchanged.Details.Date != "2025-06-01" || unchanged.Details.PartySize != 10 {
		t.Errorf("original booking mutated: %+v", unchanged.Details)
	}
	checkBalanced(t, db)
}

func TestModifySameSlotPartySize(t *testing.T) {
	l, db := setupLedger(t)
	ctx := context.Background()

	booked := l.Book(ctx, "R2", "2025-06-01", "19:00", 8, "Ada", "")
	if !booked.OK {
		t.Fatalf("booking failed: %s", booked.Reason)
	}

	// Growing within the freed occupancy must work: 8 -> 10 in a 10-seat room.
	grown := l.Modify(ctx, booked.BookingID, "", "", 10)
	if !grown.OK {
		t.Fatalf("same-slot grow failed: %s", grown.Reason)
	}
	// Beyond capacity must fail and keep the 10-seat booking.
	if res := l.Modify(ctx, booked.BookingID, "", "", 11); res.OK {
		t.Fatal("grow past capacity should fail")
	}
	if a := l.Availability(ctx, "R2", "2025-06-01", "19:00", 1); a.Available {
		t.Error("slot should still be full after failed grow")
	}
	checkBalanced(t, db)
}

func TestModifyRejections(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	booked := l.Book(ctx, "R2", "2025-06-01", "19:00", 2, "Ada", "")
	if !booked.OK {
		t.Fatalf("booking failed: %s", booked.Reason)
	}
	if res := l.Modify(ctx, booked.BookingID, "", "", 0); res.OK {
		t.Error("modify with no changes should be rejected")
	}
	if res := l.Modify(ctx, "BK999", "2025-06-02", "", 0); res.OK || res.Reason != "Booking ID not found." {
		t.Errorf("unknown booking: got %+v", res)
	}

	l.Cancel(ctx, booked.BookingID)
	if res := l.Modify(ctx, booked.BookingID, "2025-06-02", "", 0); res.OK || !strings.Contains(res.Reason, "cancelled") {
		t.Errorf("modifying a cancelled booking: got %+v", res)
	}
}

// TestConcurrentBookingNeverOversells hammers one slot from many goroutines;
// the committed seats must never exceed capacity and the books must balance.
func TestConcurrentBookingNeverOversells(t *testing.T) {
	l, db := setupLedger(t)
	ctx := context.Background()

	const workers = 30
	var wg sync.WaitGroup
	results := make([]Result, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = l.Book(ctx, "R1", "2025-06-01", "19:00", 4, fmt.Sprintf("guest-%d", i), "")
		}(i)
	}
	wg.Wait()

	var booked int
	for _, r := range results {
		if r.OK {
			booked += 4
		}
	}
	// Capacity 50, parties of 4: at most 12 bookings fit.
	if booked > 50 {
		t.Fatalf("oversold: %d seats committed against capacity 50", booked)
	}
	if booked != 48 {
		t.Errorf("expected the slot to fill to 48 seats, got %d", booked)
	}
	if a := l.Availability(ctx, "R1", "2025-06-01", "19:00", 4); a.Available {
		t.Error("slot should not fit another party of 4")
	}
	checkBalanced(t, db)
}

func TestParseBookingID(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"BK101", 1, true},
		{"BK150", 50, true},
		{" BK101 ", 1, true},
		{"BK100", 0, false},
		{"BK", 0, false},
		{"101", 0, false},
		{"BKabc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseBookingID(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseBookingID(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
