// Package tools is the dispatcher for model-resolved actions: a fixed
// registry of named tools, each with a declared parameter contract, argument
// validation, execution against the catalog and ledger, and per-tool
// formatting of results into user-facing text.
package tools

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/foodiespot/foodiebot/internal/catalog"
	"github.com/foodiespot/foodiebot/internal/core"
	"github.com/foodiespot/foodiebot/internal/ledger"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Tool pairs a declared contract with its handler. Handlers return the
// final user-facing message; domain failures are part of that text.
type Tool struct {
	Def core.ToolDefinition
	Run func(ctx context.Context, args Args) string
}

// Executor dispatches resolved tool calls. It reads the catalog and
// writes bookings only through the ledger.
type Executor struct {
	Catalog *catalog.Catalog
	Ledger  *ledger.Ledger

	tools map[string]Tool
	order []string
}

// NewExecutor builds the fixed tool registry.
func NewExecutor(cat *catalog.Catalog, led *ledger.Ledger) *Executor {
	e := &Executor{Catalog: cat, Ledger: led, tools: make(map[string]Tool)}
	e.register(Tool{Def: searchRestaurantsDef(), Run: e.searchRestaurants})
	e.register(Tool{Def: checkAvailabilityDef(), Run: e.checkAvailability})
	e.register(Tool{Def: makeReservationDef(), Run: e.makeReservation})
	e.register(Tool{Def: cancelReservationDef(), Run: e.cancelReservation})
	e.register(Tool{Def: modifyReservationDef(), Run: e.modifyReservation})
	return e
}

func (e *Executor) register(t Tool) {
	e.tools[t.Def.Name] = t
	e.order = append(e.order, t.Def.Name)
}

// Execute runs a named tool against an argument map and returns the
// user-facing message. Unknown tools, argument violations, and handler
// panics all degrade to conversational text; the turn always continues.
func (e *Executor) Execute(ctx context.Context, name string, args map[string]any) (reply string) {
	tool, ok := e.tools[name]
	if !ok {
		log.Printf("[TOOLS] model requested unknown tool %q", name)
		return "Sorry, I tried to use a tool I don't recognize. Please rephrase your request."
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[TOOLS] %s panicked: %v", name, r)
			reply = fmt.Sprintf("Sorry, there was an error trying to %s. Please try again.", strings.ReplaceAll(name, "_", " "))
		}
	}()

	if args == nil {
		args = Args{}
	}
	if argErr := validate(tool.Def, args); argErr != nil {
		log.Printf("[TOOLS] %v", argErr)
		return argErr.UserMessage()
	}
	return tool.Run(ctx, args)
}

func (e *Executor) searchRestaurants(ctx context.Context, args Args) string {
	filter := catalog.Filter{
		Cuisine:      args.String("cuisine"),
		LocationArea: args.String("location_area"),
		PriceRange:   args.String("price_range"),
		Ambiance:     args.String("ambiance"),
		PartySize:    args.Int("party_size"),
		Date:         args.String("date"),
		Time:         args.String("time"),
	}
	results := e.Catalog.Search(filter, func(id, date, timeOfDay string, partySize int) bool {
		return e.Ledger.Availability(ctx, id, date, timeOfDay, partySize).Available
	})
	if len(results) == 0 {
		return "I couldn't find any restaurants matching your criteria."
	}

	lines := []string{"I found these options:"}
	for _, r := range results {
		note := ""
		if r.AvailabilityChecked {
			if r.Available {
				note = " (Available at requested time)"
			} else {
				note = " (Not Available at requested time)"
			}
		}
		lines = append(lines, fmt.Sprintf("- %s (%s, %s) - ID: %s%s",
			r.Name, r.LocationArea, strings.Join(r.Cuisine, ", "), r.ID, note))
	}
	return strings.Join(lines, "\n") +
		"\n\nDo any of these look good? Please provide the ID (e.g., FS01) to check specific times or make a booking."
}

func (e *Executor) checkAvailability(ctx context.Context, args Args) string {
	restaurantID := args.String("restaurant_id")
	date := args.String("date")
	timeOfDay := args.String("time")
	partySize := args.Int("party_size")

	avail := e.Ledger.Availability(ctx, restaurantID, date, timeOfDay, partySize)
	if !avail.Available {
		return fmt.Sprintf("That slot doesn't work. %s", avail.Reason)
	}
	name := restaurantID
	if r, ok := e.Catalog.ByID(restaurantID); ok {
		name = r.Name
	}
	return fmt.Sprintf("Good news: %s has room for %d on %s at %s. Would you like me to book it?",
		name, partySize, date, timeOfDay)
}

func (e *Executor) makeReservation(ctx context.Context, args Args) string {
	restaurantID := args.String("restaurant_id")
	date := args.String("date")
	timeOfDay := args.String("time")
	partySize := args.Int("party_size")
	customerName := args.String("customer_name")
	customerContact := args.String("customer_contact")

	// The ledger is never touched with malformed input.
	if restaurantID == "" || date == "" || timeOfDay == "" || partySize == 0 || customerName == "" {
		return "Sorry, I couldn't complete the booking. Reason: Missing required information (restaurant, date, time, party size, name)."
	}
	if !validDate(date) || !validTime(timeOfDay) {
		return "Sorry, I couldn't complete the booking. Reason: Invalid date or time format (use YYYY-MM-DD and HH:MM)."
	}

	res := e.Ledger.Book(ctx, restaurantID, date, timeOfDay, partySize, customerName, customerContact)
	if !res.OK {
		return fmt.Sprintf("Sorry, I couldn't complete the booking. Reason: %s", res.Reason)
	}
	d := res.Details
	return fmt.Sprintf("Booking confirmed! Your reservation at %s for %d people on %s at %s is set. Your Booking ID is %s.",
		d.RestaurantName, d.PartySize, d.Date, d.Time, res.BookingID)
}

func (e *Executor) cancelReservation(ctx context.Context, args Args) string {
	res := e.Ledger.Cancel(ctx, args.String("booking_id"))
	if !res.OK {
		return fmt.Sprintf("Sorry, I couldn't cancel that booking. Reason: %s", res.Reason)
	}
	d := res.Details
	return fmt.Sprintf("Your booking %s at %s on %s at %s has been cancelled. The seats are released.",
		res.BookingID, d.RestaurantName, d.Date, d.Time)
}

func (e *Executor) modifyReservation(ctx context.Context, args Args) string {
	bookingID := args.String("booking_id")
	newDate := args.String("new_date")
	newTime := args.String("new_time")
	newPartySize := args.Int("new_party_size")

	if newDate != "" && !validDate(newDate) {
		return "Sorry, I couldn't modify that booking. Reason: Invalid date format (use YYYY-MM-DD)."
	}
	if newTime != "" && !validTime(newTime) {
		return "Sorry, I couldn't modify that booking. Reason: Invalid time format (use HH:MM, 24-hour)."
	}

	res := e.Ledger.Modify(ctx, bookingID, newDate, newTime, newPartySize)
	if !res.OK {
		return fmt.Sprintf("Sorry, I couldn't modify that booking. Reason: %s", res.Reason)
	}
	d := res.Details
	return fmt.Sprintf("Done! Booking %s is now for %d people on %s at %s at %s.",
		res.BookingID, d.PartySize, d.Date, d.Time, d.RestaurantName)
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func validTime(s string) bool {
	_, err := time.Parse(timeLayout, s)
	return err == nil
}
