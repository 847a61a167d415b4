package tools

import (
	"encoding/json"

	"github.com/foodiespot/foodiebot/internal/core"
)

// Defs returns the declared contract for every tool, in registration order.
// The prompt fragment and the dispatcher both derive from these definitions,
// so the description the model sees can never drift from what Execute
// accepts.
func (e *Executor) Definitions() []core.ToolDefinition {
	defs := make([]core.ToolDefinition, 0, len(e.order))
	for _, name := range e.order {
		defs = append(defs, e.tools[name].Def)
	}
	return defs
}

// Descriptions renders the tool catalog as the JSON prompt fragment shown to
// the model.
func (e *Executor) Descriptions() string {
	b, err := json.MarshalIndent(e.Definitions(), "", "    ")
	if err != nil {
		return "[]"
	}
	return string(b)
}

func searchRestaurantsDef() core.ToolDefinition {
	return core.ToolDefinition{
		Name:        "search_restaurants",
		Description: "Searches for restaurants based on criteria like cuisine, location, price, or ambiance. Can also check availability for a specific date, time, and party size if provided.",
		Parameters: []core.Parameter{
			{Name: "cuisine", Type: "string", Description: "Type of food (e.g., 'Italian', 'Mexican', 'Seafood')"},
			{Name: "location_area", Type: "string", Description: "General area of the city (e.g., 'Downtown', 'Seaside', 'North End')"},
			{Name: "price_range", Type: "string", Description: "Price category (e.g., '$$', '$$$', '$$$$')"},
			{Name: "ambiance", Type: "string", Description: "Atmosphere keywords (e.g., 'Romantic', 'Casual', 'Lively')"},
			{Name: "party_size", Type: "integer", Description: "Number of people"},
			{Name: "date", Type: "string", Description: "Desired date (YYYY-MM-DD)"},
			{Name: "time", Type: "string", Description: "Desired time (HH:MM, 24-hour format)"},
		},
	}
}

func checkAvailabilityDef() core.ToolDefinition {
	return core.ToolDefinition{
		Name:        "check_availability",
		Description: "Checks whether a specific restaurant has room for a party at a given date and time.",
		Parameters: []core.Parameter{
			{Name: "restaurant_id", Type: "string", Description: "The unique ID of the restaurant (e.g., 'FS01', 'FS03').", Required: true},
			{Name: "date", Type: "string", Description: "Desired date (YYYY-MM-DD)", Required: true},
			{Name: "time", Type: "string", Description: "Desired time (HH:MM, 24-hour format)", Required: true},
			{Name: "party_size", Type: "integer", Description: "Number of people", Required: true},
		},
	}
}

func makeReservationDef() core.ToolDefinition {
	return core.ToolDefinition{
		Name:        "make_reservation",
		Description: "Books a table at a specific restaurant for a given date, time, and party size.",
		Parameters: []core.Parameter{
			{Name: "restaurant_id", Type: "string", Description: "The unique ID of the restaurant (e.g., 'FS01', 'FS03').", Required: true},
			{Name: "date", Type: "string", Description: "Date of booking (YYYY-MM-DD)", Required: true},
			{Name: "time", Type: "string", Description: "Time of booking (HH:MM, 24-hour format)", Required: true},
			{Name: "party_size", Type: "integer", Description: "Number of people for the booking", Required: true},
			{Name: "customer_name", Type: "string", Description: "Name for the reservation", Required: true},
			{Name: "customer_contact", Type: "string", Description: "(Optional) Phone number or email"},
		},
	}
}

func cancelReservationDef() core.ToolDefinition {
	return core.ToolDefinition{
		Name:        "cancel_reservation",
		Description: "Cancels an existing reservation by booking ID and releases its seats.",
		Parameters: []core.Parameter{
			{Name: "booking_id", Type: "string", Description: "The booking ID (e.g., 'BK101').", Required: true},
		},
	}
}

func modifyReservationDef() core.ToolDefinition {
	return core.ToolDefinition{
		Name:        "modify_reservation",
		Description: "Changes the date, time, or party size of an existing reservation. Fields left out keep their current value.",
		Parameters: []core.Parameter{
			{Name: "booking_id", Type: "string", Description: "The booking ID (e.g., 'BK101').", Required: true},
			{Name: "new_date", Type: "string", Description: "New date (YYYY-MM-DD)"},
			{Name: "new_time", Type: "string", Description: "New time (HH:MM, 24-hour format)"},
			{Name: "new_party_size", Type: "integer", Description: "New number of people"},
		},
	}
}
