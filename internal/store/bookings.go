package store

import (
	"database/sql"
	"time"
)

// Booking statuses. Records are never deleted; cancel and modify update the
// status in place so the full audit trail is retained.
const (
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
	StatusModified  = "Modified"
)

// Booking is one reservation audit record.
type Booking struct {
	ID              int64     `json:"-"`
	RestaurantID    string    `json:"restaurant_id"`
	RestaurantName  string    `json:"restaurant_name"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	PartySize       int       `json:"party_size"`
	CustomerName    string    `json:"customer_name"`
	CustomerContact string    `json:"customer_contact"`
	Status          string    `json:"status"`
	UpdatedAt       time.Time `json:"timestamp"`
}

// SlotSeats returns the committed seats for a slot within tx (0 if the slot
// has never been booked).
func SlotSeats(tx *sql.Tx, restaurantID, date, timeOfDay string) (int, error) {
	var seats int
	err := tx.QueryRow(
		`SELECT seats FROM slot_occupancy WHERE restaurant_id = ? AND date = ? AND time = ?`,
		restaurantID, date, timeOfDay,
	).Scan(&seats)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return seats, err
}

// SetSlotSeats writes the committed seats for a slot within tx.
func SetSlotSeats(tx *sql.Tx, restaurantID, date, timeOfDay string, seats int) error {
	_, err := tx.Exec(
		`INSERT INTO slot_occupancy (restaurant_id, date, time, seats) VALUES (?, ?, ?, ?)
		 ON CONFLICT(restaurant_id, date, time) DO UPDATE SET seats = excluded.seats`,
		restaurantID, date, timeOfDay, seats,
	)
	return err
}

// InsertBooking inserts a Confirmed booking within tx and returns its row id.
func InsertBooking(tx *sql.Tx, b Booking) (int64, error) {
	res, err := tx.Exec(
		`INSERT INTO bookings (restaurant_id, restaurant_name, date, time, party_size, customer_name, customer_contact, status, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.RestaurantID, b.RestaurantName, b.Date, b.Time, b.PartySize,
		b.CustomerName, b.CustomerContact, StatusConfirmed, b.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetBooking loads a booking by row id within tx.
func GetBooking(tx *sql.Tx, id int64) (Booking, error) {
	var b Booking
	err := tx.QueryRow(
		`SELECT id, restaurant_id, restaurant_name, date, time, party_size, customer_name, customer_contact, status, updated_at
		 FROM bookings WHERE id = ?`, id,
	).Scan(&b.ID, &b.RestaurantID, &b.RestaurantName, &b.Date, &b.Time, &b.PartySize,
		&b.CustomerName, &b.CustomerContact, &b.Status, &b.UpdatedAt)
	return b, err
}

// UpdateBooking writes back a booking's mutable fields within tx.
func UpdateBooking(tx *sql.Tx, b Booking) error {
	_, err := tx.Exec(
		`UPDATE bookings SET date = ?, time = ?, party_size = ?, status = ?, updated_at = ? WHERE id = ?`,
		b.Date, b.Time, b.PartySize, b.Status, b.UpdatedAt, b.ID,
	)
	return err
}

// SlotImbalances returns slots where the recorded occupancy disagrees with
// the sum of non-cancelled booking party sizes. Used to verify the ledger's
// core correctness property; an empty result means the books balance.
func (db *DB) SlotImbalances() ([]string, error) {
	rows, err := db.Query(`
		SELECT o.restaurant_id || '/' || o.date || '/' || o.time
		FROM slot_occupancy o
		WHERE o.seats != COALESCE((
			SELECT SUM(b.party_size) FROM bookings b
			WHERE b.restaurant_id = o.restaurant_id AND b.date = o.date AND b.time = o.time
			  AND b.status != 'Cancelled'
		), 0)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
