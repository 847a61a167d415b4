package store

const schema = `
CREATE TABLE IF NOT EXISTS bookings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	restaurant_id TEXT NOT NULL,
	restaurant_name TEXT NOT NULL,
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	party_size INTEGER NOT NULL,
	customer_name TEXT NOT NULL,
	customer_contact TEXT NOT NULL DEFAULT 'Not Provided',
	status TEXT NOT NULL DEFAULT 'Confirmed', -- Confirmed, Cancelled, Modified
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Committed seats per (restaurant, date, time) slot. Mutated only inside
-- ledger transactions, in lockstep with bookings.
CREATE TABLE IF NOT EXISTS slot_occupancy (
	restaurant_id TEXT NOT NULL,
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	seats INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (restaurant_id, date, time)
);

CREATE TABLE IF NOT EXISTS messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	role TEXT NOT NULL,
	content TEXT NOT NULL,
	sender_id TEXT NOT NULL,
	channel TEXT NOT NULL,
	thread_id TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_messages_thread ON messages(thread_id, id);
`
