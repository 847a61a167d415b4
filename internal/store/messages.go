package store

import (
	"context"
	"time"
)

// StoredMessage is one transcript turn.
type StoredMessage struct {
	ID        int64     `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	SenderID  string    `json:"sender_id"`
	Channel   string    `json:"channel"`
	ThreadID  string    `json:"thread_id"`
	CreatedAt time.Time `json:"created_at"`
}

// InsertMessage appends a transcript turn and returns its id.
func (db *DB) InsertMessage(ctx context.Context, role, content, senderID, channel, threadID string) (int64, error) {
	res, err := db.ExecContext(ctx,
		`INSERT INTO messages (role, content, sender_id, channel, thread_id) VALUES (?, ?, ?, ?, ?)`,
		role, content, senderID, channel, threadID,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RecentMessages returns the last limit messages for a thread in
// chronological order.
func (db *DB) RecentMessages(ctx context.Context, limit int, threadID string) ([]StoredMessage, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, role, content, sender_id, channel, thread_id, created_at FROM (
			SELECT id, role, content, sender_id, channel, thread_id, created_at
			FROM messages WHERE thread_id = ? ORDER BY id DESC LIMIT ?
		 ) ORDER BY id ASC`,
		threadID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []StoredMessage
	for rows.Next() {
		var m StoredMessage
		if err := rows.Scan(&m.ID, &m.Role, &m.Content, &m.SenderID, &m.Channel, &m.ThreadID, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
