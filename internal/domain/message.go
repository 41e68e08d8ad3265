package domain

import "time"

type Message struct {
	ID          int64     `json:"id" db:"id"`
	MatchID     int64     `json:"match_id" db:"match_id"`
	SenderID    string    `json:"sender_id" db:"sender_id"`
	Body        string    `json:"body" db:"body"`
	Attachments []string  `json:"attachments" db:"attachments"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
