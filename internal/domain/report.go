package domain

import "time"

type Report struct {
	ID         int64     `json:"id" db:"id"`
	ReporterID string    `json:"reporter_id" db:"reporter_id"`
	TargetID   string    `json:"target_id" db:"target_id"`
	Reason     string    `json:"reason" db:"reason"`
	Details    *string   `json:"details" db:"details"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
