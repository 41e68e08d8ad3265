package domain

import "time"

type SwipeDirection string

const (
	DirectionLike SwipeDirection = "like"
	DirectionPass SwipeDirection = "pass"
)

func (d SwipeDirection) IsValid() bool {
	return d == DirectionLike || d == DirectionPass
}

// Swipe is a directed decision. At most one row exists per ordered
// (swiper, target) pair; a repeated decision overwrites the direction.
type Swipe struct {
	ID        int64          `json:"id" db:"id"`
	SwiperID  string         `json:"swiper_id" db:"swiper_id"`
	TargetID  string         `json:"target_id" db:"target_id"`
	Direction SwipeDirection `json:"direction" db:"direction"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}
