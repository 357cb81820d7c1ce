package entity

import (
	"time"
)

// Purchase records a student buying a video. At most one purchase exists
// per (UserID, VideoID) pair; the commerce service checks before creating.
type Purchase struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"` // student
	VideoID       int       `json:"videoId"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}
