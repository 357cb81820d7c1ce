package entity

import (
	"time"
)

// Rating is a 1-5 star review left by a student who purchased the video.
// A second submission for the same (UserID, VideoID) updates in place.
type Rating struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"` // student
	VideoID   int       `json:"videoId"`
	Rating    int       `json:"rating"` // 1-5 stars
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
