package entity

import (
	"time"
)

// Video is paid content published by a professional. UserID and
// CategoryID are plain references; the store does not enforce them.
type Video struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	Price        float64   `json:"price"`
	Duration     int       `json:"duration"` // seconds
	UserID       int       `json:"userId"`   // owning professional
	CategoryID   int       `json:"categoryId"`
	CreatedAt    time.Time `json:"createdAt"`
}
