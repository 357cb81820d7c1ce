package entity

// Category is a profession area videos are filed under. The fixed set is
// seeded at startup; categories are not created through user flows.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"` // unique machine key, e.g. "technology"
	DisplayName string `json:"displayName"`
	Color       string `json:"color"` // display hint for the frontend
}
