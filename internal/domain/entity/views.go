package entity

// Derived read models. These are recomputed on every read and never
// stored; they carry no identity of their own.

// ProfessionalSummary is the projection of a video owner embedded in
// VideoWithDetails. Password and email are deliberately excluded.
type ProfessionalSummary struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Experience   *int    `json:"experience"`
	ProfileImage *string `json:"profileImage"`
}

// VideoWithDetails joins a video with its category, a summary of the
// owning professional, and rating statistics.
type VideoWithDetails struct {
	Video
	Category      Category            `json:"category"`
	Professional  ProfessionalSummary `json:"professional"`
	AverageRating float64             `json:"averageRating"`
	RatingCount   int                 `json:"ratingCount"`
}

// ProfessionalWithVideos joins a professional with their catalog and a
// second-order average rating across videos that have ratings.
type ProfessionalWithVideos struct {
	User
	Videos        []VideoWithDetails `json:"videos"`
	AverageRating float64            `json:"averageRating"`
}

// PurchaseWithVideo backs the student dashboard.
type PurchaseWithVideo struct {
	Purchase
	Video VideoWithDetails `json:"video"`
}
