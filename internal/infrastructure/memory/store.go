package memory

// Store bundles the five entity repositories. It is constructed once in
// main and handed to the router wiring; tests build fresh instances for
// isolation. State lives for the process lifetime only.
type Store struct {
	Users      *UserRepository
	Categories *CategoryRepository
	Videos     *VideoRepository
	Purchases  *PurchaseRepository
	Ratings    *RatingRepository
}

func NewStore() *Store {
	return &Store{
		Users:      NewUserRepository(),
		Categories: NewCategoryRepository(),
		Videos:     NewVideoRepository(),
		Purchases:  NewPurchaseRepository(),
		Ratings:    NewRatingRepository(),
	}
}
