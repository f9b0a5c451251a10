package domain

// Rating is a single listener rating for an album. Ratings are
// immutable once submitted.
type Rating struct {
	ID      int64
	AlbumID int64
	Value   int
}

// RatingResult is the outcome of a rating submission: the resolved
// album and its freshly recomputed average
type RatingResult struct {
	AlbumID       int64
	AverageRating float64
}
