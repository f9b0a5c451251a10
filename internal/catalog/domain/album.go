package domain

// AlbumSummary is the album shape carried inside an ArtistDetail
type AlbumSummary struct {
	ID            int64
	Name          string
	ReleaseDate   string
	Price         float64
	AverageRating float64
}

// AlbumWithArtist is the fully denormalized album record, carrying the
// owning artist's id and stored name alongside the album fields
type AlbumWithArtist struct {
	ID            int64
	ArtistID      int64
	ArtistName    string
	Name          string
	ReleaseDate   string
	Price         float64
	AverageRating float64
}
