package domain

// Artist represents a registered artist in the catalog
type Artist struct {
	ID   int64
	Name string
}

// ArtistDetail is an artist together with all of its albums,
// ordered by album id (creation order)
type ArtistDetail struct {
	ID     int64
	Name   string
	Albums []AlbumSummary
}
