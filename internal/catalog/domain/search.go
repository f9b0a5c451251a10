package domain

// SearchResult is the closed set of outcomes a name search can produce.
// Callers discriminate with a type switch; no other types implement it.
type SearchResult interface {
	searchResult()
}

// ArtistSearchResult means the query matched an artist name. An artist
// match wins over any album with the same name.
type ArtistSearchResult struct {
	Artist ArtistDetail
}

// AlbumSearchResult means the query matched one or more album names.
// Every match is included; a multi-match is not an error for search.
type AlbumSearchResult struct {
	Albums []AlbumWithArtist
}

// EmptySearchResult means the query matched neither an artist nor an album.
type EmptySearchResult struct{}

func (ArtistSearchResult) searchResult() {}
func (AlbumSearchResult) searchResult()  {}
func (EmptySearchResult) searchResult()  {}
