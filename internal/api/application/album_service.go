package application

import (
	"context"

	catalogdomain "muscat-v0/internal/catalog/domain"
)

// AlbumService handles album registration
type AlbumService struct {
	repo catalogdomain.Repository
}

// NewAlbumService creates a new album service
func NewAlbumService(repo catalogdomain.Repository) *AlbumService {
	return &AlbumService{
		repo: repo,
	}
}

// CreateAlbum registers an album under the artist resolved from the request's
// artist_name. Returns catalogdomain.ErrArtistNotFound when no artist matches.
func (s *AlbumService) CreateAlbum(ctx context.Context, req CreateAlbumRequest) (*AlbumResponse, error) {
	album, err := s.repo.CreateAlbum(ctx, req.ArtistName, req.Name, req.ReleaseDate, req.Price)
	if err != nil {
		return nil, err
	}

	response := ToAlbumResponse(*album)
	return &response, nil
}
