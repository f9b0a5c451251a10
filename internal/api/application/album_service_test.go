package application

import (
	"context"
	"errors"
	"testing"

	catalogdomain "muscat-v0/internal/catalog/domain"
)

func TestAlbumService_CreateAlbum(t *testing.T) {
	tests := []struct {
		name               string
		artists            []catalogdomain.Artist
		req                CreateAlbumRequest
		expectedArtistName string
		expectedErr        error
	}{
		{
			name:    "creates album under resolved artist",
			artists: []catalogdomain.Artist{{ID: 1, Name: "Radiohead"}},
			req: CreateAlbumRequest{
				ArtistName:  "Radiohead",
				Name:        "OK Computer",
				ReleaseDate: "1997-05-21",
				Price:       9.99,
			},
			expectedArtistName: "Radiohead",
		},
		{
			name:    "artist name resolves case-insensitively to stored casing",
			artists: []catalogdomain.Artist{{ID: 1, Name: "Radiohead"}},
			req: CreateAlbumRequest{
				ArtistName:  "RADIOHEAD",
				Name:        "Kid A",
				ReleaseDate: "2000-10-02",
				Price:       11.99,
			},
			expectedArtistName: "Radiohead",
		},
		{
			name:    "artist not found",
			artists: []catalogdomain.Artist{{ID: 1, Name: "Radiohead"}},
			req: CreateAlbumRequest{
				ArtistName:  "Nonexistent",
				Name:        "Album",
				ReleaseDate: "2020-01-01",
				Price:       5.0,
			},
			expectedErr: catalogdomain.ErrArtistNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCatalogRepository{artists: tt.artists}
			service := NewAlbumService(repo)

			album, err := service.CreateAlbum(context.Background(), tt.req)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if album.ArtistName != tt.expectedArtistName {
				t.Errorf("expected artist_name %q, got %q", tt.expectedArtistName, album.ArtistName)
			}
			if album.AverageRating != 0.0 {
				t.Errorf("expected average_rating 0.0 on creation, got %v", album.AverageRating)
			}
			if album.Name != tt.req.Name {
				t.Errorf("expected name %q, got %q", tt.req.Name, album.Name)
			}
			if album.ReleaseDate != tt.req.ReleaseDate {
				t.Errorf("expected release_date %q, got %q", tt.req.ReleaseDate, album.ReleaseDate)
			}
			if album.Price != tt.req.Price {
				t.Errorf("expected price %v, got %v", tt.req.Price, album.Price)
			}
		})
	}
}
