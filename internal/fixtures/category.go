package fixtures

import (
	"fmt"

	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/shared"
)

// Category identifies a fixture category directory.
type Category string

const (
	CategoryTracks    Category = "tracks"
	CategoryPlaylists Category = "playlists"
	CategoryAlbums    Category = "albums"
	CategoryArtists   Category = "artists"
	CategorySearch    Category = "search"
	CategoryHistory   Category = "history"
	CategoryStream    Category = "stream"
)

// Categories returns all valid categories in collection order.
func Categories() []Category {
	return []Category{
		CategoryTracks,
		CategoryPlaylists,
		CategoryAlbums,
		CategoryArtists,
		CategorySearch,
		CategoryHistory,
		CategoryStream,
	}
}

// ParseCategory validates a category string.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", shared.ErrInvalidCategory, s)
}

// Status classifies a fixture outcome relative to the previously saved file.
type Status string

const (
	StatusNew       Status = "new"
	StatusChanged   Status = "changed"
	StatusUnchanged Status = "unchanged"
	StatusFailed    Status = "failed"
)
