package models

import (
	"fmt"
	"net/url"
	"strings"
)

// Image is a cover or avatar. Src may be absolute or a /static/... path.
type Image struct {
	Src           string `json:"src"`
	W             int    `json:"w,omitempty"`
	H             int    `json:"h,omitempty"`
	Palette       string `json:"palette,omitempty"`
	PaletteBottom string `json:"palette_bottom,omitempty"`
}

// URL returns the image URL for the requested size. Relative paths are
// resolved against zvuk.com and an existing size query parameter is
// rewritten; otherwise Src is returned untouched.
func (i Image) URL(width, height int) string {
	src := i.Src
	if strings.HasPrefix(src, "/") {
		src = "https://zvuk.com" + src
	}

	parsed, err := url.Parse(src)
	if err != nil {
		return src
	}
	query := parsed.Query()
	if query.Has("size") {
		query.Set("size", fmt.Sprintf("%dx%d", width, height))
		parsed.RawQuery = query.Encode()
		return parsed.String()
	}
	return src
}

// Label is a record label.
type Label struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Genre is a music genre.
type Genre struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`
}

// Background styles an artist page.
type Background struct {
	Type     string `json:"type,omitempty"`
	Image    string `json:"image,omitempty"`
	Color    string `json:"color,omitempty"`
	Gradient string `json:"gradient,omitempty"`
}

// Animation is the animated artist-page decoration.
type Animation struct {
	ArtistID   string      `json:"artist_id"`
	Effect     string      `json:"effect,omitempty"`
	Image      string      `json:"image,omitempty"`
	Background *Background `json:"background,omitempty"`
}

// CollectionItemData is the like metadata the API attaches to entities the
// current user has in their collection. Absent when the entity was not
// requested with collection context.
type CollectionItemData struct {
	ID                     string `json:"id,omitempty"`
	UserID                 string `json:"user_id,omitempty"`
	ItemStatus             string `json:"item_status,omitempty"`
	LastModified           string `json:"last_modified,omitempty"`
	CollectionLastModified string `json:"collection_last_modified,omitempty"`
	LikesCount             int    `json:"likes_count,omitempty"`
}

// IsLiked reports whether the item status marks the entity as liked.
func (c *CollectionItemData) IsLiked() bool {
	return c != nil && c.ItemStatus == ItemStatusLiked
}

// DurationString formats a duration in seconds as M:SS.
func DurationString(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
