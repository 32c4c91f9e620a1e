package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/zvuklib/zvuk-go/pkg/errors"
)

func TestStreamURL(t *testing.T) {
	full := &Stream{Mid: "https://cdn/m", High: "https://cdn/h", FLACDRM: "https://cdn/f"}
	free := &Stream{Mid: "https://cdn/m"}

	t.Run("AllTiersPresent", func(t *testing.T) {
		cases := []struct {
			quality Quality
			want    string
		}{
			{QualityMid, "https://cdn/m"},
			{QualityHigh, "https://cdn/h"},
			{QualityFlac, "https://cdn/f"},
		}
		for _, tc := range cases {
			got, err := full.URL(tc.quality)
			if err != nil {
				t.Errorf("URL(%s) failed: %v", tc.quality, err)
			}
			if got != tc.want {
				t.Errorf("URL(%s): expected %s, got %s", tc.quality, tc.want, got)
			}
		}
	})

	t.Run("PaidTierMissing", func(t *testing.T) {
		if _, err := free.URL(QualityHigh); !errors.Is(err, errors.ErrSubscriptionRequired) {
			t.Errorf("Expected ErrSubscriptionRequired for high, got %v", err)
		}
		if _, err := free.URL(QualityFlac); !errors.Is(err, errors.ErrSubscriptionRequired) {
			t.Errorf("Expected ErrSubscriptionRequired for flacdrm, got %v", err)
		}
	})

	t.Run("MidMissing", func(t *testing.T) {
		empty := &Stream{}
		if _, err := empty.URL(QualityMid); !errors.Is(err, errors.ErrQualityNotAvailable) {
			t.Errorf("Expected ErrQualityNotAvailable, got %v", err)
		}
	})

	t.Run("UnknownQuality", func(t *testing.T) {
		if _, err := full.URL("ultra"); !errors.Is(err, errors.ErrQualityNotAvailable) {
			t.Errorf("Expected ErrQualityNotAvailable, got %v", err)
		}
	})
}

func TestStreamBestAvailable(t *testing.T) {
	cases := []struct {
		name    string
		stream  Stream
		quality Quality
	}{
		{"PrefersFlac", Stream{Mid: "m", High: "h", FLACDRM: "f"}, QualityFlac},
		{"FallsBackToHigh", Stream{Mid: "m", High: "h"}, QualityHigh},
		{"FallsBackToMid", Stream{Mid: "m"}, QualityMid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, _, err := tc.stream.BestAvailable()
			if err != nil {
				t.Fatalf("BestAvailable failed: %v", err)
			}
			if q != tc.quality {
				t.Errorf("Expected %s, got %s", tc.quality, q)
			}
		})
	}

	t.Run("NothingAvailable", func(t *testing.T) {
		var s Stream
		if _, _, err := s.BestAvailable(); !errors.Is(err, errors.ErrQualityNotAvailable) {
			t.Errorf("Expected ErrQualityNotAvailable, got %v", err)
		}
	})
}

func TestStreamIsExpired(t *testing.T) {
	now := time.Unix(1700000000, 0)

	cases := []struct {
		name   string
		stream Stream
		want   bool
	}{
		{"FutureExpire", Stream{Expire: 1700000100}, false},
		{"PastExpire", Stream{Expire: 1699999900}, true},
		{"MillisecondExpire", Stream{Expire: 1700000100000}, false},
		{"ExpireFromQueryParam", Stream{Mid: "https://cdn/m?expire=1700000100"}, false},
		{"NoExpiryInformation", Stream{Mid: "https://cdn/m"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.stream.IsExpired(now); got != tc.want {
				t.Errorf("IsExpired: expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestImageURL(t *testing.T) {
	t.Run("ResolvesRelativePath", func(t *testing.T) {
		img := Image{Src: "/static/cover.jpg"}
		if got := img.URL(100, 100); got != "https://zvuk.com/static/cover.jpg" {
			t.Errorf("Unexpected URL: %s", got)
		}
	})

	t.Run("RewritesSizeParameter", func(t *testing.T) {
		img := Image{Src: "https://cdn.zvuk.com/cover.jpg?size=10x10"}
		if got := img.URL(300, 200); got != "https://cdn.zvuk.com/cover.jpg?size=300x200" {
			t.Errorf("Unexpected URL: %s", got)
		}
	})

	t.Run("LeavesPlainURLAlone", func(t *testing.T) {
		img := Image{Src: "https://cdn.zvuk.com/cover.jpg"}
		if got := img.URL(300, 200); got != img.Src {
			t.Errorf("Unexpected URL: %s", got)
		}
	})
}

func TestDurationString(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{61, "1:01"},
		{754, "12:34"},
	}
	for _, tc := range cases {
		if got := DurationString(tc.seconds); got != tc.want {
			t.Errorf("DurationString(%d): expected %s, got %s", tc.seconds, tc.want, got)
		}
	}
}

func TestItemDispatch(t *testing.T) {
	t.Run("Typename", func(t *testing.T) {
		var item Item
		if err := json.Unmarshal([]byte(`{"__typename":"Track","id":"1","title":"One"}`), &item); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if item.Type != ItemTrack || item.Track == nil {
			t.Fatalf("Expected track variant, got %+v", item)
		}
		if item.Track.Title != "One" {
			t.Errorf("Expected title 'One', got '%s'", item.Track.Title)
		}
	})

	t.Run("TypeTag", func(t *testing.T) {
		var item Item
		if err := json.Unmarshal([]byte(`{"type":"playlist","id":"9","title":"Mix"}`), &item); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if item.Type != ItemPlaylist || item.Playlist == nil {
			t.Fatalf("Expected playlist variant, got %+v", item)
		}
	})

	t.Run("UnknownDiscriminator", func(t *testing.T) {
		raw := `{"__typename":"Hologram","id":"3"}`
		var item Item
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			t.Fatalf("Expected unknown variant, got error: %v", err)
		}
		if item.Type != ItemUnknown {
			t.Errorf("Expected ItemUnknown, got %s", item.Type)
		}
		if string(item.Raw) != raw {
			t.Errorf("Expected raw payload to be preserved, got %s", item.Raw)
		}
	})

	// Mixed lists keep server order and one unknown entry never aborts
	// its siblings.
	t.Run("MixedListInOrder", func(t *testing.T) {
		payload := `[
			{"__typename":"Track","id":"t1","title":"Song"},
			{"__typename":"Hologram","id":"x"},
			{"__typename":"Playlist","id":"p1","title":"Mix"}
		]`
		var items []Item
		if err := json.Unmarshal([]byte(payload), &items); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("Expected 3 items, got %d", len(items))
		}
		if items[0].Type != ItemTrack || items[1].Type != ItemUnknown || items[2].Type != ItemPlaylist {
			t.Errorf("Unexpected variants in order: %s, %s, %s", items[0].Type, items[1].Type, items[2].Type)
		}
	})
}

func TestCollectionItemDataIsLiked(t *testing.T) {
	var nilData *CollectionItemData
	if nilData.IsLiked() {
		t.Error("Expected nil metadata to read as not liked")
	}
	liked := &CollectionItemData{ItemStatus: ItemStatusLiked}
	if !liked.IsLiked() {
		t.Error("Expected liked status to read as liked")
	}
}
