package idea

import (
	"reflect"
	"testing"
	"time"
)

func TestListRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
	}{
		{name: "empty", values: []string{}},
		{name: "nil", values: nil},
		{name: "single", values: []string{"casual"}},
		{name: "multiple keeps order", values: []string{"lake views", "amenities", "local events"}},
		{name: "elements containing commas", values: []string{"behind the scenes, staff", "testimonials"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := encodeList(tt.values)
			twice := encodeList(decodeList(once))
			if once != twice {
				t.Fatalf("round trip changed encoding: %q -> %q", once, twice)
			}
		})
	}
}

func TestDecodeListLegacyCommaText(t *testing.T) {
	t.Parallel()

	got := decodeList("Inspirational, Educational , Casual")
	want := []string{"Inspirational", "Educational", "Casual"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if got := decodeList(""); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestNextDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no prior ideas bases on today", func(t *testing.T) {
		got := nextDate(nil, now, 3)
		want := time.Date(2025, time.June, 4, 12, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("offset applies to the latest existing date", func(t *testing.T) {
		latest := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
		got := nextDate(&latest, now, 3)
		if want := latest.AddDate(0, 0, 3); !got.Equal(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		if !got.After(latest) {
			t.Fatal("next date must be strictly after the latest date")
		}
	})

	t.Run("configured interval is honored", func(t *testing.T) {
		latest := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
		for _, days := range []int{1, 3, 7} {
			got := nextDate(&latest, now, days)
			if want := latest.AddDate(0, 0, days); !got.Equal(want) {
				t.Fatalf("interval %d: got %v, want %v", days, got, want)
			}
		}
	})
}
