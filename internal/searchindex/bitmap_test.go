package searchindex

import (
	"encoding/base64"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
)

func TestDecodeBitmap_RoundTrip(t *testing.T) {
	t.Parallel()

	src := roaring.BitmapOf(1, 3, 200)
	raw, err := src.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	got := DecodeBitmap(base64.StdEncoding.EncodeToString(raw))
	if !got.Equals(src) {
		t.Errorf("got %v, want %v", got.ToArray(), src.ToArray())
	}
	if !got.Contains(3) || got.Contains(2) {
		t.Error("membership does not match source bitmap")
	}
}

func TestDecodeBitmap_Lenient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stream string
	}{
		{"empty", ""},
		{"not_base64", "!!not base64!!"},
		{"not_a_bitmap", base64.StdEncoding.EncodeToString([]byte("garbage"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm := DecodeBitmap(tt.stream)
			if bm == nil {
				t.Fatal("expected a bitmap, got nil")
			}
			if !bm.IsEmpty() {
				t.Errorf("expected empty bitmap, got %v", bm.ToArray())
			}
		})
	}
}
