package searchindex

import (
	"encoding/base64"

	"github.com/RoaringBitmap/roaring/v2"
)

// DecodeBitmap interprets one of the auxiliary bitmap columns (deprecation
// and empty-description) as a base64-serialized roaring bitmap keyed by bit
// index. The decode engine carries these columns through untouched; display
// layers call this when they want the semantics. Input that does not decode
// yields an empty bitmap rather than aborting a scan.
func DecodeBitmap(stream string) *roaring.Bitmap {
	bm := roaring.New()
	if stream == "" {
		return bm
	}
	raw, err := base64.StdEncoding.DecodeString(stream)
	if err != nil {
		return roaring.New()
	}
	if err := bm.UnmarshalBinary(raw); err != nil {
		return roaring.New()
	}
	return bm
}
