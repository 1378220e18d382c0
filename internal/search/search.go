package search

import (
	"log/slog"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/rdoc-cli/rdoc/internal/searchindex"
)

// Result is one search hit, in decode order.
type Result struct {
	Item searchindex.SearchItem `json:"item"`
	// MatchedAlias is set when the hit came from the crate's alias table
	// rather than the item's own name.
	MatchedAlias string `json:"matched_alias,omitempty"`
	Deprecated   bool   `json:"deprecated,omitempty"`
}

// Searcher holds one decoded index for the duration of a query session.
type Searcher struct {
	items []searchindex.SearchItem

	// aliases maps a normalized alias to offsets into items.
	aliases map[string][]int

	// deprecated is the per-crate deprecation bitmap, keyed by bit index.
	deprecated map[string]*roaring.Bitmap
}

// New decodes the raw text of a search-index.js file into a Searcher.
func New(fileText string) (*Searcher, error) {
	payload, err := searchindex.ExtractPayload(fileText)
	if err != nil {
		return nil, err
	}
	entries, err := searchindex.ParseIndex(payload)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		aliases:    make(map[string][]int),
		deprecated: make(map[string]*roaring.Bitmap),
	}
	for _, entry := range entries {
		items, err := searchindex.DecodeCrate(entry.Name, &entry.Data)
		if err != nil {
			return nil, err
		}

		base := len(s.items)
		s.items = append(s.items, items...)

		for alias, positions := range entry.Data.Aliases {
			key := searchindex.NormalizeName(alias)
			for _, pos := range positions {
				if pos < 0 || pos >= len(items) {
					continue // out-of-range alias targets are ignored
				}
				s.aliases[key] = append(s.aliases[key], base+pos)
			}
		}

		if entry.Data.Deprecated != "" {
			s.deprecated[entry.Name] = searchindex.DecodeBitmap(entry.Data.Deprecated)
		}
	}

	slog.Debug("search index decoded", "crates", len(entries), "items", len(s.items))
	return s, nil
}

// Len reports the number of decoded items.
func (s *Searcher) Len() int {
	return len(s.items)
}

// Match returns items whose normalized name contains the normalized query,
// plus alias hits, in decode order. limit <= 0 means unlimited.
func (s *Searcher) Match(query string, limit int) []Result {
	normalized := searchindex.NormalizeName(query)
	if normalized == "" {
		return nil
	}

	matched := make(map[int]string) // item offset → alias, "" for name hits
	for i, item := range s.items {
		if strings.Contains(item.NormalizedName, normalized) {
			matched[i] = ""
		}
	}
	for alias, offsets := range s.aliases {
		if !strings.Contains(alias, normalized) {
			continue
		}
		for _, off := range offsets {
			if _, ok := matched[off]; !ok {
				matched[off] = alias
			}
		}
	}

	var results []Result
	for i, item := range s.items {
		alias, ok := matched[i]
		if !ok {
			continue
		}
		results = append(results, Result{
			Item:         item,
			MatchedAlias: alias,
			Deprecated:   s.isDeprecated(item),
		})
		if limit > 0 && len(results) >= limit {
			break
		}
	}

	slog.Debug("scan", "query", query, "results", len(results))
	return results
}

func (s *Searcher) isDeprecated(item searchindex.SearchItem) bool {
	bm, ok := s.deprecated[item.CrateName]
	if !ok {
		return false
	}
	return bm.Contains(uint32(item.BitIndex))
}
