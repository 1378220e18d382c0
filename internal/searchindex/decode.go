package searchindex

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrLengthMismatch reports that a crate's type-code and name columns
// disagree on the number of items.
var ErrLengthMismatch = errors.New("type and name columns differ in length")

// SearchItem is one fully resolved item record. Values are plain data owned
// by the caller; they hold no references back into the source payload.
type SearchItem struct {
	CrateName      string   `json:"crate_name"`
	Type           ItemType `json:"type"`
	Name           string   `json:"name"`
	NormalizedName string   `json:"normalized_name"`
	Path           string   `json:"path"`
	// ExactPath is the path the item is actually reachable at after
	// re-export resolution. Equals Path for items that are not re-exported.
	ExactPath         string   `json:"exact_path"`
	ID                int      `json:"id"`
	BitIndex          int      `json:"bit_index"`
	ParamTypes        []string `json:"param_types,omitempty"`
	ImplDisambiguator *string  `json:"impl_disambiguator,omitempty"`
	// Parent is a zero-based index into the crate's ParentItems, nil when
	// the item has no parent.
	Parent *int `json:"parent,omitempty"`
}

// ParseIndex parses the unwrapped literal into crate entries, preserving
// source order.
func ParseIndex(payload string) ([]CrateEntry, error) {
	var entries []CrateEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, fmt.Errorf("parsing search index payload: %w", err)
	}
	return entries, nil
}

// Decode parses the raw text of one search-index.js file and resolves every
// item in it. Crates decode concurrently; the output preserves source order
// across crates and position order within a crate.
func Decode(fileText string) ([]SearchItem, error) {
	payload, err := ExtractPayload(fileText)
	if err != nil {
		return nil, err
	}
	entries, err := ParseIndex(payload)
	if err != nil {
		return nil, err
	}

	perCrate := make([][]SearchItem, len(entries))
	g := new(errgroup.Group)
	for idx, entry := range entries {
		g.Go(func() error {
			items, err := DecodeCrate(entry.Name, &entry.Data)
			if err != nil {
				return err
			}
			perCrate[idx] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var items []SearchItem
	for _, crateItems := range perCrate {
		items = append(items, crateItems...)
	}
	return items, nil
}

// DecodeCrate resolves one crate's packed payload into one SearchItem per
// position, in position order. Name and path columns use reuse-previous
// compression; the parent column is a VLQ-hex stream where 0 means no
// parent and v > 0 means ParentItems[v-1].
func DecodeCrate(crateName string, data *CrateData) ([]SearchItem, error) {
	if len(data.Types) != len(data.Names) {
		return nil, fmt.Errorf("crate %q: %w: %d type codes, %d names",
			crateName, ErrLengthMismatch, len(data.Types), len(data.Names))
	}

	paths := make(map[int]string, len(data.Paths))
	for _, qp := range data.Paths {
		paths[qp.Index] = qp.Path
	}
	reexports := make(map[int]int, len(data.Reexports))
	for _, r := range data.Reexports {
		reexports[r.ItemIndex] = r.PathIndex
	}
	paramTypes := make(map[int][]string, len(data.ParamTypes))
	for _, pt := range data.ParamTypes {
		paramTypes[pt.ItemIndex] = pt.Types
	}
	disambiguators := make(map[int]string, len(data.Disambiguators))
	for _, d := range data.Disambiguators {
		disambiguators[d.ItemIndex] = d.Disambiguator
	}

	parents := NewVLQHexDecoder(data.ParentIdxStream)

	items := make([]SearchItem, 0, len(data.Types))
	var lastName, lastPath string
	for i := 0; i < len(data.Types); i++ {
		name := data.Names[i]
		if name == "" {
			name = lastName
		}

		path, ok := paths[i]
		if !ok {
			path = lastPath
		}

		// A re-export entry pointing at a missing overlay slot falls back
		// to the item's own path.
		exactPath := path
		if pathIdx, ok := reexports[i]; ok {
			if p, ok := paths[pathIdx]; ok {
				exactPath = p
			}
		}

		item := SearchItem{
			CrateName:      crateName,
			Type:           itemTypeFromCode(data.Types[i] - 'A'),
			Name:           name,
			NormalizedName: NormalizeName(name),
			Path:           path,
			ExactPath:      exactPath,
			ID:             i,
			BitIndex:       i + 1,
			ParamTypes:     paramTypes[i],
		}
		if d, ok := disambiguators[i]; ok {
			item.ImplDisambiguator = &d
		}
		if v, ok := parents.Next(); ok && v > 0 {
			parent := v - 1
			item.Parent = &parent
		}

		items = append(items, item)
		lastName, lastPath = name, path
	}
	return items, nil
}

// NormalizeName lower-cases a name and strips underscores, the form used
// for case-insensitive matching.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "")
}
