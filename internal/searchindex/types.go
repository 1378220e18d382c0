package searchindex

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CrateEntry pairs a crate name with its packed payload. The index is an
// ordered array of these; the order is preserved because downstream result
// ordering depends on it.
type CrateEntry struct {
	Name string
	Data CrateData
}

// CrateData is the packed payload for one crate. Single-letter keys match
// the columns rustdoc emits. The c, e, f and D streams are carried through
// untouched; this package only decodes them on request (see DecodeBitmap).
type CrateData struct {
	// Types encodes one item kind per character, as an offset from 'A'.
	Types string `json:"t"`
	// Names is parallel to Types; an empty string reuses the previous name.
	Names []string `json:"n"`
	// Paths is a sparse overlay of fully qualified module paths.
	Paths []QualifiedPath `json:"q"`
	// ParentItems are parent-type descriptors referenced by the i stream.
	ParentItems []ParentItem `json:"p"`
	// Reexports maps item positions to Paths indexes.
	Reexports []Reexport `json:"r"`
	// ParentIdxStream is the VLQ-hex parent-index column.
	ParentIdxStream string `json:"i"`
	// FnSignatures is the VLQ-hex function-signature column (opaque).
	FnSignatures string `json:"f"`
	// DescLengths is the VLQ-hex description-length column (opaque).
	DescLengths string `json:"D"`
	// ParamTypes is a sparse overlay of type-parameter name lists.
	ParamTypes []ParamTypes `json:"P"`
	// Disambiguators distinguishes multiple trait impls on one type.
	Disambiguators []ImplDisambiguator `json:"b"`
	// Deprecated is the serialized deprecation bitmap (opaque).
	Deprecated string `json:"c"`
	// EmptyDescs is the serialized empty-description bitmap (opaque).
	EmptyDescs string `json:"e"`
	// Aliases maps an alias to the item positions it also matches. This is
	// the only column permitted to be absent entirely.
	Aliases map[string][]int `json:"a"`
}

func (e *CrateEntry) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("crate entry is not a tuple: %w", err)
	}
	if len(tuple) != 2 {
		return fmt.Errorf("crate entry has %d fields, want 2", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &e.Name); err != nil {
		return fmt.Errorf("crate entry field 0 (name): %w", err)
	}
	if err := json.Unmarshal(tuple[1], &e.Data); err != nil {
		return fmt.Errorf("crate %q: %w", e.Name, err)
	}
	return nil
}

// QualifiedPath is one entry of the sparse path overlay: the module path
// for the item at Index. Wire form is the tuple [index, path].
type QualifiedPath struct {
	Index int
	Path  string
}

func (p *QualifiedPath) UnmarshalJSON(data []byte) error {
	return unmarshalTuple(data, "q", 2,
		tupleField{"index", &p.Index},
		tupleField{"path", &p.Path},
	)
}

// Reexport says the item at ItemIndex is re-exported at the path stored at
// PathIndex in the q overlay. Wire form is [item_index, path_index].
type Reexport struct {
	ItemIndex int
	PathIndex int
}

func (r *Reexport) UnmarshalJSON(data []byte) error {
	return unmarshalTuple(data, "r", 2,
		tupleField{"item_index", &r.ItemIndex},
		tupleField{"path_index", &r.PathIndex},
	)
}

// ParamTypes is one entry of the sparse parameter-type overlay. Wire form
// is [item_index, "T,U"] with a comma-joined type list.
type ParamTypes struct {
	ItemIndex int
	Types     []string
}

func (p *ParamTypes) UnmarshalJSON(data []byte) error {
	var joined string
	if err := unmarshalTuple(data, "P", 2,
		tupleField{"item_index", &p.ItemIndex},
		tupleField{"types", &joined},
	); err != nil {
		return err
	}
	if joined != "" {
		p.Types = strings.Split(joined, ",")
	}
	return nil
}

// ImplDisambiguator is one entry of the sparse disambiguator overlay. Wire
// form is [item_index, disambiguator].
type ImplDisambiguator struct {
	ItemIndex     int
	Disambiguator string
}

func (d *ImplDisambiguator) UnmarshalJSON(data []byte) error {
	return unmarshalTuple(data, "b", 2,
		tupleField{"item_index", &d.ItemIndex},
		tupleField{"disambiguator", &d.Disambiguator},
	)
}

// ParentItem is one parent-type descriptor from the p column. Wire form is
// [kind, name] optionally followed by a path index and an exact-path index
// into the q overlay.
type ParentItem struct {
	Kind           int
	Name           string
	PathIndex      *int
	ExactPathIndex *int
}

func (p *ParentItem) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("p entry is not a tuple: %w", err)
	}
	if len(tuple) < 2 {
		return fmt.Errorf("p entry has %d fields, want at least 2", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &p.Kind); err != nil {
		return fmt.Errorf("p entry field 0 (kind): %w", err)
	}
	if err := json.Unmarshal(tuple[1], &p.Name); err != nil {
		return fmt.Errorf("p entry field 1 (name): %w", err)
	}
	if len(tuple) > 2 {
		p.PathIndex = new(int)
		if err := json.Unmarshal(tuple[2], p.PathIndex); err != nil {
			return fmt.Errorf("p entry field 2 (path_index): %w", err)
		}
	}
	if len(tuple) > 3 {
		p.ExactPathIndex = new(int)
		if err := json.Unmarshal(tuple[3], p.ExactPathIndex); err != nil {
			return fmt.Errorf("p entry field 3 (exact_path_index): %w", err)
		}
	}
	return nil
}

type tupleField struct {
	name string
	dst  any
}

// unmarshalTuple decodes a positional JSON tuple into named fields. A field
// holding the wrong value kind is a hard parse failure reported with the
// owning table and field name.
func unmarshalTuple(data []byte, table string, want int, fields ...tupleField) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("%s entry is not a tuple: %w", table, err)
	}
	if len(tuple) != want {
		return fmt.Errorf("%s entry has %d fields, want %d", table, len(tuple), want)
	}
	for i, f := range fields {
		if err := json.Unmarshal(tuple[i], f.dst); err != nil {
			return fmt.Errorf("%s entry field %d (%s): %w", table, i, f.name, err)
		}
	}
	return nil
}
