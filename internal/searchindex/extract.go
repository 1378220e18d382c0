package searchindex

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotSearchIndex reports that a file does not carry the JSON.parse
// wrapper rustdoc emits around the packed index literal. A file without
// the wrapper is not this format at all, never an empty index.
var ErrNotSearchIndex = errors.New("not a rustdoc search index")

// The index file is a host-script assignment of the form
// var searchIndex = new Map(JSON.parse('...'));
const (
	openDelim  = "JSON.parse('"
	closeDelim = "')"
)

// ExtractPayload strips the host-script wrapper from search-index.js
// content and returns the JSON literal between the delimiters. Single
// quotes inside the literal are escaped by the wrapper and are restored
// here.
func ExtractPayload(fileText string) (string, error) {
	start := strings.Index(fileText, openDelim)
	if start < 0 {
		return "", fmt.Errorf("%w: missing %q", ErrNotSearchIndex, openDelim)
	}
	start += len(openDelim)

	end := strings.Index(fileText[start:], closeDelim)
	if end < 0 {
		return "", fmt.Errorf("%w: missing closing %q", ErrNotSearchIndex, closeDelim)
	}

	return strings.ReplaceAll(fileText[start:start+end], `\'`, `'`), nil
}
