package searchindex

import (
	"errors"
	"testing"
)

func TestExtractPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"map_wrapper",
			`var searchIndex = new Map(JSON.parse('[["test",{"t":"A"}]]'));`,
			`[["test",{"t":"A"}]]`,
		},
		{
			"unescapes_quotes",
			`var searchIndex = new Map(JSON.parse('[["test",{"n":["It\'s"]}]]'));`,
			`[["test",{"n":["It's"]}]]`,
		},
		{
			"trailing_statements",
			`var searchIndex = new Map(JSON.parse('[]'));
if (typeof exports !== 'undefined') exports.searchIndex = searchIndex;`,
			`[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPayload(tt.text)
			if err != nil {
				t.Fatalf("ExtractPayload: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractPayload_NotSearchIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no_wrapper", `var searchIndex = [["test",{}]];`},
		{"unterminated", `var searchIndex = new Map(JSON.parse('[["test",{}]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractPayload(tt.text)
			if !errors.Is(err, ErrNotSearchIndex) {
				t.Errorf("got %v, want ErrNotSearchIndex", err)
			}
		})
	}
}
