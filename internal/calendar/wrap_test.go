package calendar

import (
	"reflect"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{
			name:  "fits on one line",
			input: "- Pizza",
			width: 72,
			want:  []string{"- Pizza"},
		},
		{
			name:  "breaks at word boundary",
			input: "one two three four",
			width: 9,
			want:  []string{"one two", "three", "four"},
		},
		{
			name:  "exact width",
			input: "abc def",
			width: 7,
			want:  []string{"abc def"},
		},
		{
			name:  "long word fills remainder then breaks",
			input: "ab cdefghijkl",
			width: 6,
			want:  []string{"ab cde", "fghijk", "l"},
		},
		{
			name:  "long word alone",
			input: "abcdefghij",
			width: 4,
			want:  []string{"abcd", "efgh", "ij"},
		},
		{
			name:  "collapses whitespace",
			input: "  a \t b  ",
			width: 10,
			want:  []string{"a b"},
		},
		{
			name:  "blank line",
			input: "",
			width: 72,
			want:  []string{""},
		},
		{
			name:  "multibyte runes counted once",
			input: "crème brûlée",
			width: 5,
			want:  []string{"crème", "brûlé", "e"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.input, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrap_NoCharacterLoss(t *testing.T) {
	input := strings.Repeat("x", 200)
	lines := Wrap(input, FoldWidth)

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if strings.Join(lines, "") != input {
		t.Error("wrapped lines should rejoin to the input")
	}
}
