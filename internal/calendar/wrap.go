package calendar

import (
	"strings"
	"unicode/utf8"
)

// Wrap greedily word-wraps s to lines of at most width runes.
// Runs of whitespace collapse to a single space. Words longer than width
// are split across lines. A blank input yields a single empty line.
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 || width <= 0 {
		return []string{strings.TrimSpace(s)}
	}

	lines := make([]string, 0, 1)
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			lines = append(lines, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, word := range words {
		for utf8.RuneCountInString(word) > width {
			// Fill the remainder of the current line before breaking the word
			room := width
			if currentLen > 0 {
				room = width - currentLen - 1
				if room <= 0 {
					flush()
					room = width
				} else {
					current.WriteByte(' ')
					currentLen++
				}
			}
			head, tail := splitRunes(word, room)
			current.WriteString(head)
			currentLen += room
			flush()
			word = tail
		}

		wordLen := utf8.RuneCountInString(word)
		if currentLen > 0 && currentLen+1+wordLen > width {
			flush()
		}
		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}
		current.WriteString(word)
		currentLen += wordLen
	}
	flush()

	return lines
}

// splitRunes splits s after n runes
func splitRunes(s string, n int) (string, string) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], s[pos:]
		}
		i++
	}
	return s, ""
}
