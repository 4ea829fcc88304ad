package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// sessionsKey marks the script element that holds the menu document
const sessionsKey = `"FamilyMenuSessions"`

// extractFromHTML pulls the menu JSON out of a saved menu web page.
// The first <script type="application/json"> element mentioning the
// sessions key wins; a bare JSON <pre> block is tried as a fallback.
func extractFromHTML(r io.Reader) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var payload string
	doc.Find(`script[type="application/json"], pre`).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if strings.Contains(text, sessionsKey) {
			payload = text
			return false
		}
		return true
	})

	if payload == "" {
		return nil, ErrNoMenuData
	}
	return []byte(payload), nil
}
