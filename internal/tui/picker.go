package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/dimzfresh/widgetkit/core"
	"github.com/dimzfresh/widgetkit/widgets"
)

// bestMatch returns the index of the widget whose title or id best matches
// query, or -1 when nothing comes close. Substring hits win outright;
// otherwise widgets are ranked by normalized edit distance.
func bestMatch(ws []core.Widget, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return -1
	}
	best, bestScore := -1, 0.0
	for i, w := range ws {
		label := strings.ToLower(strings.TrimSpace(widgetTitle(w) + " " + string(w.ID())))
		score := similarity(q, label)
		if strings.Contains(label, q) {
			score = 1
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if bestScore < 0.3 {
		return -1
	}
	return best
}

func similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(max(len(a), len(b)))
}

func widgetTitle(w core.Widget) string {
	switch t := w.(type) {
	case *widgets.Banner:
		return t.Title
	case *widgets.Counter:
		return t.Title
	case *widgets.Timer:
		return t.Title
	default:
		return string(w.ID())
	}
}
