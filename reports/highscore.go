package reports

import (
	"io"
	"sort"

	"github.com/foomo/elementwalker/vo"
)

// Highscore lists the slowest elements first
func Highscore(status vo.Status, w io.Writer, limit int) {
	printh, println, _ := printers(w)
	printh("high score")
	scores := filtered(status, nil)
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Duration > scores[j].Duration
	})
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	for i, s := range scores {
		println(i, s.Code, s.Name, s.Duration)
	}
}
