package reports

import (
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"github.com/foomo/elementwalker/vo"
)

type scrapeResultFilter func(res vo.ScrapeResult) bool

type bucket struct {
	Name string
	From time.Duration
	To   time.Duration
}

var buckets = []bucket{
	{Name: "fast", From: 0, To: time.Millisecond * 250},
	{Name: "ok", From: time.Millisecond * 250, To: time.Millisecond * 1000},
	{Name: "slow", From: time.Millisecond * 1000, To: time.Millisecond * 3000},
	{Name: "very slow", From: time.Millisecond * 3000, To: time.Millisecond * 10000},
	{Name: "timeout territory", From: time.Millisecond * 10000, To: time.Hour},
}

func printers(w io.Writer) (printh func(header ...interface{}), println func(a ...interface{}), printsep func()) {
	printsep = func() {
		fmt.Fprintln(w, "-----------------------------------------------------------------------------")
	}
	println = func(a ...interface{}) { fmt.Fprintln(w, a...) }
	printh = func(header ...interface{}) {
		println()
		println(header...)
		printsep()
	}
	return
}

func filtered(status vo.Status, filter scrapeResultFilter) []vo.ScrapeResult {
	results := []vo.ScrapeResult{}
	for _, r := range status.Scrapes {
		if filter != nil && !filter(r) {
			continue
		}
		results = append(results, r)
	}
	return results
}

// Summary prints outcomes, status codes and duration buckets of a walk
func Summary(status vo.Status, w io.Writer) {
	printh, println, _ := printers(w)
	results := filtered(status, nil)
	printh("summary", len(results), "elements in", status.Duration.Round(time.Millisecond))

	printh("outcomes")
	kinds := []vo.ErrorKind{vo.ErrorKindNone, vo.ErrorKindTransport, vo.ErrorKindParse, vo.ErrorKindRobots}
	counts := status.CountByKind()
	for _, kind := range kinds {
		label := string(kind)
		if kind == vo.ErrorKindNone {
			label = "ok"
		}
		println(label, counts[kind])
	}

	printh("status codes")
	statusMap := map[int]int{}
	for _, r := range results {
		statusMap[r.Code]++
	}
	codes := sort.IntSlice{}
	for code := range statusMap {
		codes = append(codes, code)
	}
	sort.Sort(codes)
	for _, code := range codes {
		println(code, statusMap[code])
	}

	printh("performance buckets")
	bucketList(w, results)
}

func bucketList(w io.Writer, results []vo.ScrapeResult) {
	if len(results) == 0 {
		return
	}
	for _, b := range buckets {
		bucketI := 0
		for _, r := range results {
			if r.Duration >= b.From && r.Duration < b.To {
				bucketI++
			}
		}
		fmt.Fprintln(
			w,
			bucketI,
			"	",
			math.Round(float64(bucketI)/float64(len(results))*100),
			"%	(", b.From, "=>", b.To, ")",
			b.Name,
		)
	}
}
