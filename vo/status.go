package vo

import "time"

type Status struct {
	Results  *ResultSet
	Scrapes  []ScrapeResult
	Started  time.Time
	Duration time.Duration
}

func (s Status) Failed() []ScrapeResult {
	failed := []ScrapeResult{}
	for _, r := range s.Scrapes {
		if r.Failed() {
			failed = append(failed, r)
		}
	}
	return failed
}

func (s Status) CountByKind() map[ErrorKind]int {
	counts := map[ErrorKind]int{}
	for _, r := range s.Scrapes {
		counts[r.ErrorKind]++
	}
	return counts
}
