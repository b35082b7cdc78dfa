package vo

import "time"

type ErrorKind string

const (
	ErrorKindNone      ErrorKind = ""
	ErrorKindTransport ErrorKind = "transport"
	ErrorKindParse     ErrorKind = "parse"
	ErrorKindRobots    ErrorKind = "robots"
)

// ScrapeResult is what happened while scraping one element, it does not end
// up in the elements data file
type ScrapeResult struct {
	Name      ElementName   `yaml:"name"`
	TargetURL string        `yaml:"url"`
	Code      int           `yaml:"code"`
	Error     string        `yaml:"error,omitempty"`
	ErrorKind ErrorKind     `yaml:"kind,omitempty"`
	Fallback  bool          `yaml:"fallback"`
	Duration  time.Duration `yaml:"duration"`
	Time      time.Time     `yaml:"time"`
}

func (r ScrapeResult) Failed() bool {
	return r.ErrorKind != ErrorKindNone
}
