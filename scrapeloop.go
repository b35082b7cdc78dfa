package elementwalker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/foomo/elementwalker/config"
	"github.com/foomo/elementwalker/vo"
	"github.com/temoto/robotstxt"
	"go.uber.org/zap"
)

// Walker scrapes element pages one after another
type Walker struct {
	conf      *config.Config
	fetcher   Fetcher
	extractor PageExtractor
	logger    *zap.Logger
	out       io.Writer
	metrics   *metrics
	sleep     func(time.Duration)
}

type Option func(w *Walker)

func WithFetcher(fetcher Fetcher) Option {
	return func(w *Walker) {
		w.fetcher = fetcher
	}
}

func WithExtractor(extractor PageExtractor) Option {
	return func(w *Walker) {
		w.extractor = extractor
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(w *Walker) {
		w.logger = logger
	}
}

// WithOutput sets where progress lines go, defaults to stdout
func WithOutput(out io.Writer) Option {
	return func(w *Walker) {
		w.out = out
	}
}

func NewWalker(conf *config.Config, opts ...Option) *Walker {
	w := &Walker{
		conf:    conf,
		logger:  zap.NewNop(),
		out:     os.Stdout,
		metrics: newMetrics(),
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.fetcher == nil {
		w.fetcher = NewRestyFetcher(conf.Timeout, conf.Agent)
	}
	if w.extractor == nil {
		w.extractor = GoqueryExtractor{}
	}
	return w
}

// Walk produces exactly one record per name. Failures never stop the walk,
// they end up as fallback records.
func (w *Walker) Walk(ctx context.Context, names []vo.ElementName) vo.Status {
	status := vo.Status{
		Results: vo.NewResultSet(),
		Scrapes: make([]vo.ScrapeResult, 0, len(names)),
		Started: time.Now(),
	}
	total := len(names)
	w.metrics.start(total)
	robotsGroup := w.loadRobotsGroup(ctx)

	fmt.Fprintf(w.out, "Starting to scrape %d elements...\n", total)
	for i, name := range names {
		fmt.Fprintf(w.out, "[%d/%d] Scraping: %s...\n", i+1, total, name)
		record, result := w.scrapeElement(ctx, name, robotsAllow(robotsGroup, w.targetURL(name)))
		status.Results.Add(record)
		status.Scrapes = append(status.Scrapes, result)
		w.metrics.track(result)
		switch result.ErrorKind {
		case vo.ErrorKindNone:
			fmt.Fprintf(w.out, "   ✓ Successfully scraped %s\n", name)
		case vo.ErrorKindParse:
			fmt.Fprintf(w.out, "   ✗ Unexpected error for %s: %s\n", name, result.Error)
		default:
			fmt.Fprintf(w.out, "   ✗ Error scraping %s: %s\n", name, result.Error)
		}
		w.logger.Debug("scraped element",
			zap.String("element", string(name)),
			zap.Int("code", result.Code),
			zap.Duration("duration", result.Duration),
			zap.Bool("fallback", result.Fallback),
		)
		if w.conf.Delay > 0 {
			w.sleep(w.conf.Delay)
		}
	}
	status.Duration = time.Since(status.Started)
	w.logger.Info("walk complete",
		zap.Int("elements", status.Results.Len()),
		zap.Int("failed", len(status.Failed())),
		zap.Duration("duration", status.Duration),
	)
	return status
}

func (w *Walker) targetURL(name vo.ElementName) string {
	return w.conf.BaseURL + string(name)
}

func (w *Walker) scrapeElement(ctx context.Context, name vo.ElementName, allowed bool) (record vo.ElementRecord, result vo.ScrapeResult) {
	start := time.Now()
	result = vo.ScrapeResult{
		Name:      name,
		TargetURL: w.targetURL(name),
	}
	defer func() {
		result.Time = time.Now()
		result.Duration = result.Time.Sub(start)
	}()

	fail := func(kind vo.ErrorKind, err error) {
		record = vo.NewFallbackRecord(name)
		result.ErrorKind = kind
		result.Error = err.Error()
		result.Fallback = true
		w.logger.Warn("using fallback record",
			zap.String("element", string(name)),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}

	if !allowed {
		fail(vo.ErrorKindRobots, ErrRobotsDisallowed)
		return
	}

	body, code, errFetch := w.fetcher.Fetch(ctx, result.TargetURL)
	result.Code = code
	if errFetch != nil {
		fail(vo.ErrorKindTransport, errFetch)
		return
	}

	extracted, errExtract := w.extract(name, body)
	if errExtract != nil {
		fail(vo.ErrorKindParse, errExtract)
		return
	}
	record = extracted
	return
}

// extract turns panics of the extractor into parse errors
func (w *Walker) extract(name vo.ElementName, body []byte) (record vo.ElementRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ParseError{Name: name, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	record, err = w.extractor.Extract(name, bytes.NewReader(body))
	if err != nil {
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			err = &ParseError{Name: name, Err: err}
		}
		return
	}
	// the record always belongs to the element it was scraped for
	record.Name = string(name)
	if len(record.Attributes) == 0 {
		record.Attributes = vo.FallbackAttributes()
	}
	return
}

func (w *Walker) loadRobotsGroup(ctx context.Context) *robotstxt.Group {
	if !w.conf.CheckRobots {
		return nil
	}
	data, errRobots := getRobotsData(ctx, w.fetcher, w.conf.BaseURL)
	if errRobots != nil {
		w.logger.Warn("could not load robots.txt, not checking it", zap.Error(errRobots))
		return nil
	}
	return data.FindGroup(w.conf.Agent)
}

// WriteMetrics writes the metrics of the last walk in prometheus text format
func (w *Walker) WriteMetrics(filename string) error {
	return w.metrics.writeTextfile(filename)
}
