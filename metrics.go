package elementwalker

import (
	"strconv"

	"github.com/foomo/elementwalker/vo"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	prometheusLabelOutcome = "outcome"
	prometheusLabelStatus  = "status"
	outcomeOK              = "ok"
)

type metrics struct {
	registry         *prometheus.Registry
	durations        *prometheus.SummaryVec
	scrapes          *prometheus.CounterVec
	progressOpen     prometheus.Gauge
	progressComplete prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		durations: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "elementwalker_scrape_durations_seconds",
				Help:       "element scrape duration including request and extraction",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{prometheusLabelOutcome},
		),
		scrapes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "elementwalker_scrapes_total",
				Help: "number of element scrapes by outcome and status code",
			},
			[]string{prometheusLabelOutcome, prometheusLabelStatus},
		),
		progressOpen: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "elementwalker_progress_gauge_open",
				Help: "elements left to scrape",
			},
		),
		progressComplete: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "elementwalker_progress_gauge_complete",
				Help: "elements scraped",
			},
		),
	}
	m.registry.MustRegister(
		m.durations,
		m.scrapes,
		m.progressOpen,
		m.progressComplete,
	)
	return m
}

func (m *metrics) start(total int) {
	m.progressOpen.Set(float64(total))
	m.progressComplete.Set(0)
}

func (m *metrics) track(r vo.ScrapeResult) {
	outcome := outcomeOK
	if r.Failed() {
		outcome = string(r.ErrorKind)
	}
	m.durations.WithLabelValues(outcome).Observe(r.Duration.Seconds())
	m.scrapes.WithLabelValues(outcome, strconv.Itoa(r.Code)).Inc()
	m.progressOpen.Dec()
	m.progressComplete.Inc()
}

func (m *metrics) writeTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, m.registry)
}
