// Package metrics exposes engine and game gauges through a Prometheus
// registry. There is no HTTP endpoint; the registry is written to a node
// exporter textfile on every autosave.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/LeJamon/goMFS/internal/core/game"
)

const namespace = "mfsd"

// Source provides the game values behind the gauges.
type Source interface {
	Summary() game.Summary
}

// Metrics records tick and save timings and samples the game on collect.
type Metrics struct {
	registry *prometheus.Registry

	ticks        prometheus.Counter
	slowTicks    prometheus.Counter
	tickDuration prometheus.Histogram
	saves        *prometheus.CounterVec
	saveDuration prometheus.Histogram
}

// New creates a registry with engine metrics and, when src is not nil,
// game gauges.
func New(src Source) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks executed.",
		}),
		slowTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slow_ticks_total",
			Help:      "Ticks slower than the configured threshold.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Time spent inside one tick.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "saves_total",
			Help:      "Autosaves by result.",
		}, []string{"result"}),
		saveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "save_duration_seconds",
			Help:      "Time spent saving.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(m.ticks, m.slowTicks, m.tickDuration, m.saves, m.saveDuration)
	if src != nil {
		m.registry.MustRegister(gameGauges(src)...)
	}
	return m
}

func gameGauges(src Source) []prometheus.Collector {
	gauge := func(name, help string, f func(game.Summary) float64) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      name,
			Help:      help,
		}, func() float64 { return f(src.Summary()) })
	}

	return []prometheus.Collector{
		gauge("fish_log10", "Log10 of the spendable fish balance.",
			func(s game.Summary) float64 { return s.Fish.Log10() }),
		gauge("total_fish_log10", "Log10 of every fish ever caught.",
			func(s game.Summary) float64 { return s.TotalFishCaught.Log10() }),
		gauge("total_fps_log10", "Log10 of fish generated per second from every source.",
			func(s game.Summary) float64 { return s.TotalFPS.Log10() }),
		gauge("tier", "Current tier index, pond is 0.",
			func(s game.Summary) float64 { return float64(s.Tier) }),
		gauge("universe_number", "Universes created in this multiverse.",
			func(s game.Summary) float64 { return float64(s.UniverseNumber) }),
		gauge("parallel_multiverses", "Parallel multiverses.",
			func(s game.Summary) float64 { return float64(s.ParallelMultiverses) }),
		gauge("multiverse_multiplier", "Crunch multiplier.",
			func(s game.Summary) float64 { return s.MultiverseMultiplier }),
		gauge("containers", "Stashed container entries.",
			func(s game.Summary) float64 { return float64(s.Containers) }),
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveTick records one tick.
func (m *Metrics) ObserveTick(d time.Duration, slow bool) {
	m.ticks.Inc()
	if slow {
		m.slowTicks.Inc()
	}
	m.tickDuration.Observe(d.Seconds())
}

// ObserveSave records one save.
func (m *Metrics) ObserveSave(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.saves.WithLabelValues(result).Inc()
	m.saveDuration.Observe(d.Seconds())
}

// WriteTextfile writes the registry in the text exposition format,
// atomically replacing path.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

// TextfileSaver writes the textfile whenever the engine saves.
type TextfileSaver struct {
	Metrics *Metrics
	Path    string
}

// Save implements the engine's Saver.
func (t TextfileSaver) Save(context.Context) error {
	return t.Metrics.WriteTextfile(t.Path)
}
