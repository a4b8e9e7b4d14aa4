package reporters

import (
	"strconv"
)

import (
	"github.com/prometheus/client_golang/prometheus"
)

import (
	"github.com/YukiCheZ/risk-patterns-mining/config"
	"github.com/YukiCheZ/risk-patterns-mining/lattice"
	"github.com/YukiCheZ/risk-patterns-mining/types/txgraph"
)

const metricsNamespace = "risk_patterns"

// Metrics counts the reported patterns by topology and records their
// support. The registry is written out in the text exposition format when
// the reporter closes.
type Metrics struct {
	config   *config.Config
	filename string
	Registry *prometheus.Registry
	patterns *prometheus.CounterVec
	support  *prometheus.HistogramVec
}

func NewMetrics(c *config.Config, filename string) (*Metrics, error) {
	reg := prometheus.NewRegistry()
	patterns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "patterns_reported_total",
		Help:      "Frequent patterns reported, by topology.",
	}, []string{"topology"})
	support := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "pattern_support",
		Help:      "Support of the reported patterns, by topology.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
	}, []string{"topology"})
	if err := reg.Register(patterns); err != nil {
		return nil, err
	}
	if err := reg.Register(support); err != nil {
		return nil, err
	}
	r := &Metrics{
		config:   c,
		filename: filename,
		Registry: reg,
		patterns: patterns,
		support:  support,
	}
	return r, nil
}

func topology(p lattice.Pattern) string {
	switch n := p.(type) {
	case *txgraph.Pattern:
		return n.Topology.String()
	default:
		return "level-" + strconv.Itoa(p.Level())
	}
}

func (r *Metrics) Report(p lattice.Pattern) error {
	topo := topology(p)
	r.patterns.WithLabelValues(topo).Inc()
	r.support.WithLabelValues(topo).Observe(float64(p.Support()))
	return nil
}

func (r *Metrics) Close() error {
	return prometheus.WriteToTextfile(r.config.OutputFile(r.filename), r.Registry)
}
