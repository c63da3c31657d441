package prometheus

import (
	"net/http"
	"sync"

	"github.com/agglayer/cascadekit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Endpoint the endpoint for exposing the metrics
	Endpoint = "/metrics"
	// ProfilingIndexEndpoint the endpoint for exposing the profiling metrics
	ProfilingIndexEndpoint = "/debug/pprof/"
	// ProfileEndpoint the endpoint for exposing the profile of the profiling metrics
	ProfileEndpoint = "/debug/pprof/profile"
	// ProfilingCmdEndpoint the endpoint for exposing the command-line of profiling metrics
	ProfilingCmdEndpoint = "/debug/pprof/cmdline"
	// ProfilingSymbolEndpoint the endpoint for exposing the symbol of profiling metrics
	ProfilingSymbolEndpoint = "/debug/pprof/symbol"
	// ProfilingTraceEndpoint the endpoint for exposing the trace of profiling metrics
	ProfilingTraceEndpoint = "/debug/pprof/trace"
)

// CounterVecOpts holds options for creating a labelled counter
type CounterVecOpts struct {
	prometheus.CounterOpts
	Labels []string
}

var (
	mutex       sync.RWMutex
	initialized bool
	registerer  prometheus.Registerer
	gatherer    prometheus.Gatherer
	gauges      map[string]prometheus.Gauge
	counters    map[string]prometheus.Counter
	counterVecs map[string]*prometheus.CounterVec
)

// Init initializes the metrics on the default registry. Until Init is called every
// metric operation is a no-op.
func Init() {
	InitWithRegistry(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// InitWithRegistry initializes the metrics on the given registry, replacing any previous one
func InitWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer) {
	mutex.Lock()
	defer mutex.Unlock()
	registerer = reg
	gatherer = g
	gauges = make(map[string]prometheus.Gauge)
	counters = make(map[string]prometheus.Counter)
	counterVecs = make(map[string]*prometheus.CounterVec)
	initialized = true
}

// Handler returns the http handler serving the registered metrics
func Handler() http.Handler {
	mutex.RLock()
	defer mutex.RUnlock()
	if !initialized {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// RegisterGauges registers the provided gauge metrics
func RegisterGauges(opts ...prometheus.GaugeOpts) {
	mutex.Lock()
	defer mutex.Unlock()
	if !initialized {
		return
	}
	for _, opt := range opts {
		if _, ok := gauges[opt.Name]; ok {
			continue
		}
		gauge := prometheus.NewGauge(opt)
		if err := registerer.Register(gauge); err != nil {
			log.Errorf("failed to register gauge %s: %v", opt.Name, err)
			continue
		}
		gauges[opt.Name] = gauge
	}
}

// RegisterCounters registers the provided counter metrics
func RegisterCounters(opts ...prometheus.CounterOpts) {
	mutex.Lock()
	defer mutex.Unlock()
	if !initialized {
		return
	}
	for _, opt := range opts {
		if _, ok := counters[opt.Name]; ok {
			continue
		}
		counter := prometheus.NewCounter(opt)
		if err := registerer.Register(counter); err != nil {
			log.Errorf("failed to register counter %s: %v", opt.Name, err)
			continue
		}
		counters[opt.Name] = counter
	}
}

// RegisterCounterVecs registers the provided labelled counter metrics
func RegisterCounterVecs(opts ...CounterVecOpts) {
	mutex.Lock()
	defer mutex.Unlock()
	if !initialized {
		return
	}
	for _, opt := range opts {
		if _, ok := counterVecs[opt.Name]; ok {
			continue
		}
		vec := prometheus.NewCounterVec(opt.CounterOpts, opt.Labels)
		if err := registerer.Register(vec); err != nil {
			log.Errorf("failed to register counter vec %s: %v", opt.Name, err)
			continue
		}
		counterVecs[opt.Name] = vec
	}
}

// GetGauge returns the gauge registered under name
func GetGauge(name string) (prometheus.Gauge, bool) {
	mutex.RLock()
	defer mutex.RUnlock()
	g, ok := gauges[name]
	return g, ok
}

// GetCounter returns the counter registered under name
func GetCounter(name string) (prometheus.Counter, bool) {
	mutex.RLock()
	defer mutex.RUnlock()
	c, ok := counters[name]
	return c, ok
}

// GetCounterVec returns the labelled counter registered under name
func GetCounterVec(name string) (*prometheus.CounterVec, bool) {
	mutex.RLock()
	defer mutex.RUnlock()
	c, ok := counterVecs[name]
	return c, ok
}

// GaugeSet sets the value of the gauge
func GaugeSet(name string, value float64) {
	if g, ok := GetGauge(name); ok {
		g.Set(value)
	}
}

// GaugeInc increments the gauge
func GaugeInc(name string) {
	if g, ok := GetGauge(name); ok {
		g.Inc()
	}
}

// CounterInc increments the counter
func CounterInc(name string) {
	if c, ok := GetCounter(name); ok {
		c.Inc()
	}
}

// CounterVecInc increments the counter with the given label values
func CounterVecInc(name string, labelValues ...string) {
	c, ok := GetCounterVec(name)
	if !ok {
		return
	}
	counter, err := c.GetMetricWithLabelValues(labelValues...)
	if err != nil {
		log.Errorf("invalid labels %v for counter %s: %v", labelValues, name, err)
		return
	}
	counter.Inc()
}
