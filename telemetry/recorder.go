package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Recorder is the decode-time metrics contract. Every method is a single
// point-in-time event; none of them can affect the decoded sequence.
type Recorder interface {
	// IncCapacityExhausted counts a line whose state enumeration hit
	// maxStates (the soft CapacityExhausted condition, §7).
	IncCapacityExhausted()
	// IncNonProgress counts a streaming loop iteration that terminated
	// early because endLine <= pos (the soft NonProgress condition, §7).
	IncNonProgress()
	// ObserveWindow records one decoded streaming window's line count.
	ObserveWindow(lines int)
	// ObserveRecord records one assembled record's entity count.
	ObserveRecord(entities int)
}

// NopRecorder discards every event. It is the default Recorder everywhere
// in fieldlattice.
type NopRecorder struct{}

func (NopRecorder) IncCapacityExhausted()    {}
func (NopRecorder) IncNonProgress()          {}
func (NopRecorder) ObserveWindow(int)        {}
func (NopRecorder) ObserveRecord(int)        {}

// promRecorder adapts a handful of prometheus collectors to Recorder.
type promRecorder struct {
	capacityExhausted prometheus.Counter
	nonProgress       prometheus.Counter
	windowLines       prometheus.Histogram
	recordEntities    prometheus.Histogram
}

// NewPrometheusRecorder registers fieldlattice's decode metrics against
// reg and returns a Recorder backed by them. Pass a fresh
// *prometheus.Registry (or prometheus.DefaultRegisterer) the way
// NewAppMetrics registers its collectors against a MetricsCollector.
func NewPrometheusRecorder(reg prometheus.Registerer) Recorder {
	r := &promRecorder{
		capacityExhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fieldlattice_capacity_exhausted_total",
			Help: "Lines whose state enumeration hit the maxStates cap.",
		}),
		nonProgress: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fieldlattice_non_progress_total",
			Help: "Streaming loop iterations that terminated for lack of progress.",
		}),
		windowLines: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fieldlattice_window_lines",
			Help:    "Number of lines decoded per streaming window.",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
		}),
		recordEntities: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fieldlattice_record_entities",
			Help:    "Number of entities per assembled record.",
			Buckets: []float64{1, 2, 3, 5, 8, 13},
		}),
	}
	reg.MustRegister(r.capacityExhausted, r.nonProgress, r.windowLines, r.recordEntities)
	return r
}

func (r *promRecorder) IncCapacityExhausted() { r.capacityExhausted.Inc() }
func (r *promRecorder) IncNonProgress()       { r.nonProgress.Inc() }
func (r *promRecorder) ObserveWindow(lines int) {
	r.windowLines.Observe(float64(lines))
}
func (r *promRecorder) ObserveRecord(entities int) {
	r.recordEntities.Observe(float64(entities))
}
