package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Auction outcomes used as label values.
const (
	OutcomeCompleted = "completed"
	OutcomeGap       = "gap"
	OutcomeIllegal   = "illegal"
	OutcomeTooLong   = "too_long"
	OutcomeCanceled  = "canceled"
)

// Sample is one labelled counter value.
type Sample struct {
	Label string
	Value float64
}

// Summary is a point-in-time view of the counters, grouped by metric name.
type Summary map[string][]Sample

// Summarize gathers every counter from g. Labelled counters yield one Sample
// per label value, sorted by label; plain counters yield one Sample with an
// empty label.
func Summarize(g prometheus.Gatherer) (Summary, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	out := make(Summary, len(families))
	for _, mf := range families {
		if mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		samples := make([]Sample, 0, len(mf.GetMetric()))
		for _, m := range mf.GetMetric() {
			samples = append(samples, Sample{Label: labelOf(m), Value: m.GetCounter().GetValue()})
		}
		sort.Slice(samples, func(i, j int) bool { return samples[i].Label < samples[j].Label })
		out[mf.GetName()] = samples
	}
	return out, nil
}

func labelOf(m *dto.Metric) string {
	if len(m.GetLabel()) == 0 {
		return ""
	}
	return m.GetLabel()[0].GetValue()
}

// Total returns the sum of every sample of the named counter.
func (s Summary) Total(name string) float64 {
	total := 0.0
	for _, sample := range s[name] {
		total += sample.Value
	}
	return total
}
