package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.SOSSubmitted.WithLabelValues("live").Inc()
	a.OfflineQueueDepth.Set(3)

	assert.InDelta(t, 1, testutil.ToFloat64(a.SOSSubmitted.WithLabelValues("live")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.SOSSubmitted.WithLabelValues("live")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(a.OfflineQueueDepth), 0)
}
