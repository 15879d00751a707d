package logger

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveFetch(t *testing.T) {
	m := NewMetrics()

	m.ObserveFetch(100*time.Millisecond, true)
	m.ObserveFetch(200*time.Millisecond, true)
	m.ObserveFetch(50*time.Millisecond, false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.pagesFetched))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fetchFailures))
	assert.Equal(t, 1, testutil.CollectAndCount(m.fetchDuration))
}

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()

	m.ObserveFetch(250*time.Millisecond, true)
	m.AddRecords(25)
	m.AddRecords(3)

	snapshot, err := m.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, 1.0, snapshot["hockey_stats_pages_fetched_total"])
	assert.Equal(t, 0.0, snapshot["hockey_stats_fetch_failures_total"])
	assert.Equal(t, 28.0, snapshot["hockey_stats_records_parsed_total"])
	assert.Equal(t, 1.0, snapshot["hockey_stats_fetch_duration_seconds_count"])
	assert.InDelta(t, 0.25, snapshot["hockey_stats_fetch_duration_seconds_sum"], 1e-9)
}

func TestMetrics_Independent(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.AddRecords(5)

	assert.Equal(t, 5.0, testutil.ToFloat64(a.recordsParsed))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.recordsParsed))
}
