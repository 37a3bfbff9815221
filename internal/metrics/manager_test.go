package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Counters(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()

	m.CounterWorkoutsRecorded.WithLabelValues(OutcomeSuccess).Inc()
	m.CounterWorkoutsRecorded.WithLabelValues(OutcomeFailure).Inc()
	m.CounterWorkoutsRecorded.WithLabelValues(OutcomeSuccess).Inc()
	m.CounterSaveDataReconciled.WithLabelValues(ReconcileCreated).Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterWorkoutsRecorded.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterWorkoutsRecorded.WithLabelValues(OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterSaveDataReconciled.WithLabelValues(ReconcileCreated)))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
