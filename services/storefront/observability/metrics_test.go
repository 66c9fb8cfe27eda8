// Copyright (C) 2025 ShopGrid Contributors
// Tests for the Prometheus metrics

package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// InitMetrics registers against the default registry, so it may run only
// once per test binary. All tests share this instance.
var testMetrics = InitMetrics()

func TestInitMetrics_SetsSingleton(t *testing.T) {
	require.NotNil(t, testMetrics)
	assert.Same(t, testMetrics, DefaultMetrics)
}

func TestRecordRequest_IncrementsCounter(t *testing.T) {
	before := testutil.ToFloat64(testMetrics.RequestsTotal.WithLabelValues("/v1/users", "GET", "2xx"))

	testMetrics.RecordRequest("/v1/users", "GET", "2xx", 0.002)
	testMetrics.RecordRequest("/v1/users", "GET", "2xx", 0.004)

	after := testutil.ToFloat64(testMetrics.RequestsTotal.WithLabelValues("/v1/users", "GET", "2xx"))
	assert.Equal(t, before+2, after)
}

func TestRecordMutation_IncrementsCounter(t *testing.T) {
	before := testutil.ToFloat64(testMetrics.MutationsTotal.WithLabelValues("orders", "create"))

	testMetrics.RecordMutation("orders", "create")

	after := testutil.ToFloat64(testMetrics.MutationsTotal.WithLabelValues("orders", "create"))
	assert.Equal(t, before+1, after)
}

func TestSetEntityCount_SetsGauge(t *testing.T) {
	testMetrics.SetEntityCount("users", 7)
	assert.Equal(t, 7.0, testutil.ToFloat64(testMetrics.EntitiesTotal.WithLabelValues("users")))

	testMetrics.SetEntityCount("users", 3)
	assert.Equal(t, 3.0, testutil.ToFloat64(testMetrics.EntitiesTotal.WithLabelValues("users")))
}
