package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndHelpers(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg))
	// Re-registering is a no-op
	require.NoError(t, Register(reg))

	IncOperation("records", "ok")
	ObserveOperationDuration("records", 0.001)
	SetRecordCount(20)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, fam := range families {
		names[fam.GetName()] = true
	}
	assert.True(t, names["ocureg_graphql_operations_total"])
	assert.True(t, names["ocureg_graphql_operation_duration_seconds"])
	assert.True(t, names["ocureg_records"])
}
