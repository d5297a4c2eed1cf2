package metrics

import (
	"bytes"
	"testing"

	"github.com/alexiusacademia/acibeam/internal/trace"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	r.RecordCheck("Shear", trace.StatusOK)
	r.RecordCheck("Shear", trace.StatusOK)
	r.RecordCheck("Torsion", trace.StatusWarning)
	r.ObserveFlexureIterations(1)
	r.ObserveFlexureIterations(10)
	r.ObserveFlexureIterations(0)
	r.RecordReport()

	assert.Equal(t, 2.0, r.Count("Shear", trace.StatusOK))
	assert.Equal(t, 1.0, r.Count("Torsion", trace.StatusWarning))
	assert.Equal(t, 0.0, r.Count("Torsion", trace.StatusError))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.ChecksTotal.WithLabelValues("Shear", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ReportsTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(r.FlexureIterations))

	assert.ElementsMatch(t, []string{"Shear ok=2", "Torsion warning=1"}, r.Summary())
}

func TestRecordersAreIndependent(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	a.RecordCheck("Shear", trace.StatusOK)

	assert.Equal(t, 1.0, a.Count("Shear", trace.StatusOK))
	assert.Equal(t, 0.0, b.Count("Shear", trace.StatusOK))
}

func TestWriteText(t *testing.T) {
	r := NewRecorder()
	r.RecordCheck("Flexure (+)", trace.StatusError)
	r.ObserveFlexureIterations(3)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "# TYPE acibeam_checks_total counter")
	assert.Contains(t, out, `acibeam_checks_total{mechanism="Flexure (+)",status="error"} 1`)
	assert.Contains(t, out, "acibeam_flexure_iterations_count 1")
	assert.Contains(t, out, "acibeam_reports_total 0")
}
