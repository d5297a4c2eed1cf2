package report

import (
	"testing"

	"github.com/alexiusacademia/acibeam/internal/beam"
	"github.com/alexiusacademia/acibeam/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexureSummary(t *testing.T) {
	s := sampleSection()

	t.Run("minimum steel governs", func(t *testing.T) {
		res := beam.Flexure(s, 0)
		summary := FlexureSummary(FaceBottom, res)
		checklist := FlexureChecklist(FaceBottom, res)

		assert.Equal(t, CriterionMinSteel, summary.GoverningCriterion)
		assert.Equal(t, StateComplies, summary.State)
		assert.False(t, summary.DuctilityAlert)
		assert.Equal(t, 4.6, summary.AsDesign)
		require.Len(t, checklist, 2)
		assert.Equal(t, StateComplies, checklist[0].State)
	})

	t.Run("moment demand governs", func(t *testing.T) {
		res := beam.Flexure(s, 150)
		summary := FlexureSummary(FaceBottom, res)

		assert.Greater(t, res.AsDesign, res.AsMin)
		assert.Equal(t, CriterionDemand, summary.GoverningCriterion)
		assert.Contains(t, []string{StateComplies, StateWarning}, summary.State)
		assert.Equal(t, 0.9, summary.Phi)
	})

	t.Run("low ductility", func(t *testing.T) {
		var warned beam.FlexureResult
		for mu := 200.0; mu < 1000; mu += 10 {
			if res := beam.Flexure(s, mu); res.StatusCode == trace.StatusWarning {
				warned = res
				break
			}
		}
		require.Equal(t, trace.StatusWarning, warned.StatusCode)

		checklist := FlexureChecklist(FaceBottom, warned)
		assert.Equal(t, StateWarning, checklist[1].State)
		assert.True(t, FlexureSummary(FaceBottom, warned).DuctilityAlert)
	})

	t.Run("overloaded", func(t *testing.T) {
		res := beam.Flexure(s, 1000)
		summary := FlexureSummary(FaceBottom, res)
		checklist := FlexureChecklist(FaceBottom, res)

		assert.Equal(t, StateFails, summary.State)
		assert.Equal(t, CriterionOverloaded, summary.GoverningCriterion)
		require.Len(t, checklist, 3)
		assert.Equal(t, "phiMn_quadratic_discriminant", checklist[2].Formula)
		assert.Equal(t, StateFails, checklist[1].State)
	})
}

func TestRound(t *testing.T) {
	assert.Equal(t, 5.98, round(5.97972, 3))
	assert.Equal(t, 0.00433, round(0.0043331, 5))
}
