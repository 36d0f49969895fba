package validation_test

import (
	"testing"

	"lintang/jalanx/pkg/datastructure"
	"lintang/jalanx/pkg/engine/validation"
	"lintang/jalanx/pkg/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 0 --w0-- 1 --w0-- 2
//          |
//         w1 (one-way 1 -> 3)
//          |
//          3
func buildValidatorMap(t *testing.T) *datastructure.StreetMap {
	t.Helper()
	sm, err := datastructure.NewStreetMap(4, 2)
	require.NoError(t, err)

	require.NoError(t, sm.AddWay(0, "Jalan Veteran", 40, false, []int32{0, 1, 2}))
	require.NoError(t, sm.AddWay(1, "Jalan Gatot Subroto", 50, true, []int32{1, 3}))

	require.NoError(t, sm.AddNode(0, -7.5700, 110.8200, []int32{0}))
	require.NoError(t, sm.AddNode(1, -7.5710, 110.8210, []int32{0, 1}))
	require.NoError(t, sm.AddNode(2, -7.5720, 110.8220, []int32{0}))
	require.NoError(t, sm.AddNode(3, -7.5730, 110.8230, []int32{1}))
	return sm
}

func kind(t *testing.T, err error) validation.ErrorKind {
	t.Helper()
	var pathErr *validation.PathError
	require.ErrorAs(t, err, &pathErr)
	return pathErr.Kind
}

func TestTravelTimeValidation(t *testing.T) {
	sm := buildValidatorMap(t)
	pv := validation.NewPathValidator(sm)

	t.Run("unknown node", func(t *testing.T) {
		_, err := pv.TravelTime([]int32{0, 99})
		assert.Equal(t, validation.KindUnknownNode, kind(t, err))
	})

	t.Run("duplicate node", func(t *testing.T) {
		_, err := pv.TravelTime([]int32{0, 1, 0})
		require.Error(t, err)
		var pathErr *validation.PathError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, validation.KindDuplicateNode, pathErr.Kind)
		assert.Equal(t, int32(0), pathErr.NodeA)
	})

	t.Run("no shared way", func(t *testing.T) {
		_, err := pv.TravelTime([]int32{0, 3})
		assert.Equal(t, validation.KindNoRoad, kind(t, err))
	})

	t.Run("shared way but not adjacent", func(t *testing.T) {
		// 0 and 2 both lie on way 0 but with node 1 between them.
		_, err := pv.TravelTime([]int32{0, 2})
		assert.Equal(t, validation.KindNotAdjacent, kind(t, err))
	})

	t.Run("one-way traversed in reverse", func(t *testing.T) {
		_, err := pv.TravelTime([]int32{3, 1})
		assert.Equal(t, validation.KindWrongDirection, kind(t, err))
	})

	t.Run("one-way traversed forward", func(t *testing.T) {
		minutes, err := pv.TravelTime([]int32{1, 3})
		require.NoError(t, err)
		assert.Greater(t, minutes, 0.0)
	})

	t.Run("two-way traversed in both geometric orders", func(t *testing.T) {
		forward, err := pv.TravelTime([]int32{0, 1, 2})
		require.NoError(t, err)
		backward, err := pv.TravelTime([]int32{2, 1, 0})
		require.NoError(t, err)
		assert.InDelta(t, forward, backward, 1e-12)
	})

	t.Run("single node path costs zero", func(t *testing.T) {
		minutes, err := pv.TravelTime([]int32{1})
		require.NoError(t, err)
		assert.Equal(t, 0.0, minutes)
	})
}

func TestTravelTimeValue(t *testing.T) {
	t.Run("speed 60 km/h cancels the minutes conversion", func(t *testing.T) {
		sm, err := datastructure.NewStreetMap(2, 1)
		require.NoError(t, err)
		require.NoError(t, sm.AddWay(0, "Equator Road", 60, false, []int32{0, 1}))
		require.NoError(t, sm.AddNode(0, 0, 0, []int32{0}))
		require.NoError(t, sm.AddNode(1, 0, 1, []int32{0}))

		pv := validation.NewPathValidator(sm)
		minutes, err := pv.TravelTime([]int32{0, 1})
		require.NoError(t, err)

		distKM := geo.HaversineDistance(geo.NewLocation(0, 0), geo.NewLocation(0, 1))
		assert.InDelta(t, distKM, minutes, 1e-9)
	})

	t.Run("connecting way tie-break is deterministic", func(t *testing.T) {
		// two ways both join nodes 0 and 1; the slow one sits first in the
		// scan order of node 0's way list and must be the one charged.
		sm, err := datastructure.NewStreetMap(2, 2)
		require.NoError(t, err)
		require.NoError(t, sm.AddWay(0, "Slow Street", 20, false, []int32{0, 1}))
		require.NoError(t, sm.AddWay(1, "Fast Street", 80, false, []int32{0, 1}))
		require.NoError(t, sm.AddNode(0, 0, 0, []int32{0, 1}))
		require.NoError(t, sm.AddNode(1, 0, 0.01, []int32{0, 1}))

		pv := validation.NewPathValidator(sm)
		minutes, err := pv.TravelTime([]int32{0, 1})
		require.NoError(t, err)

		distKM := geo.HaversineDistance(geo.NewLocation(0, 0), geo.NewLocation(0, 0.01))
		assert.InDelta(t, distKM/20*60, minutes, 1e-9)
	})
}
