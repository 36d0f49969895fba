package routingalgorithm_test

import (
	"testing"

	"lintang/jalanx/pkg/datastructure"
	"lintang/jalanx/pkg/engine/routingalgorithm"
	"lintang/jalanx/pkg/engine/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid kecil:
//
//	0 --w0-- 1 --w0-- 2
//	|                 |
//	w1 (one-way 0->3) w2
//	|                 |
//	3 -------w3------ 4        5 (terisolasi)
//
// w3 lambat, jadi rute 0->4 lebih cepat lewat 1,2 meskipun lebih panjang
// secara jumlah hop sama.
func buildRoutingMap(t *testing.T) *datastructure.StreetMap {
	t.Helper()
	sm, err := datastructure.NewStreetMap(6, 4)
	require.NoError(t, err)

	require.NoError(t, sm.AddWay(0, "Jalan Pemuda", 60, false, []int32{0, 1, 2}))
	require.NoError(t, sm.AddWay(1, "Jalan Melati", 40, true, []int32{0, 3}))
	require.NoError(t, sm.AddWay(2, "Jalan Kenanga", 60, false, []int32{2, 4}))
	require.NoError(t, sm.AddWay(3, "Gang Sempit", 5, false, []int32{3, 4}))

	require.NoError(t, sm.AddNode(0, 0.000, 0.000, []int32{0, 1}))
	require.NoError(t, sm.AddNode(1, 0.000, 0.010, []int32{0}))
	require.NoError(t, sm.AddNode(2, 0.000, 0.020, []int32{0, 2}))
	require.NoError(t, sm.AddNode(3, -0.010, 0.000, []int32{1, 3}))
	require.NoError(t, sm.AddNode(4, -0.010, 0.020, []int32{2, 3}))
	require.NoError(t, sm.AddNode(5, 0.050, 0.050, nil))
	return sm
}

func TestShortestPath(t *testing.T) {
	sm := buildRoutingMap(t)
	ra := routingalgorithm.NewRouteAlgorithm(sm)

	t.Run("same start and end", func(t *testing.T) {
		path, eta, found, err := ra.ShortestPath(2, 2)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []int32{2}, path)
		assert.Equal(t, 0.0, eta)
	})

	t.Run("unknown endpoint is a lookup error", func(t *testing.T) {
		_, _, _, err := ra.ShortestPath(0, 99)
		assert.ErrorIs(t, err, datastructure.ErrNodeNotFound)
		_, _, _, err = ra.ShortestPath(99, 0)
		assert.ErrorIs(t, err, datastructure.ErrNodeNotFound)
	})

	t.Run("straight line along one way", func(t *testing.T) {
		path, eta, found, err := ra.ShortestPath(0, 2)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []int32{0, 1, 2}, path)
		assert.Greater(t, eta, 0.0)
	})

	t.Run("avoids the slow way", func(t *testing.T) {
		path, _, found, err := ra.ShortestPath(0, 4)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []int32{0, 1, 2, 4}, path)
	})

	t.Run("one-way cannot be traversed backwards", func(t *testing.T) {
		// 3 -> 0 direct is forbidden (w1 one-way 0->3); the route must go
		// around through the slow way and the top row.
		path, _, found, err := ra.ShortestPath(3, 0)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []int32{3, 4, 2, 1, 0}, path)
	})

	t.Run("unreachable is not an error", func(t *testing.T) {
		path, eta, found, err := ra.ShortestPath(0, 5)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, path)
		assert.Equal(t, 0.0, eta)
	})

	t.Run("eta matches the validator on the produced path", func(t *testing.T) {
		path, eta, found, err := ra.ShortestPath(0, 4)
		require.NoError(t, err)
		require.True(t, found)

		pv := validation.NewPathValidator(sm)
		minutes, err := pv.TravelTime(path)
		require.NoError(t, err)
		assert.InDelta(t, eta, minutes, 1e-9)
	})
}
