package snap_test

import (
	"testing"

	"lintang/jalanx/pkg/datastructure"
	"lintang/jalanx/pkg/snap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSnapMap(t *testing.T) *datastructure.StreetMap {
	t.Helper()
	sm, err := datastructure.NewStreetMap(4, 2)
	require.NoError(t, err)

	require.NoError(t, sm.AddWay(0, "Jalan Diponegoro", 40, false, []int32{0, 1}))
	require.NoError(t, sm.AddWay(1, "Jalan Ahmad Yani", 40, false, []int32{2, 3}))

	require.NoError(t, sm.AddNode(0, -7.5600, 110.8200, []int32{0}))
	require.NoError(t, sm.AddNode(1, -7.5605, 110.8210, []int32{0}))
	require.NoError(t, sm.AddNode(2, -7.6000, 110.9000, []int32{1}))
	require.NoError(t, sm.AddNode(3, -7.6010, 110.9010, []int32{1}))
	return sm
}

func TestSnapToNode(t *testing.T) {
	sm := buildSnapMap(t)
	idx := snap.NewNodeIndex(sm)

	t.Run("snaps to the closest node", func(t *testing.T) {
		nodeID, err := idx.SnapToNode(-7.5601, 110.8201)
		require.NoError(t, err)
		assert.Equal(t, int32(0), nodeID)

		nodeID, err = idx.SnapToNode(-7.6009, 110.9009)
		require.NoError(t, err)
		assert.Equal(t, int32(3), nodeID)
	})

	t.Run("exact node coordinate snaps to itself", func(t *testing.T) {
		nodeID, err := idx.SnapToNode(-7.5605, 110.8210)
		require.NoError(t, err)
		assert.Equal(t, int32(1), nodeID)
	})
}

func TestNearbyWays(t *testing.T) {
	sm := buildSnapMap(t)
	idx := snap.NewWayIndex(sm)

	t.Run("closest way first", func(t *testing.T) {
		nearby := idx.NearbyWays(-7.5602, 110.8205, 20)
		require.NotEmpty(t, nearby)
		assert.Equal(t, int32(0), nearby[0].WayID)
	})

	t.Run("far query widens until it finds something", func(t *testing.T) {
		nearby := idx.NearbyWays(-7.6500, 110.9500, 100)
		assert.NotEmpty(t, nearby)
	})
}
