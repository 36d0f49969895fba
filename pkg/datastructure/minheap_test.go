package datastructure_test

import (
	"math/rand"
	"testing"

	"lintang/jalanx/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeap(t *testing.T) {
	t.Run("extract min returns entries in non-decreasing order", func(t *testing.T) {
		h := datastructure.NewMinHeap(64)
		rng := rand.New(rand.NewSource(42))
		for i := int32(0); i < 64; i++ {
			h.Insert(i, rng.Float64()*1000)
		}

		prev := -1.0
		for h.Size() > 0 {
			entry, err := h.ExtractMin()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, entry.Dist, prev)
			prev = entry.Dist
		}
	})

	t.Run("extract min on empty heap", func(t *testing.T) {
		h := datastructure.NewMinHeap(4)
		_, err := h.ExtractMin()
		assert.ErrorIs(t, err, datastructure.ErrHeapEmpty)
	})

	t.Run("insert past capacity is a no-op", func(t *testing.T) {
		h := datastructure.NewMinHeap(2)
		h.Insert(0, 1.0)
		h.Insert(1, 2.0)
		h.Insert(2, 0.5)
		assert.Equal(t, 2, h.Size())
		assert.False(t, h.Contains(2))

		entry, err := h.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, int32(0), entry.NodeID)
	})

	t.Run("contains tracks membership across extract", func(t *testing.T) {
		h := datastructure.NewMinHeap(8)
		h.Insert(3, 5.0)
		h.Insert(7, 1.0)
		assert.True(t, h.Contains(3))
		assert.True(t, h.Contains(7))

		entry, err := h.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, int32(7), entry.NodeID)
		assert.False(t, h.Contains(7))
		assert.True(t, h.Contains(3))
	})

	t.Run("decrease key moves entry to the front", func(t *testing.T) {
		h := datastructure.NewMinHeap(8)
		h.Insert(0, 10.0)
		h.Insert(1, 20.0)
		h.Insert(2, 30.0)

		err := h.DecreaseKey(2, 5.0)
		require.NoError(t, err)

		entry, err := h.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, int32(2), entry.NodeID)
		assert.Equal(t, 5.0, entry.Dist)
	})

	t.Run("decrease key on absent node", func(t *testing.T) {
		h := datastructure.NewMinHeap(8)
		h.Insert(0, 10.0)
		assert.Error(t, h.DecreaseKey(9, 1.0))
	})

	t.Run("heap order holds after mixed operations", func(t *testing.T) {
		h := datastructure.NewMinHeap(128)
		rng := rand.New(rand.NewSource(7))
		inHeap := map[int32]float64{}
		for i := int32(0); i < 128; i++ {
			d := rng.Float64() * 500
			h.Insert(i, d)
			inHeap[i] = d
		}
		for i := int32(0); i < 128; i += 3 {
			newDist := inHeap[i] / 2
			_ = h.DecreaseKey(i, newDist)
			inHeap[i] = newDist
		}
		for i := 0; i < 40; i++ {
			_, err := h.ExtractMin()
			require.NoError(t, err)
		}

		prev := -1.0
		for h.Size() > 0 {
			entry, err := h.ExtractMin()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, entry.Dist, prev)
			prev = entry.Dist
		}
	})
}
