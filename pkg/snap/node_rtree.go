package snap

import (
	"errors"

	"lintang/jalanx/pkg/datastructure"
	"lintang/jalanx/pkg/geo"

	"github.com/dhconnelly/rtreego"
)

var tol = 0.0001

type nodeRect struct {
	Location rtreego.Point
	NodeID   int32
}

func (n *nodeRect) Bounds() rtreego.Rect {
	// rectangle kecil di sekitar titik node, side length 2*tol
	return n.Location.ToRect(tol)
}

// NodeIndex rtree atas semua node di StreetMap, buat snap koordinat lat/lon
// user ke node id road network terdekat.
type NodeIndex struct {
	tree *rtreego.Rtree
}

func NewNodeIndex(sm *datastructure.StreetMap) *NodeIndex {
	tree := rtreego.NewTree(2, 25, 50)
	for id := int32(0); id < int32(sm.NumNodes()); id++ {
		node, err := sm.NodeByID(id)
		if err != nil {
			continue
		}
		tree.Insert(&nodeRect{
			Location: rtreego.Point{node.Lat, node.Lon},
			NodeID:   node.ID,
		})
	}
	return &NodeIndex{tree: tree}
}

// SnapToNode ambil beberapa kandidat nearest neighbor dari rtree lalu pilih
// yang haversine distance-nya paling kecil.
func (idx *NodeIndex) SnapToNode(lat, lon float64) (int32, error) {
	wantToSnap := rtreego.Point{lat, lon}
	neighbors := idx.tree.NearestNeighbors(5, wantToSnap)

	wantLoc := geo.NewLocation(lat, lon)
	best := -1
	bestDist := 0.0
	for i, neighbor := range neighbors {
		if neighbor == nil {
			continue
		}
		candidate := neighbor.(*nodeRect)
		candidateLoc := geo.NewLocation(candidate.Location[0], candidate.Location[1])
		d := geo.HaversineDistance(wantLoc, candidateLoc)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best == -1 {
		return 0, errors.New("no road network node near the given location")
	}
	return neighbors[best].(*nodeRect).NodeID, nil
}
