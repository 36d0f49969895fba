package routingalgorithm

import (
	"errors"
	"math"

	"lintang/jalanx/pkg/datastructure"
	"lintang/jalanx/pkg/geo"
	"lintang/jalanx/pkg/util"
)

type StreetGraph interface {
	NodeByID(id int32) (*datastructure.Node, error)
	WayByID(id int32) (*datastructure.Way, error)
	NumNodes() int
}

type RouteAlgorithm struct {
	graph StreetGraph
}

func NewRouteAlgorithm(graph StreetGraph) *RouteAlgorithm {
	return &RouteAlgorithm{graph: graph}
}

// ShortestPath dijkstra dari from ke to di atas adjacency way/node: neighbor
// dari node u = predecessor & successor dari posisi u di geometry list tiap way
// yang memuat u. Edge arah predecessor di-skip untuk way one-way. Edge weight =
// haversine(u,v) / maxspeed * 60 (menit).
//
// Return (path, eta menit, found, err). Unreachable bukan error: found=false,
// err=nil. Node id yang tidak ada di graph -> err (lookup error).
// Tiap pemanggilan punya heap & scratch state sendiri, aman dipakai concurrent
// selama graph-nya sudah tidak dimutasi.
func (ra *RouteAlgorithm) ShortestPath(from, to int32) ([]int32, float64, bool, error) {
	if _, err := ra.graph.NodeByID(from); err != nil {
		return nil, 0, false, err
	}
	if _, err := ra.graph.NodeByID(to); err != nil {
		return nil, 0, false, err
	}
	if from == to {
		return []int32{from}, 0, true, nil
	}

	numNodes := ra.graph.NumNodes()
	dist := make([]float64, numNodes)
	visited := make([]bool, numNodes)
	parent := make([]int32, numNodes)
	for i := 0; i < numNodes; i++ {
		dist[i] = math.Inf(1)
		parent[i] = -1
	}

	pq := datastructure.NewMinHeap(numNodes)
	pq.Insert(from, 0.0)
	dist[from] = 0.0

	for pq.Size() > 0 {
		entry, err := pq.ExtractMin()
		if err != nil {
			break
		}
		u := entry.NodeID
		visited[u] = true
		if u == to {
			break
		}

		ra.relaxNeighbors(u, dist, visited, parent, pq)
	}

	if parent[to] == -1 {
		return nil, 0, false, nil
	}

	path, err := ra.walkBack(from, to, parent, numNodes)
	if err != nil {
		return nil, 0, false, err
	}
	return path, dist[to], true, nil
}

func (ra *RouteAlgorithm) relaxNeighbors(u int32, dist []float64, visited []bool,
	parent []int32, pq *datastructure.MinHeap) {

	uNode, _ := ra.graph.NodeByID(u)
	uLoc := geo.NewLocation(uNode.Lat, uNode.Lon)

	for _, wayID := range uNode.WayIDs {
		way, err := ra.graph.WayByID(wayID)
		if err != nil {
			continue
		}
		nodeIndex := way.IndexOfNode(u)
		if nodeIndex < 0 {
			continue
		}

		for offset := -1; offset <= 1; offset += 2 {
			// one-way: cuma boleh maju mengikuti urutan geometry
			if way.OneWay && offset < 0 {
				continue
			}
			neighborIndex := nodeIndex + offset
			if neighborIndex < 0 || neighborIndex >= len(way.NodeIDs) {
				continue
			}

			v := way.NodeIDs[neighborIndex]
			if visited[v] || math.IsInf(dist[u], 1) {
				continue
			}

			vNode, err := ra.graph.NodeByID(v)
			if err != nil {
				continue
			}
			alt := dist[u] + geo.HaversineDistance(uLoc, geo.NewLocation(vNode.Lat, vNode.Lon))/way.MaxSpeed*60

			if alt < dist[v] {
				dist[v] = alt
				parent[v] = u
				if !pq.Contains(v) {
					pq.Insert(v, alt)
				} else {
					pq.DecreaseKey(v, alt)
				}
			}
		}
	}
}

// walkBack telusuri parent pointer dari to sampai from, lalu reverse.
func (ra *RouteAlgorithm) walkBack(from, to int32, parent []int32, numNodes int) ([]int32, error) {
	path := make([]int32, 0, 16)
	at := to
	for at != -1 {
		if len(path) > numNodes {
			return nil, errors.New("cycle detected during path reconstruction")
		}
		path = append(path, at)
		at = parent[at]
	}
	if path[len(path)-1] != from {
		return nil, errors.New("path reconstruction did not reach the start node")
	}
	util.ReverseG(path)
	return path, nil
}
