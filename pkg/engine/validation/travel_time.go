package validation

import (
	"lintang/jalanx/pkg/datastructure"
	"lintang/jalanx/pkg/geo"
)

type StreetGraph interface {
	NodeByID(id int32) (*datastructure.Node, error)
	WayByID(id int32) (*datastructure.Way, error)
}

// PathValidator check apakah sequence node id membentuk traversal yang legal
// di road network, lalu hitung travel time-nya.
type PathValidator struct {
	graph StreetGraph
}

func NewPathValidator(graph StreetGraph) *PathValidator {
	return &PathValidator{graph: graph}
}

// TravelTime validasi nodeIDs dengan 5 rule class, urut & fail fast per class:
//  1. semua node id harus ada di graph
//  2. tidak boleh ada node id duplikat
//  3. tiap pasangan berurutan harus share minimal satu way
//  4. pasangan itu harus bersebelahan di geometry list way-nya
//  5. arah traversal harus diizinkan (one-way cuma boleh searah geometry)
//
// Kalau semua lolos, return total travel time dalam menit:
// sum( distance(current,next) / maxspeed ) * 60.
func (pv *PathValidator) TravelTime(nodeIDs []int32) (float64, error) {
	// rule 1: node existence
	for _, id := range nodeIDs {
		if _, err := pv.graph.NodeByID(id); err != nil {
			return 0, &PathError{Kind: KindUnknownNode, NodeA: id, NodeB: -1}
		}
	}

	// rule 2: no repeated node
	for i := range nodeIDs {
		for j := range nodeIDs {
			if i != j && nodeIDs[i] == nodeIDs[j] {
				return 0, &PathError{Kind: KindDuplicateNode, NodeA: nodeIDs[i], NodeB: -1}
			}
		}
	}

	// rule 3: consecutive pair shares a way
	for i := 0; i < len(nodeIDs)-1; i++ {
		current, next := nodeIDs[i], nodeIDs[i+1]
		if !pv.pairSatisfies(current, next, sharesWay) {
			return 0, &PathError{Kind: KindNoRoad, NodeA: current, NodeB: next}
		}
	}

	// rule 4: pair occupies adjacent positions in some shared way geometry
	for i := 0; i < len(nodeIDs)-1; i++ {
		current, next := nodeIDs[i], nodeIDs[i+1]
		if !pv.pairSatisfies(current, next, adjacentInWay) {
			return 0, &PathError{Kind: KindNotAdjacent, NodeA: current, NodeB: next}
		}
	}

	// rule 5: direction of travel is permitted
	for i := 0; i < len(nodeIDs)-1; i++ {
		current, next := nodeIDs[i], nodeIDs[i+1]
		if !pv.pairSatisfies(current, next, directionPermitted) {
			return 0, &PathError{Kind: KindWrongDirection, NodeA: current, NodeB: next}
		}
	}

	travelTime := 0.0
	for i := 0; i < len(nodeIDs)-1; i++ {
		current, next := nodeIDs[i], nodeIDs[i+1]
		way := pv.connectingWay(current, next)

		currentNode, _ := pv.graph.NodeByID(current)
		nextNode, _ := pv.graph.NodeByID(next)
		dist := geo.HaversineDistance(
			geo.NewLocation(currentNode.Lat, currentNode.Lon),
			geo.NewLocation(nextNode.Lat, nextNode.Lon),
		)
		travelTime += dist / way.MaxSpeed
	}
	return travelTime * 60, nil
}

type pairRule func(way *datastructure.Way, current, next int32) bool

func sharesWay(way *datastructure.Way, current, next int32) bool {
	return true
}

func adjacentInWay(way *datastructure.Way, current, next int32) bool {
	for l := 0; l < len(way.NodeIDs)-1; l++ {
		if (way.NodeIDs[l] == current && way.NodeIDs[l+1] == next) ||
			(way.NodeIDs[l] == next && way.NodeIDs[l+1] == current) {
			return true
		}
	}
	return false
}

func directionPermitted(way *datastructure.Way, current, next int32) bool {
	for l := 0; l < len(way.NodeIDs)-1; l++ {
		if way.NodeIDs[l] == current && way.NodeIDs[l+1] == next {
			return true
		}
		if !way.OneWay && way.NodeIDs[l] == next && way.NodeIDs[l+1] == current {
			return true
		}
	}
	return false
}

// pairSatisfies scan way list dari current (outer) lawan way list dari next
// (inner), urutan scan ini yang menentukan way mana yang "menghubungkan"
// sepasang node kalau ada lebih dari satu kandidat.
func (pv *PathValidator) pairSatisfies(current, next int32, rule pairRule) bool {
	currentNode, _ := pv.graph.NodeByID(current)
	nextNode, _ := pv.graph.NodeByID(next)

	for _, wayID := range currentNode.WayIDs {
		for _, otherWayID := range nextNode.WayIDs {
			if wayID != otherWayID {
				continue
			}
			way, _ := pv.graph.WayByID(wayID)
			if rule(way, current, next) {
				return true
			}
		}
	}
	return false
}

// connectingWay way pertama (dalam urutan scan pairSatisfies) yang mengizinkan
// traversal current -> next. Dipanggil setelah rule 1-5 lolos, jadi selalu ada.
func (pv *PathValidator) connectingWay(current, next int32) *datastructure.Way {
	currentNode, _ := pv.graph.NodeByID(current)
	nextNode, _ := pv.graph.NodeByID(next)

	for _, wayID := range currentNode.WayIDs {
		for _, otherWayID := range nextNode.WayIDs {
			if wayID != otherWayID {
				continue
			}
			way, _ := pv.graph.WayByID(wayID)
			if directionPermitted(way, current, next) {
				return way
			}
		}
	}
	return nil
}
