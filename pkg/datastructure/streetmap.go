package datastructure

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCount = errors.New("node count and way count must be positive")
	ErrNodeNotFound = errors.New("node not found")
	ErrWayNotFound  = errors.New("way not found")
)

// Coordinate pasangan lat/lon derajat.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Node satu titik/intersection di road network.
type Node struct {
	ID     int32
	Lat    float64
	Lon    float64
	WayIDs []int32
}

// Way satu ruas jalan. NodeIDs urut dari ujung awal ke ujung akhir way,
// one-way traversal cuma boleh mengikuti urutan NodeIDs.
type Way struct {
	ID       int32
	Name     string
	MaxSpeed float64 // km/h
	OneWay   bool
	NodeIDs  []int32
}

// IndexOfNode returns the position of nodeID in the way geometry, -1 if absent.
func (w *Way) IndexOfNode(nodeID int32) int {
	for i, id := range w.NodeIDs {
		if id == nodeID {
			return i
		}
	}
	return -1
}

// StreetMap dense arena untuk semua node & way. Entity di-refer pakai int32 id,
// immutable setelah semua AddWay/AddNode selesai.
type StreetMap struct {
	nodes []*Node
	ways  []*Way
}

func NewStreetMap(nodeCount, wayCount int) (*StreetMap, error) {
	if nodeCount <= 0 || wayCount <= 0 {
		return nil, ErrInvalidCount
	}
	return &StreetMap{
		nodes: make([]*Node, nodeCount),
		ways:  make([]*Way, wayCount),
	}, nil
}

func (sm *StreetMap) NumNodes() int { return len(sm.nodes) }
func (sm *StreetMap) NumWays() int  { return len(sm.ways) }

// AddWay insert way di slot id. nodeIDs dicopy biar arena punya slice sendiri.
func (sm *StreetMap) AddWay(id int32, name string, maxSpeed float64, oneWay bool, nodeIDs []int32) error {
	if id < 0 || int(id) >= len(sm.ways) {
		return fmt.Errorf("way %d: %w", id, ErrWayNotFound)
	}
	geometry := make([]int32, len(nodeIDs))
	copy(geometry, nodeIDs)
	sm.ways[id] = &Way{
		ID:       id,
		Name:     name,
		MaxSpeed: maxSpeed,
		OneWay:   oneWay,
		NodeIDs:  geometry,
	}
	return nil
}

// AddNode insert node di slot id. Semua wayIDs harus sudah di-AddWay sebelumnya.
func (sm *StreetMap) AddNode(id int32, lat, lon float64, wayIDs []int32) error {
	if id < 0 || int(id) >= len(sm.nodes) {
		return fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	memberOf := make([]int32, len(wayIDs))
	for i, wayID := range wayIDs {
		if _, err := sm.WayByID(wayID); err != nil {
			return err
		}
		memberOf[i] = wayID
	}
	sm.nodes[id] = &Node{
		ID:     id,
		Lat:    lat,
		Lon:    lon,
		WayIDs: memberOf,
	}
	return nil
}

func (sm *StreetMap) NodeByID(id int32) (*Node, error) {
	if id < 0 || int(id) >= len(sm.nodes) || sm.nodes[id] == nil {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	return sm.nodes[id], nil
}

func (sm *StreetMap) WayByID(id int32) (*Way, error) {
	if id < 0 || int(id) >= len(sm.ways) || sm.ways[id] == nil {
		return nil, fmt.Errorf("way %d: %w", id, ErrWayNotFound)
	}
	return sm.ways[id], nil
}

// FindWaysByName substring search (case-sensitive) atas nama way, ascending id.
func (sm *StreetMap) FindWaysByName(name string) []int32 {
	matches := []int32{}
	for _, w := range sm.ways {
		if w != nil && strings.Contains(w.Name, name) {
			matches = append(matches, w.ID)
		}
	}
	return matches
}

// FindNodesByWayNames cari node yang terhubung ke way dengan nama mengandung
// name1. Kalau name2 != "", node juga harus terhubung ke way *lain* (id beda)
// yang namanya mengandung name2.
func (sm *StreetMap) FindNodesByWayNames(name1, name2 string) []int32 {
	matchesName1 := make(map[int32]bool)
	matchesName2 := make(map[int32]bool)
	for _, w := range sm.ways {
		if w == nil {
			continue
		}
		if strings.Contains(w.Name, name1) {
			matchesName1[w.ID] = true
		}
		if name2 != "" && strings.Contains(w.Name, name2) {
			matchesName2[w.ID] = true
		}
	}

	nodeIDs := []int32{}
	for _, n := range sm.nodes {
		if n == nil {
			continue
		}
		if name2 == "" {
			for _, wayID := range n.WayIDs {
				if matchesName1[wayID] {
					nodeIDs = append(nodeIDs, n.ID)
					break
				}
			}
			continue
		}

		qualifies := false
		for _, first := range n.WayIDs {
			if !matchesName1[first] {
				continue
			}
			for _, second := range n.WayIDs {
				if second != first && matchesName2[second] {
					qualifies = true
					break
				}
			}
			if qualifies {
				break
			}
		}
		if qualifies {
			nodeIDs = append(nodeIDs, n.ID)
		}
	}
	return nodeIDs
}
