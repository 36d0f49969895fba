package snap

import (
	"lintang/jalanx/pkg/datastructure"
	"lintang/jalanx/pkg/geo"

	"github.com/golang/geo/s2"
	"github.com/uber/h3-go/v4"
	"golang.org/x/exp/slices"
)

const h3Resolution = 9

// NearbyWay satu kandidat way di sekitar sebuah koordinat.
type NearbyWay struct {
	WayID int32
	Dist  float64 // km dari koordinat query ke proyeksi di way
}

// WayIndex in-memory h3 index: cell resolusi 9 dari center tiap way -> way ids.
// Query melebar pakai GridDisk sampai ketemu kandidat.
type WayIndex struct {
	cells map[string][]int32
	graph *datastructure.StreetMap
}

func NewWayIndex(sm *datastructure.StreetMap) *WayIndex {
	cells := make(map[string][]int32)
	for id := int32(0); id < int32(sm.NumWays()); id++ {
		way, err := sm.WayByID(id)
		if err != nil || len(way.NodeIDs) == 0 {
			continue
		}
		first, errFirst := sm.NodeByID(way.NodeIDs[0])
		last, errLast := sm.NodeByID(way.NodeIDs[len(way.NodeIDs)-1])
		if errFirst != nil || errLast != nil {
			continue
		}
		centerLat, centerLon := geo.MidPoint(first.Lat, first.Lon, last.Lat, last.Lon)

		cell := h3.LatLngToCell(h3.NewLatLng(centerLat, centerLon), h3Resolution)
		cells[cell.String()] = append(cells[cell.String()], id)
	}
	return &WayIndex{cells: cells, graph: sm}
}

// NearbyWays cari way di cell sekitar (lat,lon), diurutkan dari yang paling
// dekat. maxRings membatasi pelebaran GridDisk.
func (idx *WayIndex) NearbyWays(lat, lon float64, maxRings int) []NearbyWay {
	home := h3.NewLatLng(lat, lon)
	origin := h3.LatLngToCell(home, h3Resolution)

	candidates := []int32{}
	for ring := 0; ring <= maxRings && len(candidates) == 0; ring++ {
		for _, cell := range h3.GridDisk(origin, ring) {
			candidates = append(candidates, idx.cells[cell.String()]...)
		}
	}

	nearby := make([]NearbyWay, 0, len(candidates))
	seen := make(map[int32]bool, len(candidates))
	for _, wayID := range candidates {
		if seen[wayID] {
			continue
		}
		seen[wayID] = true
		nearby = append(nearby, NearbyWay{
			WayID: wayID,
			Dist:  idx.distToWay(lat, lon, wayID),
		})
	}

	slices.SortFunc(nearby, func(a, b NearbyWay) int {
		switch {
		case a.Dist < b.Dist:
			return -1
		case a.Dist > b.Dist:
			return 1
		default:
			return 0
		}
	})
	return nearby
}

// distToWay proyeksikan (lat,lon) ke tiap ruas geometry way pakai s2, ambil
// jarak haversine terkecil ke titik proyeksinya.
func (idx *WayIndex) distToWay(lat, lon float64, wayID int32) float64 {
	way, err := idx.graph.WayByID(wayID)
	if err != nil {
		return 0
	}
	queryLoc := geo.NewLocation(lat, lon)
	queryS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))

	best := -1.0
	for i := 0; i < len(way.NodeIDs)-1; i++ {
		a, errA := idx.graph.NodeByID(way.NodeIDs[i])
		b, errB := idx.graph.NodeByID(way.NodeIDs[i+1])
		if errA != nil || errB != nil {
			continue
		}
		aS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lon))
		bS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lon))
		projection := s2.Project(queryS2, aS2, bS2)
		projLatLng := s2.LatLngFromPoint(projection)

		d := geo.HaversineDistance(queryLoc,
			geo.NewLocation(projLatLng.Lat.Degrees(), projLatLng.Lng.Degrees()))
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		// way dengan satu node: fallback ke jarak node-nya
		if n, err := idx.graph.NodeByID(way.NodeIDs[0]); err == nil {
			return geo.HaversineDistance(queryLoc, geo.NewLocation(n.Lat, n.Lon))
		}
		return 0
	}
	return best
}
