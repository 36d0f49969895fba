package service

import (
	"context"
	"errors"

	"lintang/jalanx/pkg/datastructure"
	"lintang/jalanx/pkg/server"
	"lintang/jalanx/pkg/snap"
	"lintang/jalanx/pkg/util"

	"github.com/twpayne/go-polyline"
)

type StreetGraph interface {
	NodeByID(id int32) (*datastructure.Node, error)
	WayByID(id int32) (*datastructure.Way, error)
	FindWaysByName(name string) []int32
	FindNodesByWayNames(name1, name2 string) []int32
}

type RouteAlgorithm interface {
	ShortestPath(from, to int32) ([]int32, float64, bool, error)
}

type PathValidator interface {
	TravelTime(nodeIDs []int32) (float64, error)
}

type NodeSnapper interface {
	SnapToNode(lat, lon float64) (int32, error)
}

type WaySnapper interface {
	NearbyWays(lat, lon float64, maxRings int) []snap.NearbyWay
}

const nearbyWayMaxRings = 20

type StreetMapService struct {
	graph     StreetGraph
	route     RouteAlgorithm
	validator PathValidator
	nodeSnap  NodeSnapper
	waySnap   WaySnapper
}

func NewStreetMapService(graph StreetGraph, route RouteAlgorithm, validator PathValidator,
	nodeSnap NodeSnapper, waySnap WaySnapper) *StreetMapService {
	return &StreetMapService{
		graph:     graph,
		route:     route,
		validator: validator,
		nodeSnap:  nodeSnap,
		waySnap:   waySnap,
	}
}

func (uc *StreetMapService) NodeDetail(ctx context.Context, id int32) (*datastructure.Node, error) {
	node, err := uc.graph.NodeByID(id)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrNotFound, "node %d tidak ada di peta", id)
	}
	return node, nil
}

func (uc *StreetMapService) WayDetail(ctx context.Context, id int32) (*datastructure.Way, error) {
	way, err := uc.graph.WayByID(id)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrNotFound, "way %d tidak ada di peta", id)
	}
	return way, nil
}

// SearchWays cari semua way yang namanya mengandung substring name.
func (uc *StreetMapService) SearchWays(ctx context.Context, name string) ([]*datastructure.Way, error) {
	ways := []*datastructure.Way{}
	for _, id := range uc.graph.FindWaysByName(name) {
		way, err := uc.graph.WayByID(id)
		if err != nil {
			return nil, server.WrapErrorf(err, server.ErrInternalServerError, "way index rusak")
		}
		ways = append(ways, way)
	}
	return ways, nil
}

// NodesOnStreets cari node di street1, atau persimpangan street1 x street2
// kalau street2 tidak kosong.
func (uc *StreetMapService) NodesOnStreets(ctx context.Context, street1, street2 string) ([]*datastructure.Node, error) {
	nodes := []*datastructure.Node{}
	for _, id := range uc.graph.FindNodesByWayNames(street1, street2) {
		node, err := uc.graph.NodeByID(id)
		if err != nil {
			return nil, server.WrapErrorf(err, server.ErrInternalServerError, "node index rusak")
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

type NearbyRoad struct {
	Way  *datastructure.Way
	Dist float64
}

func (uc *StreetMapService) NearbyRoads(ctx context.Context, lat, lon float64) ([]NearbyRoad, error) {
	candidates := uc.waySnap.NearbyWays(lat, lon, nearbyWayMaxRings)
	if len(candidates) == 0 {
		return nil, server.WrapErrorf(errors.New("not found"), server.ErrNotFound,
			"tidak ada jalan di sekitar lokasi (%f, %f)", lat, lon)
	}
	roads := make([]NearbyRoad, 0, len(candidates))
	for _, c := range candidates {
		way, err := uc.graph.WayByID(c.WayID)
		if err != nil {
			continue
		}
		roads = append(roads, NearbyRoad{Way: way, Dist: c.Dist})
	}
	return roads, nil
}

// TravelTimeRoute hitung ETA (menit) rute yang node-nodenya sudah ditentukan
// user. Urutan node harus valid, kalau tidak balikin ErrBadParamInput berisi
// pesan pelanggarannya.
func (uc *StreetMapService) TravelTimeRoute(ctx context.Context, nodeIDs []int32) (float64, error) {
	eta, err := uc.validator.TravelTime(nodeIDs)
	if err != nil {
		return 0, server.WrapErrorf(err, server.ErrBadParamInput, "rute tidak valid")
	}
	return eta, nil
}

func (uc *StreetMapService) ShortestPathETA(ctx context.Context, from, to int32) (string, []datastructure.Coordinate, float64, bool, error) {
	path, eta, found, err := uc.route.ShortestPath(from, to)
	if err != nil {
		return "", nil, 0, false, server.WrapErrorf(err, server.ErrNotFound, "node source/destination tidak ada di peta")
	}
	if !found {
		return "", nil, 0, false, nil
	}

	route := make([]datastructure.Coordinate, 0, len(path))
	coords := make([][]float64, 0, len(path))
	for _, nodeID := range path {
		node, err := uc.graph.NodeByID(nodeID)
		if err != nil {
			return "", nil, 0, false, server.WrapErrorf(err, server.ErrInternalServerError, "path berisi node yang tidak ada")
		}
		route = append(route, datastructure.Coordinate{Lat: node.Lat, Lon: node.Lon})
		coords = append(coords, []float64{node.Lat, node.Lon})
	}
	encoded := string(polyline.EncodeCoords(coords))
	return encoded, route, util.RoundFloat(eta, 2), true, nil
}

func (uc *StreetMapService) ShortestPathETAByLocation(ctx context.Context, srcLat, srcLon,
	dstLat, dstLon float64) (string, []datastructure.Coordinate, float64, bool, error) {
	from, err := uc.nodeSnap.SnapToNode(srcLat, srcLon)
	if err != nil {
		return "", nil, 0, false, server.WrapErrorf(err, server.ErrNotFound,
			"sorry!! lokasi asal yang anda masukkan tidak tercakup di peta saya :(")
	}
	to, err := uc.nodeSnap.SnapToNode(dstLat, dstLon)
	if err != nil {
		return "", nil, 0, false, server.WrapErrorf(err, server.ErrNotFound,
			"sorry!! lokasi tujuan yang anda masukkan tidak tercakup di peta saya :(")
	}
	return uc.ShortestPathETA(ctx, from, to)
}
