// Package osmparser build datastructure.StreetMap dari file .osm.pbf.
// Node & way openstreetmap di-reindex jadi dense int32 id (urutan kemunculan).
package osmparser

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"lintang/jalanx/pkg/datastructure"

	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/schollz/progressbar/v3"
)

func RoadTypeMaxSpeed(roadType string) float64 {
	switch roadType {
	case "motorway":
		return 95
	case "trunk":
		return 85
	case "primary":
		return 75
	case "secondary":
		return 65
	case "tertiary":
		return 50
	case "unclassified":
		return 50
	case "residential":
		return 30
	case "service":
		return 20
	case "motorway_link":
		return 90
	case "trunk_link":
		return 80
	case "primary_link":
		return 70
	case "secondary_link":
		return 60
	case "tertiary_link":
		return 50
	case "living_street":
		return 20
	default:
		return 40
	}
}

// LoadOSM scan pbf file 1x, simpan semua node + way mobil, lalu isi arena.
func LoadOSM(ctx context.Context, path string) (*datastructure.StreetMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	nodeMap := make(map[osm.NodeID]*osm.Node)
	ways := []*osm.Way{}

	scanner := osmpbf.New(ctx, f, 3)
	defer scanner.Close()

	for scanner.Scan() {
		o := scanner.Object()
		switch o.ObjectID().Type() {
		case osm.TypeNode:
			node := o.(*osm.Node)
			nodeMap[node.ID] = node
		case osm.TypeWay:
			way := o.(*osm.Way)
			if isOsmWayUsedByCars(way.TagMap()) && len(way.Nodes) >= 2 {
				ways = append(ways, way)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(ways) == 0 {
		return nil, fmt.Errorf("%s: no drivable way found", path)
	}

	return buildStreetMap(nodeMap, ways)
}

func buildStreetMap(nodeMap map[osm.NodeID]*osm.Node, ways []*osm.Way) (*datastructure.StreetMap, error) {
	// dense node id by order of first appearance di way geometry
	nodeIdx := make(map[osm.NodeID]int32)
	nodeWays := [][]int32{}
	for _, way := range ways {
		for _, wayNode := range way.Nodes {
			if _, ok := nodeMap[wayNode.ID]; !ok {
				// node di luar extract, skip way-nya nanti saat geometry dibuat
				continue
			}
			if _, ok := nodeIdx[wayNode.ID]; !ok {
				nodeIdx[wayNode.ID] = int32(len(nodeWays))
				nodeWays = append(nodeWays, []int32{})
			}
		}
	}

	sm, err := datastructure.NewStreetMap(len(nodeWays), len(ways))
	if err != nil {
		return nil, err
	}

	bar := progressbar.NewOptions(len(ways)+len(nodeWays),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][2/2][reset] saving openstreetmap way & node..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for wayIDx, way := range ways {
		maxSpeed, isOneWay, name := wayProfile(way)

		geometry := make([]int32, 0, len(way.Nodes))
		for _, wayNode := range way.Nodes {
			denseID, ok := nodeIdx[wayNode.ID]
			if !ok {
				continue
			}
			geometry = append(geometry, denseID)
			nodeWays[denseID] = append(nodeWays[denseID], int32(wayIDx))
		}
		if err := sm.AddWay(int32(wayIDx), name, maxSpeed, isOneWay, geometry); err != nil {
			return nil, err
		}
		bar.Add(1)
	}

	for osmID, denseID := range nodeIdx {
		node := nodeMap[osmID]
		if err := sm.AddNode(denseID, node.Lat, node.Lon, nodeWays[denseID]); err != nil {
			return nil, err
		}
		bar.Add(1)
	}
	fmt.Println("")
	return sm, nil
}

func wayProfile(way *osm.Way) (maxSpeed float64, isOneWay bool, name string) {
	roadType := ""
	maxSpeed = 0

	for _, tag := range way.Tags {
		if tag.Key == "highway" {
			roadType = tag.Value
		}
		if strings.Contains(tag.Key, "oneway") && !strings.Contains(tag.Value, "no") {
			isOneWay = true
		}
		if strings.Contains(tag.Key, "maxspeed") {
			if parsed, err := strconv.ParseFloat(tag.Value, 64); err == nil {
				maxSpeed = parsed
			}
		}
		if tag.Key == "name" {
			name = tag.Value
		}
	}
	if maxSpeed <= 0 {
		maxSpeed = RoadTypeMaxSpeed(roadType)
	}
	return maxSpeed, isOneWay, name
}

func isOsmWayUsedByCars(tagMap map[string]string) bool {
	if _, ok := tagMap["junction"]; ok {
		return true
	}

	highway, ok := tagMap["highway"]
	if !ok {
		return false
	}

	if motorcar, ok := tagMap["motorcar"]; ok && motorcar == "no" {
		return false
	}
	if motorVehicle, ok := tagMap["motor_vehicle"]; ok && motorVehicle == "no" {
		return false
	}

	if access, ok := tagMap["access"]; ok {
		if !(access == "yes" || access == "permissive" || access == "designated" ||
			access == "delivery" || access == "destination") {
			return false
		}
	}

	switch highway {
	case "motorway", "trunk", "primary", "secondary", "tertiary", "unclassified",
		"residential", "service", "motorway_link", "trunk_link", "primary_link",
		"secondary_link", "tertiary_link", "living_street":
		return true
	default:
		return false
	}
}
