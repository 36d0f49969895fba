// Package mapparser load street map text file ke datastructure.StreetMap.
//
// Format file, line-oriented, '#' comment:
//
//	map <numNodes> <numWays>
//	way <id> <maxspeed> <oneway 0|1> <numNodes> <nodeID...> <name...>
//	node <id> <lat> <lon> <numWays> <wayID...>
//
// Semua way harus muncul sebelum node yang me-refer id-nya. Id harus dense
// 0..count-1.
package mapparser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"lintang/jalanx/pkg/datastructure"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

func LoadStreetMap(path string) (*datastructure.StreetMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*datastructure.StreetMap, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	var sm *datastructure.StreetMap
	var bar *progressbar.ProgressBar
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "map":
			if sm != nil {
				return nil, fmt.Errorf("line %d: duplicate map header", lineNo)
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: map header needs node & way count", lineNo)
			}
			numNodes, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			numWays, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			sm, err = datastructure.NewStreetMap(numNodes, numWays)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			bar = newLoadBar(numNodes + numWays)

		case "way":
			if sm == nil {
				return nil, fmt.Errorf("line %d: way before map header", lineNo)
			}
			if err := parseWay(sm, fields, lineNo); err != nil {
				return nil, err
			}
			bar.Add(1)

		case "node":
			if sm == nil {
				return nil, fmt.Errorf("line %d: node before map header", lineNo)
			}
			if err := parseNode(sm, fields, lineNo); err != nil {
				return nil, err
			}
			bar.Add(1)

		default:
			return nil, fmt.Errorf("line %d: unknown record %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if sm == nil {
		return nil, fmt.Errorf("missing map header")
	}
	fmt.Println("")
	return sm, nil
}

// way <id> <maxspeed> <oneway> <numNodes> <nodeID...> <name...>
func parseWay(sm *datastructure.StreetMap, fields []string, lineNo int) error {
	if len(fields) < 5 {
		return fmt.Errorf("line %d: truncated way record", lineNo)
	}
	id, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	maxSpeed, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	if maxSpeed <= 0 {
		return fmt.Errorf("line %d: way %d max speed must be positive", lineNo, id)
	}
	oneWay := fields[3] == "1"
	numNodes, err := strconv.Atoi(fields[4])
	if err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	if len(fields) < 5+numNodes {
		return fmt.Errorf("line %d: way %d declares %d nodes but the record is short", lineNo, id, numNodes)
	}

	nodeIDs := make([]int32, numNodes)
	for i := 0; i < numNodes; i++ {
		nodeID, err := strconv.ParseInt(fields[5+i], 10, 32)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		nodeIDs[i] = int32(nodeID)
	}
	name := strings.Join(fields[5+numNodes:], " ")

	if err := sm.AddWay(int32(id), name, maxSpeed, oneWay, nodeIDs); err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	return nil
}

// node <id> <lat> <lon> <numWays> <wayID...>
func parseNode(sm *datastructure.StreetMap, fields []string, lineNo int) error {
	if len(fields) < 5 {
		return fmt.Errorf("line %d: truncated node record", lineNo)
	}
	id, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	lat, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	lon, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	numWays, err := strconv.Atoi(fields[4])
	if err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	if len(fields) != 5+numWays {
		return fmt.Errorf("line %d: node %d declares %d ways but the record has %d", lineNo, id, numWays, len(fields)-5)
	}

	wayIDs := make([]int32, numWays)
	for i := 0; i < numWays; i++ {
		wayID, err := strconv.ParseInt(fields[5+i], 10, 32)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		wayIDs[i] = int32(wayID)
	}

	if err := sm.AddNode(int32(id), lat, lon, wayIDs); err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	return nil
}

func newLoadBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/2][reset] loading street map file..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
