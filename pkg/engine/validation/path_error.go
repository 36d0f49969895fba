package validation

import "fmt"

type ErrorKind int

const (
	KindUnknownNode ErrorKind = iota
	KindDuplicateNode
	KindNoRoad
	KindNotAdjacent
	KindWrongDirection
)

// PathError satu pelanggaran aturan path. NodeB = -1 untuk aturan yang cuma
// menyangkut satu node (unknown / duplicate).
type PathError struct {
	Kind  ErrorKind
	NodeA int32
	NodeB int32
}

func (e *PathError) Error() string {
	switch e.Kind {
	case KindUnknownNode:
		return fmt.Sprintf("node %d does not exist", e.NodeA)
	case KindDuplicateNode:
		return fmt.Sprintf("node %d appeared more than once", e.NodeA)
	case KindNoRoad:
		return fmt.Sprintf("there are no roads between node %d and node %d", e.NodeA, e.NodeB)
	case KindNotAdjacent:
		return fmt.Sprintf("cannot go directly from node %d to node %d", e.NodeA, e.NodeB)
	case KindWrongDirection:
		return fmt.Sprintf("cannot go in reverse from node %d to node %d", e.NodeA, e.NodeB)
	default:
		return fmt.Sprintf("invalid path near node %d", e.NodeA)
	}
}
