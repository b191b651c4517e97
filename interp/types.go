package interp

import "errors"

// ErrNoRoot indicates Run was called on an Interpreter with no Root node set.
var ErrNoRoot = errors.New("interp: root node not set")

// Snapshot is one yielded grid state: a defensive copy of the cell array
// plus the alphabet and dimensions needed to interpret it.
type Snapshot struct {
	State      []byte
	Characters []byte
	MX, MY, MZ int
}
