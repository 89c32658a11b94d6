package structindex

import "errors"

// ErrCycle indicates the per-time-frame combinational graph is not a DAG.
// The loader contract requires sequential feedback to go through a
// StorageElement, so a cycle here means a malformed netlist, not a
// recoverable runtime condition.
var ErrCycle = errors.New("structindex: combinational cycle detected")
