package circuit

import "errors"

// Sentinel errors for Builder.Build. A loader contract violation is fatal:
// engine construction aborts, no partial Network is produced.
var (
	// ErrDanglingFanin indicates a node's fanin references a NodeID that was
	// never added to the Builder.
	ErrDanglingFanin = errors.New("circuit: fanin references unknown node")

	// ErrEmptyFanin indicates a Logic or PPO node has no fanin.
	ErrEmptyFanin = errors.New("circuit: logic/output node has empty fanin")

	// ErrBadArity indicates a gate type was given an unsupported number of
	// fanins (e.g. a non-2-input Xor/Xnor).
	ErrBadArity = errors.New("circuit: gate arity not supported for its type")

	// ErrNonPrimitiveGate indicates a GateType outside the primitive set
	// reached Build without being decomposed by the loader.
	ErrNonPrimitiveGate = errors.New("circuit: non-primitive gate type")

	// ErrUnconnectedPPI indicates a PrimaryInput or StorageOutput node has a
	// non-empty fanout list pointing nowhere useful is fine, but a PPI must
	// not itself declare fanin (it is a free variable).
	ErrUnconnectedPPI = errors.New("circuit: PPI node must not have fanin")

	// ErrMissingClock indicates a StorageElement has no clock driver.
	ErrMissingClock = errors.New("circuit: storage element missing clock driver")

	// ErrDuplicateEdge indicates the same (from,to) pair was registered as
	// fanin more than once in a way that violates the fanin/fanout
	// invariant.
	ErrDuplicateEdge = errors.New("circuit: duplicate fanin edge")
)
