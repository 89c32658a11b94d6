package dtpg

import "errors"

// ErrInvalidScope indicates SolveInMFFC was asked about a fault whose
// containing FFR is not a member of the given MFFC.
var ErrInvalidScope = errors.New("dtpg: fault's FFR is not a member of the given MFFC")
