package litmap

import "github.com/dtpgcore/tpg/cnfsat"

// LitMap is the minimal surface gateenc needs from any literal source.
type LitMap interface {
	Input(pin int) cnfsat.Lit
	Output() cnfsat.Lit
	Arity() int
}

// Func adapts closures into a LitMap — the "closure" half of the redesign
// note's "closure or small struct" choice. Cheapest for one-off substituted
// maps built on the fly during faulty-gate encoding.
type Func struct {
	InputFn  func(pin int) cnfsat.Lit
	OutputFn func() cnfsat.Lit
	N        int
}

func (f Func) Input(pin int) cnfsat.Lit { return f.InputFn(pin) }
func (f Func) Output() cnfsat.Lit       { return f.OutputFn() }
func (f Func) Arity() int               { return f.N }

// Slice adapts an already-materialized literal slice into a LitMap — the
// "small struct" half of the redesign note's choice, used on the hot path
// where a cone's variable table has the literals on hand already.
type Slice struct {
	Inputs []cnfsat.Lit
	Out    cnfsat.Lit
}

func (s Slice) Input(pin int) cnfsat.Lit { return s.Inputs[pin] }
func (s Slice) Output() cnfsat.Lit       { return s.Out }
func (s Slice) Arity() int               { return len(s.Inputs) }

// Substitute returns a LitMap identical to base except pin's input literal
// is replaced by fixed, used by the faulty gate encoder to pin a branch
// fault's stuck pin to its fault value.
func Substitute(base LitMap, pin int, fixed cnfsat.Lit) LitMap {
	return Func{
		InputFn: func(p int) cnfsat.Lit {
			if p == pin {
				return fixed
			}
			return base.Input(p)
		},
		OutputFn: base.Output,
		N:        base.Arity(),
	}
}
