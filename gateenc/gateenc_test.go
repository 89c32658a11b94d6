package gateenc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtpgcore/tpg/circuit"
	"github.com/dtpgcore/tpg/cnfsat"
	"github.com/dtpgcore/tpg/fault"
	"github.com/dtpgcore/tpg/gateenc"
	"github.com/dtpgcore/tpg/internal/satsolver"
	"github.com/dtpgcore/tpg/litmap"
)

// mirrorSolver returns a satsolver.Solver whose Var space lines up 1:1 with
// f's, by allocating exactly f.NumVars() vars before loading f's clauses.
func mirrorSolver(f *cnfsat.Formula) *satsolver.Solver {
	s := satsolver.New()
	for i := cnfsat.Var(0); i < f.NumVars(); i++ {
		s.NewVar()
	}
	cnfsat.LoadFormula(s, f)
	return s
}

func valuations(n int) [][]bool {
	out := make([][]bool, 1<<n)
	for v := 0; v < 1<<n; v++ {
		bits := make([]bool, n)
		for i := 0; i < n; i++ {
			bits[i] = v&(1<<i) != 0
		}
		out[v] = bits
	}
	return out
}

func truthFn(gate circuit.GateType, vals []bool) bool {
	switch gate {
	case circuit.Const0:
		return false
	case circuit.Const1:
		return true
	case circuit.Buff:
		return vals[0]
	case circuit.Not:
		return !vals[0]
	case circuit.And, circuit.Nand:
		r := true
		for _, v := range vals {
			r = r && v
		}
		if gate == circuit.Nand {
			return !r
		}
		return r
	case circuit.Or, circuit.Nor:
		r := false
		for _, v := range vals {
			r = r || v
		}
		if gate == circuit.Nor {
			return !r
		}
		return r
	case circuit.Xor:
		return vals[0] != vals[1]
	case circuit.Xnor:
		return vals[0] == vals[1]
	default:
		panic("truthFn: unhandled gate")
	}
}

func litOf(v cnfsat.Var, val bool) cnfsat.Lit { return cnfsat.NewLit(v, !val) }

// TestEncodeTruthTable checks truth-table equivalence
// for every primitive gate type and input arity it supports.
func TestEncodeTruthTable(t *testing.T) {
	cases := []struct {
		gate  circuit.GateType
		arity int
	}{
		{circuit.Const0, 0},
		{circuit.Const1, 0},
		{circuit.Buff, 1},
		{circuit.Not, 1},
		{circuit.And, 2},
		{circuit.And, 3},
		{circuit.Nand, 2},
		{circuit.Or, 2},
		{circuit.Or, 3},
		{circuit.Nor, 2},
		{circuit.Xor, 2},
		{circuit.Xnor, 2},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.gate.String(), func(t *testing.T) {
			for _, vals := range valuations(tc.arity) {
				f := cnfsat.NewFormula()
				inVars := make([]cnfsat.Var, tc.arity)
				for i := range inVars {
					inVars[i] = f.NewVar()
				}
				outVar := f.NewVar()

				inLits := make([]cnfsat.Lit, tc.arity)
				for i, v := range inVars {
					inLits[i] = cnfsat.NewLit(v, false)
				}
				m := litmap.Slice{Inputs: inLits, Out: cnfsat.NewLit(outVar, false)}
				gateenc.Encode(f, tc.gate, m)

				s := mirrorSolver(f)
				assumptions := make([]cnfsat.Lit, tc.arity)
				for i, v := range inVars {
					assumptions[i] = litOf(v, vals[i])
				}

				outcome, model, _ := s.Solve(assumptions, cnfsat.Limits{})
				require.Equal(t, cnfsat.Sat, outcome)
				got, ok := model.Value(outVar)
				require.True(t, ok)
				require.Equal(t, truthFn(tc.gate, vals), got)
			}
		})
	}
}

// TestEncodeFaultyBranch: a 2-input
// And with input pin 0 stuck-at-1 behaves as Buff of the other pin.
func TestEncodeFaultyBranch(t *testing.T) {
	want := map[[2]bool]bool{
		{false, false}: false,
		{true, false}:  false,
		{false, true}:  true,
		{true, true}:   true,
	}

	for vals, exp := range want {
		f := cnfsat.NewFormula()
		in0 := f.NewVar()
		in1 := f.NewVar()
		outVar := f.NewVar()
		m := litmap.Slice{
			Inputs: []cnfsat.Lit{cnfsat.NewLit(in0, false), cnfsat.NewLit(in1, false)},
			Out:    cnfsat.NewLit(outVar, false),
		}
		flt := fault.Fault{Node: 0, Pin: 0, Value: true}
		gateenc.EncodeFaulty(f, circuit.And, m, flt)

		s := mirrorSolver(f)
		assumptions := []cnfsat.Lit{litOf(in0, vals[0]), litOf(in1, vals[1])}
		outcome, model, _ := s.Solve(assumptions, cnfsat.Limits{})
		require.Equal(t, cnfsat.Sat, outcome)
		got, ok := model.Value(outVar)
		require.True(t, ok)
		require.Equal(t, exp, got)
	}
}

// TestEncodeFaultyStem asserts a stem fault forces the output regardless of
// inputs — a stem fault is a unit clause on the output, nothing more.
func TestEncodeFaultyStem(t *testing.T) {
	for _, val := range []bool{false, true} {
		for _, vals := range valuations(2) {
			f := cnfsat.NewFormula()
			in0 := f.NewVar()
			in1 := f.NewVar()
			outVar := f.NewVar()
			m := litmap.Slice{
				Inputs: []cnfsat.Lit{cnfsat.NewLit(in0, false), cnfsat.NewLit(in1, false)},
				Out:    cnfsat.NewLit(outVar, false),
			}
			flt := fault.Fault{Node: 0, Pin: -1, Value: val}
			gateenc.EncodeFaulty(f, circuit.And, m, flt)

			s := mirrorSolver(f)
			assumptions := []cnfsat.Lit{litOf(in0, vals[0]), litOf(in1, vals[1])}
			outcome, model, _ := s.Solve(assumptions, cnfsat.Limits{})
			require.Equal(t, cnfsat.Sat, outcome)
			got, ok := model.Value(outVar)
			require.True(t, ok)
			require.Equal(t, val, got)
		}
	}
}
