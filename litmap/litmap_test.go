package litmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtpgcore/tpg/cnfsat"
	"github.com/dtpgcore/tpg/litmap"
)

func TestSliceLitMap(t *testing.T) {
	m := litmap.Slice{Inputs: []cnfsat.Lit{1, -2, 3}, Out: 4}
	require.Equal(t, 3, m.Arity())
	require.Equal(t, cnfsat.Lit(1), m.Input(0))
	require.Equal(t, cnfsat.Lit(-2), m.Input(1))
	require.Equal(t, cnfsat.Lit(4), m.Output())
}

func TestFuncLitMap(t *testing.T) {
	m := litmap.Func{
		InputFn:  func(pin int) cnfsat.Lit { return cnfsat.Lit(pin + 10) },
		OutputFn: func() cnfsat.Lit { return 7 },
		N:        2,
	}
	require.Equal(t, 2, m.Arity())
	require.Equal(t, cnfsat.Lit(11), m.Input(1))
	require.Equal(t, cnfsat.Lit(7), m.Output())
}

// TestSubstituteReplacesOnlyTheChosenPin covers the faulty-branch
// encoding hook: pin substitution must leave every other literal untouched.
func TestSubstituteReplacesOnlyTheChosenPin(t *testing.T) {
	base := litmap.Slice{Inputs: []cnfsat.Lit{1, 2, 3}, Out: 9}
	sub := litmap.Substitute(base, 1, -5)

	require.Equal(t, 3, sub.Arity())
	require.Equal(t, cnfsat.Lit(1), sub.Input(0))
	require.Equal(t, cnfsat.Lit(-5), sub.Input(1))
	require.Equal(t, cnfsat.Lit(3), sub.Input(2))
	require.Equal(t, cnfsat.Lit(9), sub.Output())
}
