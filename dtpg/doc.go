// Package dtpg is the top-level test-generation driver: it runs
// cone.Build + gateenc + dchain + activation for a chosen
// structural scope, invokes a cnfsat.Solver, and on Sat routes the model
// through extract and justify to recover a PPI test vector.
//
// What
//
//   - Engine: holds the immutable circuit.Network, fault.FaultSet,
//     structindex.Index, and a dtpgcfg.Config, plus the tunables (Mode,
//     fault model, justification strategy, solver factory, resource
//     limits) set by Option.
//   - Solve(id): the per-fault entry point. Builds a fresh encoding
//     session rooted at the fault's own site (so extract's "stop
//     recursing at the cone root" rule lines up with the fault's actual
//     injection point), asserts FFR-activation assumptions, solves, and
//     classifies the outcome as Detected/Untestable/Aborted.
//   - SolveMFFC(mffcID): the MFFC-scope batch entry point. One
//     shared cone and CNF rooted at the MFFC, one control variable per
//     member FFR; each fault in the MFFC gets its own assumption set over
//     the shared formula, the per-fault solver call driven independently.
//   - SolveInMFFC(mffcID, id): the scope-checked variant; returns
//     ErrInvalidScope if id's FFR is not a member of mffcID.
//
// Why
//
//   - This is the one package that must see every other package in the
//     module at once; everything below it (circuit, fault, structindex,
//     cone, gateenc, dchain, activation, extract, justify, cnfsat,
//     internal/satsolver) is a narrow, independently testable
//     collaborator consumed through a small method set.
//
// Determinism and concurrency
//
//	A single Engine processes one fault (or one MFFC's fault list) at a
//	time; nothing here spawns goroutines. Multiple Engines may share one
//	*circuit.Network, *fault.FaultSet, and *structindex.Index read-only
//	and run concurrently, each with its own solver and memo tables,
//	partitioning the fault list across engine instances.
//
// Errors
//
//	ErrInvalidScope is the only sentinel this package defines; everything
//	else a Solve call can observe is encoded in the returned
//	Result.Outcome. An Unsat or Unknown solver verdict is not a Go error:
//	SAT outcomes are final, there is nothing to retry.
package dtpg
