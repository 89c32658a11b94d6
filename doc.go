// Package tpg is a SAT-based combinational and sequential Automatic Test
// Pattern Generation (ATPG) engine for gate-level netlists.
//
// 🚀 What is tpg?
//
//	A structural fault-testing toolkit that brings together:
//
//	  • Circuit modeling: primary I/O, gates, storage elements, control pins
//	  • Structural indexing: fan-out-free regions, maximal fan-out-free
//	    cones, immediate dominators
//	  • Fault handling: stuck-at and transition-delay fault enumeration,
//	    single-stuck-at collapsing, dominance
//	  • CNF generation: good/faulty-circuit gate encoding, D-chain detection
//	    clauses, a minimal DPLL solver
//	  • Test generation: activation, sensitized-path extraction,
//	    single-path/all-path/naive back-trace justification
//
// ✨ Why choose tpg?
//
//   - Deterministic     — every stage is a pure function of (Network,
//     FaultSet, Index) plus a single SAT call per fault
//   - Scope-aware       — single-node, fan-out-free-region, and maximal
//     fan-out-free-cone activation all share one encoding pipeline
//   - Extensible        — plug in any cnfsat.Solver, any justification
//     strategy, any dtpgstats.Report sink
//   - Pure Go           — a reference internal/satsolver ships in-tree; swap
//     in a faster external solver via dtpg.WithSolverFactory
//
// Under the hood, everything is organized under focused subpackages:
//
//	circuit/      — Network, Builder, NodeID, GateType, TestVector
//	fault/        — Fault, FaultSet, collapsing, dominance
//	structindex/  — FFR, MFFC, Index, dominator computation
//	cone/         — per-fault TFO/TFI/PrevTFI variable allocation
//	gateenc/      — good/faulty gate-to-CNF translation
//	dchain/       — D-chain detection-clause emission
//	activation/   — fault activation and chain-walk sensitization
//	cnfsat/       — Formula, Solver, Lit/Var, Model
//	extract/      — sensitized-path sufficient-condition extraction
//	justify/      — SinglePath/AllPath/Naive back-trace
//	dtpg/         — Engine: the top-level per-fault and per-MFFC driver
//	dtpgcfg/      — Config and tracing
//	dtpgstats/    — Outcome, Summary, Report
//	internal/     — satsolver (DPLL) and bitset, shared low-level plumbing
//
// Quick usage sketch:
//
//	net, _ := builder.Build()
//	fs := fault.Collapse(net)
//	idx, _ := structindex.Build(net, fs)
//	e := dtpg.NewEngine(net, fs, idx, dtpgcfg.Default())
//	res, _ := e.Solve(fs.Faults()[0].ID)
//
// Dive into DESIGN.md for the grounding behind each package and the open
// design decisions it records.
package tpg
