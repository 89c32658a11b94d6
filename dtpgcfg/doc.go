// Package dtpgcfg holds the engine-wide Config struct threaded explicitly
// through every subsystem — tracing and resource limits live here rather
// than in package-level state.
//
// What
//
//   - Config.Trace is an optional hook invoked with printf-style
//     arguments; it defaults to a no-op, so callers that want tracing
//     supply their own sink and everyone else pays nothing.
//   - Config.ConflictLimit / Config.TimeLimit bound a single SAT solve
//     before the engine classifies the outcome as Aborted.
//
// Why
//
//   - Encoding sessions are strictly session-scoped;
//     a passed-by-value Config keeps that scoping explicit instead of
//     relying on package-level state, which would make concurrent engine
//     instances unsafe to share.
package dtpgcfg
