// Package event defines the kernel's append-only structured event log:
// three typed sequences — collision, boundary, proximity — each entry
// tagged with the step that produced it.
//
// 🚀 What is event?
//
//	The observation channel of a kernel that is forbidden from logging,
//	printing, or touching I/O. Everything the simulation "says" during
//	a step lands here, in a total order that is part of the determinism
//	contract:
//
//	  1. boundary events, in body-index × side order
//	  2. collision events, in sorted pair order
//	  3. proximity events, per zone in declared order:
//	     Enters (body-index order), Exits (previous-set order),
//	     then Stays when the zone opts in
//
// ✨ Contracts:
//
//   - Append-only: the kernel never rewrites or reorders entries
//   - Caller-cleared: Clear is the only way entries leave the log
//   - Emission never fails: the backing slices are preallocated at
//     engine construction and grow by append once that capacity is
//     used up
//
// The String methods render entries for human display; they project
// scalars to float64 and exist only at the I/O edge.
package event
