// Package order implements the Order aggregate: one checkout transaction
// owning its single-quantity items and their append-only status histories.
//
// The package also defines the workflow policy for item statuses: the
// canonical forward sequence Pending -> Frying -> ReadyForPickup ->
// Completed with Cancelled as a side-terminal state. The policy functions
// (NextStatus, IsValidForwardTransition, IsFinalStatus) are pure and
// deterministic; all stateful transitions go through the aggregate's
// AdvanceItem and Cancel methods, which append exactly one history entry per
// status change.
package order
