// Package allocation tracks point budgets for the option groups of an open
// predator type choice.
//
// A Session is created zeroed by Open and changed only through SetPoints.
// Every call leaves two invariants intact:
//
//   - each option holds between 0 and its MaxLevel points
//   - each group spends no more than its TotalPoints
//
// Illegal requests are refused rather than failed. SetPoints returns a typed
// error describing the refusal and leaves the table exactly as it was, so a
// caller that only wants the legal state can ignore the error.
//
// Sessions are not safe for concurrent use. The hosting service owns one
// session per request and persists it between requests with Snapshot and
// Restore.
package allocation
