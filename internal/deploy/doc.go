// Package deploy drives create-if-absent deployment of a fleet.
//
// The Coordinator walks every enabled service group: it validates the
// group's network preconditions first, then deploys each unit in order.
// A unit is probed for existence, skipped if present, otherwise rendered
// and applied through the executor. Nothing that already exists is ever
// re-rendered or overwritten, and no failure in one group touches another.
//
// Every unit ends a run in exactly one terminal state, collected into a
// Report. The run itself always completes; partial failure is reported,
// never silent.
package deploy
