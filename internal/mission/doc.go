// Package mission contains the exploration control flow: the retry policy,
// the mission phase machine, the per-step components, and the orchestrator
// that sequences them.
//
// The orchestrator drives one mission at a time through
//
//	Init → ConfiguringBoundary → MovingToCenter →
//	{ CheckingBoundary → RequestingFrontier → MovingToFrontier } …
//
// until the frontier planner repeatedly finds nothing (success, provided at
// least one exploration move landed), a step exhausts its retries (abort),
// or the caller cancels the context (preemption). All remote interaction
// goes through the interfaces in internal/ports.
package mission
