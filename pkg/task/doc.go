// Package task models the long-running remote task protocol: submit a goal,
// receive a [Handle], wait for a terminal [Status], and optionally cancel
// while in flight.
//
// The protocol is transport-independent. The navigation adapter uses it to
// track remote navigation goals, and pkg/explore uses the same shape to
// expose running missions to callers.
package task
