// Package ports defines the interfaces that connect the mission core to its
// remote collaborators.
//
// The orchestrator in internal/mission depends only on these interfaces; the
// concrete HTTP and SQLite implementations live in internal/adapters. This
// keeps the control flow testable with in-memory fakes and keeps the core
// ignorant of transport detail.
//
// # Ports
//
//   - [BoundaryService]: installs the exploration boundary on the remote costmap
//   - [FrontierService]: computes the next unexplored point
//   - [Navigator]: moves the agent, as a long-running cancellable task
//   - [PoseTransformer]: converts poses between coordinate frames
//   - [Localizer]: reports the agent's current pose
//   - [MissionRecorder]: persists terminal mission records
//
// Every remote collaborator exposes WaitReady: services are presumed
// available only after an explicit bounded wait, and absence after that bound
// is fatal for the mission rather than retryable.
package ports
