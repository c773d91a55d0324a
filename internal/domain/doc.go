// Package domain contains the core entities and value objects for explored.
//
// This is the innermost layer of the architecture: it has no dependencies on
// transport, persistence, or logging and holds only the geometry and mission
// vocabulary the rest of the system speaks.
//
// # Entities
//
//   - [Point], [Polygon]: 2D geometry, including boundary containment
//   - [Pose]: a frame-qualified position and heading
//   - [Goal]: the immutable input of one exploration mission
//   - [Outcome]: the terminal result of a mission
//
// Entities are immutable after construction where practical and are scoped to
// a single mission execution; nothing in this package is shared across
// missions.
package domain
