// Package services provides stateless domain services that do not belong to a
// single aggregate.
//
// The package includes:
//   - DispatchPolicy: decides which side effects a saved order triggers
//   - AreaBuilder: builds circular coverage polygons and measures existing ones
//   - GeofenceIndex: answers boundary-inclusive point-in-area queries
//
// All services are pure and safe for concurrent use.
package services
