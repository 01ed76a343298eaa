// Package order provides the DeliveryOrder aggregate and its lifecycle primitives.
//
// The package includes:
//   - DeliveryOrder: client, pickup/dropoff points, deadline, optional driver and vehicle, status
//   - Status: pending, in_transit, delivered, cancelled
//   - Snapshot: the (status, driver) pair captured before a save
//
// Key business rules:
//   - Client name is required and pickup/dropoff must be valid geo points
//   - Any status may follow any status; transitions are observed, not validated
//   - Status and driver are the two fields whose changes trigger side effects
package order
