// Package kernel holds value objects shared by every aggregate: UUID identifiers
// and WGS84 GeoPoints. Zero values fail Validate, so build them with the constructors.
package kernel
