// Package types defines small shared enumerations used across this module.
//
// Relationship describes the spatial relationship between two geometric
// entities (disjoint, intersecting, contained, containing, equal) and is
// returned by the polygon subsystem's containment and nested-classification
// operations.
package types
