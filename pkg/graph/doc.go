// Package graph defines the design graph: an immutable DAG of boards,
// panels, placements, joints and assemblies produced by evaluating a
// design script. The scene builder turns it into an entity tree.
package graph
