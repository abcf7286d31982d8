// Package elem contains side-effect-free HTML helpers with no pipeline
// behavior of their own; they are ordinary transformer material for Map/Pipe.
//
// Key operations:
// - New: build a Node from a tag, attributes, and text/child content
// - Tooltip: wrap a node with a label at one of four fixed placements
// - Classes: merge class names with conditionals and conflict resolution
package elem
