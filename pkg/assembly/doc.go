// Package assembly classifies the children of assembly-like entities and
// discovers the graphic leaves of an entity tree along with their
// mirrored face pairs.
//
// A graphic is an assembly that directly holds geometry (faces or edges)
// and no nested assemblies. Graphics are the candidates for flat parts.
package assembly
