// Package diagnostic provides structured warnings and notes collected while
// converting a scene.
//
// Conversion failures are returned as errors and abort the run. Diagnostics
// carry everything that is worth reporting but does not stop the conversion:
//   - Primitives referencing a material name that no BSDF declares
//   - Duplicate material names
//   - Mesh file names whose extension is not four characters long
//   - Transforms that do not survive a compose/decompose round trip
package diagnostic
