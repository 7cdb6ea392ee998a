// Package convert maps a source scene onto a target document.
//
// A Converter runs the mappers in a fixed order: materials, entities,
// camera, renderer and, when extended output is enabled, the integrator and
// output records. Any error aborts the conversion. Findings that do not
// stop it, such as a primitive naming an undeclared material, are collected
// as diagnostics.
//
// Material models and tone-mapping operators are resolved through fixed
// tables; unknown names are errors, never silently defaulted.
package convert
