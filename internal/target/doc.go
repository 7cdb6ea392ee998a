// Package target models the scene document consumed by the ray-tracing
// engine and writes it to disk.
//
// Field names and their order follow the engine's JSON loader, including
// its spelling of "_EnviromentMapEnable". Lists are always written as
// arrays, never null. Integrator and Output are extensions written only when
// set.
package target
