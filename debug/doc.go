// Package debug exposes the Debug constant, toggled by the "debug" build
// tag. Debug builds enable the residue-range assertions in the modint
// package and keep the logger active under go test.
package debug
