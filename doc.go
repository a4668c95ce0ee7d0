// Package modint provides modular-integer arithmetic over small (32-bit)
// moduli.
//
// Every result is normalized into the canonical range [0, m), so repeated
// arithmetic never wraps or goes negative. Values computed under different
// moduli cannot be mixed: combining them panics instead of silently
// miscomputing. The identity elements Zero and One carry an unset modulus so
// generic folds can be seeded before a concrete modulus is known.
package modint

import "github.com/blang/semver/v4"

// Version of the modint library
var Version = semver.MustParse("0.1.0")
