// Package config holds the small set of package-level constants and
// switches shared across ariscore's packages, the way funxy's own
// internal/config does for its parser/analyzer/VM.
package config

// Version is the current ariscore version. Set at build time by a release
// script via -ldflags, or left at its default for local builds.
var Version = "0.1.0"

// UnificationVarPrefix is the base name Gensym is given when the unifier
// introduces a fresh constant to check quantifier bodies for alpha-
// equivalence (spec.md §4.4).
const UnificationVarPrefix = "__unification_var"

// IsTestMode is a mode flag in the style of funxy's own
// config.IsTestMode/IsLSPMode. No package in this module reads it: the CLI
// and the RPC service timestamp audit sessions with time.Now whatever its
// value.
var IsTestMode = false
