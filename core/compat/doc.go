// Package compat resolves which library overrides and OSL module versions
// apply to a (generation, game version) pair.
//
// All game version comparisons go through a Normalizer and use semantic
// version precedence; raw ids are never compared as strings. At query time a
// failed normalization makes the predicate fail closed. Validate is the eager
// counterpart run on every rebuild, where an unresolvable bound is fatal.
package compat
