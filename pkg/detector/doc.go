// Package detector classifies a source tree: which runtime the project
// targets and which framework chain is layered on top of it.
//
// Runtime detectors run concurrently and at most one may claim a codebase.
// Frameworks are declarative rules forming a forest rooted at runtime names;
// the matcher searches it post-order, pruning any rule whose dependency or
// file predicate fails together with its whole subtree, and resolves
// ambiguity between surviving chains through declared embed relationships.
// The result is a single chain ordered most-specific-first, or nothing for a
// runtime-only project.
package detector
