// Package internal documents the shared migration tool internals.
//
// The internal tree is organized by responsibility:
// - catalog: Shopify export CSV loading, indexing, and saving
// - content: incoming PLP copy loading and the merge into the catalog
// - handle: collection handle derivation from legacy URLs
// - report: before/after diffing, coverage analysis, and report rendering
// - quicktest: YAML-driven spot checks of a migrated export
// - config, sanitize: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
