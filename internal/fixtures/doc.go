// Package fixtures implements the fixture pipeline: stabilization of
// volatile API fields, deterministic normalization, JSON serialization,
// diff tracking against previously saved files, and response type-map
// generation.
//
// The pipeline operates on decoded JSON values (map[string]any, []any and
// primitives) so that every response shape flows through the same rules.
package fixtures
