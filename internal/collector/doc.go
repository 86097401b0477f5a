// Package collector orchestrates fixture generation.
//
// The Orchestrator owns the fixture pipeline (rate limiter, stabilizer,
// saver, type map, run recording) and exposes the Processor interface so
// the per-category Collector depends only on "process one fixture" rather
// than the whole pipeline. Operations emit progress updates via channels
// for non-blocking status reporting to CLI/UI layers.
package collector
