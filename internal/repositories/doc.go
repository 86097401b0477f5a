// package repositories provides the persistence layer for generation runs.
//
// RunRepository stores run summaries and per-fixture outcomes (including
// unified diff text) so past generations can be listed and reviewed
// without regenerating.
package repositories
