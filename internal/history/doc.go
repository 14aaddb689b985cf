// Package history provides the two change-history structures behind the
// editor: a snapshot stack used for undo and redo, and an append-only edit
// timeline that can be browsed independently of the stacks.
//
// Both hold whole-buffer snapshots as plain strings. Neither is safe for
// concurrent use; the editor model serializes access.
package history
