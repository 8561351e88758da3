// Package filesystem provides the types.FS implementation used by
// config-mapper, built on afero so tests can swap in an in-memory tree.
package filesystem
