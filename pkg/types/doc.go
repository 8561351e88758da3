// Package types defines the data shared by the prober, runner and
// reconciler: entries, observed path states, planned actions and outcomes,
// plus the FS interface every filesystem access goes through.
package types
