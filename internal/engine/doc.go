// Package engine holds the live subsystems reconfigured by option change
// hooks: the transposition table, the search worker pool, piece values, the
// tablebase path, and the variant announcement. Each is deliberately small;
// what matters here is that an option assignment has a real, observable
// effect on a running subsystem.
package engine
