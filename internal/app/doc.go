// Package app wires the engine together: it builds the logger, loads the
// option manifest, declares every option with its change hook into a fresh
// registry, and renders the protocol handshake. It is decoupled from the CLI
// entrypoint so tests can drive a full App against in-memory writers.
package app
