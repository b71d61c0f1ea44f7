// Package manifest loads the engine's option table from HCL. A manifest is a
// sequence of `option "<Name>" { ... }` blocks, each declaring a kind, a
// default, and for bounded kinds the constraints:
//
//	option "Threads" {
//	  type      = "spin"
//	  default   = 1
//	  min       = 1
//	  max       = 512
//	  on_change = "OnThreads"
//	}
//
// Block order is significant: the application declares options into the
// registry in manifest order, and that order is what GUIs see.
//
// The on_change attribute names a Go-side hook; binding and validating those
// names against the compiled hook table happens in the app package, so a
// manifest that references a hook the binary does not provide fails startup.
package manifest
