// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package uci

// The protocol treats option names as case-insensitive, but only over ASCII.
// strings.EqualFold also folds Unicode (e.g. 'K' matches the Kelvin sign),
// which would accept identifiers no GUI ever sends, so folding is done by hand.

func foldASCII(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

// lessFoldASCII is a total order consistent with equalFoldASCII. It backs
// Names(), the alphabetical diagnostic view of the registry.
func lessFoldASCII(a, b string) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		ca, cb := lowerASCII(a[i]), lowerASCII(b[i])
		if ca != cb {
			return ca < cb
		}
	}
	return len(a) < len(b)
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}
