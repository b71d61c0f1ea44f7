package engine

import (
	"strings"

	"github.com/vk/skirmish/internal/uci"
)

// PieceValues caches the midgame and endgame material values that evaluation
// reads on every node. The registry is the source of truth: each fairy piece
// has a "<Piece>ValueMg" and "<Piece>ValueEg" spin, and Recompute pulls the
// whole set back out whenever one of them changes.
type PieceValues struct {
	mg map[string]int
	eg map[string]int
}

// NewPieceValues returns an empty table; call Recompute to populate it.
func NewPieceValues() *PieceValues {
	return &PieceValues{mg: make(map[string]int), eg: make(map[string]int)}
}

// Recompute rebuilds the table from every *ValueMg / *ValueEg spin declared
// in the registry.
func (pv *PieceValues) Recompute(om *uci.OptionsMap) {
	mg := make(map[string]int)
	eg := make(map[string]int)
	for o := range om.All() {
		if o.Kind() != uci.Spin {
			continue
		}
		name := o.Name()
		switch {
		case strings.HasSuffix(name, "ValueMg"):
			mg[strings.TrimSuffix(name, "ValueMg")] = o.Int()
		case strings.HasSuffix(name, "ValueEg"):
			eg[strings.TrimSuffix(name, "ValueEg")] = o.Int()
		}
	}
	pv.mg, pv.eg = mg, eg
}

// Midgame returns the midgame value for piece, or 0 if unknown.
func (pv *PieceValues) Midgame(piece string) int { return pv.mg[piece] }

// Endgame returns the endgame value for piece, or 0 if unknown.
func (pv *PieceValues) Endgame(piece string) int { return pv.eg[piece] }

// Pieces returns the number of pieces with a midgame value.
func (pv *PieceValues) Pieces() int { return len(pv.mg) }
