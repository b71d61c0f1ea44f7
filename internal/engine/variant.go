package engine

import (
	"fmt"
	"io"
)

// StartFEN is the starting position announced with the variant.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// boardTemplate describes the variant board to XBoard-style GUIs.
const boardTemplate = "8x10+0_seirawan"

// fairyPieces maps each fairy piece letter to its move in Betza notation,
// in the order the setup block announces them.
// https://www.gnu.org/software/xboard/Betza.html
var fairyPieces = [][2]string{
	{"L", "NB2"},
	{"C", "llNrrNDK"},
	{"E", "KDA"},
	{"U", "CN"},
	{"S", "B2DN"},
	{"D", "QN"},
	{"F", "B3DfNbN"},
	{"M", "NR"},
	{"A", "NB"},
	{"H", "DHAG"},
	{"K", "KisO2"},
}

// AnnounceVariant tells the GUI which variant is active. XBoard-style GUIs
// get a setup command followed by per-piece Betza definitions; UCI GUIs get a
// single info string.
func AnnounceVariant(w io.Writer, xboard bool, variant string) {
	if xboard {
		fmt.Fprintf(w, "setup (PNBRQ.E....C.AF.MH.SU........D............LKpnbrq.e....c.af.mh.su........d............lk) %s %s\n",
			boardTemplate, StartFEN)
		for _, piece := range fairyPieces {
			fmt.Fprintf(w, "piece %s& %s\n", piece[0], piece[1])
		}
		return
	}
	fmt.Fprintf(w, "info string variant %s files %d ranks %d pocket %d template %s startpos %s\n",
		variant, 8, 10, 0, "seirawan", StartFEN)
}
