package engine

import "log/slog"

// hashEntry is one transposition table slot. The layout mirrors the usual
// packed entry: position key, best move, score and search depth.
type hashEntry struct {
	key   uint64
	move  uint16
	score int16
	depth int8
	gen   uint8
}

const hashEntrySize = 16 // bytes, including padding

// HashTable is the engine's transposition table, sized in megabytes by the
// "Hash" option and wiped by the "Clear Hash" button.
type HashTable struct {
	entries   []hashEntry
	megabytes int
}

// NewHashTable allocates a table of the given size.
func NewHashTable(megabytes int) *HashTable {
	t := &HashTable{}
	t.Resize(megabytes)
	return t
}

// Resize reallocates the table. The previous contents are discarded, as a
// resize invalidates every slot index anyway.
func (t *HashTable) Resize(megabytes int) {
	if megabytes < 1 {
		megabytes = 1
	}
	t.megabytes = megabytes
	t.entries = make([]hashEntry, megabytes*1024*1024/hashEntrySize)
	slog.Debug("Resized transposition table.", "megabytes", megabytes, "entries", len(t.entries))
}

// Clear wipes every slot without reallocating.
func (t *HashTable) Clear() {
	clear(t.entries)
	slog.Debug("Cleared transposition table.")
}

// SizeMB returns the current size in megabytes.
func (t *HashTable) SizeMB() int { return t.megabytes }

// Store writes an entry for key, replacing whatever occupies its slot.
func (t *HashTable) Store(key uint64, move uint16, score int16, depth int8) {
	e := &t.entries[key%uint64(len(t.entries))]
	e.key = key
	e.move = move
	e.score = score
	e.depth = depth
}

// Probe returns the stored move, score and depth for key, if its slot still
// holds that position.
func (t *HashTable) Probe(key uint64) (move uint16, score int16, depth int8, ok bool) {
	e := &t.entries[key%uint64(len(t.entries))]
	if e.key != key || e.key == 0 {
		return 0, 0, 0, false
	}
	return e.move, e.score, e.depth, true
}
