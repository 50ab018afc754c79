// Package analysis finds recurring move sequences across algorithms, such
// as the triggers shared by many OLL cases.
package analysis

import (
	"sort"

	"github.com/SeamusWaldron/cubealg"
)

// Sequence is a named algorithm to mine.
type Sequence struct {
	ID    string
	Moves cubealg.Algorithm
}

// NGram represents a repeated move sequence.
type NGram struct {
	N           int
	Moves       cubealg.Algorithm
	Count       int
	Cases       int // distinct sequences it appears in
	Occurrences []Occurrence
}

// Occurrence is where an n-gram was found.
type Occurrence struct {
	ID         string
	StartIndex int
}

// Report holds the top n-grams keyed by n.
type Report struct {
	TopNGrams map[int][]NGram
}

// maxOccurrences caps the samples kept per n-gram.
const maxOccurrences = 10

// RollingHash implements Rabin-Karp rolling hash over token ids.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint32
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   131,
		n:      n,
		window: make([]uint32, 0, n),
	}
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// Roll adds a token, dropping the oldest once the window is full.
func (rh *RollingHash) Roll(id uint32) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, id)
		rh.hash = rh.hash*rh.base + uint64(id)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(id)
	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = id
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 { return rh.hash }

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool { return len(rh.window) == rh.n }

// Reset empties the window.
func (rh *RollingHash) Reset() {
	rh.window = rh.window[:0]
	rh.hash = 0
}

func (rh *RollingHash) matches(ids []uint32) bool {
	if len(ids) != len(rh.window) {
		return false
	}
	for i := range ids {
		if ids[i] != rh.window[i] {
			return false
		}
	}
	return true
}

type entry struct {
	ids         []uint32
	moves       cubealg.Algorithm
	count       int
	seen        map[string]bool
	occurrences []Occurrence
}

// interner assigns every distinct token a small id.
type interner map[cubealg.Token]uint32

func (in interner) id(t cubealg.Token) uint32 {
	if id, ok := in[t]; ok {
		return id
	}
	id := uint32(len(in) + 1)
	in[t] = id
	return id
}

// MineNGrams finds the top-K most frequent n-grams for each n in
// [minN, maxN]. Windows never span two sequences, and an n-gram must occur
// at least twice to be reported.
func MineNGrams(seqs []Sequence, minN, maxN, topK int) *Report {
	report := &Report{TopNGrams: make(map[int][]NGram)}
	if minN < 1 {
		minN = 1
	}

	ids := make(interner)
	for n := minN; n <= maxN; n++ {
		if ngrams := mineN(seqs, ids, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}
	return report
}

func mineN(seqs []Sequence, ids interner, n, topK int) []NGram {
	buckets := make(map[uint64][]*entry)
	var order []*entry
	rh := NewRollingHash(n)

	for _, seq := range seqs {
		rh.Reset()
		for i, t := range seq.Moves {
			rh.Roll(ids.id(t))
			if !rh.Ready() {
				continue
			}
			start := i - n + 1

			var e *entry
			for _, cand := range buckets[rh.Hash()] {
				if rh.matches(cand.ids) {
					e = cand
					break
				}
			}
			if e == nil {
				e = &entry{
					ids:   append([]uint32(nil), rh.window...),
					moves: append(cubealg.Algorithm(nil), seq.Moves[start:i+1]...),
					seen:  make(map[string]bool),
				}
				buckets[rh.Hash()] = append(buckets[rh.Hash()], e)
				order = append(order, e)
			}

			e.count++
			e.seen[seq.ID] = true
			if len(e.occurrences) < maxOccurrences {
				e.occurrences = append(e.occurrences, Occurrence{ID: seq.ID, StartIndex: start})
			}
		}
	}

	var entries []*entry
	for _, e := range order {
		if e.count >= 2 {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return len(entries[i].seen) > len(entries[j].seen)
	})
	if topK > 0 && len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, e := range entries {
		result[i] = NGram{
			N:           n,
			Moves:       e.moves,
			Count:       e.count,
			Cases:       len(e.seen),
			Occurrences: e.occurrences,
		}
	}
	return result
}
