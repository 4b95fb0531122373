package core

import (
	"crypto/md5"
	"encoding/binary"
)

// Fingerprint identifies a generation by the set of its live cells.
type Fingerprint [md5.Size]byte

// FingerprintOf hashes the live cells of e. Equal live sets hash equally
// regardless of the engine representation.
func FingerprintOf(e Engine) Fingerprint {
	h := md5.New()
	var buf [16]byte
	for _, c := range LiveCells(e) {
		binary.LittleEndian.PutUint64(buf[:8], uint64(int64(c.X)))
		binary.LittleEndian.PutUint64(buf[8:], uint64(int64(c.Y)))
		h.Write(buf[:])
	}
	var fp Fingerprint
	copy(fp[:], h.Sum(nil))
	return fp
}

// History remembers the most recent generations to detect still-lifes and
// short-period oscillators.
type History struct {
	depth int
	marks []Fingerprint
}

// NewHistory keeps up to depth generations.
func NewHistory(depth int) *History {
	if depth < 2 {
		depth = 2
	}
	return &History{depth: depth}
}

// Record appends the fingerprint of the current generation.
func (h *History) Record(fp Fingerprint) {
	h.marks = append(h.marks, fp)
	if len(h.marks) > h.depth {
		h.marks = h.marks[1:]
	}
}

// Forget drops all recorded generations. Edits break periodicity.
func (h *History) Forget() { h.marks = h.marks[:0] }

// Period returns the smallest k such that the latest generation equals the one
// recorded k generations earlier: 1 for a still-life, k for an oscillator, and
// 0 when no repeat is within the recorded window.
func (h *History) Period() int {
	n := len(h.marks)
	if n < 2 {
		return 0
	}
	latest := h.marks[n-1]
	for k := 1; k < n; k++ {
		if h.marks[n-1-k] == latest {
			return k
		}
	}
	return 0
}
