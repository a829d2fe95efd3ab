package depthchart

import (
	"fmt"
	"sort"
)

// RankEntry places one player at a depth within a (team, position) bucket.
// Depth 0 is the starter.
type RankEntry struct {
	PlayerNumber int `json:"playerNumber"`
	Depth        int `json:"positionDepth"`
}

// Bucket is the ordered set of entries for one (team, position) pair.
// A valid bucket is sorted by depth, its depths are exactly 0..len-1 and no
// player number appears twice. Every method returns a new slice; the
// receiver is never modified.
type Bucket []RankEntry

// IndexOf returns the slice index of number, or -1.
func (b Bucket) IndexOf(number int) int {
	for i, e := range b {
		if e.PlayerNumber == number {
			return i
		}
	}
	return -1
}

// Contains reports whether number is ranked in the bucket.
func (b Bucket) Contains(number int) bool {
	return b.IndexOf(number) >= 0
}

// ClampDepth resolves a requested depth against a bucket of the given size.
// nil appends; negative values clamp to 0 and values past the end clamp to size.
func ClampDepth(requested *int, size int) int {
	if requested == nil {
		return size
	}
	d := *requested
	if d < 0 {
		return 0
	}
	if d > size {
		return size
	}
	return d
}

// Insert places number at the requested depth. A player already in the bucket
// is moved, never duplicated: its old slot is closed first, then entries at or
// below the target depth shift down by one.
func (b Bucket) Insert(number int, requested *int) Bucket {
	base, _, _ := b.Remove(number)
	target := ClampDepth(requested, len(base))

	out := make(Bucket, 0, len(base)+1)
	for _, e := range base {
		if e.Depth >= target {
			e.Depth++
		}
		out = append(out, e)
	}
	out = append(out, RankEntry{PlayerNumber: number, Depth: target})
	out.sortByDepth()
	return out
}

// Remove drops number from the bucket and shifts every deeper entry up by one.
// ok is false when the player is not ranked; the returned bucket is then an
// unchanged copy.
func (b Bucket) Remove(number int) (out Bucket, removed RankEntry, ok bool) {
	idx := b.IndexOf(number)
	if idx < 0 {
		return b.clone(), RankEntry{}, false
	}
	removed = b[idx]

	out = make(Bucket, 0, len(b)-1)
	for i, e := range b {
		if i == idx {
			continue
		}
		if e.Depth > removed.Depth {
			e.Depth--
		}
		out = append(out, e)
	}
	out.sortByDepth()
	return out, removed, true
}

// Backups returns every entry deeper than number, shallowest first. An
// unknown player has no backups.
func (b Bucket) Backups(number int) []RankEntry {
	idx := b.IndexOf(number)
	if idx < 0 {
		return []RankEntry{}
	}
	ref := b[idx].Depth

	out := make([]RankEntry, 0, len(b))
	for _, e := range b {
		if e.Depth > ref {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}

// Numbers returns player numbers in depth order.
func (b Bucket) Numbers() []int {
	out := make([]int, len(b))
	for i, e := range b {
		out[i] = e.PlayerNumber
	}
	return out
}

// Normalize repairs a bucket loaded from storage: entries are ordered by depth
// (stable for ties), repeated player numbers keep their shallowest entry and
// depths are renumbered 0..len-1.
func (b Bucket) Normalize() Bucket {
	sorted := b.clone()
	sorted.sortByDepth()

	out := make(Bucket, 0, len(sorted))
	seen := make(map[int]struct{}, len(sorted))
	for _, e := range sorted {
		if _, dup := seen[e.PlayerNumber]; dup {
			continue
		}
		seen[e.PlayerNumber] = struct{}{}
		out = append(out, RankEntry{PlayerNumber: e.PlayerNumber, Depth: len(out)})
	}
	return out
}

// Validate checks contiguity and uniqueness.
func (b Bucket) Validate() error {
	seen := make(map[int]struct{}, len(b))
	for i, e := range b {
		if e.Depth != i {
			return fmt.Errorf("entry %d (player %d) has depth %d, want %d", i, e.PlayerNumber, e.Depth, i)
		}
		if _, dup := seen[e.PlayerNumber]; dup {
			return fmt.Errorf("player %d ranked more than once", e.PlayerNumber)
		}
		seen[e.PlayerNumber] = struct{}{}
	}
	return nil
}

func (b Bucket) clone() Bucket {
	out := make(Bucket, len(b))
	copy(out, b)
	return out
}

func (b Bucket) sortByDepth() {
	sort.SliceStable(b, func(i, j int) bool { return b[i].Depth < b[j].Depth })
}
