// SPDX-License-Identifier: MIT

package params

import (
	"encoding/binary"
	"math"
)

// Builder assembles a parameter block entry by entry, in descriptor order.
// The first error sticks and is returned by Bytes; later calls are no-ops.
type Builder struct {
	entries []Entry
	err     error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Scalar appends a Scalar entry.
func (b *Builder) Scalar(v float64) *Builder {
	if b.err == nil {
		b.entries = append(b.entries, Entry{kind: KindScalar, scalar: v})
	}

	return b
}

// Distribution appends a Distribution entry. nil weights mean uniform 1/n.
func (b *Builder) Distribution(values, weights []float64) *Builder {
	if b.err != nil {
		return b
	}
	d, err := NewDistribution(values, weights)
	if err != nil {
		b.err = entryErrorf("Builder.Distribution", len(b.entries), err)
		return b
	}
	b.entries = append(b.entries, Entry{kind: KindDistribution, dist: d})

	return b
}

// Append appends a decoded or constructed entry as is.
func (b *Builder) Append(e Entry) *Builder {
	if b.err == nil {
		b.entries = append(b.entries, e)
	}

	return b
}

// Len returns the number of entries appended so far.
func (b *Builder) Len() int { return len(b.entries) }

// Bytes encodes the entries followed by the End sentinel.
// Implementation:
//   - Stage 1: lay out offsets: entries are packed back to back after the table.
//   - Stage 2: write count, offsets, then each tagged record.
//
// Complexity:
//   - Time O(B), Space O(B) for the returned block.
func (b *Builder) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}

	// Stage 1 (Layout).
	count := len(b.entries) + 1
	offsets := make([]uint64, count)
	var size uint64
	for i, e := range b.entries {
		offsets[i] = size
		size += entrySize(e)
	}
	offsets[count-1] = size
	size += wordSize // End tag

	// Stage 2 (Write).
	base := uint64(wordSize * (1 + count))
	buf := make([]byte, base+size)
	binary.LittleEndian.PutUint64(buf, uint64(count))
	for i, off := range offsets {
		binary.LittleEndian.PutUint64(buf[wordSize*(1+i):], off)
	}
	for i, e := range b.entries {
		writeEntry(buf[base+offsets[i]:], e)
	}
	binary.LittleEndian.PutUint64(buf[base+offsets[count-1]:], uint64(TagEnd))

	return buf, nil
}

// entrySize returns the encoded size of e in bytes.
func entrySize(e Entry) uint64 {
	if e.kind == KindScalar {
		return 2 * wordSize
	}

	return uint64(2+2*e.dist.Len()) * wordSize
}

// writeEntry writes e at the start of dst; dst must hold entrySize(e) bytes.
func writeEntry(dst []byte, e Entry) {
	if e.kind == KindScalar {
		binary.LittleEndian.PutUint64(dst, uint64(TagScalar))
		binary.LittleEndian.PutUint64(dst[wordSize:], math.Float64bits(e.scalar))
		return
	}
	n := e.dist.Len()
	binary.LittleEndian.PutUint64(dst, uint64(TagDistribution))
	binary.LittleEndian.PutUint64(dst[wordSize:], uint64(n))
	pos := 2 * wordSize
	for _, v := range e.dist.values {
		binary.LittleEndian.PutUint64(dst[pos:], math.Float64bits(v))
		pos += wordSize
	}
	for _, w := range e.dist.weights {
		binary.LittleEndian.PutUint64(dst[pos:], math.Float64bits(w))
		pos += wordSize
	}
}
