// SPDX-License-Identifier: MIT

package params

import (
	"encoding/binary"
	"math"

	"github.com/katalvlaran/lvsas/modelinfo"
)

// Operation tags used for error wrapping.
const (
	opDecode   = "Decode"
	opValidate = "Validate"
)

// reader is a bounds-checked view over a block. Every accessor returns
// ErrTruncated instead of reading past the end.
type reader struct {
	buf []byte
}

// word reads the uint64 at byte position pos.
func (r reader) word(pos uint64) (uint64, error) {
	if pos > uint64(len(r.buf)) || uint64(len(r.buf))-pos < wordSize {
		return 0, ErrTruncated
	}

	return binary.LittleEndian.Uint64(r.buf[pos:]), nil
}

// float reads the float64 at byte position pos.
func (r reader) float(pos uint64) (float64, error) {
	w, err := r.word(pos)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(w), nil
}

// floats reads n consecutive float64 starting at pos into a fresh slice.
func (r reader) floats(pos, n uint64) ([]float64, error) {
	if n > uint64(len(r.buf))/wordSize {
		return nil, ErrTruncated
	}
	if pos > uint64(len(r.buf)) || uint64(len(r.buf))-pos < n*wordSize {
		return nil, ErrTruncated
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(r.buf[pos+uint64(i)*wordSize:]))
	}

	return out, nil
}

// Decode parses a parameter block. When info is non-nil the block is also
// cross-validated against it (see Parameters.Validate).
// Implementation:
//   - Stage 1: read count; zero is invalid; N = count−1 real entries.
//   - Stage 2: resolve every offset against base and read each entry's tag.
//   - Stage 3: require the entry after the last parameter to carry TagEnd.
//   - Stage 4: decode payloads into owned storage.
//   - Stage 5: optional descriptor cross-check.
//
// Behavior highlights:
//   - On any failure the result is nil: there is no partially decoded state.
//
// Errors:
//   - ErrEmptyBlock, ErrTruncated, ErrUnknownTag, ErrMissingEnd,
//     ErrEmptyDistribution, ErrCountMismatch, ErrShapeMismatch (wrapped with position).
//
// Complexity:
//   - Time O(B) in the block size, Space O(total points).
func Decode(block []byte, info *modelinfo.ModelInfo) (*Parameters, error) {
	r := reader{buf: block}

	// Stage 1 (Count).
	count, err := r.word(0)
	if err != nil || count == 0 {
		return nil, paramsErrorf(opDecode, ErrEmptyBlock)
	}
	// The offset table alone must fit in the block.
	if count > uint64(len(block))/wordSize-1 {
		return nil, paramsErrorf(opDecode, ErrTruncated)
	}
	base := wordSize * (1 + count)
	n := int(count - 1)

	// Stage 2 (Tags of real entries).
	positions := make([]uint64, count)
	tags := make([]Tag, count)
	for i := 0; i < int(count); i++ {
		off, err := r.word(wordSize * (1 + uint64(i)))
		if err != nil {
			return nil, entryErrorf(opDecode, i, err)
		}
		if off > math.MaxUint64-base {
			return nil, entryErrorf(opDecode, i, ErrTruncated)
		}
		positions[i] = base + off
		t, err := r.word(positions[i])
		if err != nil {
			return nil, entryErrorf(opDecode, i, err)
		}
		tags[i] = Tag(t)
		if i < n && tags[i] != TagScalar && tags[i] != TagDistribution {
			return nil, entryErrorf(opDecode, i, ErrUnknownTag)
		}
	}

	// Stage 3 (Sentinel).
	if tags[n] != TagEnd {
		return nil, entryErrorf(opDecode, n, ErrMissingEnd)
	}

	// Stage 4 (Payloads).
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		e, err := decodeEntry(r, tags[i], positions[i]+wordSize)
		if err != nil {
			return nil, entryErrorf(opDecode, i, err)
		}
		entries[i] = e
	}
	p := &Parameters{entries: entries}

	// Stage 5 (Descriptor).
	if info != nil {
		if err := p.Validate(info); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// decodeEntry reads the payload that follows a tag at pos.
func decodeEntry(r reader, tag Tag, pos uint64) (Entry, error) {
	switch tag {
	case TagScalar:
		v, err := r.float(pos)
		if err != nil {
			return Entry{}, err
		}

		return Entry{kind: KindScalar, scalar: v}, nil
	case TagDistribution:
		npoints, err := r.word(pos)
		if err != nil {
			return Entry{}, err
		}
		// every kernel needs at least one point to average over
		if npoints == 0 {
			return Entry{}, ErrEmptyDistribution
		}
		values, err := r.floats(pos+wordSize, npoints)
		if err != nil {
			return Entry{}, err
		}
		weights, err := r.floats(pos+wordSize+npoints*wordSize, npoints)
		if err != nil {
			return Entry{}, err
		}

		return Entry{kind: KindDistribution, dist: Distribution{values: values, weights: weights}}, nil
	default:
		return Entry{}, ErrUnknownTag
	}
}

// Validate cross-checks decoded entries against a descriptor: the entry count
// must equal info.Count() and every position must hold a Distribution iff the
// parameter is polydisperse.
// Complexity: O(P).
func (p *Parameters) Validate(info *modelinfo.ModelInfo) error {
	if p == nil {
		return paramsErrorf(opValidate, ErrNilParameters)
	}
	if info == nil {
		return paramsErrorf(opValidate, modelinfo.ErrNilInfo)
	}
	if info.Count() != len(p.entries) {
		return paramsErrorf(opValidate+": "+info.Name(), ErrCountMismatch)
	}
	for i, e := range p.entries {
		want := KindScalar
		if info.IsPolydisperse(i) {
			want = KindDistribution
		}
		if e.kind != want {
			return entryErrorf(opValidate+": "+info.Name(), i, ErrShapeMismatch)
		}
	}

	return nil
}
