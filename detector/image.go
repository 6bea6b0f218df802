// SPDX-License-Identifier: MIT

package detector

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Image is a detector frame: intensities on the grid qx × qy.
type Image struct {
	qx, qy []float64 // column and row axes
	data   []float64 // row-major, len == len(qy)*len(qx)
}

// NewImage allocates a zeroed image over copies of the two axes.
// Stage 1 (Validate): both axes must be non-empty.
// Stage 2 (Prepare): copy the axes so callers may reuse theirs.
// Stage 3 (Finalize): allocate len(qy)·len(qx) zeroed pixels.
// Complexity: O(len(qx)·len(qy)) time and memory.
func NewImage(qx, qy []float64) (*Image, error) {
	// Validate axes
	if len(qx) == 0 || len(qy) == 0 {
		return nil, fmt.Errorf("NewImage(%d,%d): %w", len(qy), len(qx), ErrEmptyAxis)
	}

	// Copy axes and allocate pixels
	return &Image{
		qx:   append([]float64(nil), qx...),
		qy:   append([]float64(nil), qy...),
		data: make([]float64, len(qx)*len(qy)),
	}, nil
}

// Rows returns the number of rows, one per qy sample.
// Complexity: O(1).
func (m *Image) Rows() int {
	return len(m.qy) // rows follow the qy axis
}

// Cols returns the number of columns, one per qx sample.
// Complexity: O(1).
func (m *Image) Cols() int {
	return len(m.qx) // columns follow the qx axis
}

// Len returns rows·cols.
// Complexity: O(1).
func (m *Image) Len() int { return len(m.data) }

// QX returns a copy of the column axis.
func (m *Image) QX() []float64 { return append([]float64(nil), m.qx...) }

// QY returns a copy of the row axis.
func (m *Image) QY() []float64 { return append([]float64(nil), m.qy...) }

// Flatten returns the pixel coordinates in row-major order, the layout the
// 2D calculation entry points take: qx varies fastest.
// Complexity: O(rows·cols).
func (m *Image) Flatten() (qx, qy []float64) {
	qx = make([]float64, 0, len(m.data))
	qy = make([]float64, 0, len(m.data))
	for _, y := range m.qy {
		for _, x := range m.qx {
			qx = append(qx, x)
			qy = append(qy, y)
		}
	}

	return qx, qy
}

// indexOf returns the flat index of (row, col) or ErrIndexOutOfBounds.
// Stage 1 (Validate): check 0 ≤ row < Rows() and 0 ≤ col < Cols().
// Stage 2 (Execute): compute the row-major offset.
// Complexity: O(1).
func (m *Image) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= len(m.qy) || col < 0 || col >= len(m.qx) {
		return 0, imageErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*len(m.qx) + col, nil
}

// At returns the intensity at (row, col).
// Complexity: O(1).
func (m *Image) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col).
// Complexity: O(1).
func (m *Image) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Load copies a row-major intensity slice into the image, as produced by
// evaluating the coordinates from Flatten.
// Stage 1 (Validate): len(iq) must equal Len().
// Stage 2 (Execute): copy into the backing slice.
// Complexity: O(rows·cols).
func (m *Image) Load(iq []float64) error {
	// Validate length
	if len(iq) != len(m.data) {
		return fmt.Errorf("Image.Load(%d): %w", len(iq), ErrLengthMismatch)
	}
	copy(m.data, iq)

	return nil
}

// Data returns a copy of the row-major intensities.
func (m *Image) Data() []float64 { return append([]float64(nil), m.data...) }

// Sum returns the total intensity. NaN pixels propagate.
// Complexity: O(rows·cols).
func (m *Image) Sum() float64 {
	return floats.Sum(m.data)
}

// Max returns the largest intensity and its position, skipping NaN pixels.
// An all-NaN image yields NaN at (-1, -1).
// Complexity: O(rows·cols).
func (m *Image) Max() (v float64, row, col int) {
	v, row, col = math.NaN(), -1, -1
	for i, x := range m.data {
		if math.IsNaN(x) {
			continue
		}
		if row < 0 || x > v {
			v, row, col = x, i/len(m.qx), i%len(m.qx)
		}
	}

	return v, row, col
}

// Clone returns a deep copy.
func (m *Image) Clone() *Image {
	return &Image{qx: m.QX(), qy: m.QY(), data: m.Data()}
}

// String renders one bracketed row per line, for debugging.
func (m *Image) String() string {
	var sb strings.Builder
	cols := len(m.qx)
	for i := 0; i < len(m.qy); i++ {
		sb.WriteByte('[')
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*cols+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
