// SPDX-License-Identifier: MIT

package modelinfo

// Operation tags used for error wrapping.
const (
	opNew       = "New"
	opParameter = "Parameter"
	opLayer     = "Layer"
)

// ModelInfo is an immutable model descriptor.
//
// The parameter list is unexported so a *ModelInfo can be shared across
// goroutines and instances without defensive copies at every call site;
// Parameters returns a copy.
type ModelInfo struct {
	version     int
	name        string
	description string
	params      []ParameterInfo
	index       map[string]int
}

// New validates and builds a descriptor.
// Implementation:
//   - Stage 1: validate model name and parameter count.
//   - Stage 2: validate every parameter (name, default, bounds) and uniqueness.
//   - Stage 3: copy parameters and build the name index.
//
// Errors:
//   - ErrEmptyName, ErrNoParameters, ErrDuplicateName, ErrInvalidDefault,
//     ErrInvalidBounds, each wrapped with the offending name.
//
// Complexity:
//   - Time O(P), Space O(P).
func New(name, description string, params ...ParameterInfo) (*ModelInfo, error) {
	// Stage 1 (Validate model).
	if name == "" {
		return nil, modelinfoErrorf(opNew, ErrEmptyName)
	}
	if len(params) == 0 {
		return nil, modelinfoErrorf(opNew+": "+name, ErrNoParameters)
	}

	// Stage 2 (Validate parameters).
	index := make(map[string]int, len(params))
	for i := range params {
		if err := validateParameter(params[i]); err != nil {
			return nil, modelinfoErrorf(opNew+": "+name, err)
		}
		if _, dup := index[params[i].Name]; dup {
			return nil, modelinfoErrorf(opNew+": "+name+"."+params[i].Name, ErrDuplicateName)
		}
		index[params[i].Name] = i
	}

	// Stage 3 (Finalize): own the slice.
	own := make([]ParameterInfo, len(params))
	copy(own, params)

	return &ModelInfo{
		version:     APIVersion,
		name:        name,
		description: description,
		params:      own,
		index:       index,
	}, nil
}

// MustNew is New for static descriptors declared at package level.
// It panics on error, which is a programmer error in the declaration.
func MustNew(name, description string, params ...ParameterInfo) *ModelInfo {
	mi, err := New(name, description, params...)
	if err != nil {
		panic(err)
	}

	return mi
}

// Version returns the descriptor layout version (APIVersion).
func (m *ModelInfo) Version() int { return m.version }

// Name returns the model identity string.
func (m *ModelInfo) Name() string { return m.name }

// Description returns the human-readable formula/description.
func (m *ModelInfo) Description() string { return m.description }

// Count returns the number of parameters; every valid block carries this many entries.
func (m *ModelInfo) Count() int { return len(m.params) }

// Parameter returns the descriptor at position i.
func (m *ModelInfo) Parameter(i int) (ParameterInfo, error) {
	if i < 0 || i >= len(m.params) {
		return ParameterInfo{}, modelinfoErrorf(opParameter, ErrOutOfRange)
	}

	return m.params[i], nil
}

// Parameters returns a copy of the ordered parameter list.
func (m *ModelInfo) Parameters() []ParameterInfo {
	out := make([]ParameterInfo, len(m.params))
	copy(out, m.params)

	return out
}

// Index returns the position of the named parameter.
func (m *ModelInfo) Index(name string) (int, bool) {
	i, ok := m.index[name]

	return i, ok
}

// IsPolydisperse reports whether position i expects a distribution entry.
// Out-of-range positions report false.
func (m *ModelInfo) IsPolydisperse(i int) bool {
	if i < 0 || i >= len(m.params) {
		return false
	}

	return m.params[i].IsPolydisperse()
}

// Names lists, in declaration order, the parameters carrying every bit of flag.
// Names(FlagOrientation), Names(FlagPolydisperse), ... give the category lists
// hosts use to group parameters.
func (m *ModelInfo) Names(flag Flag) []string {
	var out []string
	for _, p := range m.params {
		if flag != FlagNone && p.Flags.Has(flag) {
			out = append(out, p.Name)
		}
	}

	return out
}

// clone returns an independent copy used by Layer.
func (m *ModelInfo) clone() *ModelInfo {
	params := make([]ParameterInfo, len(m.params))
	copy(params, m.params)
	index := make(map[string]int, len(m.index))
	for k, v := range m.index {
		index[k] = v
	}

	return &ModelInfo{
		version:     m.version,
		name:        m.name,
		description: m.description,
		params:      params,
		index:       index,
	}
}
