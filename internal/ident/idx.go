package ident

// Idx is a compact handle for one identifier occurrence: the occurrence
// index in the low 29 bits, the spelling-derived Attributes in the top 3.
// Handles are plain values meant to be embedded directly in AST nodes;
// they are only meaningful relative to the Store that produced them.
type Idx uint32

const (
	// NoIdx marks the absence of an identifier reference.
	NoIdx Idx = 0

	occurrenceBits = 32 - attrBits
	// MaxOccurrenceIndex is the largest occurrence index a handle can carry.
	MaxOccurrenceIndex = 1<<occurrenceBits - 1
)

// MakeIdx packs an occurrence index and attributes into a handle.
// The occurrence index must fit in 29 bits; the store's capacity guard
// ensures that before any handle is built.
func MakeIdx(occ uint32, attrs Attributes) Idx {
	return Idx(occ&MaxOccurrenceIndex | uint32(attrs)<<occurrenceBits)
}

// Occurrence returns the occurrence index embedded in the handle.
func (i Idx) Occurrence() uint32 {
	return uint32(i) & MaxOccurrenceIndex
}

// Attributes returns the attribute bits embedded in the handle.
func (i Idx) Attributes() Attributes {
	return Attributes(uint32(i) >> occurrenceBits)
}

// IsValid reports whether the handle refers to an allocated occurrence.
func (i Idx) IsValid() bool { return i.Occurrence() != 0 }
