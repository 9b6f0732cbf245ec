package ident

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"rill/internal/diag"
	"rill/internal/modules"
	"rill/internal/source"
)

// ErrCapacityExceeded reports that a store ran out of 29-bit occurrence
// indices. It is fatal for the enclosing compilation: the caller must abort,
// never reuse or truncate an index.
var ErrCapacityExceeded = errors.New("identifier store capacity exceeded")

// Hints provide optional capacity suggestions for the store's side tables.
type Hints struct{ Occurrences, Texts uint }

// Store owns every identifier occurrence of one compilation unit.
//
// Each occurrence gets a fresh index even when its spelling repeats; the
// interner only decides whether the backing bytes need to be copied. The
// three side tables are parallel, indexed by occurrence, and grow exactly
// once per Insert/GenUnique call. Slot 0 of each is the NoIdx sentinel.
//
// A store has exactly one writer (the parsing/canonicalization pass) and is
// not safe for concurrent use.
type Store struct {
	interner *Interner

	texts    []TextID
	regions  []source.Span
	exposing []modules.ModuleID

	byText map[TextID][]Idx

	nextUnique uint32
}

// NewStore builds a fresh store with optional capacity hints.
func NewStore(h Hints) *Store {
	occCap, err := safecast.Conv[uint32](h.Occurrences)
	if err != nil {
		panic(fmt.Errorf("occurrence capacity overflow: %w", err))
	}
	if occCap == 0 {
		occCap = 64
	}
	s := &Store{
		interner: NewInterner(),
		texts:    make([]TextID, 1, occCap+1), // index 0 reserved for NoIdx
		regions:  make([]source.Span, 1, occCap+1),
		exposing: make([]modules.ModuleID, 1, occCap+1),
		byText:   make(map[TextID][]Idx, h.Texts),
	}
	return s
}

// Insert records one identifier occurrence and returns its handle.
//
// Attributes and style problems are derived from the spelling alone; a
// non-empty problem set is reported to reporter as a single IdentIssue
// warning and never blocks the insertion. A nil reporter discards lints.
func (s *Store) Insert(text []byte, region source.Span, reporter diag.Reporter) (Idx, error) {
	attrs, problems := DeriveAttrs(text)
	if problems != 0 && reporter != nil {
		msg := fmt.Sprintf("identifier %q: %s", text, strings.Join(problems.Strings(), ", "))
		reporter.Report(diag.IdentIssue, diag.SevWarning, region, msg, nil)
	}
	return s.newOccurrence(s.interner.Insert(text), attrs, region)
}

// GenUnique synthesizes a fresh identifier and records an occurrence for it.
// The n-th call on a store (0-indexed) produces the decimal spelling of n,
// so synthetic names never repeat within one store. The returned handle
// carries no attributes.
func (s *Store) GenUnique(region source.Span) (Idx, error) {
	var buf [10]byte // ширины хватает на максимальный uint32
	text := strconv.AppendUint(buf[:0], uint64(s.nextUnique), 10)
	s.nextUnique++
	return s.newOccurrence(s.interner.Insert(text), 0, region)
}

func (s *Store) newOccurrence(textID TextID, attrs Attributes, region source.Span) (Idx, error) {
	occ, err := occurrenceIndexFor(len(s.texts))
	if err != nil {
		return NoIdx, err
	}
	s.texts = append(s.texts, textID)
	s.regions = append(s.regions, region)
	s.exposing = append(s.exposing, modules.CurrentModule)
	idx := MakeIdx(occ, attrs)
	s.byText[textID] = append(s.byText[textID], idx)
	return idx, nil
}

// occurrenceIndexFor validates that next fits in the handle's 29 index bits.
func occurrenceIndexFor(next int) (uint32, error) {
	occ, err := safecast.Conv[uint32](next)
	if err != nil || occ > MaxOccurrenceIndex {
		return 0, ErrCapacityExceeded
	}
	return occ, nil
}

// Has reports whether the handle refers to an occurrence of this store.
func (s *Store) Has(idx Idx) bool {
	return idx.IsValid() && int(idx.Occurrence()) < len(s.texts)
}

// TextOf returns the canonical spelling for a handle, "" for an invalid one.
func (s *Store) TextOf(idx Idx) string {
	if !s.Has(idx) {
		return ""
	}
	return s.interner.TextOf(s.texts[idx.Occurrence()])
}

// RegionOf returns the source region recorded at insertion.
func (s *Store) RegionOf(idx Idx) source.Span {
	if !s.Has(idx) {
		return source.Span{}
	}
	return s.regions[idx.Occurrence()]
}

// ExposingModuleOf returns the module that exposes the occurrence.
// Until SetExposingModule is called it is modules.CurrentModule.
func (s *Store) ExposingModuleOf(idx Idx) modules.ModuleID {
	if !s.Has(idx) {
		return modules.CurrentModule
	}
	return s.exposing[idx.Occurrence()]
}

// SetExposingModule records the module that exposes the occurrence.
// Name resolution calls this at most once per handle, before any pass
// reads ExposingModuleOf. Invalid handles are ignored.
func (s *Store) SetExposingModule(idx Idx, m modules.ModuleID) {
	if !s.Has(idx) {
		return
	}
	s.exposing[idx.Occurrence()] = m
}

// SameText reports whether two handles spell byte-identical text,
// ignoring attribute bits.
func (s *Store) SameText(a, b Idx) bool {
	if !s.Has(a) || !s.Has(b) {
		return false
	}
	return s.interner.SameText(s.texts[a.Occurrence()], s.texts[b.Occurrence()])
}

// Lookup returns every occurrence handle spelled exactly like text, in
// insertion order, or nil when the spelling was never inserted.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутреннее
// хранилище Store)
func (s *Store) Lookup(text []byte) []Idx {
	id, ok := s.interner.Find(text)
	if !ok {
		return nil
	}
	return s.byText[id]
}

// Len reports the number of recorded occurrences excluding the sentinel.
func (s *Store) Len() int { return len(s.texts) - 1 }
