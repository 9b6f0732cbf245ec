package ident

// TextID names one distinct identifier spelling inside an Interner.
// It is internal plumbing: handles embed occurrence indices, never TextIDs.
type TextID uint32

const NoTextID TextID = 0

// Interner deduplicates identifier spellings byte-for-byte.
type Interner struct {
	byID  []string          // индекс -> строка (byID[0] = "" для NoTextID)
	index map[string]TextID // строка -> ID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""}, // NoTextID → пустая строка
		index: map[string]TextID{"": 0},
	}
}

// Insert вставляет байты и возвращает ID спеллинга.
// Если такой текст уже есть, возвращает его ID.
func (in *Interner) Insert(text []byte) TextID {
	if id, ok := in.index[string(text)]; ok {
		return id
	}
	// string(text) копирует байты: интернированный текст не зависит от
	// исходного буфера токенизатора.
	cpy := string(text)
	id := TextID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// Intern вставляет строку и возвращает её ID.
func (in *Interner) Intern(s string) TextID {
	return in.Insert([]byte(s))
}

// Lookup возвращает текст по ID.
// Если ID не валиден, возвращает пустую строку и false.
func (in *Interner) Lookup(id TextID) (string, bool) {
	if !in.Has(id) {
		return "", false
	}
	return in.byID[id], true
}

// TextOf возвращает текст по ID, пустую строку для невалидного ID.
func (in *Interner) TextOf(id TextID) string {
	s, _ := in.Lookup(id)
	return s
}

// Find returns the ID whose canonical text equals text byte-for-byte.
// Deduplication guarantees at most one match.
func (in *Interner) Find(text []byte) (TextID, bool) {
	id, ok := in.index[string(text)]
	return id, ok
}

// SameText reports whether two IDs resolve to byte-identical text.
// Equal IDs always do; under exact dedup distinct IDs never do, but the
// contract is stated over the texts, so they are compared.
func (in *Interner) SameText(a, b TextID) bool {
	if a == b {
		return in.Has(a)
	}
	sa, oka := in.Lookup(a)
	sb, okb := in.Lookup(b)
	return oka && okb && sa == sb
}

// Has проверяет, валиден ли ID.
func (in *Interner) Has(id TextID) bool {
	return int(id) < len(in.byID)
}

// Len возвращает количество спеллингов. NoTextID тоже учитывается.
func (in *Interner) Len() int {
	return len(in.byID)
}
