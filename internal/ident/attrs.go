package ident

import "bytes"

// Attributes encode naming-convention flags derived from an identifier's
// spelling. They occupy the top 3 bits of an Idx handle.
type Attributes uint8

const (
	// AttrEffectful marks identifiers spelled with a trailing '!'.
	AttrEffectful Attributes = 1 << iota
	// AttrIgnored marks identifiers spelled with a leading '_'.
	AttrIgnored
	// AttrReassignable marks identifiers spelled with a trailing '_'.
	AttrReassignable
)

const attrBits = 3

func (a Attributes) Effectful() bool    { return a&AttrEffectful != 0 }
func (a Attributes) Ignored() bool      { return a&AttrIgnored != 0 }
func (a Attributes) Reassignable() bool { return a&AttrReassignable != 0 }

// Strings returns a slice of textual attribute labels.
func (a Attributes) Strings() []string {
	if a == 0 {
		return nil
	}
	labels := make([]string, 0, attrBits)
	if a.Effectful() {
		labels = append(labels, "effectful")
	}
	if a.Ignored() {
		labels = append(labels, "ignored")
	}
	if a.Reassignable() {
		labels = append(labels, "reassignable")
	}
	return labels
}

// Problems encode soft style lints found in an identifier's spelling.
// They never block insertion; the store reports them once as warnings.
type Problems uint8

const (
	// ProblemSubsequentUnderscores flags two or more consecutive '_'
	// anywhere in the spelling.
	ProblemSubsequentUnderscores Problems = 1 << iota
)

func (p Problems) SubsequentUnderscores() bool { return p&ProblemSubsequentUnderscores != 0 }

// Strings returns a slice of textual problem labels.
func (p Problems) Strings() []string {
	if p == 0 {
		return nil
	}
	labels := make([]string, 0, 1)
	if p.SubsequentUnderscores() {
		labels = append(labels, "subsequent underscores")
	}
	return labels
}

var doubleUnderscore = []byte("__")

// DeriveAttrs computes attributes and style problems from raw identifier
// bytes. The derivation is pure: it depends only on the byte content.
//
// A lone "_" counts as ignored, not reassignable; the trailing-underscore
// rule requires at least one preceding character.
func DeriveAttrs(text []byte) (Attributes, Problems) {
	var attrs Attributes
	var problems Problems
	if len(text) == 0 {
		return attrs, problems
	}
	if text[len(text)-1] == '!' {
		attrs |= AttrEffectful
	}
	if text[0] == '_' {
		attrs |= AttrIgnored
	}
	if len(text) > 1 && text[len(text)-1] == '_' {
		attrs |= AttrReassignable
	}
	if bytes.Contains(text, doubleUnderscore) {
		problems |= ProblemSubsequentUnderscores
	}
	return attrs, problems
}
