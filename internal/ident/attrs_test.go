package ident

import (
	"testing"
)

func TestDeriveAttrs(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		attrs    Attributes
		problems Problems
	}{
		{
			name:  "plain identifier",
			text:  "foo",
			attrs: 0,
		},
		{
			name:  "effectful suffix",
			text:  "foo!",
			attrs: AttrEffectful,
		},
		{
			name:  "ignored prefix",
			text:  "_x",
			attrs: AttrIgnored,
		},
		{
			name:  "reassignable suffix",
			text:  "x_",
			attrs: AttrReassignable,
		},
		{
			name:  "lone underscore is ignored only",
			text:  "_",
			attrs: AttrIgnored,
		},
		{
			name:  "ignored and effectful combine",
			text:  "_foo!",
			attrs: AttrIgnored | AttrEffectful,
		},
		{
			name:  "ignored and reassignable combine",
			text:  "_x_",
			attrs: AttrIgnored | AttrReassignable,
		},
		{
			name:     "consecutive underscores inside",
			text:     "a__b",
			problems: ProblemSubsequentUnderscores,
		},
		{
			name:     "double underscore alone",
			text:     "__",
			attrs:    AttrIgnored | AttrReassignable,
			problems: ProblemSubsequentUnderscores,
		},
		{
			name:     "consecutive underscores at the end",
			text:     "x__",
			attrs:    AttrReassignable,
			problems: ProblemSubsequentUnderscores,
		},
		{
			name:  "single separating underscore is fine",
			text:  "a_b",
			attrs: 0,
		},
		{
			name:  "empty text",
			text:  "",
			attrs: 0,
		},
		{
			name:  "exclamation alone",
			text:  "!",
			attrs: AttrEffectful,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, problems := DeriveAttrs([]byte(tt.text))
			if attrs != tt.attrs {
				t.Errorf("DeriveAttrs(%q) attrs = %v, want %v", tt.text, attrs.Strings(), tt.attrs.Strings())
			}
			if problems != tt.problems {
				t.Errorf("DeriveAttrs(%q) problems = %v, want %v", tt.text, problems.Strings(), tt.problems.Strings())
			}
		})
	}
}

func TestDeriveAttrsIsPure(t *testing.T) {
	text := []byte("count!")
	a1, p1 := DeriveAttrs(text)
	a2, p2 := DeriveAttrs(text)
	if a1 != a2 || p1 != p2 {
		t.Error("DeriveAttrs must be deterministic for identical input")
	}
}

func TestAttributesStrings(t *testing.T) {
	if got := Attributes(0).Strings(); got != nil {
		t.Errorf("empty attributes should yield nil labels, got %v", got)
	}
	all := AttrEffectful | AttrIgnored | AttrReassignable
	labels := all.Strings()
	want := []string{"effectful", "ignored", "reassignable"}
	if len(labels) != len(want) {
		t.Fatalf("Strings() = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("Strings()[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
}
