// Package ident interns identifier occurrences for one compilation unit.
//
// # Purpose
//
//   - Convert raw identifier bytes from the tokenizer into compact Idx
//     handles that AST nodes can store and compare by value.
//   - Preserve per-occurrence facts alongside the handle: the source region,
//     the exposing module, and spelling-derived attribute flags.
//   - Report soft style lints (repeated underscores) through diag.Reporter
//     without ever blocking insertion.
//
// # Handles vs. spellings
//
// Two indices exist and must not be confused. A TextID names a distinct
// spelling inside the Interner and stays internal. An occurrence index names
// one concrete appearance of an identifier; it is what an Idx embeds, because
// region and exposing module are per-occurrence facts — two occurrences of
// the same spelling usually live in different places. Collapsing them onto
// the dedup index would silently overwrite side-table slots.
//
// An Idx packs the occurrence index into its low 29 bits and the three
// attribute flags (effectful '!' suffix, ignored '_' prefix, reassignable
// '_' suffix) into the top 3. Index 0 is the NoIdx sentinel, so one store
// holds at most 2^29−1 occurrences; crossing that bound yields
// ErrCapacityExceeded, which aborts the compilation.
//
// # Lifecycle
//
// A Store is created before parsing a unit, mutated by exactly one writer
// during parsing/canonicalization, read by later passes, and dropped with
// the unit. Handles never cross stores.
package ident
