package varcell

import "fmt"

// Tagged is a Cell that also records the name of the kind that wrote it, so
// reads under another kind fail instead of reinterpreting bits. It trades the
// tag's width and a fallible read for misuse detection; Cell itself stays
// untagged.
type Tagged[S Storage] struct {
	cell Cell[S]
	kind string
}

func Tag[S Storage, T any](k Kind[T], v T) Tagged[S] {
	return Tagged[S]{cell: From[S](k, v), kind: k.Name()}
}

// Checked decodes t under k, or fails with ErrKindMismatch when t was written
// under a different kind. An empty Tagged reads as the zero value of any kind.
func Checked[T any, S Storage](t Tagged[S], k Kind[T]) (T, error) {
	if t.kind != "" && t.kind != k.Name() {
		var zero T
		return zero, fmt.Errorf("%w: holds %s, read as %s", ErrKindMismatch, t.kind, k.Name())
	}
	return As(t.cell, k), nil
}

// Kind returns the name of the kind that wrote t, or "" for an empty Tagged.
func (t Tagged[S]) Kind() string { return t.kind }

// Unchecked returns the untagged cell.
func (t Tagged[S]) Unchecked() Cell[S] { return t.cell }
