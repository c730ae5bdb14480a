package ecs

import "github.com/milk9111/skyclimb/ecs/component"

// ForEach visits every entity carrying the component in insertion order.
// Components may be added or removed and entities destroyed from inside fn;
// entities that lose the component before being visited are skipped.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	for _, e := range w.store(a.ID(), false).snapshot() {
		va, ok := Get(w, e, a)
		if !ok {
			continue
		}
		fn(e, va)
	}
}

// ForEach2 visits entities carrying both components, ordered by the first.
func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.store(a.ID(), false).snapshot() {
		va, ok := Get(w, e, a)
		if !ok {
			continue
		}
		vb, ok := Get(w, e, b)
		if !ok {
			continue
		}
		fn(e, va, vb)
	}
}

// ForEach3 visits entities carrying all three components, ordered by the first.
func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.store(a.ID(), false).snapshot() {
		va, ok := Get(w, e, a)
		if !ok {
			continue
		}
		vb, ok := Get(w, e, b)
		if !ok {
			continue
		}
		vc, ok := Get(w, e, c)
		if !ok {
			continue
		}
		fn(e, va, vb, vc)
	}
}
