package cmp

type BiPredicator[V any, U any] func(a V, b U) bool

// a == b as BiPredicator function
func EqEq[T comparable](a, b T) bool {
	return a == b
}

// check a == b
func MapEq[K comparable, V comparable](a map[K]V, b map[K]V) bool {
	if len(a) != len(b) {
		return false
	}
	return MapGeq(a, b) && MapLeq(a, b)
}

// check a == b, in context of comparator
func MapEqWith[K comparable, V any, U any](a map[K]V, b map[K]U, comparator BiPredicator[V, U]) bool {
	if len(a) != len(b) {
		return false
	}
	return MapGeqWith(a, b, comparator) && MapLeqWith(a, b, comparator)
}

// check a ⊆ b
func MapLeq[K comparable, V comparable](a map[K]V, b map[K]V) bool {
	for ka, va := range a {
		vb, ok := b[ka]
		if !ok || vb != va {
			return false
		}
	}

	return true
}

// check a ⊆ b, in context of comparator
func MapLeqWith[K comparable, V any, U any](a map[K]V, b map[K]U, comparator BiPredicator[V, U]) bool {
	for ka, va := range a {
		vb, ok := b[ka]
		if !ok || !comparator(va, vb) {
			return false
		}
	}

	return true
}

// check b ⊆ a
func MapGeq[K comparable, V comparable](a map[K]V, b map[K]V) bool {
	for kb, vb := range b {
		va, ok := a[kb]
		if !ok || va != vb {
			return false
		}
	}
	return true
}

// check b ⊆ a, in context of comparator
func MapGeqWith[K comparable, V any, U any](a map[K]V, b map[K]U, comparator BiPredicator[V, U]) bool {
	for kb, vb := range b {
		va, ok := a[kb]
		if !ok || !comparator(va, vb) {
			return false
		}
	}
	return true
}
