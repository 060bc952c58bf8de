package graph

import (
	"cmp"
	"slices"
	"strconv"
)

// ///////////////////////////////////////////////
// Options
// ///////////////////////////////////////////////

// Option configures a graph builder.
type Option[K comparable, V Number] func(*options[K, V])

type options[K comparable, V Number] struct {
	rng  *Range[V]
	text TextFunc[K, V]
	less func(a, b Unit[K, V]) bool
}

// WithRange bounds the value axis. Ignored by pie builders.
func WithRange[K comparable, V Number](lo, hi V) Option[K, V] {
	return func(o *options[K, V]) {
		r := NewRange(lo, hi)
		o.rng = &r
	}
}

// WithText sets the label handler.
func WithText[K comparable, V Number](fn func(u Unit[K, V]) string) Option[K, V] {
	return func(o *options[K, V]) { o.text = fn }
}

// WithLess orders map-built units. Ignored by slice builders, which keep
// input order.
func WithLess[K comparable, V Number](less func(a, b Unit[K, V]) bool) Option[K, V] {
	return func(o *options[K, V]) { o.less = less }
}

func applyOptions[K comparable, V Number](opts []Option[K, V]) options[K, V] {
	var o options[K, V]
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ///////////////////////////////////////////////
// Slice Builders
// ///////////////////////////////////////////////

// Bar builds a bar graph from values, keyed by decimal index.
func Bar[V Number](values []V, opts ...Option[string, V]) *Graph[string, V] {
	return fromSlice(KindBar, values, opts)
}

// Line builds a line graph from values, keyed by decimal index.
func Line[V Number](values []V, opts ...Option[string, V]) *Graph[string, V] {
	return fromSlice(KindLine, values, opts)
}

// Pie builds a pie graph from values, keyed by decimal index.
func Pie[V Number](values []V, opts ...Option[string, V]) *Graph[string, V] {
	return fromSlice(KindPie, values, opts)
}

func fromSlice[V Number](kind Kind, values []V, opts []Option[string, V]) *Graph[string, V] {
	o := applyOptions(opts)
	units := make([]Unit[string, V], len(values))
	for i, v := range values {
		units[i] = Unit[string, V]{Key: strconv.Itoa(i), Value: v}
	}
	return newGraph(kind, units, o)
}

// ///////////////////////////////////////////////
// Map Builders
// ///////////////////////////////////////////////

// BarMap builds a bar graph from m, ordered by key unless [WithLess] is given.
func BarMap[K cmp.Ordered, V Number](m map[K]V, opts ...Option[K, V]) *Graph[K, V] {
	return fromMap(KindBar, m, opts)
}

// LineMap builds a line graph from m, ordered by key unless [WithLess] is given.
func LineMap[K cmp.Ordered, V Number](m map[K]V, opts ...Option[K, V]) *Graph[K, V] {
	return fromMap(KindLine, m, opts)
}

// PieMap builds a pie graph from m, ordered by key unless [WithLess] is given.
func PieMap[K cmp.Ordered, V Number](m map[K]V, opts ...Option[K, V]) *Graph[K, V] {
	return fromMap(KindPie, m, opts)
}

func fromMap[K cmp.Ordered, V Number](kind Kind, m map[K]V, opts []Option[K, V]) *Graph[K, V] {
	o := applyOptions(opts)
	units := make([]Unit[K, V], 0, len(m))
	for k, v := range m {
		units = append(units, Unit[K, V]{Key: k, Value: v})
	}
	// Sort by key first so a custom ordering with ties is still deterministic.
	slices.SortFunc(units, func(a, b Unit[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	if o.less != nil {
		slices.SortStableFunc(units, func(a, b Unit[K, V]) int {
			switch {
			case o.less(a, b):
				return -1
			case o.less(b, a):
				return 1
			default:
				return 0
			}
		})
	}
	return newGraph(kind, units, o)
}

func newGraph[K comparable, V Number](kind Kind, units []Unit[K, V], o options[K, V]) *Graph[K, V] {
	g := &Graph[K, V]{Kind: kind, Units: units, Text: o.text}
	if kind != KindPie {
		g.Range = o.rng
	}
	return g
}
