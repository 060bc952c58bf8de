// Package graph builds chart descriptions (bar, line and pie) from slices and
// maps of numbers. A [Graph] records the chart kind, its ordered data units,
// an optional value range and a label handler; it carries no layout and is
// meant to be handed to a renderer.
//
// Default colors come from package colors: bars and lines use the
// [colors.Bar] and [colors.Line] roles, pie segments use [colors.PieColors].
package graph

import (
	"fmt"

	"tools.zach/dev/graphs/colors"
)

// ///////////////////////////////////////////////
// Kind
// ///////////////////////////////////////////////

// Kind selects how a graph is drawn.
type Kind int

const (
	KindBar Kind = iota
	KindLine
	KindPie
)

// String returns "bar", "line" or "pie".
func (k Kind) String() string {
	switch k {
	case KindBar:
		return "bar"
	case KindLine:
		return "line"
	case KindPie:
		return "pie"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ///////////////////////////////////////////////
// Types
// ///////////////////////////////////////////////

// Number is the set of value types a graph can plot.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range bounds the value axis of a bar or line graph.
type Range[V Number] struct {
	Min V
	Max V
}

// NewRange returns a Range spanning a and b in either order.
func NewRange[V Number](a, b V) Range[V] {
	if b < a {
		a, b = b, a
	}
	return Range[V]{Min: a, Max: b}
}

// Contains reports whether Min <= v <= Max.
func (r Range[V]) Contains(v V) bool {
	return r.Min <= v && v <= r.Max
}

// Unit is one keyed data point.
type Unit[K comparable, V Number] struct {
	Key   K
	Value V
}

// TextFunc formats the label shown for a unit.
type TextFunc[K comparable, V Number] func(u Unit[K, V]) string

// Graph describes a single chart.
type Graph[K comparable, V Number] struct {
	// Kind is the chart type.
	Kind Kind
	// Units holds the data points in display order.
	Units []Unit[K, V]
	// Range is the value axis bounds; nil means derive from the data.
	// Always nil for pie graphs.
	Range *Range[V]
	// Text formats unit labels; nil uses the value's default formatting.
	Text TextFunc[K, V]
}

// Len returns the number of units.
func (g *Graph[K, V]) Len() int {
	return len(g.Units)
}

// Keys returns the unit keys in display order.
func (g *Graph[K, V]) Keys() []K {
	keys := make([]K, len(g.Units))
	for i, u := range g.Units {
		keys[i] = u.Key
	}
	return keys
}

// Values returns the unit values in display order.
func (g *Graph[K, V]) Values() []V {
	vals := make([]V, len(g.Units))
	for i, u := range g.Units {
		vals[i] = u.Value
	}
	return vals
}

// Label returns the display text for unit i.
func (g *Graph[K, V]) Label(i int) string {
	u := g.Units[i]
	if g.Text != nil {
		return g.Text(u)
	}
	return fmt.Sprintf("%v", u.Value)
}

// Fractions returns each value's share of the total. If the total is zero
// every share is zero.
func (g *Graph[K, V]) Fractions() []float64 {
	var total float64
	for _, u := range g.Units {
		total += float64(u.Value)
	}
	out := make([]float64, len(g.Units))
	if total == 0 {
		return out
	}
	for i, u := range g.Units {
		out[i] = float64(u.Value) / total
	}
	return out
}

// ///////////////////////////////////////////////
// Default Colors
// ///////////////////////////////////////////////

// SeriesColor returns the default stroke/fill color for the graph's kind.
// Pie graphs use the first palette entry.
func (g *Graph[K, V]) SeriesColor() colors.Color {
	switch g.Kind {
	case KindLine:
		return colors.Line.Color()
	case KindPie:
		return colors.FromRGB(0)
	default:
		return colors.Bar.Color()
	}
}

// TextColor returns the default label color for the graph's kind.
func (g *Graph[K, V]) TextColor() colors.Color {
	switch g.Kind {
	case KindLine:
		return colors.LineText.Color()
	case KindPie:
		return colors.PieText.Color()
	default:
		return colors.BarText.Color()
	}
}

// SegmentColors returns one color per unit: a palette for pie graphs and the
// series color repeated otherwise.
func (g *Graph[K, V]) SegmentColors() []colors.Color {
	if g.Kind == KindPie {
		return colors.PieColors(len(g.Units))
	}
	c := g.SeriesColor()
	out := make([]colors.Color, len(g.Units))
	for i := range out {
		out[i] = c
	}
	return out
}
