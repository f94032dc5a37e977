// Package rayops provides arithmetic, comparison, and formatted
// printing helpers for raylib-style vector, color, and matrix value
// types.
//
// The helpers are convenience functions of two kinds: componentwise
// arithmetic on the value types (so a caller can write
// b.Scale(2).Sub(c.Add(d)) instead of spelling out each component),
// and printers that render the types, and the composite structures
// built from them, as human-readable text.
//
// All operations are pure and synchronous. The only error the package
// can produce itself is division of a vector by a zero scalar.
package rayops

// PrintStyle selects how vectors and colors are rendered.
type PrintStyle int

const (
	// StyleParentheses prints a vector like an ordered set: Vector3{1, 2, 3}
	// prints as (1,2,3), and colors as (255,255,255,255) in RGBA order.
	StyleParentheses PrintStyle = iota
	// StyleComponents prints each component with its name: Vector3{1, 2, 3}
	// prints as "x=1, y=2, z=3", and colors as "R=255 G=255 B=255 A=255".
	StyleComponents
)

// Options configures a Printer and the equality comparison strategy.
// It is chosen once, not varied per call. The zero value selects
// parenthesized printing and tolerant equality.
type Options struct {
	Style    PrintStyle
	Equality Equality
}
