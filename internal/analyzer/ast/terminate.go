package ast

// Terminates implements the shallow, conservative termination predicate
// from the design: true iff the top-level statement list contains a
// Return, Raise, or Continue. It deliberately does not recurse into
// nested blocks (an If whose every branch returns is still reported as
// non-terminating) — the type checker treats this as a hint, so
// over-approximation would be unsound while under-approximation is safe.
func Terminates(body []Statement) bool {
	for _, stmt := range body {
		switch stmt.(type) {
		case *Return, *Raise, *Continue:
			return true
		}
	}
	return false
}
