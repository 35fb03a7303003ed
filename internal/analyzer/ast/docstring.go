package ast

import "strings"

// ExtractDocstring implements invariant 3: within a class body, the first
// Expression(String ...) statement, if present, is its docstring. Lines
// after the first are unindented to their minimum common indent, mirroring
// how docstrings are conventionally written with the closing text aligned
// under the class/def rather than under the opening quote.
func ExtractDocstring(statements []Statement) *string {
	if len(statements) == 0 {
		return nil
	}
	exprStmt, ok := statements[0].(*ExpressionStmt)
	if !ok {
		return nil
	}
	value, ok := exprStmt.Expr.AsString()
	if !ok {
		return nil
	}
	cleaned := dedentTail(value)
	return &cleaned
}

// dedentTail strips the minimum common leading whitespace from every
// non-blank line after the first, leaving the first line untouched.
func dedentTail(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= 1 {
		return s
	}

	minIndent := -1
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return s
	}

	out := make([]string, len(lines))
	out[0] = lines[0]
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			out[i+1] = ""
			continue
		}
		out[i+1] = line[minIndent:]
	}
	return strings.Join(out, "\n")
}
