// Package printer renders the statement model back into canonical surface
// syntax for diagnostics and golden tests. Output is deterministic: the
// same tree always prints the same text, and printing follows source
// order rather than any semantic reordering.
package printer

import (
	"bytes"
	"strings"

	"github.com/starling-lang/starling/internal/analyzer/ast"
)

const indentWidth = 2

// printer accumulates rendered text with a bytes.Buffer and an indent
// counter, incremented and decremented around each nested block.
type printer struct {
	buf    bytes.Buffer
	indent int
}

// Print renders a single statement, including any nested block it opens,
// as canonical surface syntax.
func Print(stmt ast.Statement) string {
	p := &printer{}
	p.statement(stmt)
	return p.buf.String()
}

// PrintBlock renders a statement list in order, each statement together
// with any nested block it opens, as for a define or class body. An empty
// list renders as `pass`.
func PrintBlock(statements []ast.Statement) string {
	p := &printer{}
	p.block(statements)
	return p.buf.String()
}

func (p *printer) writeIndent() {
	p.buf.WriteString(strings.Repeat(" ", p.indent*indentWidth))
}

func (p *printer) line(text string) {
	p.writeIndent()
	p.buf.WriteString(text)
	p.buf.WriteByte('\n')
}

func (p *printer) block(statements []ast.Statement) {
	if len(statements) == 0 {
		p.line("pass")
		return
	}
	for _, stmt := range statements {
		p.statement(stmt)
	}
}

func (p *printer) openBlock(header string, body []ast.Statement) {
	p.line(header)
	p.indent++
	p.block(body)
	p.indent--
}

func annotationComment(annotation ast.Expression) string {
	if annotation == nil {
		return ""
	}
	return "  # " + annotation.String()
}

func (p *printer) statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Assign:
		p.printAssign(s)
	case *ast.Assert:
		if s.Message != nil {
			p.line("assert " + s.Test.String() + ", " + s.Message.String())
		} else {
			p.line("assert " + s.Test.String())
		}
	case *ast.Break:
		p.line("break")
	case *ast.Continue:
		p.line("continue")
	case *ast.Pass:
		p.line("pass")
	case *ast.Delete:
		p.line("del " + s.Expr.String())
	case *ast.ExpressionStmt:
		p.line(s.Expr.String())
	case *ast.Raise:
		if s.Expr != nil {
			p.line("raise " + s.Expr.String())
		} else {
			p.line("raise")
		}
	case *ast.Return:
		if s.Expr != nil {
			p.line("return " + s.Expr.String())
		} else {
			p.line("return")
		}
	case *ast.Yield:
		p.line("yield " + s.Expr.String())
	case *ast.YieldFrom:
		p.line("yield from " + s.Expr.String())
	case *ast.Import:
		p.printImport(s)
	case *ast.Global:
		p.line("global " + strings.Join(s.Names, ", "))
	case *ast.Nonlocal:
		p.line("nonlocal " + strings.Join(s.Names, ", "))
	case *ast.For:
		p.printFor(s)
	case *ast.While:
		p.printWhile(s)
	case *ast.If:
		p.printIf(s)
	case *ast.With:
		p.printWith(s)
	case *ast.Try:
		p.printTry(s)
	case *ast.Define:
		p.printDefine(s)
	case *ast.Class:
		p.printClass(s)
	case *ast.Stub:
		p.statement(s.Decl)
	}
}

func (p *printer) printAssign(a *ast.Assign) {
	target := a.Target.String()
	if a.Parent != nil {
		target = *a.Parent + "." + target
	}

	var b strings.Builder
	b.WriteString(target)
	if a.Value != nil {
		b.WriteString(" = ")
		b.WriteString(a.Value.String())
	}
	b.WriteString(annotationComment(a.Annotation))
	p.line(b.String())
}

func (p *printer) printImport(i *ast.Import) {
	names := make([]string, len(i.Imports))
	for idx, n := range i.Imports {
		if n.Alias != nil {
			names[idx] = n.Name + " as " + *n.Alias
		} else {
			names[idx] = n.Name
		}
	}
	if i.From != nil {
		p.line("from " + *i.From + " import " + strings.Join(names, ", "))
		return
	}
	p.line("import " + strings.Join(names, ", "))
}

func (p *printer) printFor(f *ast.For) {
	keyword := "for"
	if f.Async {
		keyword = "async for"
	}
	header := keyword + " " + f.Target.String() + " in " + f.Iterator.String() + ":"
	p.openBlock(header, f.Body)
	if len(f.OrElse) > 0 {
		p.openBlock("else:", f.OrElse)
	}
}

func (p *printer) printWhile(w *ast.While) {
	p.openBlock("while "+w.Test.String()+":", w.Body)
	if len(w.OrElse) > 0 {
		p.openBlock("else:", w.OrElse)
	}
}

func (p *printer) printIf(i *ast.If) {
	p.openBlock("if "+i.Test.String()+":", i.Body)
	if len(i.OrElse) > 0 {
		p.openBlock("else:", i.OrElse)
	}
}

func (p *printer) printWith(w *ast.With) {
	keyword := "with"
	if w.Async {
		keyword = "async with"
	}
	parts := make([]string, len(w.Items))
	for idx, item := range w.Items {
		if item.Target != nil {
			parts[idx] = item.Expr.String() + " as " + item.Target.String()
		} else {
			parts[idx] = item.Expr.String()
		}
	}
	p.openBlock(keyword+" "+strings.Join(parts, ", ")+":", w.Body)
}

func (p *printer) printTry(t *ast.Try) {
	p.openBlock("try:", t.Body)
	for _, h := range t.Handlers {
		header := "except"
		if h.Kind != nil {
			header += " " + h.Kind.String()
		}
		if h.Name != nil {
			header += " as " + *h.Name
		}
		header += ":"
		p.openBlock(header, h.HandlerBody)
	}
	if len(t.OrElse) > 0 {
		p.openBlock("else:", t.OrElse)
	}
	if len(t.Finally) > 0 {
		p.openBlock("finally:", t.Finally)
	}
}

func (p *printer) printDecorators(decorators []ast.Expression) {
	for _, d := range decorators {
		p.line("@" + d.String())
	}
}

func (p *printer) printDefine(d *ast.Define) {
	p.printDecorators(d.Decorators)

	keyword := "def"
	if d.Async {
		keyword = "async def"
	}

	params := make([]string, len(d.Parameters))
	for idx, param := range d.Parameters {
		text := param.Name
		if param.Annotation != nil {
			text += ": " + param.Annotation.String()
		}
		if param.Default != nil {
			text += " = " + param.Default.String()
		}
		params[idx] = text
	}

	header := keyword + " " + d.Name.String() + "(" + strings.Join(params, ", ") + "):"
	if d.ReturnAnnotation != nil {
		header += " " + annotationComment(d.ReturnAnnotation)
	}
	p.openBlock(header, d.Body)
}

func (p *printer) printClass(c *ast.Class) {
	p.printDecorators(c.Decorators)

	header := "class " + c.Name.String()
	if len(c.Bases) > 0 {
		bases := make([]string, len(c.Bases))
		for idx, base := range c.Bases {
			bases[idx] = base.String()
		}
		header += "(" + strings.Join(bases, ", ") + ")"
	}
	header += ":"
	p.openBlock(header, c.Body)
}
