package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/starling-lang/starling/internal/analyzer/ast"
)

func TestNewLogger_VerboseVsQuiet(t *testing.T) {
	verbose := NewLogger(true)
	require.NotNil(t, verbose)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))

	quiet := NewLogger(false)
	require.NotNil(t, quiet)
	assert.False(t, quiet.Core().Enabled(zapcore.DebugLevel))
}

func TestReportMarkers_EmitsOneLinePerMarker(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	dump := &ast.Define{
		Name: ast.NewAccessChain(loc, "run"),
		Body: []ast.Statement{
			&ast.ExpressionStmt{Expr: markerCall("pyre_dump"), Loc: loc},
		},
		Loc: loc,
	}
	clean := &ast.Define{Name: ast.NewAccessChain(loc, "other"), Loc: loc}

	ReportMarkers(logger, "widget.py", []*ast.Define{dump, clean})

	require.Len(t, logs.All(), 1)
	assert.Equal(t, "dump marker", logs.All()[0].Message)
}

var loc = ast.SourceLocation{File: "test.py", StartLine: 1}

func markerCall(name string) ast.Expression {
	return &ast.AccessChain{Segments: []ast.Segment{
		ast.NewIdentifierSegment(name),
		ast.NewCallSegment(),
	}, Loc: loc}
}
