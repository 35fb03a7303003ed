// Package diagnostics wires this analyzer's debug markers and internal
// events into structured logging.
package diagnostics

import (
	"go.uber.org/zap"

	"github.com/starling-lang/starling/internal/analyzer/ast"
	"github.com/starling-lang/starling/internal/analyzer/define"
)

// NewLogger returns a development logger (human-readable, debug+) in
// verbose mode, and a production logger (JSON, info+) otherwise. Falling
// back to zap.NewNop() on construction failure keeps a broken logging
// config from taking the analyzer down with it.
func NewLogger(verbose bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// ReportMarkers emits one structured log line per define in defines that
// carries a pyre_dump or pyre_dump_cfg debug marker (define.Dump,
// define.DumpCFG). unit identifies the compilation unit the defines came
// from, for correlating log lines across a run.
func ReportMarkers(logger *zap.Logger, unit string, defines []*ast.Define) {
	for _, d := range defines {
		name, _ := d.SimpleName()
		if define.Dump(d) {
			logger.Info("dump marker",
				zap.String("unit", unit),
				zap.String("define", name),
				zap.Int("line", d.Loc.StartLine),
			)
		}
		if define.DumpCFG(d) {
			logger.Info("dump_cfg marker",
				zap.String("unit", unit),
				zap.String("define", name),
				zap.Int("line", d.Loc.StartLine),
			)
		}
	}
}
