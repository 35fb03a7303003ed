package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/starling-lang/starling/internal/analyzer/ast"
	"github.com/starling-lang/starling/internal/analyzer/cache"
	"github.com/starling-lang/starling/internal/analyzer/class"
	"github.com/starling-lang/starling/internal/analyzer/decorators"
	"github.com/starling-lang/starling/internal/analyzer/diagnostics"
	"github.com/starling-lang/starling/internal/analyzer/printer"
	"github.com/starling-lang/starling/internal/cli/ui"
)

func newDumpCmd(attrCache *cache.AttributeCache, unit uuid.UUID) *cobra.Command {
	var noColor bool
	var verbose bool
	var decoratorConfig string

	cmd := &cobra.Command{
		Use:   "dump [fixture]",
		Short: "Print the resolved attributes and source of a built-in example class",
		Long: `dump runs class.Attributes and class.Constructors over one of a
handful of named example classes and prints the result as a table,
alongside the class re-rendered through the pretty-printer. Run with
no argument to list the available fixtures.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				listFixtures(cmd.OutOrStdout(), noColor)
				return nil
			}

			f, err := findFixture(args[0])
			if err != nil {
				return err
			}

			registry := decorators.DefaultRegistry()
			if decoratorConfig != "" {
				registry, err = decorators.LoadRegistry(decoratorConfig)
				if err != nil {
					return fmt.Errorf("%s", ui.DecoratorRegistryError(decoratorConfig, err, noColor))
				}
			}

			logger := diagnostics.NewLogger(verbose)
			defer logger.Sync()

			return renderFixture(cmd.OutOrStdout(), f, registry, attrCache, unit, logger, noColor)
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colorized output")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log dump/dump_cfg debug markers found on the fixture's defines")
	cmd.Flags().StringVar(&decoratorConfig, "decorators", "", "path to a decorator registry YAML file, overriding the defaults")

	return cmd
}

func listFixtures(w io.Writer, noColor bool) {
	ui.Header(w, "available fixtures", noColor)
	kv := ui.NewKeyValueTable(w, noColor)
	for _, f := range fixtures() {
		kv.AddRow(f.name, f.description)
	}
	kv.Render()
}

func renderFixture(w io.Writer, f *fixture, registry decorators.Registry, attrCache *cache.AttributeCache, unit uuid.UUID, logger *zap.Logger, noColor bool) error {
	attrs := attrCache.GetOrCompute(unit, f.class, func() ast.AttributeMap {
		return class.Attributes(f.class, registry, f.inTest, f.includeGeneratedAttributes)
	})
	ctors := class.Constructors(f.class, f.inTest)
	diagnostics.ReportMarkers(logger, f.name, fixtureDefines(f.class))

	ui.Header(w, fmt.Sprintf("%s: %s", f.name, f.description), noColor)

	table := ui.NewTable(w, []string{"attribute", "annotation", "setter", "overloads"}, &ui.TableOptions{NoColor: noColor})
	for _, name := range sortedAttributeNames(attrs) {
		attr := attrs[name]
		table.AddRow(string(name), attributeAnnotation(attr), fmt.Sprintf("%t", attr.Setter), fmt.Sprintf("%d", len(attr.Defines)))
	}
	table.Render()
	fmt.Fprintln(w)

	ctorKV := ui.NewKeyValueTable(w, noColor)
	for _, ctor := range ctors {
		name, _ := ctor.SimpleName()
		ctorKV.AddRow(name, fmt.Sprintf("%d parameters", len(ctor.Parameters)))
	}
	if len(ctors) > 0 {
		ui.Header(w, "constructors", noColor)
		ctorKV.Render()
		fmt.Fprintln(w)
	}

	section := ui.NewSection(w, "pretty-printed source", noColor)
	for _, line := range printerLines(f.class) {
		section.AddLine(line)
	}
	section.Render()

	return nil
}

func attributeAnnotation(attr *ast.Attribute) string {
	if attr.Annotation == nil {
		return "-"
	}
	return attr.Annotation.String()
}

func sortedAttributeNames(attrs ast.AttributeMap) []ast.AttributeName {
	names := make([]ast.AttributeName, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// fixtureDefines returns class's own top-level defines, the set
// diagnostics.ReportMarkers scans for dump/dump_cfg debug markers.
func fixtureDefines(cls *ast.Class) []*ast.Define {
	var out []*ast.Define
	for _, stmt := range cls.Body {
		if d, ok := stmt.(*ast.Define); ok {
			out = append(out, d)
		}
	}
	return out
}

func printerLines(cls *ast.Class) []string {
	source := printer.Print(cls)
	var lines []string
	start := 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			lines = append(lines, source[start:i])
			start = i + 1
		}
	}
	if start < len(source) {
		lines = append(lines, source[start:])
	}
	return lines
}
