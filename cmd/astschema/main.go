// Command astschema validates a YAML or JSON document against a
// JSON-Schema-style schema and prints ranked, severity-colored
// diagnostics.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/collector"
	"github.com/kaptinlin/astschema/document"
	"github.com/kaptinlin/astschema/internal/logging"
	"github.com/kaptinlin/astschema/jsonsource"
	"github.com/kaptinlin/astschema/result"
	"github.com/kaptinlin/astschema/schema"
	"github.com/kaptinlin/astschema/schemaload"
	"github.com/kaptinlin/astschema/yamlsource"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	schemaPath string
	severity   string
	focus      int64
	format     string
}

func newRootCmd() *cobra.Command {
	opts := &options{focus: -1}

	cmd := &cobra.Command{
		Use:           "astschema <document>",
		Short:         "Validate a YAML or JSON document against a schema",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.schemaPath, "schema", "", "path to the schema document (JSON or YAML)")
	flags.StringVar(&opts.severity, "severity", "warning", "minimum severity to promote diagnostics to (\"warning\" or \"error\")")
	flags.Int64Var(&opts.focus, "focus", -1, "byte offset to restrict applicable-schema collection to instead of validating; -1 disables")
	flags.StringVar(&opts.format, "format", "text", "output format: \"text\" or \"json\"")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

func run(docPath string, opts *options) error {
	logging.SetLevelFromEnv()
	log := logging.With("document", docPath, "schema", opts.schemaPath)

	docBytes, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("astschema: reading document: %w", err)
	}
	schemaBytes, err := os.ReadFile(opts.schemaPath)
	if err != nil {
		return fmt.Errorf("astschema: reading schema: %w", err)
	}

	root, err := parseDocument(docPath, docBytes)
	if err != nil {
		return err
	}
	s, err := parseSchema(opts.schemaPath, schemaBytes)
	if err != nil {
		return err
	}

	doc := document.NewWithSource(root, docBytes)

	if opts.focus >= 0 {
		matches := doc.GetMatchingSchemas(s, opts.focus, nil)
		log.Info("collected applicable schemas", "count", len(matches))
		return printMatches(matches, opts.format)
	}

	problems := doc.Validate(s)
	log.Info("validated", "problems", len(problems))
	promoteSeverity(problems, opts.severity)
	return printProblems(doc, problems, opts.format)
}

// parseDocument picks the AST builder by file extension: ".json" uses
// jsonsource's offset-tracking scanner, everything else is treated as
// YAML and goes through yamlsource.
func parseDocument(path string, data []byte) (*ast.Node, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return jsonsource.Parse(data)
	}
	return yamlsource.Parse(data)
}

func parseSchema(path string, data []byte) (*schema.Schema, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return schemaload.FromJSON(data)
	}
	return schemaload.FromYAML(data)
}

// promoteSeverity bumps every Warning diagnostic to Error when the
// caller asked for "error" severity; the engine itself never produces
// anything above Warning on its own.
func promoteSeverity(problems []result.Diagnostic, severity string) {
	if !strings.EqualFold(severity, "error") {
		return
	}
	for i := range problems {
		if problems[i].Severity == result.Warning {
			problems[i].Severity = result.Error
		}
	}
}

func printProblems(doc *document.Document, problems []result.Diagnostic, format string) error {
	if strings.EqualFold(format, "json") {
		return printProblemsJSON(problems)
	}
	return printProblemsText(doc, problems)
}

func printProblemsText(doc *document.Document, problems []result.Diagnostic) error {
	if len(problems) == 0 {
		fmt.Println(color.GreenString("no problems found"))
		return nil
	}
	for _, p := range problems {
		node, _ := doc.GetNodeAtOffset(p.Offset, true)
		line, column := doc.Offset(node)
		fmt.Printf("%s %s (%d:%d)\n", severityLabel(p.Severity), p.Message, line, column)
	}
	return nil
}

func severityLabel(s result.Severity) string {
	switch s {
	case result.Error:
		return color.RedString("error:")
	case result.Info:
		return color.CyanString("info:")
	case result.Hint:
		return color.HiBlackString("hint:")
	default:
		return color.YellowString("warning:")
	}
}

type jsonDiagnostic struct {
	Offset   uint32 `json:"offset"`
	Length   uint32 `json:"length"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

func printProblemsJSON(problems []result.Diagnostic) error {
	out := make([]jsonDiagnostic, len(problems))
	for i, p := range problems {
		out[i] = jsonDiagnostic{Offset: p.Offset, Length: p.Length, Severity: p.Severity.String(), Message: p.Message}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type jsonApplicableSchema struct {
	Offset     uint32 `json:"nodeOffset"`
	Length     uint32 `json:"nodeLength"`
	Inverted   bool   `json:"inverted"`
	SchemaPath string `json:"schemaPath"`
}

func printMatches(matches []collector.ApplicableSchema, format string) error {
	if strings.EqualFold(format, "json") {
		out := make([]jsonApplicableSchema, len(matches))
		for i, m := range matches {
			out[i] = jsonApplicableSchema{
				Offset:     m.Node.Offset,
				Length:     m.Node.Length,
				Inverted:   m.Inverted,
				SchemaPath: m.SchemaPath,
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(matches) == 0 {
		fmt.Println(color.YellowString("no applicable schemas at this offset"))
		return nil
	}
	for _, m := range matches {
		marker := ""
		if m.Inverted {
			marker = color.MagentaString(" (inverted)")
		}
		fmt.Printf("%s [offset %d, length %d]%s\n", m.SchemaPath, m.Node.Offset, m.Node.Length, marker)
	}
	return nil
}
