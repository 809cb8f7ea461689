package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/nodelift/internal/assemble"
	"github.com/alexisbeaulieu97/nodelift/internal/library"
	"github.com/alexisbeaulieu97/nodelift/internal/logger"
	"github.com/alexisbeaulieu97/nodelift/internal/lower"
	"github.com/alexisbeaulieu97/nodelift/internal/nodespec"
	"github.com/alexisbeaulieu97/nodelift/internal/styler"
	"github.com/alexisbeaulieu97/nodelift/internal/theme"
	"github.com/alexisbeaulieu97/nodelift/internal/widget"
	nodelifterrors "github.com/alexisbeaulieu97/nodelift/pkg/errors"
)

// Request is the immutable input of one conversion run.
type Request struct {
	Root        *widget.Node
	Definitions []widget.Definition
	Theme       *theme.Model
	Config      theme.MappingConfig
}

// Stats summarizes a conversion for reporting surfaces. Errors and warnings
// are the collected per-property style diagnostics; they never abort a run.
type Stats struct {
	Nodes      int           `json:"nodes"`
	Components int           `json:"components"`
	Variants   int           `json:"variants"`
	Bindings   int           `json:"bindings"`
	Applied    int           `json:"appliedProperties"`
	Errors     []string      `json:"errors,omitempty"`
	Warnings   []string      `json:"warnings,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// Result is the full output of one conversion run.
type Result struct {
	RunID      string                         `json:"runId"`
	Root       *nodespec.Node                 `json:"root"`
	Components []nodespec.ComponentDefinition `json:"components,omitempty"`
	Library    nodespec.LibraryStructure      `json:"library"`
	Bindings   []nodespec.VariableBinding     `json:"variableBindings,omitempty"`
	Stats      Stats                          `json:"stats"`
}

// Service runs the full lowering pipeline. It holds no per-run state;
// every Convert call builds its own context, engine, and token table, so
// independent runs may execute concurrently on one Service.
type Service struct {
	log *logger.Logger
}

// NewService creates the conversion service.
func NewService(log *logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{log: log.WithComponent("pipeline")}
}

// Convert lowers the widget tree and theme into a node graph, assembled
// components, and an organized library. Only configuration-class failures
// return an error; style problems are collected into Stats.
func (s *Service) Convert(req Request) (*Result, error) {
	if req.Root == nil {
		return nil, nodelifterrors.NewValidationError("root", "widget tree is empty", nil)
	}

	start := time.Now()
	runID := uuid.NewString()
	log := s.log.WithFields(map[string]any{"run_id": runID})
	log.Debug("conversion started")

	tokens := theme.Build(req.Theme, req.Config)
	resolver := styler.NewResolver(tokens, req.Config, log)
	engine := lower.NewEngine(lower.NewContext(log), resolver)
	assembler := assemble.NewAssembler(engine)

	components := make([]nodespec.ComponentDefinition, 0, len(req.Definitions))
	for i := range req.Definitions {
		components = append(components, *assembler.BuildComponent(&req.Definitions[i]))
	}

	engine.SetInstancer(assembler.Instancer(req.Definitions, components))
	root := engine.Lower(req.Root)

	structure := library.NewOrganizer(log).Organize(components)

	report := engine.Report()
	variants := 0
	for _, c := range components {
		variants += len(c.Variants)
	}

	result := &Result{
		RunID:      runID,
		Root:       root,
		Components: components,
		Library:    structure,
		Bindings:   report.Bindings,
		Stats: Stats{
			Nodes:      root.Count(),
			Components: len(components),
			Variants:   variants,
			Bindings:   len(report.Bindings),
			Applied:    len(report.Applied),
			Errors:     report.Errors,
			Warnings:   report.Warnings,
			Duration:   time.Since(start),
		},
	}

	log.WithFields(map[string]any{
		"nodes":      result.Stats.Nodes,
		"components": result.Stats.Components,
		"warnings":   len(result.Stats.Warnings),
		"errors":     len(result.Stats.Errors),
	}).Info("conversion finished")

	return result, nil
}
