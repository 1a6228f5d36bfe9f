package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"contractdraft-backend/clauses"
	"contractdraft-backend/inference"
	"contractdraft-backend/models"
	"contractdraft-backend/templating"

	"go.uber.org/zap"
)

// ClauseSelector picks the clauses for a variable assignment
type ClauseSelector interface {
	Select(assignment clauses.Assignment, opts clauses.SelectOptions) (*clauses.Selection, error)
}

// VariableInferencer derives a variable assignment from a service description
type VariableInferencer interface {
	Infer(description string, facts inference.ProjectFacts) (clauses.Assignment, error)
}

// FallbackTitle is the title of a degraded contract
const FallbackTitle = "용역 계약서"

// ContractGenerator assembles contract documents from contract input
type ContractGenerator struct {
	selector   ClauseSelector
	inferencer VariableInferencer
	now        func() time.Time
	logger     *zap.Logger
}

// ContractGeneratorOption is a functional option for ContractGenerator
type ContractGeneratorOption func(*ContractGenerator)

// GeneratorWithSelector sets the clause selector
func GeneratorWithSelector(selector ClauseSelector) ContractGeneratorOption {
	return func(g *ContractGenerator) {
		g.selector = selector
	}
}

// GeneratorWithInferencer sets the variable inferencer
func GeneratorWithInferencer(inferencer VariableInferencer) ContractGeneratorOption {
	return func(g *ContractGenerator) {
		g.inferencer = inferencer
	}
}

// GeneratorWithClock sets the clock used for generation dates
func GeneratorWithClock(now func() time.Time) ContractGeneratorOption {
	return func(g *ContractGenerator) {
		g.now = now
	}
}

// GeneratorWithLogger sets the logger
func GeneratorWithLogger(logger *zap.Logger) ContractGeneratorOption {
	return func(g *ContractGenerator) {
		g.logger = logger
	}
}

// NewContractGenerator creates a generator over the built-in Korean catalog
// unless another selector is supplied
func NewContractGenerator(opts ...ContractGeneratorOption) *ContractGenerator {
	g := &ContractGenerator{
		inferencer: inference.KeywordInferencer{},
		now:        time.Now,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.selector == nil {
		g.selector = clauses.NewSelector(clauses.DefaultCatalog())
	}
	return g
}

// GenerateContractRequest represents a request to generate a contract document
type GenerateContractRequest struct {
	Input     models.ContractInput
	Variables clauses.Assignment // explicit values, may be partial
	Options   clauses.SelectOptions
}

// GenerateContractResult represents the result of generating a contract document.
// Document is always set; when Success is false it holds the fallback contract.
type GenerateContractResult struct {
	Success  bool
	Error    string
	Document *models.ContractDocument
	Warnings []string
}

var (
	ErrSelectionFailed = errors.New("clause selection failed")
	ErrInferenceFailed = errors.New("variable inference failed")
)

// GenerateContract resolves the variables, selects and fills the clauses and
// assembles the document. It never fails: any error or panic yields a degraded
// fallback document with Success set to false.
func (g *ContractGenerator) GenerateContract(req GenerateContractRequest) (result *GenerateContractResult) {
	now := g.now()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("contract generation panicked: %v", r)
			g.logger.Error("contract generation failed", zap.Error(err))
			result = g.fallback(req.Input, err, now)
		}
	}()

	doc, warnings, err := g.assemble(req, now)
	if err != nil {
		g.logger.Warn("contract generation degraded", zap.Error(err), zap.String("service_name", req.Input.ServiceName))
		return g.fallback(req.Input, err, now)
	}

	for _, w := range warnings {
		g.logger.Warn("contract generation warning", zap.String("warning", w))
	}

	return &GenerateContractResult{
		Success:  true,
		Document: doc,
		Warnings: warnings,
	}
}

// ResolveVariables applies the precedence explicit > inferred > default
func (g *ContractGenerator) ResolveVariables(input models.ContractInput, explicit clauses.Assignment) (clauses.Assignment, error) {
	assignment := clauses.DefaultAssignment()
	if explicit.Complete() {
		return assignment.Merge(explicit), nil
	}

	if g.inferencer != nil {
		inferred, err := g.inferencer.Infer(input.ServiceDescription, factsOf(input))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInferenceFailed, err)
		}
		assignment = assignment.Merge(inferred)
	}

	return assignment.Merge(explicit), nil
}

func (g *ContractGenerator) assemble(req GenerateContractRequest, now time.Time) (*models.ContractDocument, []string, error) {
	assignment, err := g.ResolveVariables(req.Input, req.Variables)
	if err != nil {
		return nil, nil, err
	}

	if g.selector == nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSelectionFailed, clauses.ErrNoCatalog)
	}
	selection, err := g.selector.Select(assignment, req.Options)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSelectionFailed, err)
	}

	facts := factsOf(req.Input)
	derived := inference.DeriveVariables(assignment, facts)
	dict := templating.BuildDictionary(req.Input, assignment, derived, now)
	filled := templating.Substitute(selection.Clauses, dict)

	start, end, _ := templating.ContractPeriod(req.Input, now)
	serviceType := assignment[clauses.ServiceType]

	doc := &models.ContractDocument{
		ContractInfo: models.ContractInfo{
			Title:            contractTitle(req.Input.ServiceName, clauses.ValueLabel(clauses.ServiceType, serviceType)),
			ServiceName:      req.Input.ServiceName,
			ServiceType:      serviceType,
			ServiceTypeLabel: clauses.ValueLabel(clauses.ServiceType, serviceType),
			Client:           req.Input.Client,
			Provider:         req.Input.Provider,
			Amount:           req.Input.Amount,
			StartDate:        start.Format(templating.DateLayout),
			EndDate:          end.Format(templating.DateLayout),
			RiskLevel:        derived.RiskLevel,
		},
		Clauses:   documentClauses(filled),
		Variables: assignment,
		Metadata: models.DocumentMetadata{
			GeneratedAt: now,
			ClauseCount: len(filled),
			RiskLevel:   derived.RiskLevel,
			RiskScore:   derived.RiskScore,
			Derived:     &derived,
			Warnings:    selection.Warnings,
		},
	}

	return doc, selection.Warnings, nil
}

func (g *ContractGenerator) fallback(input models.ContractInput, cause error, now time.Time) *GenerateContractResult {
	failsafe := clauses.FailsafeClauses()[:2]
	warnings := []string{cause.Error()}

	return &GenerateContractResult{
		Success: false,
		Error:   cause.Error(),
		Document: &models.ContractDocument{
			ContractInfo: models.ContractInfo{
				Title:     FallbackTitle,
				Client:    models.Party{Name: "갑"},
				Provider:  models.Party{Name: "을"},
				Amount:    input.Amount,
				RiskLevel: inference.RiskLow,
			},
			Clauses:   documentClauses(failsafe),
			Variables: clauses.DefaultAssignment(),
			Metadata: models.DocumentMetadata{
				GeneratedAt: now,
				ClauseCount: len(failsafe),
				RiskLevel:   inference.RiskLow,
				Warnings:    warnings,
				Degraded:    true,
			},
		},
		Warnings: warnings,
	}
}

func factsOf(input models.ContractInput) inference.ProjectFacts {
	return inference.ProjectFacts{Amount: input.Amount, Duration: input.Duration}
}

func contractTitle(serviceName, typeLabel string) string {
	name := strings.TrimSpace(serviceName)
	if name == "" {
		return typeLabel + " " + FallbackTitle
	}
	return name + " " + typeLabel + " 계약서"
}

func documentClauses(list []clauses.Clause) []models.DocumentClause {
	out := make([]models.DocumentClause, len(list))
	for i, c := range list {
		out[i] = models.DocumentClause{
			ID:        c.ID,
			Title:     c.Title,
			Content:   c.Content,
			Essential: c.Essential,
			Order:     c.SortOrder(),
		}
	}
	return out
}
