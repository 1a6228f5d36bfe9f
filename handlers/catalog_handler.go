package handlers

import (
	"net/http"

	"contractdraft-backend/clauses"
	"contractdraft-backend/inference"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClauseSource is satisfied by clauses.Selector and clauses.LiveSelector
type ClauseSource interface {
	Catalog() *clauses.Catalog
	SelectSafe(assignment clauses.Assignment, opts clauses.SelectOptions) (*clauses.Selection, error)
}

// CatalogHandler serves the variable domain, clause lookup and clause selection
type CatalogHandler struct {
	selector ClauseSource
	logger   *zap.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(selector ClauseSource, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{
		selector: selector,
		logger:   logger,
	}
}

// ListVariables handles GET /api/variables
func (h *CatalogHandler) ListVariables(c *gin.Context) {
	vars := clauses.ListVariables()

	type variableView struct {
		Name string `json:"name"`
		clauses.VariableSpec
	}

	out := make([]variableView, 0, len(clauses.Variables))
	for _, name := range clauses.Variables {
		out = append(out, variableView{Name: string(name), VariableSpec: vars[name]})
	}

	respondData(c, http.StatusOK, out)
}

// InferVariablesRequest represents the request body for variable inference
type InferVariablesRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      int64  `json:"amount"`
	Duration    string `json:"duration"`
}

// InferVariables handles POST /api/variables/infer
func (h *CatalogHandler) InferVariables(c *gin.Context) {
	var req InferVariablesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	analysis := inference.Analyze(req.Description, inference.ProjectFacts{
		Amount:   req.Amount,
		Duration: req.Duration,
	})

	respondData(c, http.StatusOK, analysis)
}

// GetClause handles GET /api/clauses/:id
func (h *CatalogHandler) GetClause(c *gin.Context) {
	clause, ok := h.selector.Catalog().Get(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "CLAUSE_NOT_FOUND", "Clause not found")
		return
	}

	respondData(c, http.StatusOK, clause)
}

// SelectOptionsBody is the JSON form of clauses.SelectOptions
type SelectOptionsBody struct {
	EssentialOnly bool     `json:"essential_only"`
	ExcludeIDs    []string `json:"exclude_ids"`
	IncludeIDs    []string `json:"include_ids"`
	MaxClauses    int      `json:"max_clauses"`
}

func (o SelectOptionsBody) toOptions() clauses.SelectOptions {
	return clauses.SelectOptions{
		EssentialOnly: o.EssentialOnly,
		ExcludeIDs:    o.ExcludeIDs,
		IncludeIDs:    o.IncludeIDs,
		MaxClauses:    o.MaxClauses,
	}
}

// SelectClausesRequest represents the request body for clause selection
type SelectClausesRequest struct {
	Variables map[string]string `json:"variables" binding:"required"`
	Options   SelectOptionsBody `json:"options"`
}

// SelectClauses handles POST /api/clauses/select. Missing variables are
// filled from defaults; selection failures return the failsafe clauses.
func (h *CatalogHandler) SelectClauses(c *gin.Context) {
	var req SelectClausesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if req.Options.MaxClauses < 0 {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "max_clauses must not be negative")
		return
	}

	assignment := clauses.DefaultAssignment().Merge(clauses.AssignmentFromMap(req.Variables))

	selection, err := h.selector.SelectSafe(assignment, req.Options.toOptions())
	if err != nil {
		h.logger.Warn("clause selection fell back to failsafe", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"variables":    assignment,
			"clauses":      selection.Clauses,
			"selected_ids": selection.SelectedIDs,
			"warnings":     selection.Warnings,
			"degraded":     err != nil,
		},
	})
}
