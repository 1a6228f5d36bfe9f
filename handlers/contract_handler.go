package handlers

import (
	"net/http"
	"strconv"

	"contractdraft-backend/clauses"
	"contractdraft-backend/models"
	"contractdraft-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContractHandler handles HTTP requests for contracts
type ContractHandler struct {
	contractService *service.ContractService
}

// NewContractHandler creates a new contract handler
func NewContractHandler(contractService *service.ContractService) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
	}
}

// GenerateContractBody represents the request body for previewing or creating a contract
type GenerateContractBody struct {
	UserID    string               `json:"user_id"`
	Contract  models.ContractInput `json:"contract"`
	Variables map[string]string    `json:"variables"`
	Options   SelectOptionsBody    `json:"options"`
}

func (b GenerateContractBody) toRequest() service.GenerateContractRequest {
	return service.GenerateContractRequest{
		Input:     b.Contract,
		Variables: clauses.AssignmentFromMap(b.Variables),
		Options:   b.Options.toOptions(),
	}
}

func bindGenerateBody(c *gin.Context) (*GenerateContractBody, bool) {
	var body GenerateContractBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return nil, false
	}
	if err := service.ValidateInput(body.Contract); err != nil {
		respondServiceError(c, err)
		return nil, false
	}
	if body.Options.MaxClauses < 0 {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "max_clauses must not be negative")
		return nil, false
	}
	return &body, true
}

// PreviewContract handles POST /api/contracts/preview. Nothing is stored.
func (h *ContractHandler) PreviewContract(c *gin.Context) {
	body, ok := bindGenerateBody(c)
	if !ok {
		return
	}

	result := h.contractService.Generator().GenerateContract(body.toRequest())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"document": result.Document,
			"degraded": !result.Success,
			"error":    result.Error,
			"warnings": result.Warnings,
		},
	})
}

// CreateContract handles POST /api/contracts
func (h *ContractHandler) CreateContract(c *gin.Context) {
	body, ok := bindGenerateBody(c)
	if !ok {
		return
	}

	req := service.CreateContractRequest{Generate: body.toRequest()}
	if body.UserID != "" {
		userID, err := uuid.Parse(body.UserID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_USER_ID", "Invalid user_id format")
			return
		}
		req.UserID = &userID
	}

	result, err := h.contractService.CreateContract(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result.Contract,
		"meta": gin.H{
			"degraded": !result.Success,
			"error":    result.Error,
			"warnings": result.Warnings,
		},
	})
}

// GetContract handles GET /api/contracts/:id
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, ok := parseContractID(c)
	if !ok {
		return
	}

	result, err := h.contractService.GetContract(c.Request.Context(), service.GetContractRequest{ID: id})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, result.Contract)
}

// ListContracts handles GET /api/contracts?user_id=&status=&limit=&offset=
func (h *ContractHandler) ListContracts(c *gin.Context) {
	req := service.ListContractsRequest{Limit: 20}

	if v := c.Query("user_id"); v != "" {
		userID, err := uuid.Parse(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_USER_ID", "Invalid user_id format")
			return
		}
		req.UserID = &userID
	}
	if v := c.Query("status"); v != "" {
		status := models.ContractStatus(v)
		req.Status = &status
	}

	var err error
	if req.Limit, err = queryInt(c, "limit", req.Limit); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a non-negative integer")
		return
	}
	if req.Offset, err = queryInt(c, "offset", 0); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_OFFSET", "offset must be a non-negative integer")
		return
	}

	result, err := h.contractService.ListContracts(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, result.Contracts)
}

// UpdateStatusBody represents the request body for a status change
type UpdateStatusBody struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PUT /api/contracts/:id/status
func (h *ContractHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseContractID(c)
	if !ok {
		return
	}

	var body UpdateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.contractService.UpdateStatus(c.Request.Context(), service.UpdateStatusRequest{
		ID:     id,
		Status: models.ContractStatus(body.Status),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, result.Contract)
}

// DeleteContract handles DELETE /api/contracts/:id
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	id, ok := parseContractID(c)
	if !ok {
		return
	}

	if err := h.contractService.DeleteContract(c.Request.Context(), service.DeleteContractRequest{ID: id}); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

func parseContractID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid contract ID format")
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}
