package handlers

import (
	"errors"
	"net/http"
	"time"

	"contractdraft-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondServiceError maps service sentinel errors onto HTTP responses
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrContractNotFound):
		respondError(c, http.StatusNotFound, "CONTRACT_NOT_FOUND", "Contract not found")
	case errors.Is(err, service.ErrDocumentNotFound):
		respondError(c, http.StatusNotFound, "DOCUMENT_NOT_FOUND", "Contract document not found")
	case errors.Is(err, service.ErrInvalidContractInput):
		respondError(c, http.StatusBadRequest, "INVALID_CONTRACT", err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		respondError(c, http.StatusBadRequest, "INVALID_STATUS", err.Error())
	case errors.Is(err, service.ErrStorageNotSet):
		respondError(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Document storage is not configured")
	default:
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

// RequestLogger logs one line per request
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("request failed", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}

// RegisterRoutes mounts every API route on r
func RegisterRoutes(r *gin.Engine, catalog *CatalogHandler, contracts *ContractHandler, documents *DocumentHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		// Variable and clause endpoints
		api.GET("/variables", catalog.ListVariables)
		api.POST("/variables/infer", catalog.InferVariables)
		api.GET("/clauses/:id", catalog.GetClause)
		api.POST("/clauses/select", catalog.SelectClauses)

		// Contract endpoints
		api.POST("/contracts/preview", contracts.PreviewContract)
		api.POST("/contracts", contracts.CreateContract)
		api.GET("/contracts", contracts.ListContracts)
		api.GET("/contracts/:id", contracts.GetContract)
		api.PUT("/contracts/:id/status", contracts.UpdateStatus)
		api.DELETE("/contracts/:id", contracts.DeleteContract)

		// Document endpoints
		api.GET("/contracts/:id/document", documents.GetDocument)
	}
}
