package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"contractdraft-backend/clauses"
	"contractdraft-backend/inference"

	"github.com/google/uuid"
)

// ContractStatus represents the lifecycle status of a contract
type ContractStatus string

const (
	StatusDraft     ContractStatus = "draft"
	StatusGenerated ContractStatus = "generated"
	StatusDegraded  ContractStatus = "degraded"
	StatusSent      ContractStatus = "sent"
	StatusSigned    ContractStatus = "signed"
	StatusArchived  ContractStatus = "archived"
)

// Valid reports whether s is a known status
func (s ContractStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusGenerated, StatusDegraded, StatusSent, StatusSigned, StatusArchived:
		return true
	}
	return false
}

// Party is one side of a contract
type Party struct {
	Name           string `json:"name"`
	Contact        string `json:"contact,omitempty"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"address,omitempty"`
	BusinessNumber string `json:"business_number,omitempty"`
}

// ContractInput is the raw data a contract is generated from
type ContractInput struct {
	ServiceName        string `json:"service_name"`
	ServiceDescription string `json:"service_description"`
	Amount             int64  `json:"amount"`
	Duration           string `json:"duration,omitempty"`
	StartDate          string `json:"start_date,omitempty"` // 2006-01-02
	PaymentMethod      string `json:"payment_method,omitempty"`
	Client             Party  `json:"client"`
	Provider           Party  `json:"provider"`
}

// Value implements driver.Valuer for JSONB
func (c ContractInput) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB
func (c *ContractInput) Scan(value interface{}) error {
	return scanJSON(value, c)
}

// ContractInfo is the header of a generated contract
type ContractInfo struct {
	Title            string `json:"title"`
	ServiceName      string `json:"service_name"`
	ServiceType      string `json:"service_type"`
	ServiceTypeLabel string `json:"service_type_label"`
	Client           Party  `json:"client"`
	Provider         Party  `json:"provider"`
	Amount           int64  `json:"amount"`
	StartDate        string `json:"start_date,omitempty"`
	EndDate          string `json:"end_date,omitempty"`
	RiskLevel        string `json:"risk_level"`
}

// DocumentClause is a clause with its placeholders resolved
type DocumentClause struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Essential bool   `json:"essential"`
	Order     int    `json:"order"`
}

// DocumentMetadata describes how a document was generated
type DocumentMetadata struct {
	GeneratedAt time.Time                   `json:"generated_at"`
	ClauseCount int                         `json:"clause_count"`
	RiskLevel   string                      `json:"risk_level"`
	RiskScore   int                         `json:"risk_score"`
	Derived     *inference.DerivedVariables `json:"derived,omitempty"`
	Warnings    []string                    `json:"warnings,omitempty"`
	Degraded    bool                        `json:"degraded"`
}

// ContractDocument is the generated contract handed to persistence and rendering
type ContractDocument struct {
	ContractInfo ContractInfo       `json:"contract_info"`
	Clauses      []DocumentClause   `json:"clauses"`
	Variables    clauses.Assignment `json:"variables"`
	Metadata     DocumentMetadata   `json:"metadata"`
}

// Value implements driver.Valuer for JSONB
func (d ContractDocument) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSONB
func (d *ContractDocument) Scan(value interface{}) error {
	return scanJSON(value, d)
}

// VariableSet is a stored variable assignment
type VariableSet map[string]string

// Value implements driver.Valuer for JSONB
func (v VariableSet) Value() (driver.Value, error) {
	if v == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(v)
}

// Scan implements sql.Scanner for JSONB
func (v *VariableSet) Scan(value interface{}) error {
	*v = make(VariableSet)
	return scanJSON(value, v)
}

// Contract represents a stored contract
type Contract struct {
	ID           uuid.UUID         `json:"id"`
	UserID       *uuid.UUID        `json:"user_id,omitempty"`
	Title        string            `json:"title"`
	Status       ContractStatus    `json:"status"`
	Amount       int64             `json:"amount"`
	Input        ContractInput     `json:"input"`
	Variables    VariableSet       `json:"variables"`
	Document     *ContractDocument `json:"document,omitempty"`
	DocumentPath *string           `json:"document_path,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	SignedAt     *time.Time        `json:"signed_at,omitempty"`
}

// scanJSON decodes a JSONB column, leaving dst untouched for NULL or empty values
func scanJSON(value interface{}, dst interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		return nil
	}

	return json.Unmarshal(bytes, dst)
}
