package repository

import (
	"context"
	"errors"
	"fmt"

	"contractdraft-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a row does not exist
var ErrNotFound = errors.New("record not found")

const contractColumns = `
	id, user_id, title, status, amount, input, variables, document,
	document_path, created_at, updated_at, signed_at`

// ContractRepository handles database operations for contracts
type ContractRepository struct {
	db *pgxpool.Pool
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{db: db}
}

// Create inserts a contract and fills its generated columns
func (r *ContractRepository) Create(ctx context.Context, contract *models.Contract) error {
	query := `
		INSERT INTO contracts (
			user_id, title, status, amount, input, variables, document, document_path
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at`

	return r.db.QueryRow(
		ctx, query,
		contract.UserID,
		contract.Title,
		contract.Status,
		contract.Amount,
		contract.Input,
		contract.Variables,
		contract.Document,
		contract.DocumentPath,
	).Scan(&contract.ID, &contract.CreatedAt, &contract.UpdatedAt)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContract(row rowScanner) (*models.Contract, error) {
	contract := &models.Contract{}
	var doc models.ContractDocument
	var hasDoc bool

	err := row.Scan(
		&contract.ID,
		&contract.UserID,
		&contract.Title,
		&contract.Status,
		&contract.Amount,
		&contract.Input,
		&contract.Variables,
		&nullableDocument{doc: &doc, valid: &hasDoc},
		&contract.DocumentPath,
		&contract.CreatedAt,
		&contract.UpdatedAt,
		&contract.SignedAt,
	)
	if err != nil {
		return nil, err
	}
	if hasDoc {
		contract.Document = &doc
	}
	return contract, nil
}

// nullableDocument scans a JSONB document column that may be NULL
type nullableDocument struct {
	doc   *models.ContractDocument
	valid *bool
}

func (n *nullableDocument) Scan(value interface{}) error {
	if value == nil {
		*n.valid = false
		return nil
	}
	*n.valid = true
	return n.doc.Scan(value)
}

// GetByID retrieves a contract by ID
func (r *ContractRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	query := `SELECT` + contractColumns + ` FROM contracts WHERE id = $1`

	contract, err := scanContract(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return contract, err
}

// List retrieves contracts, newest first. A nil userID lists every owner.
func (r *ContractRepository) List(ctx context.Context, userID *uuid.UUID, status *models.ContractStatus, limit, offset int) ([]*models.Contract, error) {
	query, args := listQuery(userID, status, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []*models.Contract
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}

	return contracts, rows.Err()
}

// UpdateStatus sets a contract's status, stamping signed_at when it becomes signed
func (r *ContractRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ContractStatus) (*models.Contract, error) {
	query := `
		UPDATE contracts SET
			status = $2,
			signed_at = CASE WHEN $3 THEN COALESCE(signed_at, NOW()) ELSE signed_at END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING` + contractColumns

	contract, err := scanContract(r.db.QueryRow(ctx, query, id, status, status == models.StatusSigned))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return contract, err
}

// UpdateDocumentPath records where the rendered document is archived
func (r *ContractRepository) UpdateDocumentPath(ctx context.Context, id uuid.UUID, path string) error {
	query := `
		UPDATE contracts SET
			document_path = $2,
			updated_at = NOW()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, path)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a contract
func (r *ContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM contracts WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// PostgresSchema creates the contracts table
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS contracts (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID,
    title TEXT NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'draft'
        CHECK (status IN ('draft', 'generated', 'degraded', 'sent', 'signed', 'archived')),
    amount BIGINT NOT NULL DEFAULT 0,
    input JSONB NOT NULL DEFAULT '{}'::jsonb,
    variables JSONB NOT NULL DEFAULT '{}'::jsonb,
    document JSONB,
    document_path TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    signed_at TIMESTAMPTZ
);`

// listQuery builds the List statement. Offset applies with or without a limit.
func listQuery(userID *uuid.UUID, status *models.ContractStatus, limit, offset int) (string, []interface{}) {
	query := `SELECT` + contractColumns + ` FROM contracts WHERE 1 = 1`

	args := []interface{}{}
	argIndex := 1

	if userID != nil {
		query += fmt.Sprintf(" AND user_id = $%d", argIndex)
		args = append(args, *userID)
		argIndex++
	}

	if status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, *status)
		argIndex++
	}

	query += " ORDER BY created_at DESC, id"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, limit)
		argIndex++
	}

	if offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, offset)
	}

	return query, args
}
