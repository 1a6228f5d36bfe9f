package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"contractdraft-backend/models"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteSchema creates the contracts table for the embedded store
const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS contracts (
    id TEXT PRIMARY KEY,
    user_id TEXT,
    title TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'draft'
        CHECK (status IN ('draft', 'generated', 'degraded', 'sent', 'signed', 'archived')),
    amount INTEGER NOT NULL DEFAULT 0,
    input TEXT NOT NULL DEFAULT '{}',
    variables TEXT NOT NULL DEFAULT '{}',
    document TEXT,
    document_path TEXT,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL,
    signed_at DATETIME
);
CREATE INDEX IF NOT EXISTS idx_contracts_user_created ON contracts(user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_contracts_status ON contracts(status);`

// OpenSQLite opens the database at dsn and creates the schema
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// A single writer avoids SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, SQLiteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create sqlite schema: %w", err)
	}
	return db, nil
}

// SQLiteContractRepository stores contracts in an embedded SQLite database
type SQLiteContractRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteContractRepository creates a repository over a database opened
// with OpenSQLite
func NewSQLiteContractRepository(db *sql.DB) *SQLiteContractRepository {
	return &SQLiteContractRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Create inserts a contract and fills its generated columns
func (r *SQLiteContractRepository) Create(ctx context.Context, contract *models.Contract) error {
	id := uuid.New()
	now := r.now()

	query := `
		INSERT INTO contracts (
			id, user_id, title, status, amount, input, variables, document,
			document_path, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(
		ctx, query,
		id,
		contract.UserID,
		contract.Title,
		contract.Status,
		contract.Amount,
		contract.Input,
		contract.Variables,
		contract.Document,
		contract.DocumentPath,
		now,
		now,
	)
	if err != nil {
		return err
	}

	contract.ID = id
	contract.CreatedAt = now
	contract.UpdatedAt = now
	return nil
}

// GetByID retrieves a contract by ID
func (r *SQLiteContractRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	query := `SELECT` + contractColumns + ` FROM contracts WHERE id = ?`

	contract, err := scanContract(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return contract, err
}

// List retrieves contracts, newest first. A nil userID lists every owner.
func (r *SQLiteContractRepository) List(ctx context.Context, userID *uuid.UUID, status *models.ContractStatus, limit, offset int) ([]*models.Contract, error) {
	query := `SELECT` + contractColumns + ` FROM contracts WHERE 1 = 1`
	args := []interface{}{}

	if userID != nil {
		query += " AND user_id = ?"
		args = append(args, *userID)
	}
	if status != nil {
		query += " AND status = ?"
		args = append(args, *status)
	}

	query += " ORDER BY created_at DESC, id"

	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	} else if offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		args = append(args, offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contracts := []*models.Contract{}
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
func (r *SQLiteContractRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ContractStatus) (*models.Contract, error) {
	now := r.now()
	query := `
		UPDATE contracts SET
			status = ?,
			signed_at = CASE WHEN ? THEN COALESCE(signed_at, ?) ELSE signed_at END,
			updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, status, status == models.StatusSigned, now, now, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// UpdateDocumentPath records where the rendered document is archived
func (r *SQLiteContractRepository) UpdateDocumentPath(ctx context.Context, id uuid.UUID, path string) error {
	query := `UPDATE contracts SET document_path = ?, updated_at = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, path, r.now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a contract
func (r *SQLiteContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contracts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
