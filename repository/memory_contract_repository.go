package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"contractdraft-backend/models"

	"github.com/google/uuid"
)

// MemoryContractRepository keeps contracts in process memory. It backs the
// server when no database is configured.
type MemoryContractRepository struct {
	mu        sync.RWMutex
	contracts map[uuid.UUID]models.Contract
	now       func() time.Time
}

// NewMemoryContractRepository creates an empty in-memory repository
func NewMemoryContractRepository() *MemoryContractRepository {
	return &MemoryContractRepository{
		contracts: make(map[uuid.UUID]models.Contract),
		now:       time.Now,
	}
}

// Create stores a copy of contract and fills its generated fields
func (r *MemoryContractRepository) Create(ctx context.Context, contract *models.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	contract.ID = uuid.New()
	contract.CreatedAt = r.now()
	contract.UpdatedAt = contract.CreatedAt
	r.contracts[contract.ID] = *contract
	return nil
}

// GetByID retrieves a contract by ID
func (r *MemoryContractRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contract, ok := r.contracts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &contract, nil
}

// List retrieves contracts, newest first
func (r *MemoryContractRepository) List(ctx context.Context, userID *uuid.UUID, status *models.ContractStatus, limit, offset int) ([]*models.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var contracts []*models.Contract
	for _, c := range r.contracts {
		if userID != nil && (c.UserID == nil || *c.UserID != *userID) {
			continue
		}
		if status != nil && c.Status != *status {
			continue
		}
		contract := c
		contracts = append(contracts, &contract)
	}

	sort.Slice(contracts, func(i, j int) bool {
		if contracts[i].CreatedAt.Equal(contracts[j].CreatedAt) {
			return contracts[i].ID.String() < contracts[j].ID.String()
		}
		return contracts[i].CreatedAt.After(contracts[j].CreatedAt)
	})

	if offset >= len(contracts) {
		return []*models.Contract{}, nil
	}
	contracts = contracts[offset:]
	if limit > 0 && limit < len(contracts) {
		contracts = contracts[:limit]
	}
	return contracts, nil
}

// UpdateStatus sets a contract's status, stamping SignedAt when it becomes signed
func (r *MemoryContractRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ContractStatus) (*models.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contract, ok := r.contracts[id]
	if !ok {
		return nil, ErrNotFound
	}

	now := r.now()
	contract.Status = status
	contract.UpdatedAt = now
	if status == models.StatusSigned && contract.SignedAt == nil {
		contract.SignedAt = &now
	}
	r.contracts[id] = contract
	return &contract, nil
}

// UpdateDocumentPath records where the rendered document is archived
func (r *MemoryContractRepository) UpdateDocumentPath(ctx context.Context, id uuid.UUID, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	contract, ok := r.contracts[id]
	if !ok {
		return ErrNotFound
	}
	contract.DocumentPath = &path
	contract.UpdatedAt = r.now()
	r.contracts[id] = contract
	return nil
}

// Delete deletes a contract
func (r *MemoryContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contracts[id]; !ok {
		return ErrNotFound
	}
	delete(r.contracts, id)
	return nil
}
