package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"contractdraft-backend/models"
	"contractdraft-backend/repository"
	"contractdraft-backend/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContractRepository is the persistence the contract service needs
type ContractRepository interface {
	Create(ctx context.Context, contract *models.Contract) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error)
	List(ctx context.Context, userID *uuid.UUID, status *models.ContractStatus, limit, offset int) ([]*models.Contract, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ContractStatus) (*models.Contract, error)
	UpdateDocumentPath(ctx context.Context, id uuid.UUID, path string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var (
	ErrRepositoryNotSet     = errors.New("contract repository not set")
	ErrStorageNotSet        = errors.New("document storage not set")
	ErrContractNotFound     = errors.New("contract not found")
	ErrDocumentNotFound     = errors.New("contract document not found")
	ErrInvalidContractInput = errors.New("invalid contract input")
	ErrInvalidStatus        = errors.New("invalid contract status")
)

// ContractService handles business logic for contracts
type ContractService struct {
	repo      ContractRepository
	generator *ContractGenerator
	storage   storage.Storage
	logger    *zap.Logger
}

// ContractServiceOption is a functional option for ContractService
type ContractServiceOption func(*ContractService)

// WithContractRepository sets the contract repository
func WithContractRepository(repo ContractRepository) ContractServiceOption {
	return func(s *ContractService) {
		s.repo = repo
	}
}

// WithGenerator sets the contract generator
func WithGenerator(generator *ContractGenerator) ContractServiceOption {
	return func(s *ContractService) {
		s.generator = generator
	}
}

// WithStorage sets the document archive
func WithStorage(store storage.Storage) ContractServiceOption {
	return func(s *ContractService) {
		s.storage = store
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) ContractServiceOption {
	return func(s *ContractService) {
		s.logger = logger
	}
}

// NewContractService creates a new contract service
func NewContractService(opts ...ContractServiceOption) *ContractService {
	s := &ContractService{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.generator == nil {
		s.generator = NewContractGenerator(GeneratorWithLogger(s.logger))
	}
	return s
}

// Generator returns the contract generator used by the service
func (s *ContractService) Generator() *ContractGenerator {
	return s.generator
}

// ValidateInput checks the fields a contract cannot be generated without
func ValidateInput(in models.ContractInput) error {
	var problems []string
	if strings.TrimSpace(in.ServiceName) == "" && strings.TrimSpace(in.ServiceDescription) == "" {
		problems = append(problems, "service_name or service_description is required")
	}
	if in.Amount < 0 {
		problems = append(problems, "amount must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidContractInput, strings.Join(problems, "; "))
	}
	return nil
}

// CreateContractRequest represents a request to create a contract
type CreateContractRequest struct {
	UserID   *uuid.UUID
	Generate GenerateContractRequest
}

// CreateContractResult represents the result of creating a contract
type CreateContractResult struct {
	Contract *models.Contract
	Success  bool
	Error    string
	Warnings []string
}

// CreateContract generates a contract, persists it and archives its text.
// A degraded generation is still stored, with status degraded.
func (s *ContractService) CreateContract(ctx context.Context, req CreateContractRequest) (*CreateContractResult, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotSet
	}
	if err := ValidateInput(req.Generate.Input); err != nil {
		return nil, err
	}

	gen := s.generator.GenerateContract(req.Generate)

	status := models.StatusGenerated
	if !gen.Success {
		status = models.StatusDegraded
	}

	contract := &models.Contract{
		UserID:    req.UserID,
		Title:     gen.Document.ContractInfo.Title,
		Status:    status,
		Amount:    req.Generate.Input.Amount,
		Input:     req.Generate.Input,
		Variables: models.VariableSet(gen.Document.Variables.StringMap()),
		Document:  gen.Document,
	}

	if err := s.repo.Create(ctx, contract); err != nil {
		return nil, fmt.Errorf("failed to save contract: %w", err)
	}

	s.archive(ctx, contract)

	return &CreateContractResult{
		Contract: contract,
		Success:  gen.Success,
		Error:    gen.Error,
		Warnings: gen.Warnings,
	}, nil
}

// archive stores the rendered text. Failures are logged and leave the
// contract without a document path.
func (s *ContractService) archive(ctx context.Context, contract *models.Contract) {
	if s.storage == nil {
		return
	}

	text := RenderText(contract.Document)
	path, err := s.storage.Upload(ctx, contract.ID, contract.Title+".txt", strings.NewReader(text))
	if err != nil {
		s.logger.Warn("failed to archive contract document", zap.String("contract_id", contract.ID.String()), zap.Error(err))
		return
	}

	if err := s.repo.UpdateDocumentPath(ctx, contract.ID, path); err != nil {
		s.logger.Warn("failed to record document path", zap.String("contract_id", contract.ID.String()), zap.Error(err))
		return
	}
	contract.DocumentPath = &path
}

// GetContractRequest represents a request to get a contract
type GetContractRequest struct {
	ID uuid.UUID
}

// GetContractResult represents the result of getting a contract
type GetContractResult struct {
	Contract *models.Contract
}

// GetContract retrieves a contract by ID
func (s *ContractService) GetContract(ctx context.Context, req GetContractRequest) (*GetContractResult, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotSet
	}

	contract, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	return &GetContractResult{Contract: contract}, nil
}

// ListContractsRequest represents a request to list contracts
type ListContractsRequest struct {
	UserID *uuid.UUID
	Status *models.ContractStatus
	Limit  int
	Offset int
}

// ListContractsResult represents the result of listing contracts
type ListContractsResult struct {
	Contracts []*models.Contract
}

// ListContracts lists contracts, optionally by owner and status
func (s *ContractService) ListContracts(ctx context.Context, req ListContractsRequest) (*ListContractsResult, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotSet
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
	}

	contracts, err := s.repo.List(ctx, req.UserID, req.Status, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}
	if contracts == nil {
		contracts = []*models.Contract{}
	}

	return &ListContractsResult{Contracts: contracts}, nil
}

// UpdateStatusRequest represents a request to change a contract's status
type UpdateStatusRequest struct {
	ID     uuid.UUID
	Status models.ContractStatus
}

// UpdateStatusResult represents the result of changing a contract's status
type UpdateStatusResult struct {
	Contract *models.Contract
}

// UpdateStatus changes a contract's status
func (s *ContractService) UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*UpdateStatusResult, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotSet
	}
	if !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	contract, err := s.repo.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		return nil, mapRepoError(err)
	}

	return &UpdateStatusResult{Contract: contract}, nil
}

// DeleteContractRequest represents a request to delete a contract
type DeleteContractRequest struct {
	ID uuid.UUID
}

// DeleteContract deletes a contract and its archived document
func (s *ContractService) DeleteContract(ctx context.Context, req DeleteContractRequest) error {
	if s.repo == nil {
		return ErrRepositoryNotSet
	}

	contract, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return mapRepoError(err)
	}

	if err := s.repo.Delete(ctx, req.ID); err != nil {
		return mapRepoError(err)
	}

	if s.storage != nil && contract.DocumentPath != nil {
		if err := s.storage.Delete(ctx, *contract.DocumentPath); err != nil {
			s.logger.Warn("failed to delete archived document", zap.String("contract_id", req.ID.String()), zap.Error(err))
		}
	}

	return nil
}

// OpenDocumentRequest represents a request to read an archived document
type OpenDocumentRequest struct {
	ID uuid.UUID
}

// OpenDocumentResult holds an open archived document. The caller closes Body.
type OpenDocumentResult struct {
	Body        io.ReadCloser
	Filename    string
	ContentType string
}

// OpenDocument opens the archived text of a contract
func (s *ContractService) OpenDocument(ctx context.Context, req OpenDocumentRequest) (*OpenDocumentResult, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotSet
	}
	if s.storage == nil {
		return nil, ErrStorageNotSet
	}

	contract, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if contract.DocumentPath == nil {
		return nil, ErrDocumentNotFound
	}

	body, err := s.storage.Download(ctx, *contract.DocumentPath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	return &OpenDocumentResult{
		Body:        body,
		Filename:    contract.Title + ".txt",
		ContentType: storage.ContentType(*contract.DocumentPath),
	}, nil
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrContractNotFound
	}
	return err
}
