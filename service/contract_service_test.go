package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"contractdraft-backend/models"
	"contractdraft-backend/repository"
	"contractdraft-backend/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepository is an in-memory ContractRepository
type memoryRepository struct {
	mu        sync.Mutex
	contracts map[uuid.UUID]*models.Contract
	createErr error
	seq       int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{contracts: make(map[uuid.UUID]*models.Contract)}
}

func (m *memoryRepository) Create(ctx context.Context, c *models.Contract) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.seq++
	c.ID = uuid.New()
	c.CreatedAt = testNow.Add(time.Duration(m.seq) * time.Second)
	c.UpdatedAt = c.CreatedAt
	copied := *c
	m.contracts[c.ID] = &copied
	return nil
}

func (m *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.contracts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *memoryRepository) List(ctx context.Context, userID *uuid.UUID, status *models.ContractStatus, limit, offset int) ([]*models.Contract, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Contract
	for _, c := range m.contracts {
		if userID != nil && (c.UserID == nil || *c.UserID != *userID) {
			continue
		}
		if status != nil && c.Status != *status {
			continue
		}
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset > 0 && offset < len(out) {
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ContractStatus) (*models.Contract, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.contracts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c.Status = status
	if status == models.StatusSigned && c.SignedAt == nil {
		signed := testNow
		c.SignedAt = &signed
	}
	copied := *c
	return &copied, nil
}

func (m *memoryRepository) UpdateDocumentPath(ctx context.Context, id uuid.UUID, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.contracts[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.DocumentPath = &path
	return nil
}

func (m *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.contracts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.contracts, id)
	return nil
}

// brokenStorage fails every upload
type brokenStorage struct{ storage.Storage }

func (brokenStorage) Upload(context.Context, uuid.UUID, string, io.Reader) (string, error) {
	return "", errors.New("disk full")
}

func newTestService(t *testing.T, store storage.Storage) (*ContractService, *memoryRepository) {
	t.Helper()
	repo := newMemoryRepository()
	svc := NewContractService(
		WithContractRepository(repo),
		WithStorage(store),
		WithGenerator(NewContractGenerator(GeneratorWithClock(fixedClock))),
	)
	return svc, repo
}

func localStore(t *testing.T) storage.Storage {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestCreateContract_PersistsAndArchives(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t, localStore(t))
	owner := uuid.New()

	res, err := svc.CreateContract(ctx, CreateContractRequest{
		UserID:   &owner,
		Generate: GenerateContractRequest{Input: logoInput()},
	})
	require.NoError(t, err)
	require.True(t, res.Success)

	c := res.Contract
	assert.Equal(t, models.StatusGenerated, c.Status)
	assert.Equal(t, "로고 디자인 제작형 계약서", c.Title)
	assert.Equal(t, "remote", c.Variables["location"])
	require.NotNil(t, c.DocumentPath)

	stored, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, *c.DocumentPath, *stored.DocumentPath)

	doc, err := svc.OpenDocument(ctx, OpenDocumentRequest{ID: c.ID})
	require.NoError(t, err)
	body, err := io.ReadAll(doc.Body)
	require.NoError(t, doc.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, RenderText(c.Document), string(body))
	assert.Equal(t, "text/plain; charset=utf-8", doc.ContentType)
}

func TestCreateContract_DegradedIsStored(t *testing.T) {
	repo := newMemoryRepository()
	svc := NewContractService(
		WithContractRepository(repo),
		WithGenerator(NewContractGenerator(GeneratorWithSelector(failingSelector{err: errors.New("boom")}))),
	)

	res, err := svc.CreateContract(context.Background(), CreateContractRequest{
		Generate: GenerateContractRequest{Input: logoInput()},
	})
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, models.StatusDegraded, res.Contract.Status)
	assert.Len(t, res.Contract.Document.Clauses, 2)
	assert.Nil(t, res.Contract.DocumentPath, "no storage configured")
}

func TestCreateContract_ArchiveFailureIsNotFatal(t *testing.T) {
	svc, _ := newTestService(t, brokenStorage{})

	res, err := svc.CreateContract(context.Background(), CreateContractRequest{
		Generate: GenerateContractRequest{Input: logoInput()},
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Nil(t, res.Contract.DocumentPath)
}

func TestCreateContract_Validation(t *testing.T) {
	svc, repo := newTestService(t, nil)

	_, err := svc.CreateContract(context.Background(), CreateContractRequest{})
	assert.True(t, errors.Is(err, ErrInvalidContractInput))

	_, err = svc.CreateContract(context.Background(), CreateContractRequest{
		Generate: GenerateContractRequest{Input: models.ContractInput{ServiceName: "x", Amount: -1}},
	})
	assert.True(t, errors.Is(err, ErrInvalidContractInput))

	repo.createErr = errors.New("db down")
	_, err = svc.CreateContract(context.Background(), CreateContractRequest{
		Generate: GenerateContractRequest{Input: logoInput()},
	})
	assert.ErrorContains(t, err, "db down")

	_, err = NewContractService().CreateContract(context.Background(), CreateContractRequest{})
	assert.Equal(t, ErrRepositoryNotSet, err)
}

func TestContractLifecycle(t *testing.T) {
	ctx := context.Background()
	store := localStore(t)
	svc, _ := newTestService(t, store)
	owner := uuid.New()

	first, err := svc.CreateContract(ctx, CreateContractRequest{UserID: &owner, Generate: GenerateContractRequest{Input: logoInput()}})
	require.NoError(t, err)
	second, err := svc.CreateContract(ctx, CreateContractRequest{Generate: GenerateContractRequest{Input: logoInput()}})
	require.NoError(t, err)

	list, err := svc.ListContracts(ctx, ListContractsRequest{})
	require.NoError(t, err)
	require.Len(t, list.Contracts, 2)
	assert.Equal(t, second.Contract.ID, list.Contracts[0].ID, "newest first")

	mine, err := svc.ListContracts(ctx, ListContractsRequest{UserID: &owner})
	require.NoError(t, err)
	require.Len(t, mine.Contracts, 1)
	assert.Equal(t, first.Contract.ID, mine.Contracts[0].ID)

	bogus := models.ContractStatus("lost")
	_, err = svc.ListContracts(ctx, ListContractsRequest{Status: &bogus})
	assert.True(t, errors.Is(err, ErrInvalidStatus))

	updated, err := svc.UpdateStatus(ctx, UpdateStatusRequest{ID: first.Contract.ID, Status: models.StatusSigned})
	require.NoError(t, err)
	assert.Equal(t, models.StatusSigned, updated.Contract.Status)
	assert.NotNil(t, updated.Contract.SignedAt)

	_, err = svc.UpdateStatus(ctx, UpdateStatusRequest{ID: first.Contract.ID, Status: "lost"})
	assert.True(t, errors.Is(err, ErrInvalidStatus))

	_, err = svc.UpdateStatus(ctx, UpdateStatusRequest{ID: uuid.New(), Status: models.StatusSent})
	assert.Equal(t, ErrContractNotFound, err)

	path := *first.Contract.DocumentPath
	require.NoError(t, svc.DeleteContract(ctx, DeleteContractRequest{ID: first.Contract.ID}))

	_, err = svc.GetContract(ctx, GetContractRequest{ID: first.Contract.ID})
	assert.Equal(t, ErrContractNotFound, err)

	_, err = store.Download(ctx, path)
	assert.True(t, errors.Is(err, storage.ErrNotFound), "archive removed with the contract")

	assert.Equal(t, ErrContractNotFound, svc.DeleteContract(ctx, DeleteContractRequest{ID: first.Contract.ID}))
}

func TestOpenDocument_Errors(t *testing.T) {
	ctx := context.Background()

	noStore, _ := newTestService(t, nil)
	_, err := noStore.OpenDocument(ctx, OpenDocumentRequest{ID: uuid.New()})
	assert.Equal(t, ErrStorageNotSet, err)

	svc, repo := newTestService(t, localStore(t))
	_, err = svc.OpenDocument(ctx, OpenDocumentRequest{ID: uuid.New()})
	assert.Equal(t, ErrContractNotFound, err)

	c := &models.Contract{Title: "x", Status: models.StatusDraft}
	require.NoError(t, repo.Create(ctx, c))
	_, err = svc.OpenDocument(ctx, OpenDocumentRequest{ID: c.ID})
	assert.Equal(t, ErrDocumentNotFound, err)
}
