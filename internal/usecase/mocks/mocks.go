package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mariner/fueleuledger/internal/domain"
	"github.com/mariner/fueleuledger/internal/usecase"
)

func balanceKey(vesselID string, period int) string {
	return fmt.Sprintf("%s:%d", vesselID, period)
}

// MockBalanceRepository is a mock implementation of BalanceRepository.
type MockBalanceRepository struct {
	mu       sync.RWMutex
	balances map[string]*domain.ComplianceBalance

	GetFunc          func(ctx context.Context, vesselID string, period int) (*domain.ComplianceBalance, error)
	GetForUpdateFunc func(ctx context.Context, tx usecase.Transaction, vesselID string, period int) (*domain.ComplianceBalance, error)
	UpsertFunc       func(ctx context.Context, tx usecase.Transaction, vesselID string, period int, value decimal.Decimal, now time.Time) (*domain.ComplianceBalance, error)
	UpdateValueFunc  func(ctx context.Context, tx usecase.Transaction, vesselID string, period int, value decimal.Decimal, updatedAt time.Time) error
	ListByPeriodFunc func(ctx context.Context, period, limit, offset int) ([]*domain.ComplianceBalance, error)
}

func NewMockBalanceRepository() *MockBalanceRepository {
	return &MockBalanceRepository{
		balances: make(map[string]*domain.ComplianceBalance),
	}
}

// Seed inserts a balance directly, bypassing the repository contract.
func (m *MockBalanceRepository) Seed(vesselID string, period int, value decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[balanceKey(vesselID, period)] = &domain.ComplianceBalance{
		VesselID: vesselID,
		Period:   period,
		Value:    value,
	}
}

func (m *MockBalanceRepository) Get(ctx context.Context, vesselID string, period int) (*domain.ComplianceBalance, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, vesselID, period)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.balances[balanceKey(vesselID, period)]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, domain.ErrBalanceNotFound
}

func (m *MockBalanceRepository) GetForUpdate(ctx context.Context, tx usecase.Transaction, vesselID string, period int) (*domain.ComplianceBalance, error) {
	if m.GetForUpdateFunc != nil {
		return m.GetForUpdateFunc(ctx, tx, vesselID, period)
	}
	return m.Get(ctx, vesselID, period)
}

func (m *MockBalanceRepository) Upsert(ctx context.Context, tx usecase.Transaction, vesselID string, period int, value decimal.Decimal, now time.Time) (*domain.ComplianceBalance, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, tx, vesselID, period, value, now)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := balanceKey(vesselID, period)
	b, ok := m.balances[key]
	if !ok {
		b = &domain.ComplianceBalance{VesselID: vesselID, Period: period, CreatedAt: now}
		m.balances[key] = b
	}
	b.Value = value
	b.Version++
	b.UpdatedAt = now
	copied := *b
	return &copied, nil
}

func (m *MockBalanceRepository) UpdateValue(ctx context.Context, tx usecase.Transaction, vesselID string, period int, value decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateValueFunc != nil {
		return m.UpdateValueFunc(ctx, tx, vesselID, period, value, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.balances[balanceKey(vesselID, period)]; ok {
		b.Value = value
		b.Version++
		b.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockBalanceRepository) ListByPeriod(ctx context.Context, period, limit, offset int) ([]*domain.ComplianceBalance, error) {
	if m.ListByPeriodFunc != nil {
		return m.ListByPeriodFunc(ctx, period, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var balances []*domain.ComplianceBalance
	for _, b := range m.balances {
		if b.Period == period {
			copied := *b
			balances = append(balances, &copied)
		}
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].VesselID < balances[j].VesselID })
	return balances, nil
}

// MockBankEntryRepository is a mock implementation of BankEntryRepository.
type MockBankEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.BankEntry
	nextSeq int64

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, entry *domain.BankEntry) error
	ListForUpdateFunc func(ctx context.Context, tx usecase.Transaction, vesselID string, period int) ([]*domain.BankEntry, error)
	UpdateAmountFunc  func(ctx context.Context, tx usecase.Transaction, id string, amount decimal.Decimal) error
	DeleteFunc        func(ctx context.Context, tx usecase.Transaction, id string) error
	SumAmountsFunc    func(ctx context.Context, vesselID string, period int) (decimal.Decimal, error)
}

func NewMockBankEntryRepository() *MockBankEntryRepository {
	return &MockBankEntryRepository{
		entries: make(map[string]*domain.BankEntry),
	}
}

func (m *MockBankEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.BankEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextSeq++
	entry.Seq = m.nextSeq
	copied := *entry
	m.entries[entry.ID] = &copied
	return nil
}

func (m *MockBankEntryRepository) ListForUpdate(ctx context.Context, tx usecase.Transaction, vesselID string, period int) ([]*domain.BankEntry, error) {
	if m.ListForUpdateFunc != nil {
		return m.ListForUpdateFunc(ctx, tx, vesselID, period)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.BankEntry
	for _, e := range m.entries {
		if e.VesselID == vesselID && e.Period == period {
			copied := *e
			entries = append(entries, &copied)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Seq < entries[j].Seq })
	return entries, nil
}

func (m *MockBankEntryRepository) UpdateAmount(ctx context.Context, tx usecase.Transaction, id string, amount decimal.Decimal) error {
	if m.UpdateAmountFunc != nil {
		return m.UpdateAmountFunc(ctx, tx, id, amount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[id]; ok {
		e.Amount = amount
	}
	return nil
}

func (m *MockBankEntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *MockBankEntryRepository) SumAmounts(ctx context.Context, vesselID string, period int) (decimal.Decimal, error) {
	if m.SumAmountsFunc != nil {
		return m.SumAmountsFunc(ctx, vesselID, period)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, e := range m.entries {
		if e.VesselID == vesselID && e.Period == period {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

// Entries returns the live entries for a key in FIFO order, for assertions.
func (m *MockBankEntryRepository) Entries(vesselID string, period int) []*domain.BankEntry {
	entries, _ := m.ListForUpdate(context.Background(), nil, vesselID, period)
	return entries
}

// MockPoolRepository is a mock implementation of PoolRepository.
type MockPoolRepository struct {
	mu    sync.RWMutex
	pools []*domain.Pool

	CreateFunc  func(ctx context.Context, tx usecase.Transaction, pool *domain.Pool) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Pool, error)
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.Pool, error)
}

func NewMockPoolRepository() *MockPoolRepository {
	return &MockPoolRepository{}
}

func (m *MockPoolRepository) Create(ctx context.Context, tx usecase.Transaction, pool *domain.Pool) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, pool)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pools = append(m.pools, pool)
	return nil
}

func (m *MockPoolRepository) GetByID(ctx context.Context, id string) (*domain.Pool, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.pools {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPoolNotFound
}

func (m *MockPoolRepository) List(ctx context.Context, limit, offset int) ([]*domain.Pool, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Most recent first.
	listed := make([]*domain.Pool, 0, len(m.pools))
	for i := len(m.pools) - 1; i >= 0; i-- {
		listed = append(listed, m.pools[i])
	}
	return listed, nil
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events []*domain.OutboxEvent

	CreateFunc         func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
	GetUnpublishedFunc func(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublishedFunc  func(ctx context.Context, id string, publishedAt time.Time) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if m.GetUnpublishedFunc != nil {
		return m.GetUnpublishedFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var unpublished []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published {
			unpublished = append(unpublished, e)
		}
		if len(unpublished) == limit {
			break
		}
	}
	return unpublished, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	if m.MarkPublishedFunc != nil {
		return m.MarkPublishedFunc(ctx, id, publishedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.ID == id {
			e.Published = true
			e.PublishedAt = &publishedAt
		}
	}
	return nil
}

// Events returns all staged events, for assertions.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.OutboxEvent(nil), m.events...)
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu   sync.RWMutex
	data map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string]string),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return "", fmt.Errorf("cache miss: %s", key)
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// MockActivityProvider is a hand-rolled mock for ActivityProvider. Tests that
// need call expectations use the generated gomock version instead.
type MockActivityProviderFunc struct {
	GetActivityFunc func(ctx context.Context, vesselID string, period int) (*domain.VoyageActivity, error)
}

func (m *MockActivityProviderFunc) GetActivity(ctx context.Context, vesselID string, period int) (*domain.VoyageActivity, error) {
	if m.GetActivityFunc != nil {
		return m.GetActivityFunc(ctx, vesselID, period)
	}
	return nil, domain.ErrActivityNotFound
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}
