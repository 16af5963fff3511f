// Package testutil provides in-memory implementations of the storage ports
// for service and router tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"hosted-checkout/internal/core/domain"

	"github.com/google/uuid"
)

// --- In-Memory Delivery Ledger ---

// MemoryLedger is a DeliveryLedger with the same guards as the Postgres upsert.
type MemoryLedger struct {
	mu      sync.Mutex
	records map[domain.DeliveryKey]domain.DeliveryRecord
	writes  []domain.DeliveryRecord

	// GetErr and UpsertErr, when set, are returned by the matching method.
	GetErr    error
	UpsertErr error
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{records: make(map[domain.DeliveryKey]domain.DeliveryRecord)}
}

// Seed stores a record without counting it as a write.
func (l *MemoryLedger) Seed(rec domain.DeliveryRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records[rec.Key()] = rec
}

func (l *MemoryLedger) Get(ctx context.Context, key domain.DeliveryKey) (*domain.DeliveryRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.GetErr != nil {
		return nil, l.GetErr
	}
	rec, ok := l.records[key]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (l *MemoryLedger) Upsert(ctx context.Context, record *domain.DeliveryRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writes = append(l.writes, *record)
	if l.UpsertErr != nil {
		return l.UpsertErr
	}

	key := record.Key()
	existing, ok := l.records[key]
	if !ok {
		l.records[key] = *record
		return nil
	}
	if existing.Status == domain.DeliveryStatusSuccess {
		return nil
	}
	existing.Status = record.Status
	if record.Attempts > existing.Attempts {
		existing.Attempts = record.Attempts
	}
	existing.UpdatedAt = record.UpdatedAt
	l.records[key] = existing
	return nil
}

// Writes returns every Upsert call in order, including failed ones.
func (l *MemoryLedger) Writes() []domain.DeliveryRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.DeliveryRecord(nil), l.writes...)
}

// Record returns the stored record for key, or nil.
func (l *MemoryLedger) Record(key domain.DeliveryKey) *domain.DeliveryRecord {
	rec, _ := l.Get(context.Background(), key)
	return rec
}

// --- In-Memory Company Config Repo ---

// MemoryConfigStore is a CompanyConfigRepository backed by a map.
type MemoryConfigStore struct {
	mu      sync.RWMutex
	configs map[string]domain.CompanyConfig
}

func NewMemoryConfigStore() *MemoryConfigStore {
	return &MemoryConfigStore{configs: make(map[string]domain.CompanyConfig)}
}

// SetWebhookURL stores a minimal configuration with the given forwarding URL.
func (s *MemoryConfigStore) SetWebhookURL(companyID, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.configs[companyID]
	cfg.CompanyID = companyID
	cfg.WebhookURL = &url
	s.configs[companyID] = cfg
}

func (s *MemoryConfigStore) GetWebhookConfig(ctx context.Context, companyID string) (*domain.MerchantWebhookConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.configs[companyID]
	if !ok {
		return nil, nil
	}
	return cfg.WebhookConfig(), nil
}

func (s *MemoryConfigStore) GetByCompanyID(ctx context.Context, companyID string) (*domain.CompanyConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.configs[companyID]
	if !ok {
		return nil, nil
	}
	out := cfg
	out.Bumps = append([]domain.Bump{}, cfg.Bumps...)
	return &out, nil
}

func (s *MemoryConfigStore) Save(ctx context.Context, cfg *domain.CompanyConfig) (*domain.CompanyConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	stored := *cfg
	if existing, ok := s.configs[cfg.CompanyID]; ok {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.ID = uuid.New()
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	stored.Bumps = make([]domain.Bump, len(cfg.Bumps))
	for i, b := range cfg.Bumps {
		if _, err := uuid.Parse(b.ID); err != nil {
			b.ID = uuid.NewString()
		}
		stored.Bumps[i] = b
	}
	sort.SliceStable(stored.Bumps, func(i, j int) bool {
		return stored.Bumps[i].SortIndex < stored.Bumps[j].SortIndex
	})

	s.configs[cfg.CompanyID] = stored
	out := stored
	out.Bumps = append([]domain.Bump{}, stored.Bumps...)
	return &out, nil
}
