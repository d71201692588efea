package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/profileiq/profileiq-backend/internal/apperrors"
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	portsrepo "github.com/profileiq/profileiq-backend/internal/core/ports/repositories"
)

// Store is an in-memory client and ledger store for local development and
// tests. All operations are guarded by a single mutex, so a write is
// visible to every subsequent read.
type Store struct {
	mu      sync.Mutex
	clients map[string]domain.Client
	usage   map[string][]domain.Usage
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		clients: make(map[string]domain.Client),
		usage:   make(map[string][]domain.Usage),
	}
}

// Ensure implementation matches interfaces
var _ portsrepo.ClientRepository = (*Store)(nil)
var _ portsrepo.AtomicLedgerRepository = (*Store)(nil)

// SaveClient inserts a new client record.
func (s *Store) SaveClient(ctx context.Context, client domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[client.ClientID]; ok {
		return apperrors.ErrDuplicate
	}
	client.Usage = nil
	s.clients[client.ClientID] = client
	return nil
}

// FindClientByID retrieves a client by its ID. Usage history is merged by
// the directory service, not here.
func (s *Store) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[clientID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	client.Usage = []domain.Usage{}
	return &client, nil
}

// FindClients retrieves all clients, oldest first.
func (s *Store) FindClients(ctx context.Context) ([]domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients := make([]domain.Client, 0, len(s.clients))
	for _, client := range s.clients {
		client.Usage = []domain.Usage{}
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		if clients[i].CreatedAt.Equal(clients[j].CreatedAt) {
			return clients[i].ClientID < clients[j].ClientID
		}
		return clients[i].CreatedAt.Before(clients[j].CreatedAt)
	})
	return clients, nil
}

// UpdateClient updates a client's identity fields. The credit balance is
// owned by the ledger methods and is left untouched.
func (s *Store) UpdateClient(ctx context.Context, client domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.clients[client.ClientID]
	if !ok {
		return apperrors.ErrNotFound
	}
	existing.Name = client.Name
	existing.Email = client.Email
	existing.BrandSlug = client.BrandSlug
	existing.CustomURL = client.CustomURL
	s.clients[client.ClientID] = existing
	return nil
}

// DeleteClient removes a client together with its usage history.
func (s *Store) DeleteClient(ctx context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[clientID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.clients, clientID)
	delete(s.usage, clientID)
	return nil
}

// RecordCreditChange applies a balance update and appends its paired usage
// record under the store lock, so no reader can observe one without the
// other.
func (s *Store) RecordCreditChange(ctx context.Context, clientID string, newBalance int64, usage domain.Usage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[clientID]
	if !ok {
		return apperrors.ErrNotFound
	}
	client.Credits = newBalance
	s.clients[clientID] = client
	s.usage[clientID] = append(s.usage[clientID], usage)
	return nil
}

// UpdateClientCredits overwrites a client's credit balance.
func (s *Store) UpdateClientCredits(ctx context.Context, clientID string, newBalance int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[clientID]
	if !ok {
		return apperrors.ErrNotFound
	}
	client.Credits = newBalance
	s.clients[clientID] = client
	return nil
}

// SaveUsage appends an immutable usage record.
func (s *Store) SaveUsage(ctx context.Context, usage domain.Usage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[usage.ClientID]; !ok {
		return apperrors.ErrNotFound
	}
	s.usage[usage.ClientID] = append(s.usage[usage.ClientID], usage)
	return nil
}

// FindUsageByClientID retrieves a client's usage history, newest first.
func (s *Store) FindUsageByClientID(ctx context.Context, clientID string) ([]domain.Usage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]domain.Usage, len(s.usage[clientID]))
	copy(records, s.usage[clientID])
	sortUsageNewestFirst(records)
	return records, nil
}

// FindAllUsage retrieves usage records across all clients, newest first.
func (s *Store) FindAllUsage(ctx context.Context) ([]domain.Usage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []domain.Usage
	for _, clientUsage := range s.usage {
		records = append(records, clientUsage...)
	}
	if records == nil {
		records = []domain.Usage{}
	}
	sortUsageNewestFirst(records)
	return records, nil
}

func sortUsageNewestFirst(records []domain.Usage) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Timestamp.Equal(records[j].Timestamp) {
			return records[i].UsageID < records[j].UsageID
		}
		return records[i].Timestamp.After(records[j].Timestamp)
	})
}
