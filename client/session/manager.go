package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mzansi-thrift/storefront/client/internal/types"
)

// Manager owns the current Session and keeps it mirrored in a Store.
// It is safe for concurrent use; the last write wins.
type Manager struct {
	mu    sync.RWMutex
	cur   Session
	store Store
}

// NewManager returns an anonymous Manager backed by store. A nil store
// keeps the session in memory only.
func NewManager(store Store) *Manager {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Manager{store: store}
}

// Current returns the session as last set or restored.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur
}

// Restore loads the persisted session. When both keys are present the buyer
// wins and the seller key is removed. Unreadable snapshots are discarded.
func (m *Manager) Restore(ctx context.Context) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buyer, hasBuyer, err := m.load(ctx, KeyCurrentUser)
	if err != nil {
		return Session{}, err
	}
	seller, hasSeller, err := m.load(ctx, KeyCurrentSeller)
	if err != nil {
		return Session{}, err
	}

	switch {
	case hasBuyer:
		if hasSeller {
			if err := m.store.Delete(ctx, KeyCurrentSeller); err != nil {
				return Session{}, fmt.Errorf("drop seller key: %w", err)
			}
		}
		m.cur = Buyer(buyer)
	case hasSeller:
		m.cur = Seller(seller)
	default:
		m.cur = Anonymous()
	}
	return m.cur, nil
}

func (m *Manager) load(ctx context.Context, key string) (Profile, bool, error) {
	raw, ok, err := m.store.Get(ctx, key)
	if err != nil {
		return Profile{}, false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return Profile{}, false, nil
	}
	p, err := types.ParseProfile(raw)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding unreadable session snapshot")
		if err := m.store.Delete(ctx, key); err != nil {
			return Profile{}, false, fmt.Errorf("delete %s: %w", key, err)
		}
		return Profile{}, false, nil
	}
	return p, true, nil
}

// SetBuyer records a signed-in buyer and forgets any seller.
func (m *Manager) SetBuyer(ctx context.Context, p Profile) error {
	return m.Set(ctx, Buyer(p))
}

// SetSeller records a signed-in seller and forgets any buyer.
func (m *Manager) SetSeller(ctx context.Context, p Profile) error {
	return m.Set(ctx, Seller(p))
}

// Clear signs the session out and removes both keys.
func (m *Manager) Clear(ctx context.Context) error {
	return m.Set(ctx, Anonymous())
}

// Set replaces the current session. The in-memory value changes even if
// persisting fails; the store error is returned.
func (m *Manager) Set(ctx context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur = s

	keep, drop := "", []string{KeyCurrentUser, KeyCurrentSeller}
	switch s.Role() {
	case RoleBuyer:
		keep, drop = KeyCurrentUser, []string{KeyCurrentSeller}
	case RoleSeller:
		keep, drop = KeyCurrentSeller, []string{KeyCurrentUser}
	}
	for _, k := range drop {
		if err := m.store.Delete(ctx, k); err != nil {
			return fmt.Errorf("delete %s: %w", k, err)
		}
	}
	if keep == "" {
		return nil
	}
	raw, err := snapshot(s.profile)
	if err != nil {
		return err
	}
	if err := m.store.Put(ctx, keep, raw); err != nil {
		return fmt.Errorf("write %s: %w", keep, err)
	}
	return nil
}

// snapshot prefers the exact JSON the server sent.
func snapshot(p Profile) ([]byte, error) {
	if len(p.Raw) > 0 {
		return p.Raw, nil
	}
	return json.Marshal(p)
}
