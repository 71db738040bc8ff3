package session

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzansi-thrift/storefront/client/internal/types"
)

func profile(t *testing.T, raw string) Profile {
	t.Helper()
	p, err := types.ParseProfile(json.RawMessage(raw))
	require.NoError(t, err)
	return p
}

func TestSessionVariants(t *testing.T) {
	t.Parallel()

	anon := Anonymous()
	assert.True(t, anon.IsAnonymous())
	assert.Equal(t, "Account", anon.DisplayName())
	_, ok := anon.Profile()
	assert.False(t, ok)

	b := Buyer(Profile{ID: 1, FullName: "Thandi Nkosi"})
	assert.Equal(t, RoleBuyer, b.Role())
	assert.Equal(t, "Thandi Nkosi", b.DisplayName())

	s := Seller(Profile{ID: 2, FullName: "Sipho", BusinessName: "Sipho's Threads"})
	assert.Equal(t, RoleSeller, s.Role())
	assert.Equal(t, "Sipho's Threads", s.DisplayName())
	assert.Equal(t, "seller", s.Role().String())

	assert.Equal(t, RoleSeller, FromUserType(types.RoleSeller, Profile{}).Role())
	assert.Equal(t, RoleBuyer, FromUserType(types.RoleBuyer, Profile{}).Role())
}

func TestManagerExclusivity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store)

	require.NoError(t, m.SetBuyer(ctx, profile(t, `{"id":1,"full_name":"Thandi"}`)))
	_, ok, _ := store.Get(ctx, KeyCurrentUser)
	assert.True(t, ok)

	require.NoError(t, m.SetSeller(ctx, profile(t, `{"id":9,"business_name":"Vintage Vibes"}`)))
	_, ok, _ = store.Get(ctx, KeyCurrentUser)
	assert.False(t, ok, "buyer key must be removed when a seller signs in")
	raw, ok, _ := store.Get(ctx, KeyCurrentSeller)
	require.True(t, ok)
	assert.JSONEq(t, `{"id":9,"business_name":"Vintage Vibes"}`, string(raw))
	assert.Equal(t, RoleSeller, m.Current().Role())

	require.NoError(t, m.Clear(ctx))
	assert.True(t, m.Current().IsAnonymous())
	_, ok, _ = store.Get(ctx, KeyCurrentSeller)
	assert.False(t, ok)
}

func TestRestoreBuyerWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Put(ctx, KeyCurrentUser, []byte(`{"id":1,"full_name":"Thandi"}`)))
	require.NoError(t, store.Put(ctx, KeyCurrentSeller, []byte(`{"id":9,"business_name":"Vintage Vibes"}`)))

	s, err := NewManager(store).Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, RoleBuyer, s.Role())
	_, ok, _ := store.Get(ctx, KeyCurrentSeller)
	assert.False(t, ok)
}

func TestRestoreDiscardsCorruptSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Put(ctx, KeyCurrentUser, []byte(`not json`)))
	require.NoError(t, store.Put(ctx, KeyCurrentSeller, []byte(`{"id":9}`)))

	s, err := NewManager(store).Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, RoleSeller, s.Role())
	_, ok, _ := store.Get(ctx, KeyCurrentUser)
	assert.False(t, ok)
}

func TestRestoreEmptyIsAnonymous(t *testing.T) {
	t.Parallel()
	s, err := NewManager(nil).Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, s.IsAnonymous())
}

func TestSQLiteStoreSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	store, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	m := NewManager(store)
	require.NoError(t, m.SetBuyer(ctx, profile(t, `{"id":1,"full_name":"Thandi"}`)))
	require.NoError(t, m.SetSeller(ctx, profile(t, `{"id":9,"business_name":"Vintage Vibes"}`)))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	s, err := NewManager(reopened).Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, RoleSeller, s.Role())
	p, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, int64(9), p.ID)
	assert.Equal(t, "Vintage Vibes", s.DisplayName())

	_, ok, err = reopened.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "s.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Put(ctx, "k", []byte("a")))
	require.NoError(t, store.Put(ctx, "k", []byte("b")))
	v, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b", string(v))

	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "missing"))
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
