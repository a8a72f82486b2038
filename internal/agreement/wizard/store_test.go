package wizard

import (
	"context"
	"testing"
	"time"

	"agreement-workers/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(client, ttl), mr
}

func TestStoreSaveGetRoundtrip(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	ctx := context.Background()

	session := New("sess-rt", models.FamilyPurchase, "prop-9", time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, session.SelectTemplate("premium"))
	require.NoError(t, store.Save(ctx, session))

	loaded, err := store.Get(ctx, "sess-rt")
	require.NoError(t, err)
	assert.Equal(t, session.ID, loaded.ID)
	assert.Equal(t, session.ReferenceNumber, loaded.ReferenceNumber)
	assert.Equal(t, "premium", loaded.TemplateID)
	assert.True(t, session.AnchorDate.Equal(loaded.AnchorDate))
}

func TestStoreGetMissing(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)

	_, err := store.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// Session expiry is the modal close: once the TTL lapses the session is gone.
func TestStoreTTLExpiry(t *testing.T) {
	store, mr := newTestStore(t, 10*time.Second)
	ctx := context.Background()

	session := New("sess-ttl", models.FamilyRental, "prop-3", time.Now().UTC())
	require.NoError(t, store.Save(ctx, session))

	mr.FastForward(11 * time.Second)

	_, err := store.Get(ctx, "sess-ttl")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreDelete(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	ctx := context.Background()

	session := New("sess-del", models.FamilyRental, "prop-4", time.Now().UTC())
	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, "sess-del"))

	_, err := store.Get(ctx, "sess-del")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Deleting an already-gone session is fine.
	assert.NoError(t, store.Delete(ctx, "sess-del"))
}

func TestStoreDefaultTTL(t *testing.T) {
	store, mr := newTestStore(t, 0)
	ctx := context.Background()

	session := New("sess-default", models.FamilyRental, "prop-5", time.Now().UTC())
	require.NoError(t, store.Save(ctx, session))

	ttl := mr.TTL("wizard:session:sess-default")
	assert.Equal(t, 30*time.Minute, ttl)
}
