package sqlite

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-clients/internal/domain/clients"
)

// setupTestDB crea una base SQLite en memoria compartida entre writer y reader.
// El nombre sale de t.Name() para aislar tests.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", url.PathEscape(t.Name()))
	db, err := openDSN(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.EnsureSchema(context.Background(), ""))
	return db
}

func TestClientsRepo_CreateAndListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientsRepo(db, "")
	ctx := context.Background()

	for _, a := range []clients.Animal{clients.AnimalCat, clients.AnimalPuppy, clients.AnimalTurtle} {
		require.NoError(t, repo.Create(ctx, clients.NewClient{Animal: a}))
	}

	got, err := repo.ListNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Mismo milisegundo es posible: el desempate por id mantiene el último insert primero.
	assert.Equal(t, clients.AnimalTurtle, got[0].Animal)
	assert.Equal(t, clients.AnimalPuppy, got[1].Animal)
	assert.Equal(t, clients.AnimalCat, got[2].Animal)
	assert.Equal(t, "3", got[0].ID)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestClientsRepo_EmptyTable(t *testing.T) {
	repo := NewClientsRepo(setupTestDB(t), "")

	got, err := repo.ListNewestFirst(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, db.EnsureSchema(context.Background(), ""))
}

func TestClientsRepo_CustomTable(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.EnsureSchema(ctx, "pets_clients"))

	custom := NewClientsRepo(db, "pets_clients")
	require.NoError(t, custom.Create(ctx, clients.NewClient{Animal: clients.AnimalCat}))

	got, err := custom.ListNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	// La tabla por defecto no se tocó.
	def, err := NewClientsRepo(db, "").ListNewestFirst(ctx)
	require.NoError(t, err)
	assert.Empty(t, def)
}
