package dao

import (
	"context"
	"testing"

	"userbench/userbench/sources/psql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupUserDAO(t *testing.T) *UserDAO {
	t.Helper()
	db, err := psql.OpenMemory(context.Background(), t.Name())
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return NewUserDAO(db.DB)
}

func TestUserDAO_CRUD(t *testing.T) {
	ctx := context.Background()
	d := setupUserDAO(t)

	ann, err := d.CreateUser(ctx, "ann", "ann@example.com")
	require.NoError(t, err)
	assert.NotZero(t, ann.ID)

	_, err = d.CreateUser(ctx, "bob", "bob@example.com")
	require.NoError(t, err)

	all, err := d.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "ann", all[0].Username)

	got, err := d.GetUserByUsername(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, got)

	got.Email = "robert@example.com"
	require.NoError(t, d.UpdateUser(ctx, got))

	reloaded, err := d.GetUserByID(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, "robert@example.com", reloaded.Email)

	removed, err := d.DeleteUser(ctx, ann.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = d.DeleteUser(ctx, ann.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestUserDAO_MissingRowsAreNil(t *testing.T) {
	ctx := context.Background()
	d := setupUserDAO(t)

	u, err := d.GetUserByID(ctx, 404)
	assert.NoError(t, err)
	assert.Nil(t, u)

	u, err = d.GetUserByUsername(ctx, "ghost")
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserDAO_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	d := setupUserDAO(t)

	_, err := d.CreateUser(ctx, "ann", "a@example.com")
	require.NoError(t, err)
	_, err = d.CreateUser(ctx, "ann", "b@example.com")
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
