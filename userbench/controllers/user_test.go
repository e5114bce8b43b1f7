package controllers

import (
	"context"
	"errors"
	"testing"

	"userbench/userbench/sources/psql"
	"userbench/userbench/sources/psql/dao"
	"userbench/userbench/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupUserController(t *testing.T) (*UserController, *dao.UserDAO) {
	t.Helper()
	db, err := psql.OpenMemory(context.Background(), t.Name())
	require.NoError(t, err)
	t.Cleanup(db.Close)
	d := dao.NewUserDAO(db.DB)
	return NewUserController(d), d
}

func TestStoreError(t *testing.T) {
	assert.ErrorIs(t, storeError(gorm.ErrDuplicatedKey), ErrUsernameTaken)
	assert.ErrorIs(t, storeError(errors.Join(errors.New("insert"), gorm.ErrDuplicatedKey)), ErrUsernameTaken)

	other := errors.New("disk full")
	assert.Equal(t, other, storeError(other))
}

// The unique index is the last line of defence when two creates interleave
// between the username check and the insert.
func TestUserController_UniqueIndexBecomesConflict(t *testing.T) {
	ctx := context.Background()
	ctrl, d := setupUserController(t)

	_, err := d.CreateUser(ctx, "ann", "a@example.com")
	require.NoError(t, err)
	_, err = d.CreateUser(ctx, "ann", "b@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, storeError(err), ErrUsernameTaken)

	_, err = ctrl.CreateUser(ctx, types.CreateUserRequest{Username: "ann", Email: "c@example.com"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserController_UpdateRenameConflict(t *testing.T) {
	ctx := context.Background()
	ctrl, _ := setupUserController(t)

	_, err := ctrl.CreateUser(ctx, types.CreateUserRequest{Username: "ann", Email: "a@example.com"})
	require.NoError(t, err)
	bob, err := ctrl.CreateUser(ctx, types.CreateUserRequest{Username: "bob", Email: "b@example.com"})
	require.NoError(t, err)

	name := "ann"
	_, err = ctrl.UpdateUser(ctx, bob.ID, types.UpdateUserRequest{Username: &name})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = ctrl.UpdateUser(ctx, 999, types.UpdateUserRequest{Username: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
