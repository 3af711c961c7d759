package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
	"github.com/smartdiet-sl/smartdiet/backend/internal/testhelpers"
)

func TestUserChangeRole(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	users := service.NewUserService(db)
	ctx := context.Background()

	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	member := createUser(t, db, "member@example.com", models.RoleUser)

	promoted, err := users.ChangeRole(ctx, admin.ID, member.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.Role)

	stored, err := users.Get(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, stored.Role)

	_, err = users.ChangeRole(ctx, admin.ID, admin.ID, models.RoleUser)
	assert.True(t, service.IsValidation(err))
	self, err := users.Get(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, self.Role)

	_, err = users.ChangeRole(ctx, admin.ID, member.ID, "superuser")
	assert.True(t, service.IsValidation(err))
}

func TestUserDelete(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	users := service.NewUserService(db)
	ctx := context.Background()

	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	member := createUser(t, db, "member@example.com", models.RoleUser)

	assert.True(t, service.IsValidation(users.DeleteUser(ctx, admin.ID, admin.ID)))
	require.NoError(t, users.DeleteUser(ctx, admin.ID, member.ID))

	all, err := users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, admin.ID, all[0].ID)
}
