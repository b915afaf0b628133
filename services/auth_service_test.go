package services

import (
	"testing"
	"time"

	"github.com/hectorDev2/macao-comanda/entity"
	"github.com/hectorDev2/macao-comanda/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestCreateStaffAndLogin(t *testing.T) {
	svc := newAuthService(t)

	u, err := svc.CreateStaff("mesero@local.com", "1234", "Mesero", entity.RoleWaiter)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleWaiter, u.Role)
	assert.NotEqual(t, "1234", u.Password, "password must be hashed")

	token, got, err := svc.Login("mesero@local.com", "1234")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, u.ID, got.ID)

	_, _, err = svc.Login("mesero@local.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nadie@local.com", "1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateStaffValidation(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.CreateStaff("x@local.com", "1234", "X", "chef")
	assert.Error(t, err)

	_, err = svc.CreateStaff("caja@local.com", "1234", "Caja", entity.RoleCashier)
	require.NoError(t, err)

	_, err = svc.CreateStaff("caja@local.com", "5678", "Caja 2", entity.RoleCashier)
	assert.ErrorIs(t, err, ErrEmailTaken)
}
