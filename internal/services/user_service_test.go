package services

import (
	"errors"
	"testing"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	service := NewUserService(setupTestDB(t))

	user := &models.User{Email: "  Mario@Pizzeria.Local ", Password: "margherita"}
	require.NoError(t, service.CreateUser(user))

	assert.NotZero(t, user.ID)
	assert.Equal(t, "mario@pizzeria.local", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Empty(t, user.Password)
	assert.NotEqual(t, "margherita", user.PasswordHash)
	assert.True(t, user.CheckPassword("margherita"))
}

func TestCreateUserRejects(t *testing.T) {
	service := NewUserService(setupTestDB(t))
	require.NoError(t, service.CreateUser(&models.User{Email: "taken@pizzeria.local", Password: "secret1"}))

	t.Run("duplicate email", func(t *testing.T) {
		err := service.CreateUser(&models.User{Email: "TAKEN@pizzeria.local", Password: "secret2"})
		assert.True(t, errors.Is(err, ErrUserAlreadyExists))
	})

	t.Run("unknown role", func(t *testing.T) {
		err := service.CreateUser(&models.User{Email: "root@pizzeria.local", Password: "secret3", Role: "ROOT"})
		assert.ErrorContains(t, err, "invalid role")
	})
}

func TestAuthenticate(t *testing.T) {
	service := NewUserService(setupTestDB(t))
	require.NoError(t, service.CreateUser(&models.User{Email: "admin@pizzeria.local", Password: "s3cret!", Role: models.RoleAdmin}))

	testCases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid credentials", "admin@pizzeria.local", "s3cret!", nil},
		{"email is case insensitive", "Admin@Pizzeria.local", "s3cret!", nil},
		{"wrong password", "admin@pizzeria.local", "guess", ErrInvalidCredentials},
		{"unknown user", "ghost@pizzeria.local", "s3cret!", ErrInvalidCredentials},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := service.Authenticate(tc.email, tc.password)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr))
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.RoleAdmin, user.Role)
		})
	}
}

func TestGetUsers(t *testing.T) {
	service := NewUserService(setupTestDB(t))
	require.NoError(t, service.CreateUser(&models.User{Email: "b@pizzeria.local", Password: "secret1"}))
	require.NoError(t, service.CreateUser(&models.User{Email: "a@pizzeria.local", Password: "secret1"}))

	users, err := service.GetAllUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@pizzeria.local", users[0].Email)

	found, err := service.GetUserByID(users[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "b@pizzeria.local", found.Email)

	_, err = service.GetUserByID(1000)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}
