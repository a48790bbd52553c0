package services

import (
	"testing"

	"blogapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService() (AuthService, *fakeUserRepo, TokenService) {
	userRepo := newFakeUserRepo()
	tokens := NewTokenService(testJWTConfig())
	return NewAuthService(userRepo, tokens), userRepo, tokens
}

func TestRegisterHashesPassword(t *testing.T) {
	auth, userRepo, _ := newTestAuthService()

	user, err := auth.Register(models.RegisterRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)

	stored, err := userRepo.GetByUsername("alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")))
}

func TestRegisterDuplicateUsernameCaseInsensitive(t *testing.T) {
	auth, _, _ := newTestAuthService()

	_, err := auth.Register(models.RegisterRequest{Username: "Alice", Password: "secret1"})
	require.NoError(t, err)

	_, err = auth.Register(models.RegisterRequest{Username: "alice", Password: "secret2"})
	assert.IsType(t, models.ErrorConflict{}, err)
}

func TestLoginIssuesValidToken(t *testing.T) {
	auth, _, tokens := newTestAuthService()

	registered, err := auth.Register(models.RegisterRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	response, err := auth.Login(models.LoginRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, response.Token)

	identity, err := tokens.Validate(response.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, identity.UserID)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, models.RoleUser, identity.Role)
}

func TestLoginUsernameCaseInsensitive(t *testing.T) {
	auth, _, _ := newTestAuthService()

	_, err := auth.Register(models.RegisterRequest{Username: "Alice", Password: "secret1"})
	require.NoError(t, err)

	_, err = auth.Login(models.LoginRequest{Username: "ALICE", Password: "secret1"})
	assert.NoError(t, err)
}

// Unknown users and wrong passwords must be indistinguishable, or login
// becomes a username oracle.
func TestLoginFailuresAreGeneric(t *testing.T) {
	auth, _, _ := newTestAuthService()

	_, err := auth.Register(models.RegisterRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	_, unknownErr := auth.Login(models.LoginRequest{Username: "nobody", Password: "secret1"})
	_, wrongErr := auth.Login(models.LoginRequest{Username: "alice", Password: "wrong"})

	assert.IsType(t, models.ErrorUnauthorized{}, unknownErr)
	assert.IsType(t, models.ErrorUnauthorized{}, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}
