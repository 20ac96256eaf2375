package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/common"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/db"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/models"
	_ "github.com/VIVEGHA/ColdStoragebackend/pkg/testing"
)

func getTestAuth(t *testing.T) *Auth {
	t.Helper()

	dbInstance := db.GetInstance(db.UseMemorySqliteDialector())
	return &Auth{
		Db:       *dbInstance,
		Secret:   []byte("test-secret"),
		TokenTTL: time.Hour,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	common.SetTestLoggerNop()

	authObj := getTestAuth(t)
	email := uuid.NewString() + "@example.com"

	user, err := authObj.Register(RegisterInput{
		FullName: "Asha Nair",
		Email:    email,
		Phone:    "9876543210",
		Password: "s3cret-pw",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, email, user.Email)

	// stored password is a bcrypt hash, never the plaintext
	var saved models.User
	err = authObj.Db.Conn.First(&saved, "email = ?", email).Error
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pw", saved.Password)
	assert.True(t, strings.HasPrefix(saved.Password, "$2"))

	token, loggedIn, err := authObj.Login(email, "s3cret-pw")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := authObj.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, email, claims.Email)
	assert.Equal(t, user.ID, claims.Subject)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	common.SetTestLoggerNop()

	authObj := getTestAuth(t)
	email := uuid.NewString() + "@example.com"

	input := RegisterInput{
		FullName: "Asha Nair",
		Email:    email,
		Phone:    "9876543210",
		Password: "s3cret-pw",
	}

	_, err := authObj.Register(input)
	require.NoError(t, err)

	_, err = authObj.Register(input)
	assert.ErrorIs(t, err, ErrUserExists)

	// email matching is case-insensitive
	input.Email = strings.ToUpper(email)
	_, err = authObj.Register(input)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginFailures(t *testing.T) {
	common.SetTestLoggerNop()

	authObj := getTestAuth(t)
	email := uuid.NewString() + "@example.com"

	_, _, err := authObj.Login(email, "whatever")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = authObj.Register(RegisterInput{
		FullName: "Asha Nair",
		Email:    email,
		Phone:    "9876543210",
		Password: "s3cret-pw",
	})
	require.NoError(t, err)

	_, _, err = authObj.Login(email, "wrong-pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsBadTokens(t *testing.T) {
	common.SetTestLoggerNop()

	authObj := getTestAuth(t)
	email := uuid.NewString() + "@example.com"

	_, err := authObj.Register(RegisterInput{
		FullName: "Asha Nair",
		Email:    email,
		Phone:    "9876543210",
		Password: "s3cret-pw",
	})
	require.NoError(t, err)

	token, _, err := authObj.Login(email, "s3cret-pw")
	require.NoError(t, err)

	_, err = authObj.ParseToken("")
	assert.Error(t, err)

	_, err = authObj.ParseToken("not.a.token")
	assert.Error(t, err)

	// token signed with a different secret
	other := &Auth{Db: authObj.Db, Secret: []byte("other-secret"), TokenTTL: time.Hour}
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	common.SetTestLoggerNop()

	dbInstance := db.GetInstance(db.UseMemorySqliteDialector())
	authObj := &Auth{
		Db:       *dbInstance,
		Secret:   []byte("test-secret"),
		TokenTTL: -time.Hour, // issued already expired
	}

	email := uuid.NewString() + "@example.com"
	_, err := authObj.Register(RegisterInput{
		FullName: "Asha Nair",
		Email:    email,
		Phone:    "9876543210",
		Password: "s3cret-pw",
	})
	require.NoError(t, err)

	token, _, err := authObj.Login(email, "s3cret-pw")
	require.NoError(t, err)

	_, err = authObj.ParseToken(token)
	assert.Error(t, err)
}
