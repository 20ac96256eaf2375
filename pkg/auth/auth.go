// Package auth provides email/password registration and login for the cold
// storage dashboard. It shares the persistence layer with the monitoring
// services but is otherwise independent: no sensor route requires a token.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/common"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/db"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/models"
)

var (
	ErrUserExists         = errors.New("auth: user already exists")
	ErrUserNotFound       = errors.New("auth: user not found")
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
)

// Claims are the JWT claims issued at login.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// RegisterInput carries a validated registration request. Password is the
// plaintext; it is hashed before anything touches the database.
type RegisterInput struct {
	FullName string
	Email    string
	Phone    string
	Password string
}

type Auth struct {
	Db       db.DB
	Secret   []byte
	TokenTTL time.Duration
}

// Register creates a user with a bcrypt-hashed password. Emails are unique;
// registering an existing one returns ErrUserExists.
func (a *Auth) Register(input RegisterInput) (*models.User, error) {
	logger := common.GetLoggerWith(common.LoggerNameAuth)

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.User
	err := a.Db.Conn.First(&existing, "email = ?", email).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       uuid.NewString(),
		FullName: input.FullName,
		Email:    email,
		Phone:    input.Phone,
		Password: string(hash),
	}

	if err := a.Db.Conn.Create(&user).Error; err != nil {
		return nil, err
	}

	logger.Info("Registered user", zap.String("id", user.ID), zap.String("email", user.Email))

	return &user, nil
}

// Login verifies the password and returns a signed HS256 token plus the user.
func (a *Auth) Login(email string, password string) (string, *models.User, error) {
	logger := common.GetLoggerWith(common.LoggerNameAuth)

	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := a.Db.Conn.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrUserNotFound
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.Secret)
	if err != nil {
		return "", nil, err
	}

	logger.Info("User logged in", zap.String("id", user.ID), zap.String("email", user.Email))

	return signed, &user, nil
}

// ParseToken validates a token issued by Login and returns its claims.
func (a *Auth) ParseToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("auth: empty token")
	}
	if len(a.Secret) == 0 {
		return nil, errors.New("auth: empty secret")
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("auth: invalid signing method")
		}
		return a.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("auth: invalid token")
	}
	if claims.UserID == "" {
		return nil, errors.New("auth: missing user_id")
	}
	return claims, nil
}
