package console

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wardenlabs/alarm-console/pkg/common"
	"github.com/wardenlabs/alarm-console/pkg/models"
)

const sessionTTL = 12 * time.Hour

type Claims struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	Role        string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (c *Console) login(username, password string) (string, *models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameConsoleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAuth),
	)

	var user models.User
	if err := c.Db.Conn.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Info("Rejected login", zap.String("username", username))
		return "", nil, ErrInvalidCredentials
	}

	claims := &Claims{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.JwtSecret))
	if err != nil {
		return "", nil, err
	}

	logger.Info("Operator logged in", zap.String("username", username))

	return token, &user, nil
}

func (c *Console) verifyToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(c.JwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

type IAuthImpl struct {
	console *Console
}

func (ia *IAuthImpl) Login(username, password string) (string, *models.User, error) {
	return ia.console.login(username, password)
}

func (ia *IAuthImpl) VerifyToken(token string) (*Claims, error) {
	return ia.console.verifyToken(token)
}

func (c *Console) GetIAuth() IAuth {
	return &IAuthImpl{console: c}
}
