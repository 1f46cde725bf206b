package console_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardenlabs/alarm-console/pkg/common"
	"github.com/wardenlabs/alarm-console/pkg/console"
	"github.com/wardenlabs/alarm-console/pkg/models"
	_ "github.com/wardenlabs/alarm-console/pkg/testing"
)

func createOperator(t *testing.T, consoleObj *console.Console, password string) models.User {
	t.Helper()

	hash, err := console.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		Username:     "op-" + uuid.NewString(),
		Email:        "op@example.com",
		DisplayName:  "Test Operator",
		Role:         "operator",
		PasswordHash: hash,
	}
	require.NoError(t, consoleObj.Db.Conn.Create(&user).Error)
	return user
}

func TestLoginAndVerifyToken(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, consoleObj, _, _, _ := GetMockConsoleWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	user := createOperator(t, consoleObj, "correct horse battery staple")

	token, loggedIn, err := consoleObj.Auth.Login(user.Username, "correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.Username, loggedIn.Username)

	claims, err := consoleObj.Auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, "operator", claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, consoleObj, _, _, _ := GetMockConsoleWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	user := createOperator(t, consoleObj, "right-password")

	_, _, err := consoleObj.Auth.Login(user.Username, "wrong-password")
	assert.True(t, errors.Is(err, console.ErrInvalidCredentials))

	_, _, err = consoleObj.Auth.Login("nobody-"+uuid.NewString(), "whatever")
	assert.True(t, errors.Is(err, console.ErrInvalidCredentials))
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, consoleObj, _, _, _ := GetMockConsoleWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, err := consoleObj.Auth.VerifyToken("not-a-jwt")
	assert.Error(t, err)

	// token signed with a different secret must not verify
	other := &console.Console{Db: consoleObj.Db, JwtSecret: "some-other-secret"}
	other.WithServices(console.ServiceOpts{Auth: other.GetIAuth()})

	user := createOperator(t, consoleObj, "pw")
	token, _, err := other.Auth.Login(user.Username, "pw")
	require.NoError(t, err)

	_, err = consoleObj.Auth.VerifyToken(token)
	assert.Error(t, err)
}
