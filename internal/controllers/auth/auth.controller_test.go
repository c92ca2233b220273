package authController

import (
	"context"
	"testing"

	"server/config"
	"server/internal/database"
	. "server/internal/models"
	"server/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestController(t *testing.T) (*AuthController, database.DB) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&User{}))

	db := database.DB{SQL: gormDB}
	controller := New(
		repositories.NewUser(db),
		repositories.NewSession(db),
		config.Config{SessionTTLHours: 72},
	)

	return controller, db
}

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Email:          "fatima.hassan@example.com",
		Password:       "s3cret-pass",
		RetypePassword: "s3cret-pass",
		FirstName:      "Fatima",
		LastName:       "Hassan",
		GuardianName:   "Fatima Hassan",
		GuardianPhone:  "+971501234567",
	}
}

func TestRegister_Success(t *testing.T) {
	controller, db := newTestController(t)
	ctx := context.Background()

	user, session, fieldErrors, err := controller.Register(ctx, validRegisterRequest())
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)
	require.NotNil(t, user)
	require.NotNil(t, session)
	assert.Equal(t, user.ID, session.UserID)
	assert.NotEmpty(t, session.ID)

	// Stored password must be a hash, never the plaintext.
	var stored User
	require.NoError(t, db.SQL.First(&stored, "email = ?", "fatima.hassan@example.com").Error)
	assert.NotEqual(t, "s3cret-pass", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret-pass")))

	require.NotNil(t, stored.GuardianName)
	assert.Equal(t, "Fatima Hassan", *stored.GuardianName)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	controller, _ := newTestController(t)

	request := validRegisterRequest()
	request.RetypePassword = "different-pass"

	_, _, fieldErrors, err := controller.Register(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "Passwords do not match", fieldErrors["retypePassword"])
}

func TestRegister_ShortPassword(t *testing.T) {
	controller, _ := newTestController(t)

	request := validRegisterRequest()
	request.Password = "short"
	request.RetypePassword = "short"

	_, _, fieldErrors, err := controller.Register(context.Background(), request)
	require.NoError(t, err)
	assert.Contains(t, fieldErrors, "password")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	controller, _ := newTestController(t)
	ctx := context.Background()

	_, _, _, err := controller.Register(ctx, validRegisterRequest())
	require.NoError(t, err)

	_, _, _, err = controller.Register(ctx, validRegisterRequest())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	controller, _ := newTestController(t)
	ctx := context.Background()

	_, _, _, err := controller.Register(ctx, validRegisterRequest())
	require.NoError(t, err)

	user, session, fieldErrors, err := controller.Login(ctx, LoginRequest{
		Email:    "fatima.hassan@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, "Fatima", user.FirstName)
	assert.Equal(t, user.ID, session.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	controller, _ := newTestController(t)
	ctx := context.Background()

	_, _, _, err := controller.Register(ctx, validRegisterRequest())
	require.NoError(t, err)

	_, _, _, err = controller.Login(ctx, LoginRequest{
		Email:    "fatima.hassan@example.com",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	controller, _ := newTestController(t)

	_, _, _, err := controller.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_ValidationErrors(t *testing.T) {
	controller, _ := newTestController(t)

	_, _, fieldErrors, err := controller.Login(context.Background(), LoginRequest{
		Email: "not-an-email",
	})
	require.NoError(t, err)
	assert.Contains(t, fieldErrors, "email")
	assert.Contains(t, fieldErrors, "password")
}

func TestForgotPassword(t *testing.T) {
	controller, _ := newTestController(t)
	ctx := context.Background()

	fieldErrors, err := controller.ForgotPassword(ctx, ForgotPasswordRequest{Email: "bad"})
	require.NoError(t, err)
	assert.Contains(t, fieldErrors, "email")

	// Unknown accounts get the same silent success as known ones.
	fieldErrors, err = controller.ForgotPassword(ctx, ForgotPasswordRequest{Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)
}

func TestLogout_EmptySession(t *testing.T) {
	controller, _ := newTestController(t)
	assert.NoError(t, controller.Logout(context.Background(), ""))
}
