package authController

import (
	"context"
	"errors"
	"time"

	"server/config"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"
	"server/internal/schema"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

type AuthController struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	config      config.Config
	log         logger.Logger
}

func New(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	config config.Config,
) *AuthController {
	return &AuthController{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		config:      config,
		log:         logger.New("AuthController"),
	}
}

func (ac *AuthController) sessionTTL() time.Duration {
	return time.Duration(ac.config.SessionTTLHours) * time.Hour
}

// Register validates the request, hashes the password and creates the user
// with a fresh session. Validation failures come back as field errors, not
// an error return.
func (ac *AuthController) Register(
	ctx context.Context,
	request RegisterRequest,
) (*User, *Session, schema.FieldErrors, error) {
	log := ac.log.Function("Register")

	fieldErrors := schema.Registration().Validate(map[string]string{
		"email":          request.Email,
		"password":       request.Password,
		"retypePassword": request.RetypePassword,
		"firstName":      request.FirstName,
		"lastName":       request.LastName,
		"guardianName":   request.GuardianName,
		"guardianPhone":  request.GuardianPhone,
	})
	if len(fieldErrors) > 0 {
		return nil, nil, fieldErrors, nil
	}

	if _, err := ac.userRepo.GetByEmail(ctx, request.Email); err == nil {
		return nil, nil, nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, nil, log.Err("failed to hash password", err)
	}

	user := &User{
		Email:     request.Email,
		Password:  string(hash),
		FirstName: request.FirstName,
		LastName:  request.LastName,
	}
	if request.GuardianName != "" {
		user.GuardianName = &request.GuardianName
	}
	if request.GuardianPhone != "" {
		user.GuardianPhone = &request.GuardianPhone
	}

	if err := ac.userRepo.Create(ctx, user); err != nil {
		return nil, nil, nil, err
	}

	session, err := ac.sessionRepo.Create(ctx, user.ID, ac.sessionTTL())
	if err != nil {
		return nil, nil, nil, err
	}

	log.Info("user registered", "userID", user.ID)
	return user, session, nil, nil
}

// Login verifies the credentials and opens a session. Bad email and bad
// password both surface as ErrInvalidCredentials.
func (ac *AuthController) Login(
	ctx context.Context,
	request LoginRequest,
) (*User, *Session, schema.FieldErrors, error) {
	log := ac.log.Function("Login")

	fieldErrors := schema.Login().Validate(map[string]string{
		"email":    request.Email,
		"password": request.Password,
	})
	if len(fieldErrors) > 0 {
		return nil, nil, fieldErrors, nil
	}

	user, err := ac.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, ErrInvalidCredentials
		}
		return nil, nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, nil, nil, ErrInvalidCredentials
	}

	session, err := ac.sessionRepo.Create(ctx, user.ID, ac.sessionTTL())
	if err != nil {
		return nil, nil, nil, err
	}

	log.Info("user logged in", "userID", user.ID)
	return user, session, nil, nil
}

func (ac *AuthController) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return ac.sessionRepo.Delete(ctx, sessionID)
}

// ForgotPassword accepts any well-formed email. Whether an account exists is
// never revealed; the reset mail goes out only when one does.
func (ac *AuthController) ForgotPassword(
	ctx context.Context,
	request ForgotPasswordRequest,
) (schema.FieldErrors, error) {
	log := ac.log.Function("ForgotPassword")

	fieldErrors := schema.ForgotPassword().Validate(map[string]string{"email": request.Email})
	if len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	if _, err := ac.userRepo.GetByEmail(ctx, request.Email); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, nil
	}

	log.Info("password reset requested", "email", request.Email)
	return nil, nil
}
