package repositories

import (
	"context"
	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"
	"time"

	"github.com/google/uuid"
)

// SessionRepository keeps sessions in the dedicated valkey session cache;
// nothing touches SQL on the hot auth path.
type SessionRepository interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (*Session, error)
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

type sessionRepository struct {
	db  database.DB
	log logger.Logger
}

func NewSession(db database.DB) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: logger.New("sessionRepository"),
	}
}

func (r *sessionRepository) Create(ctx context.Context, userID string, ttl time.Duration) (*Session, error) {
	log := r.log.Function("Create")

	session := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}

	if err := database.NewCacheBuilder(r.db.Cache.Session, session.ID).
		WithStruct(session).
		WithTTL(ttl).
		WithContext(ctx).
		Set(); err != nil {
		return nil, log.Err("failed to store session", err, "userID", userID)
	}

	return session, nil
}

func (r *sessionRepository) Get(ctx context.Context, sessionID string) (*Session, error) {
	log := r.log.Function("Get")

	var session Session
	found, err := database.NewCacheBuilder(r.db.Cache.Session, sessionID).
		WithContext(ctx).Get(&session)
	if err != nil {
		return nil, log.Err("failed to read session", err)
	}
	if !found {
		return nil, log.Error("session not found")
	}

	if time.Now().After(session.ExpiresAt) {
		_ = r.Delete(ctx, sessionID)
		return nil, log.Error("session expired", "userID", session.UserID)
	}

	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	log := r.log.Function("Delete")

	if err := database.NewCacheBuilder(r.db.Cache.Session, sessionID).
		WithContext(ctx).Delete(); err != nil {
		return log.Err("failed to delete session", err)
	}

	return nil
}
