package repositories

import (
	"context"
	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/services"
	"time"

	"gorm.io/gorm"
)

const ONBOARDING_CACHE_EXPIRY = 12 * time.Hour

// OnboardingRepository owns the one-per-user application payloads: the
// post-approval onboarding record, the beneficiary profile and the
// questionnaire response.
type OnboardingRepository interface {
	GetRecord(ctx context.Context, userID string) (*OnboardingRecord, error)
	CreateRecord(ctx context.Context, record *OnboardingRecord) error

	GetProfile(ctx context.Context, userID string) (*BeneficiaryProfile, error)
	SaveProfile(ctx context.Context, profile *BeneficiaryProfile) error

	GetQuestionnaire(ctx context.Context, userID string) (*QuestionnaireResponse, error)
	SaveQuestionnaire(ctx context.Context, response *QuestionnaireResponse) error
}

type onboardingRepository struct {
	db  database.DB
	log logger.Logger
}

func NewOnboarding(db database.DB) OnboardingRepository {
	return &onboardingRepository{
		db:  db,
		log: logger.New("onboardingRepository"),
	}
}

func (r *onboardingRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *onboardingRepository) GetRecord(ctx context.Context, userID string) (*OnboardingRecord, error) {
	log := r.log.Function("GetRecord")

	var record OnboardingRecord
	found, err := database.NewCacheBuilder(r.db.Cache.Onboarding, recordCacheKey(userID)).
		WithContext(ctx).Get(&record)
	if err != nil {
		log.Warn("failed to read onboarding record from cache", "userID", userID, "error", err)
	}
	if found {
		return &record, nil
	}

	if err := r.getDB(ctx).First(&record, "user_id = ?", userID).Error; err != nil {
		return nil, log.Err("failed to get onboarding record", err, "userID", userID)
	}

	if err := r.cacheRecord(ctx, &record); err != nil {
		log.Warn("failed to cache onboarding record", "userID", userID, "error", err)
	}

	return &record, nil
}

func (r *onboardingRepository) CreateRecord(ctx context.Context, record *OnboardingRecord) error {
	log := r.log.Function("CreateRecord")

	if err := r.getDB(ctx).Create(record).Error; err != nil {
		return log.Err("failed to create onboarding record", err, "userID", record.UserID)
	}

	if err := r.cacheRecord(ctx, record); err != nil {
		log.Warn("failed to cache onboarding record", "userID", record.UserID, "error", err)
	}

	return nil
}

func (r *onboardingRepository) GetProfile(ctx context.Context, userID string) (*BeneficiaryProfile, error) {
	log := r.log.Function("GetProfile")

	var profile BeneficiaryProfile
	if err := r.getDB(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, log.Err("failed to get beneficiary profile", err, "userID", userID)
	}

	return &profile, nil
}

// SaveProfile creates or updates the user's single profile row;
// re-submitting the step overwrites the previous payload.
func (r *onboardingRepository) SaveProfile(ctx context.Context, profile *BeneficiaryProfile) error {
	log := r.log.Function("SaveProfile")

	var existing BeneficiaryProfile
	err := r.getDB(ctx).First(&existing, "user_id = ?", profile.UserID).Error
	switch {
	case err == nil:
		profile.BaseUUIDModel = existing.BaseUUIDModel
		if saveErr := r.getDB(ctx).Save(profile).Error; saveErr != nil {
			return log.Err("failed to update beneficiary profile", saveErr, "userID", profile.UserID)
		}
	case err == gorm.ErrRecordNotFound:
		if createErr := r.getDB(ctx).Create(profile).Error; createErr != nil {
			return log.Err("failed to create beneficiary profile", createErr, "userID", profile.UserID)
		}
	default:
		return log.Err("failed to look up beneficiary profile", err, "userID", profile.UserID)
	}

	return nil
}

func (r *onboardingRepository) GetQuestionnaire(ctx context.Context, userID string) (*QuestionnaireResponse, error) {
	log := r.log.Function("GetQuestionnaire")

	var response QuestionnaireResponse
	if err := r.getDB(ctx).First(&response, "user_id = ?", userID).Error; err != nil {
		return nil, log.Err("failed to get questionnaire response", err, "userID", userID)
	}

	return &response, nil
}

func (r *onboardingRepository) SaveQuestionnaire(ctx context.Context, response *QuestionnaireResponse) error {
	log := r.log.Function("SaveQuestionnaire")

	var existing QuestionnaireResponse
	err := r.getDB(ctx).First(&existing, "user_id = ?", response.UserID).Error
	switch {
	case err == nil:
		response.BaseUUIDModel = existing.BaseUUIDModel
		if saveErr := r.getDB(ctx).Save(response).Error; saveErr != nil {
			return log.Err("failed to update questionnaire response", saveErr, "userID", response.UserID)
		}
	case err == gorm.ErrRecordNotFound:
		if createErr := r.getDB(ctx).Create(response).Error; createErr != nil {
			return log.Err("failed to create questionnaire response", createErr, "userID", response.UserID)
		}
	default:
		return log.Err("failed to look up questionnaire response", err, "userID", response.UserID)
	}

	return nil
}

func (r *onboardingRepository) cacheRecord(ctx context.Context, record *OnboardingRecord) error {
	return database.NewCacheBuilder(r.db.Cache.Onboarding, recordCacheKey(record.UserID)).
		WithStruct(record).
		WithTTL(ONBOARDING_CACHE_EXPIRY).
		WithContext(ctx).
		Set()
}

func recordCacheKey(userID string) string {
	return "record:" + userID
}
