package user

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// UserUseCase implements domain.UserUseCase
type UserUseCase struct {
	userRepo domain.UserRepository
	logger   *logger.Logger
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(userRepo domain.UserRepository, logger *logger.Logger) domain.UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile returns the public profile of userID as seen by viewerID.
// The wallet balance is only included when the viewer owns the profile.
func (uc *UserUseCase) GetProfile(ctx context.Context, userID string, viewerID string) (*domain.Profile, error) {
	uc.logger.Debug("Retrieving user profile",
		zap.String("user_id", userID),
		zap.String("viewer_id", viewerID))

	id, err := uuid.Parse(userID)
	if err != nil {
		uc.logger.Warn("Invalid user ID provided",
			zap.String("user_id", userID))
		return nil, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid user ID", http.StatusBadRequest, err)
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get user from database",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user", http.StatusInternalServerError, err)
	}

	if user == nil {
		uc.logger.Warn("User not found",
			zap.String("user_id", userID))
		return nil, domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", http.StatusNotFound, nil)
	}

	isOwner := viewerID != "" && viewerID == user.ID.String()

	uc.logger.Info("User profile retrieved successfully",
		zap.String("user_id", userID),
		zap.String("username", user.Username),
		zap.Bool("owner", isOwner))

	return user.ToProfile(isOwner), nil
}
