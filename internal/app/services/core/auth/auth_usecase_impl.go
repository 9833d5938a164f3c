package auth

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

// dummyPasswordHash keeps the unknown-email path as slow as a wrong password.
const dummyPasswordHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3ATbo4p2VZr9Qbn8PpVF0RG"

type authUsecase struct {
	UserRepository contracts.UserRepository
	TokenIssuer    contracts.TokenIssuer
	TokenDenylist  contracts.TokenDenylist
	Log            *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	tokenIssuer contracts.TokenIssuer,
	tokenDenylist contracts.TokenDenylist,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		TokenIssuer:    tokenIssuer,
		TokenDenylist:  tokenDenylist,
		Log:            logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called", zap.String(constvars.LoggingRequestIDKey, requestID))

	utils.SanitizeLoginRequest(request)
	if request.Email == "" || request.Password == "" {
		return nil, exceptions.ErrMissingCredentials(nil)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	passwordHash := dummyPasswordHash
	if user != nil {
		passwordHash = user.Password
	}
	if !utils.CheckPasswordHash(request.Password, passwordHash) || user == nil {
		utils.LogSecurityEvent(uc.Log, "login_failed", requestID)
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, caller, err := uc.TokenIssuer.IssueToken(user)
	if err != nil {
		uc.Log.Error("authUsecase.Login error issuing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.Login{
		Token:     token,
		ExpiresAt: caller.ExpiresAt,
		User:      utils.MapUserToResponse(user),
	}, nil
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Register called", zap.String(constvars.LoggingRequestIDKey, requestID))

	utils.SanitizeRegisterRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Email:     request.Email,
		Password:  hashedPassword,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Role:      constvars.RolePractitioner,
	}
	user.SetCreatedAtUpdatedAt()

	user.ID, err = uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.Register error inserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	response := utils.MapUserToResponse(user)
	return &response, nil
}

func (uc *authUsecase) Logout(ctx context.Context, caller *models.Caller) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called", utils.CallerFields(requestID, caller)...)

	if caller == nil || caller.TokenID == "" {
		return exceptions.ErrMissingCaller(nil)
	}

	err := uc.TokenDenylist.Revoke(ctx, caller.TokenID, utils.RemainingTTL(caller.ExpiresAt))
	if err != nil {
		uc.Log.Error("authUsecase.Logout error revoking token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded", zap.String(constvars.LoggingRequestIDKey, requestID))
	return nil
}

func (uc *authUsecase) Authenticate(ctx context.Context, token string) (*models.Caller, error) {
	requestID := utils.GetRequestID(ctx)

	caller, err := uc.TokenIssuer.ParseToken(token)
	if err != nil {
		return nil, err
	}

	revoked, err := uc.TokenDenylist.IsRevoked(ctx, caller.TokenID)
	if err != nil {
		uc.Log.Error("authUsecase.Authenticate error checking denylist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if revoked {
		utils.LogSecurityEvent(uc.Log, "revoked_token_used", requestID, zap.String(constvars.LoggingUserIDKey, caller.UserID))
		return nil, exceptions.ErrTokenRevoked(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrTokenSubjectGone(nil)
	}

	// The stored role wins over the claim so demotions apply immediately.
	caller.Role = user.Role
	caller.Email = user.Email
	return caller, nil
}
