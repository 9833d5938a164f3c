package users

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger

	// adminMu serializes the last-admin check with the write that follows it.
	adminMu sync.Mutex
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

func (uc *userUsecase) ListUsers(ctx context.Context, caller *models.Caller) ([]responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.ListUsers called", utils.CallerFields(requestID, caller)...)

	users, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("userUsecase.ListUsers error fetching users",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.ListUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(users)),
	)
	return utils.MapUsersToResponse(users), nil
}

func (uc *userUsecase) GetUser(ctx context.Context, caller *models.Caller, userID string) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GetUser called",
		append(utils.CallerFields(requestID, caller), zap.String(constvars.LoggingUserIDKey, userID))...,
	)

	user, err := uc.findExisting(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := utils.MapUserToResponse(user)
	return &response, nil
}

func (uc *userUsecase) CreateUser(ctx context.Context, caller *models.Caller, request *requests.CreateUser) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.CreateUser called", utils.CallerFields(requestID, caller)...)

	return uc.createUser(ctx, request)
}

func (uc *userUsecase) ProvisionAdmin(ctx context.Context, request *requests.CreateUser) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.ProvisionAdmin called", zap.String(constvars.LoggingRequestIDKey, requestID))

	request.Role = constvars.RoleAdmin
	return uc.createUser(ctx, request)
}

func (uc *userUsecase) UpdateUser(ctx context.Context, caller *models.Caller, userID string, request *requests.UpdateUser) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.UpdateUser called",
		append(utils.CallerFields(requestID, caller), zap.String(constvars.LoggingUserIDKey, userID))...,
	)

	utils.SanitizeUpdateUserRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	user, err := uc.findExisting(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := uc.ensureEmailAvailable(ctx, user, request.Email); err != nil {
		return nil, err
	}

	if request.Role != nil && user.IsAdmin() && *request.Role != constvars.RoleAdmin {
		uc.adminMu.Lock()
		defer uc.adminMu.Unlock()
		if err := uc.ensureNotLastAdmin(ctx); err != nil {
			uc.Log.Warn("userUsecase.UpdateUser refused to demote the last admin",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, userID),
			)
			return nil, err
		}
	}

	utils.ApplyString(&user.Email, request.Email)
	utils.ApplyString(&user.FirstName, request.FirstName)
	utils.ApplyString(&user.LastName, request.LastName)
	utils.ApplyString(&user.Role, request.Role)
	if err := uc.applyPassword(user, request.Password); err != nil {
		return nil, err
	}
	user.SetUpdatedAt()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.UpdateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	response := utils.MapUserToResponse(user)
	return &response, nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, caller *models.Caller, userID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.DeleteUser called",
		append(utils.CallerFields(requestID, caller), zap.String(constvars.LoggingUserIDKey, userID))...,
	)

	user, err := uc.findExisting(ctx, userID)
	if err != nil {
		return err
	}

	if user.IsAdmin() {
		uc.adminMu.Lock()
		defer uc.adminMu.Unlock()
		if err := uc.ensureNotLastAdmin(ctx); err != nil {
			uc.Log.Warn("userUsecase.DeleteUser refused to delete the last admin",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, userID),
			)
			return err
		}
	}

	if err := uc.UserRepository.DeleteByID(ctx, userID); err != nil {
		return err
	}

	uc.Log.Info("userUsecase.DeleteUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return nil
}

func (uc *userUsecase) GetProfile(ctx context.Context, caller *models.Caller) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GetProfile called", utils.CallerFields(requestID, caller)...)

	user, err := uc.findExisting(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	response := utils.MapUserToResponse(user)
	return &response, nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, caller *models.Caller, request *requests.UpdateProfile) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.UpdateProfile called", utils.CallerFields(requestID, caller)...)

	utils.SanitizeUpdateProfileRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	user, err := uc.findExisting(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	if !utils.CheckPasswordHash(request.CurrentPassword, user.Password) {
		utils.LogSecurityEvent(uc.Log, "profile_password_mismatch", requestID, zap.String(constvars.LoggingUserIDKey, user.ID))
		return nil, exceptions.ErrCurrentPasswordMismatch(nil)
	}

	if err := uc.ensureEmailAvailable(ctx, user, request.Email); err != nil {
		return nil, err
	}

	utils.ApplyString(&user.Email, request.Email)
	utils.ApplyString(&user.FirstName, request.FirstName)
	utils.ApplyString(&user.LastName, request.LastName)
	if err := uc.applyPassword(user, request.Password); err != nil {
		return nil, err
	}
	user.SetUpdatedAt()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.UpdateProfile succeeded", zap.String(constvars.LoggingRequestIDKey, requestID))
	response := utils.MapUserToResponse(user)
	return &response, nil
}

func (uc *userUsecase) createUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)

	utils.SanitizeCreateUserRequest(request)
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
		Role:      request.Role,
	}
	user.SetCreatedAtUpdatedAt()

	user.ID, err = uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.createUser error inserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.createUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	response := utils.MapUserToResponse(user)
	return &response, nil
}

func (uc *userUsecase) findExisting(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourceUser)
	}
	return user, nil
}

func (uc *userUsecase) ensureEmailAvailable(ctx context.Context, user *models.User, email *string) error {
	if email == nil || *email == "" || *email == user.Email {
		return nil
	}
	existingUser, err := uc.UserRepository.FindByEmail(ctx, *email)
	if err != nil {
		return err
	}
	if existingUser != nil {
		return exceptions.ErrEmailAlreadyExist(nil)
	}
	return nil
}

func (uc *userUsecase) ensureNotLastAdmin(ctx context.Context) error {
	admins, err := uc.UserRepository.CountByRole(ctx, constvars.RoleAdmin)
	if err != nil {
		return err
	}
	if admins <= 1 {
		return exceptions.ErrLastAdmin(nil)
	}
	return nil
}

func (uc *userUsecase) applyPassword(user *models.User, password *string) error {
	if password == nil || *password == "" {
		return nil
	}
	hashedPassword, err := utils.HashPassword(*password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	user.Password = hashedPassword
	return nil
}
