package usecase

import (
	"fmt"

	"adwallet/pkg/jwt"
	"adwallet/pkg/logger"
	"adwallet/services/auth/entity"
	"adwallet/services/auth/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	RegisterUser(username, email, password string) (*entity.User, error)
	LoginUser(email, password string) (*entity.AuthResult, error)
	RefreshUserTokens(refreshToken string) (*entity.TokenPair, error)
	RegisterAdmin(username, email, password string) (*entity.Admin, error)
	LoginAdmin(email, password string) (*entity.AuthResult, error)
	RefreshAdminTokens(refreshToken string) (*entity.TokenPair, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	adminRepo  persistent.AdminRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	adminRepo persistent.AdminRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		adminRepo:  adminRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) RegisterUser(username, email, password string) (*entity.User, error) {
	_, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		return nil, fmt.Errorf("user already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Username:      username,
		Email:         email,
		Password:      string(hashedPassword),
		Role:          entity.RoleUser,
		WalletBalance: 0,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user")
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) LoginUser(email, password string) (*entity.AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	accessToken, refreshToken, err := uc.jwtService.GenerateTokenPair(
		user.ID, user.Email, user.Username, string(user.Role), user.WalletBalance,
	)
	if err != nil {
		uc.logger.Error("Failed to generate tokens: %v", err)
		return nil, fmt.Errorf("failed to generate tokens")
	}

	// Overwriting the stored refresh token revokes any earlier session's
	// refresh token.
	if err := uc.userRepo.UpdateRefreshToken(user.ID, refreshToken); err != nil {
		uc.logger.Error("Failed to store refresh token: %v", err)
		return nil, fmt.Errorf("failed to store refresh token")
	}

	balance := user.WalletBalance
	return &entity.AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: &entity.Profile{
			ID:            user.ID,
			Name:          user.Username,
			Email:         user.Email,
			Role:          string(user.Role),
			WalletBalance: &balance,
		},
	}, nil
}

func (uc *authUseCase) RefreshUserTokens(refreshToken string) (*entity.TokenPair, error) {
	claims, err := uc.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	user, err := uc.userRepo.GetByEmail(claims.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	// Rotation check: only the most recently issued refresh token is honored.
	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, fmt.Errorf("invalid refresh token")
	}

	// Balance is re-derived so the new claims carry the current value.
	accessToken, newRefreshToken, err := uc.jwtService.GenerateTokenPair(
		user.ID, user.Email, user.Username, string(user.Role), user.WalletBalance,
	)
	if err != nil {
		uc.logger.Error("Failed to generate tokens: %v", err)
		return nil, fmt.Errorf("failed to generate tokens")
	}

	if err := uc.userRepo.UpdateRefreshToken(user.ID, newRefreshToken); err != nil {
		uc.logger.Error("Failed to store refresh token: %v", err)
		return nil, fmt.Errorf("failed to store refresh token")
	}

	return &entity.TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

func (uc *authUseCase) RegisterAdmin(username, email, password string) (*entity.Admin, error) {
	_, err := uc.adminRepo.GetByEmail(email)
	if err == nil {
		return nil, fmt.Errorf("admin already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration")
	}

	admin := &entity.Admin{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Role:     "admin",
	}

	if err := uc.adminRepo.Create(admin); err != nil {
		uc.logger.Error("Failed to create admin: %v", err)
		return nil, fmt.Errorf("failed to create admin")
	}

	admin.Password = ""
	return admin, nil
}

func (uc *authUseCase) LoginAdmin(email, password string) (*entity.AuthResult, error) {
	admin, err := uc.adminRepo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	accessToken, refreshToken, err := uc.jwtService.GenerateTokenPair(
		admin.ID, admin.Email, admin.Username, admin.Role, 0,
	)
	if err != nil {
		uc.logger.Error("Failed to generate tokens: %v", err)
		return nil, fmt.Errorf("failed to generate tokens")
	}

	if err := uc.adminRepo.UpdateRefreshToken(admin.ID, refreshToken); err != nil {
		uc.logger.Error("Failed to store refresh token: %v", err)
		return nil, fmt.Errorf("failed to store refresh token")
	}

	return &entity.AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: &entity.Profile{
			ID:    admin.ID,
			Name:  admin.Username,
			Email: admin.Email,
			Role:  admin.Role,
		},
	}, nil
}

func (uc *authUseCase) RefreshAdminTokens(refreshToken string) (*entity.TokenPair, error) {
	claims, err := uc.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	admin, err := uc.adminRepo.GetByEmail(claims.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	if admin.RefreshToken == nil || *admin.RefreshToken != refreshToken {
		return nil, fmt.Errorf("invalid refresh token")
	}

	accessToken, newRefreshToken, err := uc.jwtService.GenerateTokenPair(
		admin.ID, admin.Email, admin.Username, admin.Role, 0,
	)
	if err != nil {
		uc.logger.Error("Failed to generate tokens: %v", err)
		return nil, fmt.Errorf("failed to generate tokens")
	}

	if err := uc.adminRepo.UpdateRefreshToken(admin.ID, newRefreshToken); err != nil {
		uc.logger.Error("Failed to store refresh token: %v", err)
		return nil, fmt.Errorf("failed to store refresh token")
	}

	return &entity.TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}
