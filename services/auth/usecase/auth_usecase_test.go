package usecase

import (
	"errors"
	"testing"

	"adwallet/pkg/jwt"
	"adwallet/pkg/logger"
	"adwallet/services/auth/entity"
	"adwallet/services/auth/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(id string, refreshToken string) error {
	args := m.Called(id, refreshToken)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockAdminRepository is a mock implementation of AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(admin *entity.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByEmail(email string) (*entity.Admin, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockAdminRepository) UpdateRefreshToken(id string, refreshToken string) error {
	args := m.Called(id, refreshToken)
	return args.Error(0)
}

var _ persistent.AdminRepository = (*MockAdminRepository)(nil)

func newTestUseCase(userRepo *MockUserRepository, adminRepo *MockAdminRepository) AuthUseCase {
	jwtService := jwt.NewService("test-secret", "test-refresh-secret")
	return NewAuthUseCase(userRepo, adminRepo, jwtService, logger.New())
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestRegisterUser_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	adminRepo := new(MockAdminRepository)
	uc := newTestUseCase(userRepo, adminRepo)

	userRepo.On("GetByEmail", "alice@test.com").Return(nil, errors.New("record not found"))
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := uc.RegisterUser("alice", "alice@test.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, float64(0), user.WalletBalance)
	assert.Empty(t, user.Password)

	userRepo.AssertExpectations(t)
}

func TestRegisterUser_Duplicate(t *testing.T) {
	userRepo := new(MockUserRepository)
	adminRepo := new(MockAdminRepository)
	uc := newTestUseCase(userRepo, adminRepo)

	userRepo.On("GetByEmail", "alice@test.com").Return(&entity.User{ID: "user-123"}, nil)

	user, err := uc.RegisterUser("alice", "alice@test.com", "password123")
	assert.Nil(t, user)
	assert.EqualError(t, err, "user already exists")

	userRepo.AssertNotCalled(t, "Create")
}

func TestLoginUser_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	adminRepo := new(MockAdminRepository)
	uc := newTestUseCase(userRepo, adminRepo)

	mockUser := &entity.User{
		ID:            "user-123",
		Username:      "alice",
		Email:         "alice@test.com",
		Password:      hashPassword(t, "password123"),
		Role:          entity.RoleUser,
		WalletBalance: 12.5,
	}

	userRepo.On("GetByEmail", "alice@test.com").Return(mockUser, nil)
	userRepo.On("UpdateRefreshToken", "user-123", mock.AnythingOfType("string")).Return(nil)

	result, err := uc.LoginUser("alice@test.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "alice", result.User.Name)
	assert.NotNil(t, result.User.WalletBalance)
	assert.Equal(t, 12.5, *result.User.WalletBalance)

	userRepo.AssertExpectations(t)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	adminRepo := new(MockAdminRepository)
	uc := newTestUseCase(userRepo, adminRepo)

	mockUser := &entity.User{
		ID:       "user-123",
		Email:    "alice@test.com",
		Password: hashPassword(t, "password123"),
	}

	userRepo.On("GetByEmail", "alice@test.com").Return(mockUser, nil)

	result, err := uc.LoginUser("alice@test.com", "wrong")
	assert.Nil(t, result)
	assert.EqualError(t, err, "invalid credentials")

	userRepo.AssertNotCalled(t, "UpdateRefreshToken")
}

func TestRefreshUserTokens_RotatesStoredToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	adminRepo := new(MockAdminRepository)

	jwtService := jwt.NewService("test-secret", "test-refresh-secret")
	uc := NewAuthUseCase(userRepo, adminRepo, jwtService, logger.New())

	_, refreshToken, err := jwtService.GenerateTokenPair("user-123", "alice@test.com", "alice", "user", 12.5)
	assert.NoError(t, err)

	mockUser := &entity.User{
		ID:            "user-123",
		Username:      "alice",
		Email:         "alice@test.com",
		Role:          entity.RoleUser,
		WalletBalance: 12.5,
		RefreshToken:  &refreshToken,
	}

	userRepo.On("GetByEmail", "alice@test.com").Return(mockUser, nil)

	var rotated string
	userRepo.On("UpdateRefreshToken", "user-123", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { rotated = args.String(1) }).
		Return(nil)

	pair, err := uc.RefreshUserTokens(refreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Equal(t, rotated, pair.RefreshToken)

	claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, 12.5, claims.WalletBalance)

	userRepo.AssertExpectations(t)
}

func TestRefreshUserTokens_RejectsRevokedToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	adminRepo := new(MockAdminRepository)

	jwtService := jwt.NewService("test-secret", "test-refresh-secret")
	uc := NewAuthUseCase(userRepo, adminRepo, jwtService, logger.New())

	_, oldToken, err := jwtService.GenerateTokenPair("user-123", "alice@test.com", "alice", "user", 0)
	assert.NoError(t, err)

	// The stored token differs, so the presented one has been rotated out
	stored := "some-newer-token"
	mockUser := &entity.User{
		ID:           "user-123",
		Email:        "alice@test.com",
		RefreshToken: &stored,
	}

	userRepo.On("GetByEmail", "alice@test.com").Return(mockUser, nil)

	pair, err := uc.RefreshUserTokens(oldToken)
	assert.Nil(t, pair)
	assert.EqualError(t, err, "invalid refresh token")

	userRepo.AssertNotCalled(t, "UpdateRefreshToken")
}

func TestRefreshUserTokens_RejectsGarbage(t *testing.T) {
	userRepo := new(MockUserRepository)
	adminRepo := new(MockAdminRepository)
	uc := newTestUseCase(userRepo, adminRepo)

	pair, err := uc.RefreshUserTokens("not-a-jwt")
	assert.Nil(t, pair)
	assert.EqualError(t, err, "invalid refresh token")

	userRepo.AssertNotCalled(t, "GetByEmail")
}

func TestLoginAdmin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	adminRepo := new(MockAdminRepository)
	uc := newTestUseCase(userRepo, adminRepo)

	adminRepo.On("GetByEmail", "ghost@test.com").Return(nil, errors.New("record not found"))

	result, err := uc.LoginAdmin("ghost@test.com", "password123")
	assert.Nil(t, result)
	assert.EqualError(t, err, "invalid email or password")
}

func TestLoginAdmin_OmitsWalletBalance(t *testing.T) {
	userRepo := new(MockUserRepository)
	adminRepo := new(MockAdminRepository)
	uc := newTestUseCase(userRepo, adminRepo)

	mockAdmin := &entity.Admin{
		ID:       "admin-123",
		Username: "boss",
		Email:    "boss@test.com",
		Password: hashPassword(t, "password123"),
		Role:     "admin",
	}

	adminRepo.On("GetByEmail", "boss@test.com").Return(mockAdmin, nil)
	adminRepo.On("UpdateRefreshToken", "admin-123", mock.AnythingOfType("string")).Return(nil)

	result, err := uc.LoginAdmin("boss@test.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "admin", result.User.Role)
	assert.Nil(t, result.User.WalletBalance)

	adminRepo.AssertExpectations(t)
}
