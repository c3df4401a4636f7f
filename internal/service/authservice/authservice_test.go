package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wefund/wefund/internal/domain"
	"github.com/wefund/wefund/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)
	email := "investor@example.com"

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful registration",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("password123").Return("hashed", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						assert.NotEmpty(t, user.ID)
						assert.Equal(t, domain.UserRole, user.Role)
						assert.Equal(t, "hashed", user.PasswordHash)
						return user, nil
					})
			},
			expectedError: nil,
		},
		{
			name: "Email already registered",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(&domain.User{Email: email}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name: "Error finding user",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name: "Error hashing password",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("password123").Return("", errors.New("hash error"))
			},
			expectedError: errors.New("hash error"),
		},
		{
			name: "Error creating user",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("password123").Return("hashed", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), "Jane Doe", email, "password123", 30)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, email, user.Email)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)
	email := "investor@example.com"

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful authentication",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(&domain.User{
					Email:        email,
					PasswordHash: "hashed",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashed", "password123").Return(true)
			},
			expectedError: nil,
		},
		{
			name: "Unknown email",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(&domain.User{
					Email:        email,
					PasswordHash: "hashed",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashed", "password123").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Blocked user",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), email).Return(&domain.User{
					Email:        email,
					PasswordHash: "hashed",
					Blocked:      true,
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashed", "password123").Return(true)
			},
			expectedError: ErrUserBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), email, "password123")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, email, user.Email)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)
	userID := "c7b3d8e0-5e0b-4b0f-8b3a-3b9f4b3d3b3d"

	tests := []struct {
		name          string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name: "Successful token generation",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(userID, domain.UserRole, gomock.Any()).Return("token", nil)
			},
			expectedToken: "token",
		},
		{
			name: "Error generating token",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(userID, domain.UserRole, gomock.Any()).Return("", errors.New("sign error"))
			},
			expectedError: errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(userID, domain.UserRole)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
