package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/smdental/dentismo/internal/domain"
	"github.com/smdental/dentismo/internal/pg"
	"github.com/smdental/dentismo/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockUserRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		username      string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			username: "drsmith",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "drsmith").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           1,
				Name:         "Dr. Smith",
				Username:     "drsmith",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "User already exists",
			username: "drsmith",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "drsmith").Return(&domain.User{Username: "drsmith"}, nil)
			},
			expectedUser:  nil,
			expectedError: ErrUsernameTaken,
		},
		{
			name:     "Duplicate slips past the pre-check",
			username: "drsmith",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "drsmith").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, pg.ErrUniqueViolation)
			},
			expectedUser:  nil,
			expectedError: ErrUsernameTaken,
		},
		{
			name:     "Error finding user",
			username: "drsmith",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "drsmith").Return(nil, errors.New("database error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			username: "drsmith",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "drsmith").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Error creating user",
			username: "drsmith",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "drsmith").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedUser:  nil,
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(context.Background(), "Dr. Smith", tt.username, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		username      string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful authentication",
			username: "drsmith",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "drsmith").
					Return(&domain.User{ID: 1, Username: "drsmith", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedError: nil,
		},
		{
			name:     "Unknown username",
			username: "nobody",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "nobody").Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:     "Wrong password",
			username: "drsmith",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "drsmith").
					Return(&domain.User{ID: 1, Username: "drsmith", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Error finding user",
			username: "drsmith",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "drsmith").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Authenticate(context.Background(), tt.username, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expectErr   bool
	}{
		{
			name: "Token issued",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("drsmith", gomock.Any()).Return("signed-token", nil)
			},
			expectErr: false,
		},
		{
			name: "Signing failure",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("drsmith", gomock.Any()).Return("", auth.ErrSecretMissing)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			token, err := service.GenerateToken("drsmith")
			if tt.expectErr {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "signed-token", token)
			}
		})
	}
}

func TestVerifyToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		token         string
		prepareMock   func()
		expectedUser  string
		expectedError error
	}{
		{
			name:  "Valid token",
			token: "good-token",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("good-token").Return(&auth.Claims{Username: "drsmith"}, nil)
			},
			expectedUser:  "drsmith",
			expectedError: nil,
		},
		{
			name:  "Expired token",
			token: "old-token",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("old-token").Return(nil, auth.ErrTokenExpired)
			},
			expectedError: auth.ErrTokenExpired,
		},
		{
			name:  "Invalid token",
			token: "bad-token",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("bad-token").Return(nil, auth.ErrTokenInvalid)
			},
			expectedError: auth.ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			username, err := service.VerifyToken(tt.token)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, username)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, username)
			}
		})
	}
}

func TestGetProfile(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Profile found",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "drsmith").
					Return(&domain.User{ID: 1, Name: "Dr. Smith", Username: "drsmith"}, nil)
			},
			expectedError: nil,
		},
		{
			name: "Profile missing",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "drsmith").Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.GetProfile(context.Background(), "drsmith")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		password      string
		prepareMock   func()
		expectUpdated bool
		expectedError error
	}{
		{
			name:     "Update with new password",
			password: "newpassword",
			prepareMock: func() {
				passwordHasher.EXPECT().HashPassword("newpassword").Return("newhash", nil)
				userRepo.EXPECT().Update(context.Background(), "drsmith", "Dr. Smith", "drsmith2", "newhash").Return(true, nil)
			},
			expectUpdated: true,
		},
		{
			name:     "Empty password keeps the stored hash",
			password: "",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "drsmith").
					Return(&domain.User{Username: "drsmith", PasswordHash: "storedhash"}, nil)
				userRepo.EXPECT().Update(context.Background(), "drsmith", "Dr. Smith", "drsmith2", "storedhash").Return(true, nil)
			},
			expectUpdated: true,
		},
		{
			name:     "No row matched",
			password: "newpassword",
			prepareMock: func() {
				passwordHasher.EXPECT().HashPassword("newpassword").Return("newhash", nil)
				userRepo.EXPECT().Update(context.Background(), "drsmith", "Dr. Smith", "drsmith2", "newhash").Return(false, nil)
			},
			expectUpdated: false,
		},
		{
			name:     "New username is taken",
			password: "newpassword",
			prepareMock: func() {
				passwordHasher.EXPECT().HashPassword("newpassword").Return("newhash", nil)
				userRepo.EXPECT().Update(context.Background(), "drsmith", "Dr. Smith", "drsmith2", "newhash").Return(false, pg.ErrUniqueViolation)
			},
			expectUpdated: false,
			expectedError: ErrUsernameTaken,
		},
		{
			name:     "Empty password, current user gone",
			password: "",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "drsmith").Return(nil, nil)
			},
			expectUpdated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			updated, err := service.UpdateProfile(context.Background(), "drsmith", "Dr. Smith", "drsmith2", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectUpdated, updated)
		})
	}
}

func TestDeleteAccount(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expectErr   bool
	}{
		{
			name: "Delete successfully",
			prepareMock: func() {
				userRepo.EXPECT().Delete(context.Background(), "drsmith").Return(nil)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			prepareMock: func() {
				userRepo.EXPECT().Delete(context.Background(), "drsmith").Return(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.DeleteAccount(context.Background(), "drsmith")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserInfo(t *testing.T) {
	service, userRepo, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedName  string
		expectedError error
	}{
		{
			name: "Returns the display name",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("good-token").Return(&auth.Claims{Username: "drsmith"}, nil)
				userRepo.EXPECT().FindByUsername(context.Background(), "drsmith").
					Return(&domain.User{Name: "Dr. Smith", Username: "drsmith"}, nil)
			},
			expectedName: "Dr. Smith",
		},
		{
			name: "Expired token",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("good-token").Return(nil, auth.ErrTokenExpired)
			},
			expectedError: auth.ErrTokenExpired,
		},
		{
			name: "Token holder no longer exists",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("good-token").Return(&auth.Claims{Username: "drsmith"}, nil)
				userRepo.EXPECT().FindByUsername(context.Background(), "drsmith").Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			name, err := service.UserInfo(context.Background(), "good-token")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, name)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedName, name)
			}
		})
	}
}
