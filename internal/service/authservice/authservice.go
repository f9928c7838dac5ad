package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/smdental/dentismo/internal/domain"
	"github.com/smdental/dentismo/internal/pg"
	"github.com/smdental/dentismo/pkg/auth"
	"go.uber.org/zap"
)

// tokenLifetime is fixed; expiry forces a fresh login, there is no refresh.
const tokenLifetime = 24 * time.Hour

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserRepo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, currentUsername, name, username, passwordHash string) (bool, error)
	Delete(ctx context.Context, username string) error
}

// Service owns credentials, sessions and the profile operations. Outstanding
// tokens are not revoked on password change or account deletion: a token
// stays valid until its timestamp lapses.
type Service struct {
	userRepo    UserRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo UserRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Register(ctx context.Context, name, username, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, username: ", zap.String("username", username))
		return nil, ErrUsernameTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Name:         name,
		Username:     username,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, pg.ErrUniqueViolation) {
			return nil, ErrUsernameTaken
		}
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", username))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		zap.L().Info("unknown username", zap.String("username", username))
		return nil, ErrUserNotFound
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) GenerateToken(username string) (string, error) {
	expirationTime := time.Now().Add(tokenLifetime)

	token, err := s.jwtService.GenerateJWT(username, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// VerifyToken returns the username bound by a valid token. The expired and
// invalid failures stay distinct all the way to the user message.
func (s *Service) VerifyToken(token string) (string, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}

func (s *Service) GetProfile(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile replaces name, username and password hash wholesale. An empty
// password keeps the stored hash. Returns false when no row matched
// currentUsername.
func (s *Service) UpdateProfile(ctx context.Context, currentUsername, name, username, password string) (bool, error) {
	passwordHash := ""
	if password == "" {
		user, err := s.userRepo.FindByUsername(ctx, currentUsername)
		if err != nil {
			return false, err
		}
		if user == nil {
			return false, nil
		}
		passwordHash = user.PasswordHash
	} else {
		hashed, err := s.hashService.HashPassword(password)
		if err != nil {
			zap.L().Error("can't hash password: ", zap.Error(err))
			return false, err
		}
		passwordHash = hashed
	}

	updated, err := s.userRepo.Update(ctx, currentUsername, name, username, passwordHash)
	if err != nil {
		if errors.Is(err, pg.ErrUniqueViolation) {
			return false, ErrUsernameTaken
		}
		zap.L().Error("can't update user: ", zap.Error(err))
		return false, err
	}
	return updated, nil
}

func (s *Service) DeleteAccount(ctx context.Context, username string) error {
	if err := s.userRepo.Delete(ctx, username); err != nil {
		zap.L().Error("can't delete user: ", zap.Error(err))
		return err
	}
	zap.L().Info("user account deleted", zap.String("username", username))
	return nil
}

// UserInfo verifies the token and returns the holder's display name.
func (s *Service) UserInfo(ctx context.Context, token string) (string, error) {
	username, err := s.VerifyToken(token)
	if err != nil {
		return "", err
	}
	user, err := s.GetProfile(ctx, username)
	if err != nil {
		return "", err
	}
	return user.Name, nil
}
