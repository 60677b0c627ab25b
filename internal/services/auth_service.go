package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Thecodingpm/calories-counterr/internal/apperrors"
	"github.com/Thecodingpm/calories-counterr/internal/domain"
	"github.com/Thecodingpm/calories-counterr/internal/storage"
)

const defaultDailyCalorieGoal = 2000

const tokenTTL = 72 * time.Hour

// AuthService handles registration, login and goal updates against the
// users collection. Domain rejections (duplicate email, bad credentials)
// come back as a nil result with a nil error; callers translate them into
// user-facing messages.
type AuthService struct {
	store     storage.Store
	jwtSecret []byte
}

func NewAuthService(store storage.Store, jwtSecret string) *AuthService {
	return &AuthService{store: store, jwtSecret: []byte(jwtSecret)}
}

func (s *AuthService) RegisterUser(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	users, err := storage.LoadList[domain.User](ctx, s.store, storage.CollectionUsers)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email {
			return nil, nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:               uuid.NewString(),
		Email:            email,
		PasswordHash:     string(hash),
		DailyCalorieGoal: defaultDailyCalorieGoal,
	}

	users = append(users, user)
	if err := storage.SaveList(ctx, s.store, storage.CollectionUsers, users); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	users, err := storage.LoadList[domain.User](ctx, s.store, storage.CollectionUsers)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, nil
		}
		token, err := s.issueToken(u)
		if err != nil {
			return nil, err
		}
		return &domain.AuthResult{User: u, Token: token}, nil
	}

	return nil, nil
}

// UpdateGoal writes the new daily calorie goal to the canonical user record
// so a fresh login sees it too.
func (s *AuthService) UpdateGoal(ctx context.Context, userID string, goal float64) (*domain.User, error) {
	users, err := storage.LoadList[domain.User](ctx, s.store, storage.CollectionUsers)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID != userID {
			continue
		}
		users[i].DailyCalorieGoal = goal
		if err := storage.SaveList(ctx, s.store, storage.CollectionUsers, users); err != nil {
			return nil, err
		}
		updated := users[i]
		return &updated, nil
	}

	return nil, apperrors.ErrUserNotFound
}

func (s *AuthService) issueToken(user domain.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
