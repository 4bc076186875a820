package service

import (
	"bandisch/gym-tracker/internal/domain"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenGeneration = errors.New("failed to generate authentication token")
)

// Identity is what a token asserts about the acting gym goer.
// It is trusted as is; the gym goer is not re-checked on every request.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type AuthService interface {
	// Login resolves the email to a gym goer, creating one on first use, and issues a token.
	// The password is accepted but not checked.
	Login(ctx context.Context, email, password string) (token string, gymGoer *domain.GymGoer, err error)
	ParseToken(tokenString string) (*Identity, error)
}

type authService struct {
	gymGoerService GymGoerService
	jwtSecret      string
	jwtExpiration  time.Duration
	now            func() time.Time
}

// NewAuthService creates a new instance of authService.
func NewAuthService(gymGoerService GymGoerService, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 7 * 24 * time.Hour
	}
	return &authService{
		gymGoerService: gymGoerService,
		jwtSecret:      jwtSecret,
		jwtExpiration:  jwtExpiration,
		now:            time.Now,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.GymGoer, error) {
	gymGoer, err := s.findOrCreate(ctx, email)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateJWT(gymGoer)
	if err != nil {
		log.Errorf("sign token for %s: %s", gymGoer.ID.Hex(), err)
		return "", nil, ErrTokenGeneration
	}
	return token, gymGoer, nil
}

func (s *authService) findOrCreate(ctx context.Context, email string) (*domain.GymGoer, error) {
	gymGoer, err := s.gymGoerService.FindByEmail(ctx, email)
	if err != nil || gymGoer != nil {
		return gymGoer, err
	}

	gymGoer, err = s.gymGoerService.Create(ctx, email)
	if errors.Is(err, ErrDuplicateKey) {
		// a concurrent login created it first
		gymGoer, err = s.gymGoerService.FindByEmail(ctx, email)
		if err == nil && gymGoer == nil {
			err = notFoundError("gym goer with email %s", email)
		}
	}
	return gymGoer, err
}

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	GymGoer Identity `json:"gymGoer"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(gymGoer *domain.GymGoer) (string, error) {
	now := s.now()
	claims := &jwtClaims{
		GymGoer: Identity{
			ID:    gymGoer.ID.Hex(),
			Email: gymGoer.Email,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   gymGoer.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ParseToken verifies the signature and expiry and returns the asserted identity.
func (s *authService) ParseToken(tokenString string) (*Identity, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token has expired", ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.GymGoer.ID == "" {
		return nil, fmt.Errorf("%w: missing gym goer claim", ErrInvalidToken)
	}
	return &claims.GymGoer, nil
}
