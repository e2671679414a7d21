package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/repositories"
	"github.com/ArowuTest/ticket-ledger/pkg/jwt"
)

type authService struct {
	operators repositories.OperatorRepository
	tokens    *jwt.TokenService
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(operators repositories.OperatorRepository, tokens *jwt.TokenService) AuthService {
	return &authService{
		operators: operators,
		tokens:    tokens,
	}
}

// EnsureOperator creates the configured operator account if it does not exist yet.
// An existing account keeps its password.
func (s *authService) EnsureOperator(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		log.Warn("No operator credentials configured, skipping operator bootstrap")
		return nil
	}

	_, err := s.operators.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to look up operator: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	operator := &models.Operator{
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleOperator,
	}
	if err := s.operators.Create(ctx, operator); err != nil {
		return fmt.Errorf("failed to create operator: %w", err)
	}
	log.WithField("email", email).Info("Operator account created")
	return nil
}

// Login checks the operator's password and issues a token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	operator, err := s.operators.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up operator: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.Password), []byte(req.Password)); err != nil {
		log.WithField("email", email).Warn("Login failed: password mismatch")
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(jwt.Claims{
		Subject: operator.ID.Hex(),
		Email:   operator.Email,
		Role:    operator.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Email:     operator.Email,
		Role:      operator.Role,
	}, nil
}
