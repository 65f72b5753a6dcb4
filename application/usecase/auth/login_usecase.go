package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/roamops/roamops/application/port/inbound"
	"github.com/roamops/roamops/application/port/outbound"
	"github.com/roamops/roamops/domain"
	"github.com/roamops/roamops/infrastructure/service/logger"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTooManyAttempts    = errors.New("too many login attempts, try again later")

	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

const (
	loginAttemptLimit  = 5
	loginAttemptWindow = 15 * time.Minute
	loginBlockDuration = 30 * time.Minute
)

type LoginUseCase struct {
	employeeRepo     outbound.EmployeeRepository
	tokenService     outbound.TokenService
	passwordService  outbound.PasswordService
	rateLimitService inbound.RateLimitService
	logger           logger.Logger
	accessTokenTTL   time.Duration
}

func NewLoginUseCase(
	employeeRepo outbound.EmployeeRepository,
	tokenService outbound.TokenService,
	passwordService outbound.PasswordService,
	rateLimitService inbound.RateLimitService,
	log logger.Logger,
	accessTokenTTL time.Duration,
) inbound.AuthUseCase {
	return &LoginUseCase{
		employeeRepo:     employeeRepo,
		tokenService:     tokenService,
		passwordService:  passwordService,
		rateLimitService: rateLimitService,
		logger:           log,
		accessTokenTTL:   accessTokenTTL,
	}
}

func (uc *LoginUseCase) Login(ctx context.Context, req inbound.LoginRequest) (*inbound.LoginResponse, error) {
	if !emailRegex.MatchString(req.Email) {
		return nil, ErrInvalidCredentials
	}

	limitKey := fmt.Sprintf("login:%s", req.Email)
	if uc.rateLimitService != nil {
		blocked, err := uc.rateLimitService.IsBlocked(ctx, limitKey)
		if err != nil {
			uc.logger.Error(ctx, "Failed to check login block status", err, map[string]interface{}{
				"email": req.Email,
			})
		}
		if blocked {
			return nil, ErrTooManyAttempts
		}
	}

	employee, err := uc.employeeRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	if employee == nil {
		uc.recordFailedAttempt(ctx, limitKey, req.Email)
		return nil, ErrInvalidCredentials
	}

	if err := uc.passwordService.ComparePassword(employee.Password, req.Password); err != nil {
		uc.recordFailedAttempt(ctx, limitKey, req.Email)
		return nil, ErrInvalidCredentials
	}

	token, err := uc.tokenService.GenerateAccessToken(outbound.TokenClaims{
		UserID: employee.ID,
		Email:  employee.Email,
		Role:   employee.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	uc.logger.Info(ctx, "Employee logged in", map[string]interface{}{
		"user_id": employee.ID,
		"role":    employee.Role,
	})

	return &inbound.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int(uc.accessTokenTTL.Seconds()),
		Role:        employee.Role,
	}, nil
}

func (uc *LoginUseCase) Me(ctx context.Context, userID string) (*inbound.MeResponse, error) {
	employee, err := uc.employeeRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return &inbound.MeResponse{
		ID:              employee.ID,
		Name:            employee.Name,
		Email:           employee.Email,
		Role:            employee.Role,
		CorrectionCount: employee.CorrectionCount,
	}, nil
}

func (uc *LoginUseCase) recordFailedAttempt(ctx context.Context, key, email string) {
	if uc.rateLimitService == nil {
		return
	}
	_ = uc.rateLimitService.Increment(ctx, key, loginAttemptWindow)
	attempts, err := uc.rateLimitService.GetAttempts(ctx, key)
	if err != nil {
		return
	}
	if attempts >= loginAttemptLimit {
		_ = uc.rateLimitService.Block(ctx, key, loginBlockDuration, "too many failed logins")
		uc.logger.Warn(ctx, "Login temporarily blocked", map[string]interface{}{
			"email":    email,
			"attempts": attempts,
		})
	}
}
