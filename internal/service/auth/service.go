package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/flexidesk/wfh-backend-go/internal/domain/auth"
	"github.com/flexidesk/wfh-backend-go/internal/domain/employee"
	"github.com/flexidesk/wfh-backend-go/internal/domain/user"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/database"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	tx         database.TxRunner
	users      user.UserRepository
	employees  employee.EmployeeRepository
	jwtService jwt.Service
}

func NewService(
	tx database.TxRunner,
	users user.UserRepository,
	employees employee.EmployeeRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &service{
		tx:         tx,
		users:      users,
		employees:  employees,
		jwtService: jwtService,
	}
}

// Register creates the user account and its employee profile in one
// transaction. New accounts always start with the employee role.
func (s *service) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("hash password: %w", err)
	}

	var (
		createdUser user.User
		createdEmp  employee.Employee
	)
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		createdUser, err = s.users.Create(txCtx, user.User{
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
		})
		if err != nil {
			return err
		}

		var position *string
		if req.Position != "" {
			position = &req.Position
		}
		createdEmp, err = s.employees.Create(txCtx, employee.Employee{
			UserID:     &createdUser.ID,
			FullName:   req.FullName,
			Email:      req.Email,
			Department: req.Department,
			Position:   position,
		})
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(createdUser, &createdEmp.ID)
}

func (s *service) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u, s.employeeIDFor(ctx, u.ID))
}

// LoginWithGoogle signs in an existing account by its verified Google
// email. Unknown emails are rejected rather than auto-registered, since a
// profile needs department and manager data Google cannot supply.
func (s *service) LoginWithGoogle(ctx context.Context, email string) (auth.TokenResponse, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrOAuthEmailUnknown
		}
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(u, s.employeeIDFor(ctx, u.ID))
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (auth.AccessTokenResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, s.employeeIDFor(ctx, u.ID), u.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	return auth.AccessTokenResponse{
		AccessToken:          token,
		AccessTokenExpiresAt: expiresAt,
	}, nil
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.jwtService.ParseRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *service) issueTokens(u user.User, employeeID *string) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, employeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}

// employeeIDFor looks up the employee profile linked to a user account.
// Accounts without a profile (fresh HR logins before onboarding) get nil.
func (s *service) employeeIDFor(ctx context.Context, userID string) *string {
	emp, err := s.employees.GetByUserID(ctx, userID)
	if err != nil {
		return nil
	}
	return &emp.ID
}
