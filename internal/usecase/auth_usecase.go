package usecase

import (
	"context"
	"errors"
	"strings"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/repository"
	"hospital-admin/internal/service"
	"hospital-admin/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID string) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.AdminResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	admin        entity.Admin
	jwtService   *jwt.JWTService
	sessionRepo  repository.SessionRepository
	auditService service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	admin entity.Admin,
	jwtService *jwt.JWTService,
	sessionRepo repository.SessionRepository,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		admin:        admin,
		jwtService:   jwtService,
		sessionRepo:  sessionRepo,
		auditService: auditService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if u.admin.PasswordHash == "" || !strings.EqualFold(req.Email, u.admin.Email) {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(u.admin.ID, u.admin.Email, entity.RoleAdmin)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	if err := u.sessionRepo.Store(ctx, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, entity.AuditActionAdminLogin, "session", accessTokenID, u.admin.Email); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID string) error {
	if err := u.sessionRepo.Revoke(ctx, accessTokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, entity.AuditActionAdminLogout, "session", accessTokenID, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.AdminResponse, error) {
	if userID != u.admin.ID {
		return nil, ErrUserNotFound
	}

	return converter.AdminToResponse(&u.admin), nil
}
