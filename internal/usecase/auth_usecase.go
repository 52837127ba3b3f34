package usecase

import (
	"context"
	"sync"

	"orthocare-api/internal/converter"
	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"
	"orthocare-api/internal/domain/repository"
	"orthocare-api/internal/service"
	"orthocare-api/pkg/apperror"
	"orthocare-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordCost = 10

var (
	ErrInvalidCredentials = apperror.Unauthorized("invalid credentials")
)

// dummyHash is compared against when the email is unknown so that both
// failure paths spend the same bcrypt work.
var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("orthocare-dummy-password"), passwordCost)
	return hash
})

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResult, error)
	Permissions(ctx context.Context, adminID uuid.UUID) ([]string, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	adminRepo    repository.AdminRepository
	jwtService   *jwt.JWTService
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	adminRepo repository.AdminRepository,
	jwtService *jwt.JWTService,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		adminRepo:    adminRepo,
		jwtService:   jwtService,
		auditService: auditService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResult, error) {
	admin, err := u.adminRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find admin by email: %+v", err)
		return nil, err
	}

	if admin == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateAccessToken(admin.ID, admin.Email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	// Audit log - login
	if err := u.auditService.LogCreate(ctx, u.db, &admin.ID, entity.AuditActionAdminLogin, "admin", admin.ID.String(), map[string]interface{}{"email": admin.Email}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Admin %s logged in", admin.ID)

	return &dto.LoginResult{
		Token: token,
		Response: dto.LoginResponse{
			Message: "Login successful",
			Admin:   converter.AdminToAuth(admin),
		},
	}, nil
}

// Permissions lists the permission names of the admin's profile. A missing
// admin has none.
func (u *authUsecase) Permissions(ctx context.Context, adminID uuid.UUID) ([]string, error) {
	admin, err := u.adminRepo.FindByID(u.db.WithContext(ctx), adminID)
	if err != nil {
		u.log.Warnf("Failed to find admin: %+v", err)
		return nil, err
	}
	if admin == nil || !admin.IsActive || admin.Profile == nil {
		return []string{}, nil
	}

	names := make([]string, 0, len(admin.Profile.Permissions))
	for _, p := range admin.Profile.Permissions {
		names = append(names, p.Name)
	}
	return names, nil
}
