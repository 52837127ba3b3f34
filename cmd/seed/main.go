// Command seed loads the permission catalogue, the default profiles and
// categories, and creates the root admin when it does not exist yet.
package main

import (
	"errors"
	"fmt"
	"strings"

	"orthocare-api/cmd/bootstrap"
	"orthocare-api/config"
	"orthocare-api/internal/domain/entity"
	domainRepo "orthocare-api/internal/domain/repository"
	"orthocare-api/internal/infrastructure/database"
	"orthocare-api/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordCost = 10

type seeder struct {
	log            *logrus.Logger
	permissionRepo domainRepo.PermissionRepository
	profileRepo    domainRepo.ProfileRepository
	categoryRepo   domainRepo.CategoryRepository
	adminRepo      domainRepo.AdminRepository
}

func main() {
	log := bootstrap.SetupLogger("info")

	cfg, err := config.LoadToolConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	bootstrap.SetLevel(log, cfg.Log.Level)

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	s := &seeder{
		log:            log,
		permissionRepo: repository.NewPermissionRepository(),
		profileRepo:    repository.NewProfileRepository(),
		categoryRepo:   repository.NewCategoryRepository(),
		adminRepo:      repository.NewAdminRepository(),
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.run(tx, cfg.Seed)
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Info("Seeding completed")
}

func (s *seeder) run(tx *gorm.DB, cfg config.SeedConfig) error {
	for i := range permissions {
		if err := s.permissionRepo.Upsert(tx, &permissions[i]); err != nil {
			return fmt.Errorf("permission %s: %w", permissions[i].Name, err)
		}
	}
	s.log.Infof("Seeded %d permissions", len(permissions))

	for _, p := range profiles {
		if err := s.seedProfile(tx, p); err != nil {
			return fmt.Errorf("profile %s: %w", p.Name, err)
		}
	}
	s.log.Infof("Seeded %d profiles", len(profiles))

	for i := range categories {
		if err := s.categoryRepo.Upsert(tx, &categories[i]); err != nil {
			return fmt.Errorf("category %s: %w", categories[i].Name, err)
		}
	}
	s.log.Infof("Seeded %d categories", len(categories))

	return s.seedRootAdmin(tx, cfg)
}

func (s *seeder) seedProfile(tx *gorm.DB, seed profileSeed) error {
	profile, err := s.profileRepo.FindByName(tx, seed.Name)
	if err != nil {
		return err
	}

	if profile == nil {
		profile = &entity.Profile{Name: seed.Name, Label: seed.Label, Description: seed.Description}
		if err := s.profileRepo.Create(tx, profile); err != nil {
			return err
		}
	} else {
		profile.Label = seed.Label
		profile.Description = seed.Description
		if err := tx.Model(profile).Select("label", "description").Updates(profile).Error; err != nil {
			return err
		}
	}

	granted, err := s.permissionRepo.FindByNames(tx, seed.permissionNames)
	if err != nil {
		return err
	}
	return s.profileRepo.ReplacePermissions(tx, profile, granted)
}

func (s *seeder) seedRootAdmin(tx *gorm.DB, cfg config.SeedConfig) error {
	email := strings.TrimSpace(cfg.AdminEmail)
	password := strings.TrimSpace(cfg.AdminPassword)
	if email == "" || password == "" {
		return errors.New("DEFAULT_ADMIN_EMAIL and DEFAULT_ADMIN_PASS are required")
	}

	existing, err := s.adminRepo.FindByEmail(tx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		s.log.Infof("Admin already exists: %s", email)
		return nil
	}

	profile, err := s.profileRepo.FindByName(tx, entity.ProfileGeneralAdmin)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("profile %s not found", entity.ProfileGeneralAdmin)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return err
	}

	admin := &entity.Admin{
		FirstName:      "Root",
		LastName:       "Admin",
		Email:          email,
		PasswordHash:   string(hash),
		IdentityNumber: "000000000LA001",
		IsActive:       true,
		IsRoot:         true,
		ProfileID:      profile.ID,
	}
	if err := s.adminRepo.Create(tx, admin); err != nil {
		return err
	}

	s.log.Infof("Default admin created: %s", email)
	return nil
}
