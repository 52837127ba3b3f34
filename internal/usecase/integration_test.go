//go:build integration

package usecase_test

import (
	"context"
	"io"
	"testing"
	"time"

	"orthocare-api/config"
	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"
	"orthocare-api/internal/infrastructure/database"
	"orthocare-api/internal/repository"
	"orthocare-api/internal/service"
	"orthocare-api/internal/usecase"
	"orthocare-api/pkg/apperror"
	"orthocare-api/pkg/pagination"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func startPostgres(t *testing.T, log *logrus.Logger) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("orthocare_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := config.DBConfig{
		Host:         host,
		Port:         port.Port(),
		User:         "test",
		Password:     "test",
		Name:         "orthocare_test",
		SSLMode:      "disable",
		TimeZone:     "UTC",
		MaxIdleConns: 2,
		MaxOpenConns: 5,
	}

	migrator, err := database.NewMigrator(database.URL(cfg), log)
	require.NoError(t, err)
	require.NoError(t, migrator.Up())
	version, dirty, err := migrator.Version()
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)
	assert.False(t, dirty)
	require.NoError(t, migrator.Close())

	db, err := database.NewPostgresConnection(cfg, "test", log)
	require.NoError(t, err)
	return db
}

func TestClinicFlow(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	db := startPostgres(t, log)
	ctx := context.Background()

	adminRepo := repository.NewAdminRepository()
	profileRepo := repository.NewProfileRepository()
	patientRepo := repository.NewPatientRepository()
	schedulingRepo := repository.NewSchedulingRepository()
	consultationRepo := repository.NewConsultationRepository()
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())

	patients := usecase.NewPatientUsecase(db, log, patientRepo, auditService)
	doctors := usecase.NewDoctorUsecase(db, log, adminRepo, profileRepo, auditService)
	schedulings := usecase.NewSchedulingUsecase(db, log, schedulingRepo, patientRepo, adminRepo, auditService)
	consultations := usecase.NewConsultationUsecase(db, log, consultationRepo, schedulingRepo, adminRepo, auditService)

	profile := &entity.Profile{Name: entity.ProfileGeneralAdmin, Label: "General admin"}
	require.NoError(t, db.Create(profile).Error)

	patient, err := patients.Create(ctx, &dto.CreatePatientRequest{
		FirstName:      "Maria",
		LastName:       "Silva",
		BirthDate:      "1990-04-12",
		Email:          "maria@mail.test",
		IdentityNumber: "123.456.789-00",
		Phone:          "11999990000",
	})
	require.NoError(t, err)

	_, err = patients.Create(ctx, &dto.CreatePatientRequest{
		FirstName:      "Other",
		LastName:       "Person",
		BirthDate:      "1985-01-01",
		Email:          "MARIA@mail.test",
		IdentityNumber: "999",
		Phone:          "11888880000",
	})
	assert.ErrorIs(t, err, usecase.ErrPatientEmailExists)

	doctor, err := doctors.Create(ctx, &dto.CreateDoctorRequest{
		FirstName:      "Paulo",
		LastName:       "Souza",
		Email:          "paulo@clinic.test",
		Password:       "secret1",
		IdentityNumber: "CRM-1234",
		ProfileID:      profile.ID.String(),
	})
	require.NoError(t, err)

	scheduling, err := schedulings.Create(ctx, &dto.CreateSchedulingRequest{
		Hours:     "2026-11-03 09:30",
		PatientID: patient.PatientID.String(),
		DoctorID:  doctor.DoctorID.String(),
		Type:      "Avaliação",
		Phone:     "11999990000",
	})
	require.NoError(t, err)

	req := &dto.CreateConsultationRequest{
		SchedulingID:   scheduling.SchedulingID.String(),
		MedicalHistory: &dto.MedicalHistoryInput{Description: "Dor lombar há 3 semanas"},
		Medicines: []dto.MedicineInput{
			{Name: "Ibuprofeno 600mg"},
			{Name: "Ciclobenzaprina 5mg", Description: "À noite"},
		},
		Procedure: &dto.ProcedureInput{Name: "Infiltração", DoctorID: doctor.DoctorID.String()},
	}
	created, err := consultations.Create(ctx, req)
	require.NoError(t, err)

	_, err = consultations.Create(ctx, req)
	require.ErrorIs(t, err, usecase.ErrConsultationExists)
	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)

	detail, err := consultations.GetByID(ctx, created.ConsultationID)
	require.NoError(t, err)
	assert.Len(t, detail.Medicines, 2)
	require.NotNil(t, detail.Procedure)
	assert.Equal(t, doctor.DoctorID, *detail.Procedure.DoctorID)

	empty := []dto.MedicineInput{}
	updated, err := consultations.Update(ctx, created.ConsultationID, &dto.UpdateConsultationRequest{Medicines: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Medicines)
	require.NotNil(t, updated.MedicalHistory)

	// Removing the patient hides it from listings but keeps the history.
	_, err = patients.Remove(ctx, patient.PatientID)
	require.NoError(t, err)
	page, err := patients.GetAll(ctx, entity.PatientFilter{}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, page.Total)

	_, err = patients.GetByID(ctx, patient.PatientID)
	assert.ErrorIs(t, err, usecase.ErrPatientNotFound)

	// The email is free again once its owner is soft-deleted.
	_, err = patients.Create(ctx, &dto.CreatePatientRequest{
		FirstName:      "Maria",
		LastName:       "Silva",
		BirthDate:      "1990-04-12",
		Email:          "maria@mail.test",
		IdentityNumber: "123.456.789-00",
		Phone:          "11999990000",
	})
	assert.NoError(t, err)

	var audits int64
	require.NoError(t, db.Model(&entity.AuditLog{}).Count(&audits).Error)
	assert.Positive(t, audits)
}
