package usecase

import (
	"context"
	"testing"

	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type schedulingFixture struct {
	uc          SchedulingUsecase
	sql         sqlmock.Sqlmock
	schedulings *mockSchedulingRepo
	patients    *mockPatientRepo
	admins      *mockAdminRepo
	audit       *mockAuditService
}

func newSchedulingFixture(t *testing.T) *schedulingFixture {
	t.Helper()
	db, sqlMock := newTestDB(t)
	f := &schedulingFixture{
		sql:         sqlMock,
		schedulings: new(mockSchedulingRepo),
		patients:    new(mockPatientRepo),
		admins:      new(mockAdminRepo),
		audit:       new(mockAuditService),
	}
	f.uc = NewSchedulingUsecase(db, quietLogger(), f.schedulings, f.patients, f.admins, f.audit)
	t.Cleanup(func() { assert.NoError(t, sqlMock.ExpectationsWereMet()) })
	return f
}

func TestSchedulingUsecase_Create(t *testing.T) {
	patientID, doctorID := uuid.New(), uuid.New()
	request := func() *dto.CreateSchedulingRequest {
		return &dto.CreateSchedulingRequest{
			Hours:     "2026-03-02 09:30",
			PatientID: patientID.String(),
			DoctorID:  doctorID.String(),
			Type:      "Consulta",
			Phone:     "11999990000",
		}
	}

	t.Run("defaults the status", func(t *testing.T) {
		f := newSchedulingFixture(t)
		expectCommit(f.sql)
		f.patients.On("Exists", patientID).Return(true, nil)
		f.admins.On("Exists", doctorID).Return(true, nil)

		var created *entity.Scheduling
		f.schedulings.On("Create", mock.AnythingOfType("*entity.Scheduling")).
			Run(func(args mock.Arguments) { created = args.Get(0).(*entity.Scheduling) }).
			Return(nil)
		f.audit.On("LogCreate", entity.AuditActionSchedulingCreate, mock.Anything).Return(nil)

		res, err := f.uc.Create(context.Background(), request())
		require.NoError(t, err)
		assert.Equal(t, created.ID, res.SchedulingID)
		assert.Equal(t, entity.SchedulingStatusScheduled, created.Status)
	})

	t.Run("unknown patient", func(t *testing.T) {
		f := newSchedulingFixture(t)
		f.patients.On("Exists", patientID).Return(false, nil)
		f.admins.On("Exists", doctorID).Return(true, nil)

		_, err := f.uc.Create(context.Background(), request())
		assert.ErrorIs(t, err, ErrSchedulingPatientNotFound)
		f.schedulings.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		f := newSchedulingFixture(t)
		f.patients.On("Exists", patientID).Return(true, nil)
		f.admins.On("Exists", doctorID).Return(false, nil)

		_, err := f.uc.Create(context.Background(), request())
		assert.ErrorIs(t, err, ErrSchedulingDoctorNotFound)
	})

	t.Run("malformed patient id", func(t *testing.T) {
		f := newSchedulingFixture(t)
		req := request()
		req.PatientID = "not-a-uuid"

		_, err := f.uc.Create(context.Background(), req)
		assert.Error(t, err)
		f.patients.AssertNotCalled(t, "Exists", mock.Anything)
	})
}

func TestSchedulingUsecase_Update(t *testing.T) {
	id, patientID, doctorID := uuid.New(), uuid.New(), uuid.New()
	current := func() *entity.Scheduling {
		return &entity.Scheduling{ID: id, PatientID: patientID, DoctorID: doctorID, Status: entity.SchedulingStatusScheduled}
	}

	t.Run("reloads the detail", func(t *testing.T) {
		f := newSchedulingFixture(t)
		expectCommit(f.sql)
		f.schedulings.On("FindByID", id).Return(current(), nil)
		f.schedulings.On("Update", mock.Anything, []string{"status"}).Return(nil)
		f.audit.On("LogUpdate", entity.AuditActionSchedulingUpdate, id.String()).Return(nil)

		detail := current()
		detail.Status = "CONFIRMADO"
		detail.Patient = &entity.Patient{ID: patientID, FirstName: "Maria", LastName: "Silva"}
		f.schedulings.On("FindDetail", id).Return(detail, nil)

		res, err := f.uc.Update(context.Background(), id, &dto.UpdateSchedulingRequest{Status: ptr("CONFIRMADO")})
		require.NoError(t, err)
		assert.Equal(t, "CONFIRMADO", res.Status)
		require.NotNil(t, res.Patient)
	})

	t.Run("moving to an unknown doctor", func(t *testing.T) {
		f := newSchedulingFixture(t)
		expectRollback(f.sql)
		other := uuid.New()
		f.schedulings.On("FindByID", id).Return(current(), nil)
		f.admins.On("Exists", other).Return(false, nil)

		_, err := f.uc.Update(context.Background(), id, &dto.UpdateSchedulingRequest{DoctorID: ptr(other.String())})
		assert.ErrorIs(t, err, ErrSchedulingDoctorNotFound)
		f.patients.AssertNotCalled(t, "Exists", mock.Anything)
	})
}

func TestSchedulingUsecase_Remove(t *testing.T) {
	id := uuid.New()

	t.Run("cancels", func(t *testing.T) {
		f := newSchedulingFixture(t)
		expectCommit(f.sql)
		f.schedulings.On("FindByID", id).Return(&entity.Scheduling{ID: id}, nil)
		f.schedulings.On("Cancel", id).Return(true, nil)
		f.audit.On("LogDelete", entity.AuditActionSchedulingCancel, id.String()).Return(nil)

		res, err := f.uc.Remove(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Scheduling cancelled successfully", res.Message)
	})

	t.Run("unknown scheduling", func(t *testing.T) {
		f := newSchedulingFixture(t)
		expectRollback(f.sql)
		f.schedulings.On("FindByID", id).Return(nil, nil)

		_, err := f.uc.Remove(context.Background(), id)
		assert.ErrorIs(t, err, ErrSchedulingNotFound)
	})
}
