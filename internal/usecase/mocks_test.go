package usecase

import (
	"context"
	"io"
	"testing"

	"orthocare-api/internal/domain/entity"
	"orthocare-api/pkg/pagination"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func expectCommit(m sqlmock.Sqlmock) {
	m.ExpectBegin()
	m.ExpectCommit()
}

func expectRollback(m sqlmock.Sqlmock) {
	m.ExpectBegin()
	m.ExpectRollback()
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func ptr[T any](v T) *T {
	return &v
}

// nilOr returns a typed nil for a nil *T so mocks can hand back "not found".
func nilOr[T any](args mock.Arguments, i int) *T {
	v, _ := args.Get(i).(*T)
	return v
}

// Audit service

type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, adminID *uuid.UUID, action, entityName, entityID string, newValue interface{}) error {
	return m.Called(action, entityID).Error(0)
}

func (m *mockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, adminID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	return m.Called(action, entityID).Error(0)
}

func (m *mockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, adminID *uuid.UUID, action, entityName, entityID string, oldValue interface{}) error {
	return m.Called(action, entityID).Error(0)
}

// Admin

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) Create(db *gorm.DB, admin *entity.Admin) error {
	args := m.Called(admin)
	if args.Error(0) == nil && admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockAdminRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Admin, error) {
	args := m.Called(id)
	return nilOr[entity.Admin](args, 0), args.Error(1)
}

func (m *mockAdminRepo) FindByEmail(db *gorm.DB, email string) (*entity.Admin, error) {
	args := m.Called(email)
	return nilOr[entity.Admin](args, 0), args.Error(1)
}

func (m *mockAdminRepo) FindConflict(db *gorm.DB, email, identityNumber string, excludeID *uuid.UUID) (*entity.Admin, error) {
	args := m.Called(email, identityNumber, excludeID)
	return nilOr[entity.Admin](args, 0), args.Error(1)
}

func (m *mockAdminRepo) FindAll(db *gorm.DB, filter entity.AdminFilter, params pagination.Params) ([]entity.Admin, int64, error) {
	args := m.Called(filter, params)
	return args.Get(0).([]entity.Admin), args.Get(1).(int64), args.Error(2)
}

func (m *mockAdminRepo) FindSimple(db *gorm.DB, search string, take int) ([]entity.Admin, error) {
	args := m.Called(search, take)
	return args.Get(0).([]entity.Admin), args.Error(1)
}

func (m *mockAdminRepo) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAdminRepo) Update(db *gorm.DB, admin *entity.Admin, fields ...string) error {
	return m.Called(admin, fields).Error(0)
}

func (m *mockAdminRepo) SoftDelete(db *gorm.DB, id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// Profile

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) Create(db *gorm.DB, profile *entity.Profile) error {
	return m.Called(profile).Error(0)
}

func (m *mockProfileRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Profile, error) {
	args := m.Called(id)
	return nilOr[entity.Profile](args, 0), args.Error(1)
}

func (m *mockProfileRepo) FindByName(db *gorm.DB, name string) (*entity.Profile, error) {
	args := m.Called(name)
	return nilOr[entity.Profile](args, 0), args.Error(1)
}

func (m *mockProfileRepo) FindAll(db *gorm.DB, filter entity.ProfileFilter, params pagination.Params) ([]entity.Profile, int64, error) {
	args := m.Called(filter, params)
	return args.Get(0).([]entity.Profile), args.Get(1).(int64), args.Error(2)
}

func (m *mockProfileRepo) FindSimple(db *gorm.DB, search string, includePermissions bool) ([]entity.Profile, error) {
	args := m.Called(search, includePermissions)
	return args.Get(0).([]entity.Profile), args.Error(1)
}

func (m *mockProfileRepo) ReplacePermissions(db *gorm.DB, profile *entity.Profile, permissions []entity.Permission) error {
	return m.Called(profile, permissions).Error(0)
}

// Patient

type mockPatientRepo struct {
	mock.Mock
}

func (m *mockPatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(patient)
	if args.Error(0) == nil && patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockPatientRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	args := m.Called(id)
	return nilOr[entity.Patient](args, 0), args.Error(1)
}

func (m *mockPatientRepo) FindDetail(db *gorm.DB, id uuid.UUID, recent int) (*entity.Patient, error) {
	args := m.Called(id, recent)
	return nilOr[entity.Patient](args, 0), args.Error(1)
}

func (m *mockPatientRepo) FindConflict(db *gorm.DB, email, identityNumber, phone string, excludeID *uuid.UUID) (*entity.Patient, error) {
	args := m.Called(email, identityNumber, phone, excludeID)
	return nilOr[entity.Patient](args, 0), args.Error(1)
}

func (m *mockPatientRepo) FindAll(db *gorm.DB, filter entity.PatientFilter, params pagination.Params) ([]entity.Patient, int64, error) {
	args := m.Called(filter, params)
	return args.Get(0).([]entity.Patient), args.Get(1).(int64), args.Error(2)
}

func (m *mockPatientRepo) FindSimple(db *gorm.DB, search string, take int) ([]entity.Patient, error) {
	args := m.Called(search, take)
	return args.Get(0).([]entity.Patient), args.Error(1)
}

func (m *mockPatientRepo) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockPatientRepo) Update(db *gorm.DB, patient *entity.Patient, fields ...string) error {
	return m.Called(patient, fields).Error(0)
}

func (m *mockPatientRepo) SoftDelete(db *gorm.DB, id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// Supplier

type mockSupplierRepo struct {
	mock.Mock
}

func (m *mockSupplierRepo) Create(db *gorm.DB, supplier *entity.Supplier) error {
	args := m.Called(supplier)
	if args.Error(0) == nil && supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockSupplierRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Supplier, error) {
	args := m.Called(id)
	return nilOr[entity.Supplier](args, 0), args.Error(1)
}

func (m *mockSupplierRepo) FindDetail(db *gorm.DB, id uuid.UUID) (*entity.Supplier, error) {
	args := m.Called(id)
	return nilOr[entity.Supplier](args, 0), args.Error(1)
}

func (m *mockSupplierRepo) FindConflict(db *gorm.DB, email, phone, identityNumber string, excludeID *uuid.UUID) (*entity.Supplier, error) {
	args := m.Called(email, phone, identityNumber, excludeID)
	return nilOr[entity.Supplier](args, 0), args.Error(1)
}

func (m *mockSupplierRepo) FindAll(db *gorm.DB, filter entity.SupplierFilter, params pagination.Params) ([]entity.Supplier, int64, error) {
	args := m.Called(filter, params)
	return args.Get(0).([]entity.Supplier), args.Get(1).(int64), args.Error(2)
}

func (m *mockSupplierRepo) FindSimple(db *gorm.DB, search string, take int) ([]entity.Supplier, error) {
	args := m.Called(search, take)
	return args.Get(0).([]entity.Supplier), args.Error(1)
}

func (m *mockSupplierRepo) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockSupplierRepo) Update(db *gorm.DB, supplier *entity.Supplier, fields ...string) error {
	return m.Called(supplier, fields).Error(0)
}

func (m *mockSupplierRepo) SoftDelete(db *gorm.DB, id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// Stock and category

type mockStockRepo struct {
	mock.Mock
}

func (m *mockStockRepo) Create(db *gorm.DB, stock *entity.Stock) error {
	args := m.Called(stock)
	if args.Error(0) == nil && stock.ID == uuid.Nil {
		stock.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockStockRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Stock, error) {
	args := m.Called(id)
	return nilOr[entity.Stock](args, 0), args.Error(1)
}

func (m *mockStockRepo) NameTaken(db *gorm.DB, name string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockStockRepo) FindAll(db *gorm.DB, filter entity.StockFilter, params pagination.Params) ([]entity.Stock, int64, error) {
	args := m.Called(filter, params)
	return args.Get(0).([]entity.Stock), args.Get(1).(int64), args.Error(2)
}

func (m *mockStockRepo) FindSimple(db *gorm.DB, search string, take int) ([]entity.Stock, error) {
	args := m.Called(search, take)
	return args.Get(0).([]entity.Stock), args.Error(1)
}

func (m *mockStockRepo) Update(db *gorm.DB, stock *entity.Stock, fields ...string) error {
	return m.Called(stock, fields).Error(0)
}

func (m *mockStockRepo) SoftDelete(db *gorm.DB, id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) FindAll(db *gorm.DB) ([]entity.Category, error) {
	args := m.Called()
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *mockCategoryRepo) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryRepo) Upsert(db *gorm.DB, category *entity.Category) error {
	return m.Called(category).Error(0)
}

// Scheduling

type mockSchedulingRepo struct {
	mock.Mock
}

func (m *mockSchedulingRepo) Create(db *gorm.DB, scheduling *entity.Scheduling) error {
	args := m.Called(scheduling)
	if args.Error(0) == nil && scheduling.ID == uuid.Nil {
		scheduling.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockSchedulingRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Scheduling, error) {
	args := m.Called(id)
	return nilOr[entity.Scheduling](args, 0), args.Error(1)
}

func (m *mockSchedulingRepo) FindDetail(db *gorm.DB, id uuid.UUID) (*entity.Scheduling, error) {
	args := m.Called(id)
	return nilOr[entity.Scheduling](args, 0), args.Error(1)
}

func (m *mockSchedulingRepo) FindAll(db *gorm.DB, filter entity.SchedulingFilter, params pagination.Params) ([]entity.Scheduling, int64, error) {
	args := m.Called(filter, params)
	return args.Get(0).([]entity.Scheduling), args.Get(1).(int64), args.Error(2)
}

func (m *mockSchedulingRepo) FindSimple(db *gorm.DB, filter entity.SchedulingFilter, take int) ([]entity.Scheduling, error) {
	args := m.Called(filter, take)
	return args.Get(0).([]entity.Scheduling), args.Error(1)
}

func (m *mockSchedulingRepo) Update(db *gorm.DB, scheduling *entity.Scheduling, fields ...string) error {
	return m.Called(scheduling, fields).Error(0)
}

func (m *mockSchedulingRepo) Cancel(db *gorm.DB, id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// Consultation

type mockConsultationRepo struct {
	mock.Mock
}

func (m *mockConsultationRepo) Create(db *gorm.DB, consultation *entity.Consultation) error {
	args := m.Called(consultation)
	if args.Error(0) == nil && consultation.ID == uuid.Nil {
		consultation.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockConsultationRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	args := m.Called(id)
	return nilOr[entity.Consultation](args, 0), args.Error(1)
}

func (m *mockConsultationRepo) FindDetail(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	args := m.Called(id)
	return nilOr[entity.Consultation](args, 0), args.Error(1)
}

func (m *mockConsultationRepo) ExistsForScheduling(db *gorm.DB, schedulingID uuid.UUID) (bool, error) {
	args := m.Called(schedulingID)
	return args.Bool(0), args.Error(1)
}

func (m *mockConsultationRepo) FindAll(db *gorm.DB, filter entity.ConsultationFilter, params pagination.Params) ([]entity.Consultation, int64, error) {
	args := m.Called(filter, params)
	return args.Get(0).([]entity.Consultation), args.Get(1).(int64), args.Error(2)
}

func (m *mockConsultationRepo) Touch(db *gorm.DB, consultation *entity.Consultation) error {
	return m.Called(consultation).Error(0)
}

func (m *mockConsultationRepo) UpsertMedicalHistory(db *gorm.DB, history *entity.MedicalHistory) error {
	return m.Called(history).Error(0)
}

func (m *mockConsultationRepo) UpsertExam(db *gorm.DB, exam *entity.Exam) error {
	return m.Called(exam).Error(0)
}

func (m *mockConsultationRepo) UpsertProcedure(db *gorm.DB, procedure *entity.Procedure) error {
	return m.Called(procedure).Error(0)
}

func (m *mockConsultationRepo) ReplaceMedicines(db *gorm.DB, consultationID uuid.UUID, medicines []entity.Medicine) error {
	return m.Called(consultationID, medicines).Error(0)
}

func (m *mockConsultationRepo) SoftDelete(db *gorm.DB, id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}
