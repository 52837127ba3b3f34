package usecase

import (
	"context"
	"errors"
	"testing"

	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type supplierFixture struct {
	uc        SupplierUsecase
	sql       sqlmock.Sqlmock
	suppliers *mockSupplierRepo
	audit     *mockAuditService
}

func newSupplierFixture(t *testing.T) *supplierFixture {
	t.Helper()
	db, sqlMock := newTestDB(t)
	f := &supplierFixture{
		sql:       sqlMock,
		suppliers: new(mockSupplierRepo),
		audit:     new(mockAuditService),
	}
	f.uc = NewSupplierUsecase(db, quietLogger(), f.suppliers, f.audit)
	t.Cleanup(func() { assert.NoError(t, sqlMock.ExpectationsWereMet()) })
	return f
}

func TestSupplierUsecase_Create(t *testing.T) {
	req := &dto.CreateSupplierRequest{
		Name:           "  OrtoMed Distribuidora ",
		Email:          "vendas@ortomed.test",
		Phone:          "1133334444",
		IdentityNumber: "12.345.678/0001-90",
	}

	t.Run("audit failure does not fail the create", func(t *testing.T) {
		f := newSupplierFixture(t)
		expectCommit(f.sql)

		f.suppliers.On("FindConflict", req.Email, req.Phone, req.IdentityNumber, (*uuid.UUID)(nil)).Return(nil, nil)
		var created *entity.Supplier
		f.suppliers.On("Create", mock.AnythingOfType("*entity.Supplier")).
			Run(func(args mock.Arguments) { created = args.Get(0).(*entity.Supplier) }).
			Return(nil)
		f.audit.On("LogCreate", entity.AuditActionSupplierCreate, mock.Anything).Return(errors.New("audit down"))

		res, err := f.uc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, created.ID, res.SupplierID)
		assert.Equal(t, "OrtoMed Distribuidora", created.Name)
		assert.True(t, created.IsActive)
	})

	t.Run("insert race on phone", func(t *testing.T) {
		f := newSupplierFixture(t)
		expectRollback(f.sql)

		f.suppliers.On("FindConflict", req.Email, req.Phone, req.IdentityNumber, (*uuid.UUID)(nil)).Return(nil, nil)
		f.suppliers.On("Create", mock.Anything).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_suppliers_phone"})

		_, err := f.uc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrSupplierPhoneExists)
		f.audit.AssertNotCalled(t, "LogCreate", mock.Anything, mock.Anything)
	})

	t.Run("identity in use", func(t *testing.T) {
		f := newSupplierFixture(t)
		expectRollback(f.sql)

		f.suppliers.On("FindConflict", req.Email, req.Phone, req.IdentityNumber, (*uuid.UUID)(nil)).
			Return(&entity.Supplier{Email: "other@mail.test", Phone: "0", IdentityNumber: req.IdentityNumber}, nil)

		_, err := f.uc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrSupplierIdentityExists)
	})
}

func TestSupplierUsecase_Update(t *testing.T) {
	id := uuid.New()
	current := func() *entity.Supplier {
		return &entity.Supplier{ID: id, Name: "OrtoMed", Email: "vendas@ortomed.test", Phone: "1133334444", IdentityNumber: "123", IsActive: true}
	}

	t.Run("empty body changes nothing", func(t *testing.T) {
		f := newSupplierFixture(t)
		expectRollback(f.sql)
		f.suppliers.On("FindByID", id).Return(current(), nil)

		res, err := f.uc.Update(context.Background(), id, &dto.UpdateSupplierRequest{})
		require.NoError(t, err)
		assert.Equal(t, "OrtoMed", res.Name)
		f.suppliers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("email case change skips the uniqueness check", func(t *testing.T) {
		f := newSupplierFixture(t)
		expectCommit(f.sql)
		f.suppliers.On("FindByID", id).Return(current(), nil)
		f.suppliers.On("Update", mock.Anything, []string{"email"}).Return(nil)
		f.audit.On("LogUpdate", entity.AuditActionSupplierUpdate, id.String()).Return(nil)

		res, err := f.uc.Update(context.Background(), id, &dto.UpdateSupplierRequest{Email: ptr("VENDAS@ortomed.test")})
		require.NoError(t, err)
		assert.Equal(t, "VENDAS@ortomed.test", res.Email)
		f.suppliers.AssertNotCalled(t, "FindConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("new email already taken", func(t *testing.T) {
		f := newSupplierFixture(t)
		expectRollback(f.sql)
		f.suppliers.On("FindByID", id).Return(current(), nil)
		f.suppliers.On("FindConflict", "comercial@other.test", "1133334444", "123", &id).
			Return(&entity.Supplier{Email: "comercial@other.test"}, nil)

		_, err := f.uc.Update(context.Background(), id, &dto.UpdateSupplierRequest{Email: ptr("comercial@other.test")})
		assert.ErrorIs(t, err, ErrSupplierEmailExists)
	})
}

func TestSupplierUsecase_Remove(t *testing.T) {
	id := uuid.New()

	t.Run("deactivates", func(t *testing.T) {
		f := newSupplierFixture(t)
		expectCommit(f.sql)
		f.suppliers.On("FindByID", id).Return(&entity.Supplier{ID: id, IsActive: true}, nil)
		f.suppliers.On("SoftDelete", id).Return(true, nil)
		f.audit.On("LogDelete", entity.AuditActionSupplierDelete, id.String()).Return(nil)

		res, err := f.uc.Remove(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, res.ID)
	})

	t.Run("lost race with another remove", func(t *testing.T) {
		f := newSupplierFixture(t)
		expectRollback(f.sql)
		f.suppliers.On("FindByID", id).Return(&entity.Supplier{ID: id}, nil)
		f.suppliers.On("SoftDelete", id).Return(false, nil)

		_, err := f.uc.Remove(context.Background(), id)
		assert.ErrorIs(t, err, ErrSupplierNotFound)
	})
}
