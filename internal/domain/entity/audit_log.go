package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminID   *uuid.UUID        `gorm:"type:uuid;index" json:"adminId,omitempty"`
	Action    string            `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index" json:"createdAt"`

	// Relationships
	Admin *Admin `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionAdminLogin         = "admin.login"
	AuditActionDoctorCreate       = "doctor.create"
	AuditActionDoctorUpdate       = "doctor.update"
	AuditActionDoctorDelete       = "doctor.delete"
	AuditActionPatientCreate      = "patient.create"
	AuditActionPatientUpdate      = "patient.update"
	AuditActionPatientDelete      = "patient.delete"
	AuditActionSupplierCreate     = "supplier.create"
	AuditActionSupplierUpdate     = "supplier.update"
	AuditActionSupplierDelete     = "supplier.delete"
	AuditActionStockCreate        = "stock.create"
	AuditActionStockUpdate        = "stock.update"
	AuditActionStockDelete        = "stock.delete"
	AuditActionSchedulingCreate   = "scheduling.create"
	AuditActionSchedulingUpdate   = "scheduling.update"
	AuditActionSchedulingCancel   = "scheduling.cancel"
	AuditActionConsultationCreate = "consultation.create"
	AuditActionConsultationUpdate = "consultation.update"
	AuditActionConsultationDelete = "consultation.delete"
)
