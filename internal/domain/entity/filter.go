package entity

import "github.com/google/uuid"

// Domain-level list filters, used by the repository layer to avoid
// coupling with delivery DTOs. Search is matched case-insensitively as
// a substring; nil fields are not applied.

type AdminFilter struct {
	Search     string
	ActiveOnly bool
}

type PatientFilter struct {
	Search     string
	ActiveOnly bool
}

type SupplierFilter struct {
	Search     string
	ActiveOnly bool
}

type ProfileFilter struct {
	Search string
}

type StockFilter struct {
	Search      string
	SupplierID  *uuid.UUID
	CategoryID  *uuid.UUID
	MinQuantity *int
}

type SchedulingFilter struct {
	Search    string
	PatientID *uuid.UUID
	DoctorID  *uuid.UUID
	Status    string
}

type ConsultationFilter struct {
	Search       string
	SchedulingID *uuid.UUID
	DoctorID     *uuid.UUID
}

type AuditLogFilter struct {
	Search  string
	Action  string
	AdminID *uuid.UUID
}
