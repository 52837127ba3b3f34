package converter

import (
	"time"

	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		ID:             patient.ID,
		FirstName:      patient.FirstName,
		LastName:       patient.LastName,
		FullName:       patient.FullName(),
		BirthDate:      time.Time(patient.BirthDate).Format(dateLayout),
		Email:          patient.Email,
		IdentityNumber: patient.IdentityNumber,
		Phone:          patient.Phone,
		IsActive:       patient.IsActive,
		CreatedAt:      patient.CreatedAt,
		UpdatedAt:      patient.UpdatedAt,
	}
	if len(patient.Schedulings) > 0 {
		resp.Schedulings = make([]dto.SchedulingSummaryResponse, len(patient.Schedulings))
		for i := range patient.Schedulings {
			resp.Schedulings[i] = SchedulingToSummary(&patient.Schedulings[i])
		}
	}
	return resp
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

func PatientToSimple(patient *entity.Patient) *dto.SimplePersonResponse {
	if patient == nil {
		return nil
	}
	return &dto.SimplePersonResponse{
		ID:       patient.ID,
		FullName: patient.FullName(),
		Phone:    patient.Phone,
	}
}

func PatientsToSimple(patients []entity.Patient) []dto.SimplePersonResponse {
	responses := make([]dto.SimplePersonResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToSimple(&patients[i])
	}
	return responses
}
