package converter

import (
	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"
)

// ConsultationToResponse converts a Consultation with whichever children
// were loaded.
func ConsultationToResponse(c *entity.Consultation) *dto.ConsultationResponse {
	if c == nil {
		return nil
	}

	resp := &dto.ConsultationResponse{
		ID:           c.ID,
		SchedulingID: c.SchedulingID,
		Scheduling:   SchedulingToResponse(c.Scheduling),
		Medicines:    make([]dto.MedicineResponse, len(c.Medicines)),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}

	if c.MedicalHistory != nil {
		resp.MedicalHistory = &dto.MedicalHistoryResponse{
			ID:          c.MedicalHistory.ID,
			Description: c.MedicalHistory.Description,
		}
	}
	for i, m := range c.Medicines {
		resp.Medicines[i] = dto.MedicineResponse{ID: m.ID, Name: m.Name, Description: m.Description}
	}
	if c.Exam != nil {
		resp.Exam = &dto.ExamResponse{
			ID:          c.Exam.ID,
			Name:        c.Exam.Name,
			Description: c.Exam.Description,
			File:        c.Exam.File,
		}
	}
	if c.Procedure != nil {
		resp.Procedure = &dto.ProcedureResponse{
			ID:          c.Procedure.ID,
			Name:        c.Procedure.Name,
			Description: c.Procedure.Description,
			DoctorID:    c.Procedure.DoctorID,
			Doctor:      AdminToSimple(c.Procedure.Doctor),
		}
	}

	return resp
}

func ConsultationsToResponses(consultations []entity.Consultation) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, len(consultations))
	for i := range consultations {
		responses[i] = *ConsultationToResponse(&consultations[i])
	}
	return responses
}
