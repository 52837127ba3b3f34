package converter

import (
	"orthocare-api/internal/delivery/dto"
	"orthocare-api/internal/domain/entity"
)

func SchedulingToSummary(s *entity.Scheduling) dto.SchedulingSummaryResponse {
	return dto.SchedulingSummaryResponse{
		ID:          s.ID,
		Hours:       s.Hours,
		Type:        s.Type,
		Status:      s.Status,
		Observation: s.Observation,
		Phone:       s.Phone,
		PatientID:   s.PatientID,
		DoctorID:    s.DoctorID,
		CreatedAt:   s.CreatedAt,
	}
}

func SchedulingToResponse(s *entity.Scheduling) *dto.SchedulingResponse {
	if s == nil {
		return nil
	}

	resp := &dto.SchedulingResponse{
		SchedulingSummaryResponse: SchedulingToSummary(s),
		Patient:                   PatientToSimple(s.Patient),
		Doctor:                    AdminToSimple(s.Doctor),
		UpdatedAt:                 s.UpdatedAt,
	}
	if s.Consultation != nil {
		resp.Consultation = &dto.ConsultationSummary{
			ID:        s.Consultation.ID,
			CreatedAt: s.Consultation.CreatedAt,
		}
	}
	return resp
}

func SchedulingsToResponses(schedulings []entity.Scheduling) []dto.SchedulingResponse {
	responses := make([]dto.SchedulingResponse, len(schedulings))
	for i := range schedulings {
		responses[i] = *SchedulingToResponse(&schedulings[i])
	}
	return responses
}

func SchedulingsToSimple(schedulings []entity.Scheduling) []dto.SimpleSchedulingResponse {
	responses := make([]dto.SimpleSchedulingResponse, len(schedulings))
	for i, s := range schedulings {
		responses[i] = dto.SimpleSchedulingResponse{
			ID:     s.ID,
			Hours:  s.Hours,
			Status: s.Status,
		}
		if s.Patient != nil {
			responses[i].PatientName = s.Patient.FullName()
		}
	}
	return responses
}
