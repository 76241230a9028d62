package converter

import (
	"time"

	"doctor-registration/internal/delivery/dto"
	"doctor-registration/internal/domain/entity"
	"doctor-registration/pkg/money"

	"github.com/shopspring/decimal"
)

// RegistrationToSubmission converts a submitted registration to its stored form
func RegistrationToSubmission(id entity.SubmissionID, rec entity.Registration) (*entity.SubmittedRegistration, error) {
	payload, err := entity.ToJSON(rec)
	if err != nil {
		return nil, err
	}

	return &entity.SubmittedRegistration{
		ID:                    id.String(),
		FullName:              rec.Personal.FullName,
		Email:                 rec.Contact.Email,
		LicenseNumber:         rec.Education.LicenseNumber,
		Specialty:             rec.Specialization.SelectedSpecialty,
		ClinicVisitFee:        money.ParseNullable(rec.Charges.ClinicVisit),
		OnlineConsultationFee: money.ParseNullable(rec.Charges.OnlineConsultation),
		HomeVisitFee:          money.ParseNullable(rec.Charges.HomeVisit),
		Currency:              rec.Charges.Currency,
		Payload:               payload,
	}, nil
}

func RegistrationToEvent(id entity.SubmissionID, rec entity.Registration, at time.Time) *dto.RegistrationSubmittedEvent {
	return &dto.RegistrationSubmittedEvent{
		SubmissionID:  id.String(),
		FullName:      rec.Personal.FullName,
		Email:         rec.Contact.Email,
		LicenseNumber: rec.Education.LicenseNumber,
		Specialty:     rec.Specialization.SelectedSpecialty,
		Registration:  rec,
		SubmittedAt:   at,
	}
}

// SubmissionToResponse converts a SubmittedRegistration entity to SubmissionResponse DTO
func SubmissionToResponse(s *entity.SubmittedRegistration) *dto.SubmissionResponse {
	if s == nil {
		return nil
	}

	return &dto.SubmissionResponse{
		ID:                    s.ID,
		FullName:              s.FullName,
		Email:                 s.Email,
		LicenseNumber:         s.LicenseNumber,
		Specialty:             s.Specialty,
		ClinicVisitFee:        nullDecimalString(s.ClinicVisitFee),
		OnlineConsultationFee: nullDecimalString(s.OnlineConsultationFee),
		HomeVisitFee:          nullDecimalString(s.HomeVisitFee),
		Currency:              s.Currency,
		Payload:               s.Payload,
		SubmittedAt:           s.SubmittedAt,
	}
}

// SubmissionsToResponses omits payloads to keep listings small
func SubmissionsToResponses(submissions []entity.SubmittedRegistration) []dto.SubmissionResponse {
	responses := make([]dto.SubmissionResponse, len(submissions))
	for i := range submissions {
		responses[i] = *SubmissionToResponse(&submissions[i])
		responses[i].Payload = nil
	}
	return responses
}

func nullDecimalString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}
