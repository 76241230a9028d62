package dto

import (
	"time"

	"doctor-registration/internal/domain/entity"
)

// RegistrationSubmittedEvent is published when a registration is submitted.
type RegistrationSubmittedEvent struct {
	SubmissionID  string              `json:"submission_id"`
	FullName      string              `json:"full_name"`
	Email         string              `json:"email"`
	LicenseNumber string              `json:"license_number"`
	Specialty     string              `json:"specialty"`
	Registration  entity.Registration `json:"registration"`
	SubmittedAt   time.Time           `json:"submitted_at"`
}

type SubmissionResponse struct {
	ID                    string      `json:"id"`
	FullName              string      `json:"full_name"`
	Email                 string      `json:"email"`
	LicenseNumber         string      `json:"license_number"`
	Specialty             string      `json:"specialty"`
	ClinicVisitFee        string      `json:"clinic_visit_fee,omitempty"`
	OnlineConsultationFee string      `json:"online_consultation_fee,omitempty"`
	HomeVisitFee          string      `json:"home_visit_fee,omitempty"`
	Currency              string      `json:"currency"`
	Payload               entity.JSON `json:"payload,omitempty"`
	SubmittedAt           time.Time   `json:"submitted_at"`
}

type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
	Total       int                  `json:"total"`
}
