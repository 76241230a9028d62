package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmissionID identifies one accepted registration submission.
type SubmissionID string

func (id SubmissionID) String() string {
	return string(id)
}

// SubmittedRegistration is the stored form of a submitted registration.
// Note: only the postgres submission transport writes this table
type SubmittedRegistration struct {
	ID                    string              `gorm:"type:varchar(40);primaryKey" json:"id"`
	FullName              string              `gorm:"type:varchar(255);not null" json:"full_name"`
	Email                 string              `gorm:"type:varchar(255);not null;index" json:"email"`
	LicenseNumber         string              `gorm:"type:varchar(100);uniqueIndex:idx_submitted_registrations_license;not null" json:"license_number"`
	Specialty             string              `gorm:"type:varchar(100);not null;index" json:"specialty"`
	ClinicVisitFee        decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"clinic_visit_fee"`
	OnlineConsultationFee decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"online_consultation_fee"`
	HomeVisitFee          decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"home_visit_fee"`
	Currency              string              `gorm:"type:varchar(3);not null" json:"currency"`
	Payload               JSON                `gorm:"type:jsonb;not null" json:"payload"`
	SubmittedAt           time.Time           `gorm:"autoCreateTime" json:"submitted_at"`
}

func (SubmittedRegistration) TableName() string {
	return "submitted_registrations"
}
