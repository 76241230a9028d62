package dto

import "doctor-registration/internal/domain/entity"

// Request DTOs
// Absent keys decode to nil pointers and leave the stored value untouched.

type PersonalPatchRequest struct {
	FullName     *string   `json:"full_name" validate:"omitempty,max=255"`
	DateOfBirth  *string   `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	MobileNumber *string   `json:"mobile_number" validate:"omitempty,min=7,max=20"`
	Languages    *[]string `json:"languages" validate:"omitempty,dive,required,max=50"`
	Bio          *string   `json:"bio" validate:"omitempty,max=2000"`
	Awards       *[]string `json:"awards" validate:"omitempty,dive,required,max=255"`
}

type ContactPatchRequest struct {
	Email       *string          `json:"email" validate:"omitempty,email"`
	PhoneNumber *string          `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Clinics     *[]ClinicRequest `json:"clinics" validate:"omitempty,dive"`
}

type ClinicRequest struct {
	ID           string `json:"id" validate:"omitempty,max=64"`
	Name         string `json:"name" validate:"required,max=255"`
	Address      string `json:"address" validate:"omitempty,max=500"`
	MapLink      string `json:"map_link" validate:"omitempty,url"`
	OfficeNumber string `json:"office_number" validate:"omitempty,max=20"`
	Kind         string `json:"kind" validate:"omitempty,oneof=primary secondary"`
}

type EducationPatchRequest struct {
	HighestDegree     *string `json:"highest_degree" validate:"omitempty,max=100"`
	University        *string `json:"university" validate:"omitempty,max=255"`
	LicenseNumber     *string `json:"license_number" validate:"omitempty,max=100"`
	IssuingAuthority  *string `json:"issuing_authority" validate:"omitempty,max=255"`
	LicenseExpiryDate *string `json:"license_expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

type SpecializationPatchRequest struct {
	SelectedSpecialty *string           `json:"selected_specialty" validate:"omitempty,max=100"`
	Services          *[]ServiceRequest `json:"services" validate:"omitempty,dive"`
}

type ServiceRequest struct {
	Name   string `json:"name" validate:"required,max=255"`
	Custom bool   `json:"custom"`
}

type AvailabilityPatchRequest struct {
	SelectedClinicID *string                        `json:"selected_clinic_id" validate:"omitempty,max=64"`
	Schedule         *map[string]DayScheduleRequest `json:"schedule" validate:"omitempty,dive,keys,oneof=monday tuesday wednesday thursday friday saturday sunday,endkeys"`
}

type DayScheduleRequest struct {
	IsWorking          bool               `json:"is_working"`
	WorkHours          TimeRangeRequest   `json:"work_hours"`
	BreakTimes         []TimeRangeRequest `json:"break_times" validate:"dive"`
	OnlineConsultTimes []TimeRangeRequest `json:"online_consult_times" validate:"dive"`
}

type TimeRangeRequest struct {
	Start string `json:"start" validate:"omitempty,datetime=15:04"`
	End   string `json:"end" validate:"omitempty,datetime=15:04"`
}

type ChargesPatchRequest struct {
	ClinicVisit        *string   `json:"clinic_visit" validate:"omitempty,numeric"`
	OnlineConsultation *string   `json:"online_consultation" validate:"omitempty,numeric"`
	HomeVisit          *string   `json:"home_visit" validate:"omitempty,numeric"`
	Currency           *string   `json:"currency" validate:"omitempty,len=3"`
	PaymentMethods     *[]string `json:"payment_methods" validate:"omitempty,dive,required"`
}

type AttachmentRequest struct {
	Handle      string `json:"handle" validate:"required,max=255"`
	DisplayName string `json:"display_name" validate:"required,max=255"`
}

type WorkingDayRequest struct {
	IsWorking *bool `json:"is_working" validate:"required"`
}

type CopyScheduleRequest struct {
	SourceDay string `json:"source_day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Template  string `json:"template" validate:"required,oneof=all weekdays all-except-sunday"`
}

type ResolveAddressRequest struct {
	MapLink string `json:"map_link" validate:"omitempty,url"`
}

type VerifyCodeRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// Response DTOs

type RegistrationResponse struct {
	ID             string              `json:"id"`
	CurrentStep    int                 `json:"current_step"`
	Progress       int                 `json:"progress"`
	CompletedSteps []int               `json:"completed_steps"`
	Steps          []StepResponse      `json:"steps"`
	Ready          bool                `json:"ready"`
	Status         string              `json:"status"`
	SubmissionID   string              `json:"submission_id,omitempty"`
	Missing        map[string][]string `json:"missing"`
	Registration   entity.Registration `json:"registration"`
	Summary        ReviewSummary       `json:"summary"`
}

type StepResponse struct {
	Number          int    `json:"number"`
	Title           string `json:"title"`
	Section         string `json:"section,omitempty"`
	Current         bool   `json:"current"`
	Visited         bool   `json:"visited"`
	Completed       bool   `json:"completed"`
	SectionComplete bool   `json:"section_complete"`
}

// ReviewSummary carries the derived values shown on the review step.
type ReviewSummary struct {
	WorkingDays     string            `json:"working_days"`
	WorkingDayCount int               `json:"working_day_count"`
	BreakCount      int               `json:"break_count"`
	OnlineSlotCount int               `json:"online_slot_count"`
	PrimaryClinic   string            `json:"primary_clinic,omitempty"`
	Prices          map[string]string `json:"prices"`
	PaymentMethods  []string          `json:"payment_methods"`
}

type ClinicResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	MapLink      string `json:"map_link,omitempty"`
	OfficeNumber string `json:"office_number,omitempty"`
	Kind         string `json:"kind"`
}

type AddressResponse struct {
	ClinicID string `json:"clinic_id"`
	Address  string `json:"address"`
}

type SubmitResponse struct {
	SubmissionID string `json:"submission_id"`
	Status       string `json:"status"`
}

type ServiceNameRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}
