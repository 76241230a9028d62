package registration

import "errors"

var (
	ErrUnknownSection       = errors.New("unknown section")
	ErrUnknownAttachment    = errors.New("unknown attachment field")
	ErrPrimaryClinicExists  = errors.New("a primary clinic already exists")
	ErrClinicNotFound       = errors.New("clinic not found")
	ErrDuplicateClinicID    = errors.New("clinic id is already in use")
	ErrInvalidClinicKind    = errors.New("clinic kind must be primary or secondary")
	ErrUnknownSpecialty     = errors.New("specialty is not in the catalog")
	ErrServiceNotOffered    = errors.New("service is not offered under the selected specialty")
	ErrInvalidTimeFormat    = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange     = errors.New("start time must be before end time")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrUnknownWeekday       = errors.New("unknown weekday")
	ErrDayNotWorking        = errors.New("day is not a working day")
	ErrUnknownCopyTemplate  = errors.New("unknown schedule copy template")
	ErrInvalidPrice         = errors.New("price must be a non-negative number")
	ErrUnknownPriceKind     = errors.New("unknown price kind")
	ErrCurrencyNotAllowed   = errors.New("currency is not allowed")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrMobileNumberRequired = errors.New("mobile number is required")
	ErrInvalidCode          = errors.New("invalid verification code")
	ErrLookupSuperseded     = errors.New("lookup superseded by a newer request")
	ErrMapLinkRequired      = errors.New("map link is required")

	ErrStepOutOfRange = errors.New("step out of range")
	ErrNoNextStep     = errors.New("already at the last step")
	ErrNoPreviousStep = errors.New("already at the first step")

	ErrNotReady             = errors.New("registration is not complete")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrAlreadySubmitted     = errors.New("registration already submitted")
	ErrSubmissionFailed     = errors.New("submission failed")
)
