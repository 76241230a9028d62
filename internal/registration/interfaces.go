package registration

import (
	"context"

	"doctor-registration/internal/domain/entity"
)

// SubmissionTransport delivers a finished registration. Submit is called at
// most once per successful submission and may be retried by the user after a
// failure.
type SubmissionTransport interface {
	Submit(ctx context.Context, id entity.SubmissionID, rec entity.Registration) error
}

// AddressResolver turns a map link into a postal address.
type AddressResolver interface {
	Resolve(ctx context.Context, mapLink string) (string, error)
}

// PhoneVerifier sends and checks one-time codes for a mobile number.
type PhoneVerifier interface {
	SendCode(ctx context.Context, phone string) error
	Verify(ctx context.Context, phone, code string) (bool, error)
}

// Dependencies are the external collaborators a Wizard calls out to. All of
// them are required.
type Dependencies struct {
	Transport SubmissionTransport
	Resolver  AddressResolver
	Verifier  PhoneVerifier
}
