package registration

const DefaultCurrency = "INR"

// Policy carries the per-deployment choices the wizard enforces.
type Policy struct {
	// RequireMobileVerification makes a verified mobile number part of the
	// personal section's completion.
	RequireMobileVerification bool
	// RequireClinicSelection makes availability complete only once the
	// schedule is tied to one of the contact clinics.
	RequireClinicSelection bool
	// Currency is the default currency of a new registration.
	Currency string
	// AllowedCurrencies lists the currencies a user may pick. Empty means the
	// default currency is fixed.
	AllowedCurrencies []string
}

func DefaultPolicy() Policy {
	return Policy{Currency: DefaultCurrency}
}

func (p Policy) currency() string {
	if p.Currency == "" {
		return DefaultCurrency
	}
	return p.Currency
}

func (p Policy) allowsCurrency(c string) bool {
	if c == p.currency() {
		return true
	}
	for _, allowed := range p.AllowedCurrencies {
		if allowed == c {
			return true
		}
	}
	return false
}
