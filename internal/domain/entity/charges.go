package entity

// PriceKind names one of the consultation modalities that carries a fee.
type PriceKind string

const (
	PriceClinicVisit        PriceKind = "clinic_visit"
	PriceOnlineConsultation PriceKind = "online_consultation"
	PriceHomeVisit          PriceKind = "home_visit"
)

// Charges holds consultation fees as entered (decimal strings) and the
// accepted payment methods. At least one fee is needed for completion.
type Charges struct {
	ClinicVisit        string   `json:"clinic_visit" validate:"required_without_all=OnlineConsultation HomeVisit"`
	OnlineConsultation string   `json:"online_consultation"`
	HomeVisit          string   `json:"home_visit"`
	Currency           string   `json:"currency"`
	PaymentMethods     []string `json:"payment_methods"`
}

func (c Charges) Clone() Charges {
	out := c
	out.PaymentMethods = cloneStrings(c.PaymentMethods)
	return out
}

// Price returns the fee entered for the given modality.
func (c Charges) Price(kind PriceKind) string {
	switch kind {
	case PriceClinicVisit:
		return c.ClinicVisit
	case PriceOnlineConsultation:
		return c.OnlineConsultation
	case PriceHomeVisit:
		return c.HomeVisit
	}
	return ""
}
