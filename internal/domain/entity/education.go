package entity

// Education holds the practitioner's qualification and licence.
type Education struct {
	HighestDegree     string      `json:"highest_degree" validate:"required"`
	University        string      `json:"university"`
	LicenseNumber     string      `json:"license_number" validate:"required"`
	IssuingAuthority  string      `json:"issuing_authority"`
	LicenseExpiryDate string      `json:"license_expiry_date"` // Format: YYYY-MM-DD
	LicenseDocument   *Attachment `json:"license_document,omitempty"`
}

func (e Education) Clone() Education {
	c := e
	c.LicenseDocument = cloneAttachment(e.LicenseDocument)
	return c
}
