package entity

// PersonalInfo holds identity data for the practitioner.
type PersonalInfo struct {
	FullName       string      `json:"full_name" validate:"required"`
	DateOfBirth    string      `json:"date_of_birth"`
	MobileNumber   string      `json:"mobile_number"`
	MobileVerified bool        `json:"mobile_verified"`
	Languages      []string    `json:"languages"`
	Bio            string      `json:"bio" validate:"required"`
	Awards         []string    `json:"awards"`
	Resume         *Attachment `json:"resume,omitempty"`
	ProfilePicture *Attachment `json:"profile_picture,omitempty"`
}

func (p PersonalInfo) Clone() PersonalInfo {
	c := p
	c.Languages = cloneStrings(p.Languages)
	c.Awards = cloneStrings(p.Awards)
	c.Resume = cloneAttachment(p.Resume)
	c.ProfilePicture = cloneAttachment(p.ProfilePicture)
	return c
}
