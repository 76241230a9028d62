package converter

import (
	"doctor-registration/internal/catalog"
	"doctor-registration/internal/delivery/dto"
	"doctor-registration/internal/domain/entity"
	"doctor-registration/internal/registration"
)

func PersonalRequestToPatch(req *dto.PersonalPatchRequest) registration.PersonalPatch {
	return registration.PersonalPatch{
		FullName:     req.FullName,
		DateOfBirth:  req.DateOfBirth,
		MobileNumber: req.MobileNumber,
		Languages:    req.Languages,
		Bio:          req.Bio,
		Awards:       req.Awards,
	}
}

func ContactRequestToPatch(req *dto.ContactPatchRequest) registration.ContactPatch {
	patch := registration.ContactPatch{
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if req.Clinics != nil {
		clinics := make([]entity.Clinic, len(*req.Clinics))
		for i := range *req.Clinics {
			clinics[i] = ClinicRequestToEntity(&(*req.Clinics)[i])
		}
		patch.Clinics = &clinics
	}
	return patch
}

func ClinicRequestToEntity(req *dto.ClinicRequest) entity.Clinic {
	return entity.Clinic{
		ID:           req.ID,
		Name:         req.Name,
		Address:      req.Address,
		MapLink:      req.MapLink,
		OfficeNumber: req.OfficeNumber,
		Kind:         entity.ClinicKind(req.Kind),
	}
}

func ClinicToResponse(c entity.Clinic) *dto.ClinicResponse {
	return &dto.ClinicResponse{
		ID:           c.ID,
		Name:         c.Name,
		Address:      c.Address,
		MapLink:      c.MapLink,
		OfficeNumber: c.OfficeNumber,
		Kind:         string(c.Kind),
	}
}

func EducationRequestToPatch(req *dto.EducationPatchRequest) registration.EducationPatch {
	return registration.EducationPatch{
		HighestDegree:     req.HighestDegree,
		University:        req.University,
		LicenseNumber:     req.LicenseNumber,
		IssuingAuthority:  req.IssuingAuthority,
		LicenseExpiryDate: req.LicenseExpiryDate,
	}
}

func SpecializationRequestToPatch(req *dto.SpecializationPatchRequest) registration.SpecializationPatch {
	patch := registration.SpecializationPatch{SelectedSpecialty: req.SelectedSpecialty}
	if req.Services != nil {
		services := make([]entity.Service, len(*req.Services))
		for i, s := range *req.Services {
			services[i] = entity.Service{Name: s.Name, Custom: s.Custom}
		}
		patch.Services = &services
	}
	return patch
}

func AvailabilityRequestToPatch(req *dto.AvailabilityPatchRequest) registration.AvailabilityPatch {
	patch := registration.AvailabilityPatch{SelectedClinicID: req.SelectedClinicID}
	if req.Schedule != nil {
		schedule := make(entity.Schedule, len(*req.Schedule))
		for day, d := range *req.Schedule {
			schedule[entity.Weekday(day)] = entity.DaySchedule{
				IsWorking:          d.IsWorking,
				WorkHours:          timeRangeRequestToEntity(d.WorkHours),
				BreakTimes:         timeRangesRequestToEntity(d.BreakTimes),
				OnlineConsultTimes: timeRangesRequestToEntity(d.OnlineConsultTimes),
			}
		}
		patch.Schedule = &schedule
	}
	return patch
}

func TimeRangeRequestToEntity(req *dto.TimeRangeRequest) entity.TimeRange {
	return timeRangeRequestToEntity(*req)
}

func timeRangeRequestToEntity(r dto.TimeRangeRequest) entity.TimeRange {
	return entity.TimeRange{Start: r.Start, End: r.End}
}

func timeRangesRequestToEntity(rs []dto.TimeRangeRequest) []entity.TimeRange {
	out := make([]entity.TimeRange, len(rs))
	for i, r := range rs {
		out[i] = timeRangeRequestToEntity(r)
	}
	return out
}

func ChargesRequestToPatch(req *dto.ChargesPatchRequest) registration.ChargesPatch {
	return registration.ChargesPatch{
		ClinicVisit:        req.ClinicVisit,
		OnlineConsultation: req.OnlineConsultation,
		HomeVisit:          req.HomeVisit,
		Currency:           req.Currency,
		PaymentMethods:     req.PaymentMethods,
	}
}

func AttachmentRequestToEntity(req *dto.AttachmentRequest) *entity.Attachment {
	return &entity.Attachment{Handle: req.Handle, DisplayName: req.DisplayName}
}

// SnapshotToResponse converts a wizard snapshot to RegistrationResponse DTO
func SnapshotToResponse(snap registration.Snapshot, cat *catalog.Catalog) *dto.RegistrationResponse {
	steps := make([]dto.StepResponse, len(snap.Steps))
	for i, s := range snap.Steps {
		steps[i] = dto.StepResponse{
			Number:          s.Number,
			Title:           s.Title,
			Section:         string(s.Section),
			Current:         s.Current,
			Visited:         s.Visited,
			Completed:       s.Completed,
			SectionComplete: s.SectionComplete,
		}
	}

	missing := make(map[string][]string, len(snap.Missing))
	for section, fields := range snap.Missing {
		missing[string(section)] = fields
	}

	return &dto.RegistrationResponse{
		ID:             snap.ID,
		CurrentStep:    snap.CurrentStep,
		Progress:       snap.CurrentStep * 100 / registration.TotalSteps,
		CompletedSteps: snap.CompletedSteps,
		Steps:          steps,
		Ready:          snap.Ready,
		Status:         string(snap.Status),
		SubmissionID:   snap.SubmissionID.String(),
		Missing:        missing,
		Registration:   snap.Record,
		Summary:        reviewSummary(snap.Record, cat),
	}
}

func reviewSummary(rec entity.Registration, cat *catalog.Catalog) dto.ReviewSummary {
	counts := registration.CountSchedule(rec.Availability.Schedule)

	prices := make(map[string]string)
	for kind, formatted := range registration.FormattedPrices(rec.Charges) {
		prices[string(kind)] = formatted
	}

	methods := make([]string, len(rec.Charges.PaymentMethods))
	for i, m := range rec.Charges.PaymentMethods {
		methods[i] = cat.PaymentMethodLabel(m)
	}

	summary := dto.ReviewSummary{
		WorkingDays:     registration.WorkingDaysSummary(rec.Availability.Schedule),
		WorkingDayCount: counts.WorkingDays,
		BreakCount:      counts.Breaks,
		OnlineSlotCount: counts.OnlineSlots,
		Prices:          prices,
		PaymentMethods:  methods,
	}
	if primary, ok := rec.Contact.PrimaryClinic(); ok {
		summary.PrimaryClinic = primary.Name
	}
	return summary
}
