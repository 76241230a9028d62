package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"doctor-registration/internal/converter"
	"doctor-registration/internal/delivery/dto"
	"doctor-registration/internal/domain/entity"
	"doctor-registration/internal/registration"
	"doctor-registration/internal/service"
	"doctor-registration/internal/usecase"
	"doctor-registration/pkg/response"
	"doctor-registration/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type RegistrationHandler struct {
	registrationUsecase usecase.RegistrationUsecase
	validator           *validator.CustomValidator
	log                 *logrus.Logger
}

func NewRegistrationHandler(
	registrationUsecase usecase.RegistrationUsecase,
	validator *validator.CustomValidator,
	log *logrus.Logger,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUsecase: registrationUsecase,
		validator:           validator,
		log:                 log,
	}
}

func (h *RegistrationHandler) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	reg, err := h.registrationUsecase.CreateRegistration(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to create registration")
		return
	}

	response.Success(w, http.StatusCreated, "Registration created successfully", reg)
}

func (h *RegistrationHandler) GetRegistration(w http.ResponseWriter, r *http.Request) {
	reg, err := h.registrationUsecase.GetRegistration(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err, "Failed to get registration")
		return
	}

	response.Success(w, http.StatusOK, "Registration retrieved successfully", reg)
}

func (h *RegistrationHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	section, err := registration.ParseSection(vars["section"])
	if err != nil {
		response.NotFound(w, "Section not found")
		return
	}

	patch, ok := h.decodePatch(w, r, section)
	if !ok {
		return
	}

	reg, err := h.registrationUsecase.UpdateSection(r.Context(), vars["id"], patch)
	if err != nil {
		h.writeError(w, err, "Failed to update section")
		return
	}

	response.Success(w, http.StatusOK, "Section updated successfully", reg)
}

func (h *RegistrationHandler) SetAttachment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.AttachmentRequest
	if !h.decode(w, r, &req) {
		return
	}

	reg, err := h.registrationUsecase.SetAttachment(r.Context(), vars["id"],
		registration.AttachmentField(vars["field"]), converter.AttachmentRequestToEntity(&req))
	if err != nil {
		h.writeError(w, err, "Failed to set attachment")
		return
	}

	response.Success(w, http.StatusOK, "Attachment saved successfully", reg)
}

func (h *RegistrationHandler) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reg, err := h.registrationUsecase.SetAttachment(r.Context(), vars["id"],
		registration.AttachmentField(vars["field"]), nil)
	if err != nil {
		h.writeError(w, err, "Failed to remove attachment")
		return
	}

	response.Success(w, http.StatusOK, "Attachment removed successfully", reg)
}

func (h *RegistrationHandler) SendMobileCode(w http.ResponseWriter, r *http.Request) {
	if err := h.registrationUsecase.SendMobileCode(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err, "Failed to send verification code")
		return
	}

	response.Success(w, http.StatusOK, "Verification code sent", nil)
}

func (h *RegistrationHandler) VerifyMobileCode(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyCodeRequest
	if !h.decode(w, r, &req) {
		return
	}

	reg, err := h.registrationUsecase.VerifyMobileCode(r.Context(), mux.Vars(r)["id"], req.Code)
	if err != nil {
		h.writeError(w, err, "Failed to verify mobile number")
		return
	}

	response.Success(w, http.StatusOK, "Mobile number verified", reg)
}

func (h *RegistrationHandler) NextStep(w http.ResponseWriter, r *http.Request) {
	reg, err := h.registrationUsecase.NextStep(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err, "Failed to move to the next step")
		return
	}

	response.Success(w, http.StatusOK, "Moved to the next step", reg)
}

func (h *RegistrationHandler) PreviousStep(w http.ResponseWriter, r *http.Request) {
	reg, err := h.registrationUsecase.PreviousStep(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err, "Failed to move to the previous step")
		return
	}

	response.Success(w, http.StatusOK, "Moved to the previous step", reg)
}

func (h *RegistrationHandler) GoToStep(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	step, err := strconv.Atoi(vars["step"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid step", nil)
		return
	}

	reg, err := h.registrationUsecase.GoToStep(r.Context(), vars["id"], step)
	if err != nil {
		h.writeError(w, err, "Failed to change step")
		return
	}

	response.Success(w, http.StatusOK, "Step changed successfully", reg)
}

func (h *RegistrationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	res, err := h.registrationUsecase.Submit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err, "Failed to submit registration")
		return
	}

	response.Success(w, http.StatusCreated, "Registration submitted successfully", res)
}

func (h *RegistrationHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Catalog retrieved successfully", h.registrationUsecase.Catalog())
}

func (h *RegistrationHandler) decodePatch(w http.ResponseWriter, r *http.Request, section registration.Section) (registration.Patch, bool) {
	switch section {
	case registration.SectionPersonal:
		var req dto.PersonalPatchRequest
		if !h.decode(w, r, &req) {
			return nil, false
		}
		return converter.PersonalRequestToPatch(&req), true
	case registration.SectionContact:
		var req dto.ContactPatchRequest
		if !h.decode(w, r, &req) {
			return nil, false
		}
		return converter.ContactRequestToPatch(&req), true
	case registration.SectionEducation:
		var req dto.EducationPatchRequest
		if !h.decode(w, r, &req) {
			return nil, false
		}
		return converter.EducationRequestToPatch(&req), true
	case registration.SectionSpecialization:
		var req dto.SpecializationPatchRequest
		if !h.decode(w, r, &req) {
			return nil, false
		}
		return converter.SpecializationRequestToPatch(&req), true
	case registration.SectionAvailability:
		var req dto.AvailabilityPatchRequest
		if !h.decode(w, r, &req) {
			return nil, false
		}
		return converter.AvailabilityRequestToPatch(&req), true
	case registration.SectionCharges:
		var req dto.ChargesPatchRequest
		if !h.decode(w, r, &req) {
			return nil, false
		}
		return converter.ChargesRequestToPatch(&req), true
	}
	response.NotFound(w, "Section not found")
	return nil, false
}

func (h *RegistrationHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

// Errors that reject a change because it would break the record.
var unprocessableErrors = []error{
	registration.ErrUnknownSection,
	registration.ErrUnknownAttachment,
	registration.ErrInvalidClinicKind,
	registration.ErrUnknownSpecialty,
	registration.ErrServiceNotOffered,
	registration.ErrInvalidTimeFormat,
	registration.ErrInvalidTimeRange,
	registration.ErrIndexOutOfRange,
	registration.ErrUnknownWeekday,
	registration.ErrDayNotWorking,
	registration.ErrUnknownCopyTemplate,
	registration.ErrInvalidPrice,
	registration.ErrUnknownPriceKind,
	registration.ErrCurrencyNotAllowed,
	registration.ErrUnknownPaymentMethod,
	registration.ErrMobileNumberRequired,
	registration.ErrInvalidCode,
	registration.ErrMapLinkRequired,
	registration.ErrStepOutOfRange,
	registration.ErrNoNextStep,
	registration.ErrNoPreviousStep,
}

var conflictErrors = []error{
	registration.ErrNotReady,
	registration.ErrSubmissionInProgress,
	registration.ErrAlreadySubmitted,
	registration.ErrPrimaryClinicExists,
	registration.ErrDuplicateClinicID,
	registration.ErrLookupSuperseded,
	service.ErrLicenseAlreadySubmitted,
}

func (h *RegistrationHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrRegistrationNotFound):
		response.NotFound(w, "Registration not found")
		return
	case errors.Is(err, registration.ErrClinicNotFound):
		response.NotFound(w, "Clinic not found")
		return
	}

	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			response.Conflict(w, target.Error())
			return
		}
	}
	for _, target := range unprocessableErrors {
		if errors.Is(err, target) {
			response.Unprocessable(w, target.Error())
			return
		}
	}

	if errors.Is(err, registration.ErrSubmissionFailed) {
		response.BadGateway(w, "Registration could not be delivered, please retry")
		return
	}

	h.log.Warnf("%s: %+v", fallback, err)
	response.InternalServerError(w, fallback)
}

func (h *RegistrationHandler) weekday(w http.ResponseWriter, r *http.Request) (entity.Weekday, bool) {
	day, ok := entity.ParseWeekday(mux.Vars(r)["day"])
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid weekday", nil)
		return "", false
	}
	return day, true
}

func (h *RegistrationHandler) index(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid index", nil)
		return 0, false
	}
	return index, true
}
