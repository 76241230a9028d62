package handler

import (
	"net/http"

	"doctor-registration/internal/converter"
	"doctor-registration/internal/delivery/dto"
	"doctor-registration/internal/domain/entity"
	"doctor-registration/internal/registration"
	"doctor-registration/pkg/response"

	"github.com/gorilla/mux"
)

func (h *RegistrationHandler) AddClinic(w http.ResponseWriter, r *http.Request) {
	var req dto.ClinicRequest
	if !h.decode(w, r, &req) {
		return
	}

	clinic, err := h.registrationUsecase.AddClinic(r.Context(), mux.Vars(r)["id"], converter.ClinicRequestToEntity(&req))
	if err != nil {
		h.writeError(w, err, "Failed to add clinic")
		return
	}

	response.Success(w, http.StatusCreated, "Clinic added successfully", clinic)
}

func (h *RegistrationHandler) UpdateClinic(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.ClinicRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.ID = vars["clinicId"]

	reg, err := h.registrationUsecase.UpdateClinic(r.Context(), vars["id"], converter.ClinicRequestToEntity(&req))
	if err != nil {
		h.writeError(w, err, "Failed to update clinic")
		return
	}

	response.Success(w, http.StatusOK, "Clinic updated successfully", reg)
}

func (h *RegistrationHandler) RemoveClinic(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reg, err := h.registrationUsecase.RemoveClinic(r.Context(), vars["id"], vars["clinicId"])
	if err != nil {
		h.writeError(w, err, "Failed to remove clinic")
		return
	}

	response.Success(w, http.StatusOK, "Clinic removed successfully", reg)
}

func (h *RegistrationHandler) SetPrimaryClinic(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reg, err := h.registrationUsecase.SetPrimaryClinic(r.Context(), vars["id"], vars["clinicId"])
	if err != nil {
		h.writeError(w, err, "Failed to set primary clinic")
		return
	}

	response.Success(w, http.StatusOK, "Primary clinic updated successfully", reg)
}

func (h *RegistrationHandler) ResolveClinicAddress(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.ResolveAddressRequest
	if !h.decode(w, r, &req) {
		return
	}

	address, err := h.registrationUsecase.ResolveClinicAddress(r.Context(), vars["id"], vars["clinicId"], req.MapLink)
	if err != nil {
		h.writeError(w, err, "Failed to resolve clinic address")
		return
	}

	response.Success(w, http.StatusOK, "Clinic address resolved", address)
}

func (h *RegistrationHandler) SetWorkingDay(w http.ResponseWriter, r *http.Request) {
	day, ok := h.weekday(w, r)
	if !ok {
		return
	}

	var req dto.WorkingDayRequest
	if !h.decode(w, r, &req) {
		return
	}

	reg, err := h.registrationUsecase.SetWorkingDay(r.Context(), mux.Vars(r)["id"], day, *req.IsWorking)
	if err != nil {
		h.writeError(w, err, "Failed to update working day")
		return
	}

	response.Success(w, http.StatusOK, "Working day updated successfully", reg)
}

func (h *RegistrationHandler) SetWorkHours(w http.ResponseWriter, r *http.Request) {
	day, ok := h.weekday(w, r)
	if !ok {
		return
	}

	var req dto.TimeRangeRequest
	if !h.decode(w, r, &req) {
		return
	}

	reg, err := h.registrationUsecase.SetWorkHours(r.Context(), mux.Vars(r)["id"], day, converter.TimeRangeRequestToEntity(&req))
	if err != nil {
		h.writeError(w, err, "Failed to update work hours")
		return
	}

	response.Success(w, http.StatusOK, "Work hours updated successfully", reg)
}

func (h *RegistrationHandler) AddBreak(w http.ResponseWriter, r *http.Request) {
	day, ok := h.weekday(w, r)
	if !ok {
		return
	}

	reg, err := h.registrationUsecase.AddBreak(r.Context(), mux.Vars(r)["id"], day)
	if err != nil {
		h.writeError(w, err, "Failed to add break")
		return
	}

	response.Success(w, http.StatusCreated, "Break added successfully", reg)
}

func (h *RegistrationHandler) UpdateBreak(w http.ResponseWriter, r *http.Request) {
	day, ok := h.weekday(w, r)
	if !ok {
		return
	}
	index, ok := h.index(w, r)
	if !ok {
		return
	}

	var req dto.TimeRangeRequest
	if !h.decode(w, r, &req) {
		return
	}

	reg, err := h.registrationUsecase.UpdateBreak(r.Context(), mux.Vars(r)["id"], day, index, converter.TimeRangeRequestToEntity(&req))
	if err != nil {
		h.writeError(w, err, "Failed to update break")
		return
	}

	response.Success(w, http.StatusOK, "Break updated successfully", reg)
}

func (h *RegistrationHandler) RemoveBreak(w http.ResponseWriter, r *http.Request) {
	day, ok := h.weekday(w, r)
	if !ok {
		return
	}
	index, ok := h.index(w, r)
	if !ok {
		return
	}

	reg, err := h.registrationUsecase.RemoveBreak(r.Context(), mux.Vars(r)["id"], day, index)
	if err != nil {
		h.writeError(w, err, "Failed to remove break")
		return
	}

	response.Success(w, http.StatusOK, "Break removed successfully", reg)
}

func (h *RegistrationHandler) AddOnlineSlot(w http.ResponseWriter, r *http.Request) {
	day, ok := h.weekday(w, r)
	if !ok {
		return
	}

	reg, err := h.registrationUsecase.AddOnlineSlot(r.Context(), mux.Vars(r)["id"], day)
	if err != nil {
		h.writeError(w, err, "Failed to add online slot")
		return
	}

	response.Success(w, http.StatusCreated, "Online slot added successfully", reg)
}

func (h *RegistrationHandler) UpdateOnlineSlot(w http.ResponseWriter, r *http.Request) {
	day, ok := h.weekday(w, r)
	if !ok {
		return
	}
	index, ok := h.index(w, r)
	if !ok {
		return
	}

	var req dto.TimeRangeRequest
	if !h.decode(w, r, &req) {
		return
	}

	reg, err := h.registrationUsecase.UpdateOnlineSlot(r.Context(), mux.Vars(r)["id"], day, index, converter.TimeRangeRequestToEntity(&req))
	if err != nil {
		h.writeError(w, err, "Failed to update online slot")
		return
	}

	response.Success(w, http.StatusOK, "Online slot updated successfully", reg)
}

func (h *RegistrationHandler) RemoveOnlineSlot(w http.ResponseWriter, r *http.Request) {
	day, ok := h.weekday(w, r)
	if !ok {
		return
	}
	index, ok := h.index(w, r)
	if !ok {
		return
	}

	reg, err := h.registrationUsecase.RemoveOnlineSlot(r.Context(), mux.Vars(r)["id"], day, index)
	if err != nil {
		h.writeError(w, err, "Failed to remove online slot")
		return
	}

	response.Success(w, http.StatusOK, "Online slot removed successfully", reg)
}

func (h *RegistrationHandler) CopySchedule(w http.ResponseWriter, r *http.Request) {
	var req dto.CopyScheduleRequest
	if !h.decode(w, r, &req) {
		return
	}

	reg, err := h.registrationUsecase.CopySchedule(r.Context(), mux.Vars(r)["id"],
		entity.Weekday(req.SourceDay), registration.CopyTemplate(req.Template))
	if err != nil {
		h.writeError(w, err, "Failed to copy schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule copied successfully", reg)
}

func (h *RegistrationHandler) ToggleService(w http.ResponseWriter, r *http.Request) {
	var req dto.ServiceNameRequest
	if !h.decode(w, r, &req) {
		return
	}

	reg, err := h.registrationUsecase.ToggleService(r.Context(), mux.Vars(r)["id"], req.Name)
	if err != nil {
		h.writeError(w, err, "Failed to toggle service")
		return
	}

	response.Success(w, http.StatusOK, "Services updated successfully", reg)
}

func (h *RegistrationHandler) AddCustomService(w http.ResponseWriter, r *http.Request) {
	var req dto.ServiceNameRequest
	if !h.decode(w, r, &req) {
		return
	}

	reg, err := h.registrationUsecase.AddCustomService(r.Context(), mux.Vars(r)["id"], req.Name)
	if err != nil {
		h.writeError(w, err, "Failed to add custom service")
		return
	}

	response.Success(w, http.StatusCreated, "Custom service added successfully", reg)
}

func (h *RegistrationHandler) TogglePaymentMethod(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reg, err := h.registrationUsecase.TogglePaymentMethod(r.Context(), vars["id"], vars["method"])
	if err != nil {
		h.writeError(w, err, "Failed to toggle payment method")
		return
	}

	response.Success(w, http.StatusOK, "Payment methods updated successfully", reg)
}
