package handler

import (
	"errors"
	"net/http"

	"doctor-registration/internal/usecase"
	"doctor-registration/pkg/response"

	"github.com/gorilla/mux"
)

type SubmissionHandler struct {
	submissionUsecase usecase.SubmissionUsecase
}

func NewSubmissionHandler(submissionUsecase usecase.SubmissionUsecase) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUsecase: submissionUsecase,
	}
}

func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	submission, err := h.submissionUsecase.GetSubmission(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrSubmissionNotFound) {
			response.NotFound(w, "Submission not found")
			return
		}
		response.InternalServerError(w, "Failed to get submission")
		return
	}

	response.Success(w, http.StatusOK, "Submission retrieved successfully", submission)
}

func (h *SubmissionHandler) GetAllSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.submissionUsecase.GetAllSubmissions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get submissions")
		return
	}

	response.Success(w, http.StatusOK, "Submissions retrieved successfully", submissions)
}
