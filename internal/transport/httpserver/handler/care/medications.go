package care

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	medicationdomain "carelink-go/internal/domain/medication"
	commonhandler "carelink-go/internal/transport/httpserver/handler/common"
	"carelink-go/internal/transport/httpserver/middleware"
)

type CreateMedicationRequest struct {
	Name         string  `json:"name"`
	Dosage       string  `json:"dosage"`
	Frequency    string  `json:"frequency"`
	Instructions *string `json:"instructions"`
	Active       *bool   `json:"active"`
}

type updateMedicationRequest struct {
	Name         *string `json:"name"`
	Dosage       *string `json:"dosage"`
	Frequency    *string `json:"frequency"`
	Instructions *string `json:"instructions"`
	Active       *bool   `json:"active"`
}

type MedicationResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	Dosage       string  `json:"dosage"`
	Frequency    string  `json:"frequency"`
	Instructions *string `json:"instructions"`
	Active       bool    `json:"active"`
	CreatedBy    string  `json:"created_by"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type MedicationsListResponse struct {
	Items []MedicationResponse `json:"items"`
}

func (req CreateMedicationRequest) Input() medicationdomain.CreateMedicationInput {
	return medicationdomain.CreateMedicationInput{
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Instructions: req.Instructions,
		Active:       req.Active,
	}
}

// ParseActiveOnly reads the active query parameter; it defaults to false.
func ParseActiveOnly(r *http.Request) (bool, error) {
	return commonhandler.ParseBoolParam(r.URL.Query().Get("active"), false)
}

func (h *Handlers) ListMedications(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	activeOnly, err := ParseActiveOnly(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "active must be a boolean")
		return
	}

	medications, err := h.Medications.ListMedications(r.Context(), user.ID, activeOnly)
	if err != nil {
		h.writeDomainError(w, "medications.list", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, MedicationsListResponse{Items: ToMedicationResponses(medications)})
}

func (h *Handlers) CreateMedication(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	var req CreateMedicationRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}
	input := req.Input()
	input.UserID = user.ID
	input.CreatedBy = user.ID

	medication, err := h.Medications.CreateMedication(r.Context(), input)
	if err != nil {
		h.writeDomainError(w, "medications.create", err, user.ID)
		return
	}

	writeJSON(w, http.StatusCreated, ToMedicationResponse(medication))
}

func (h *Handlers) UpdateMedication(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	var req updateMedicationRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}

	medication, err := h.Medications.UpdateMedication(r.Context(), medicationdomain.UpdateMedicationInput{
		ID:           chi.URLParam(r, "id"),
		UserID:       user.ID,
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Instructions: req.Instructions,
		Active:       req.Active,
	})
	if err != nil {
		h.writeDomainError(w, "medications.update", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, ToMedicationResponse(medication))
}

func (h *Handlers) DeleteMedication(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	if err := h.Medications.DeleteMedication(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "medications.delete", err, user.ID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func ToMedicationResponse(medication *medicationdomain.Medication) MedicationResponse {
	return MedicationResponse{
		ID:           medication.ID,
		UserID:       medication.UserID,
		Name:         medication.Name,
		Dosage:       medication.Dosage,
		Frequency:    medication.Frequency,
		Instructions: medication.Instructions,
		Active:       medication.Active,
		CreatedBy:    medication.CreatedBy,
		CreatedAt:    commonhandler.FormatTime(medication.CreatedAt),
		UpdatedAt:    commonhandler.FormatTime(medication.UpdatedAt),
	}
}

func ToMedicationResponses(medications []medicationdomain.Medication) []MedicationResponse {
	items := make([]MedicationResponse, 0, len(medications))
	for i := range medications {
		items = append(items, ToMedicationResponse(&medications[i]))
	}
	return items
}
