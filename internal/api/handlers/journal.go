package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mindmate/mindmate-server/internal/api/middleware"
	"github.com/mindmate/mindmate-server/internal/domain"
	"github.com/mindmate/mindmate-server/internal/service"
)

type JournalHandler struct {
	journalService *service.JournalService
}

func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

type EntryRequest struct {
	Date  string   `json:"date"`
	Mood  string   `json:"mood"`
	Entry string   `json:"entry"`
	Tags  []string `json:"tags"`
}

type EntryResponse struct {
	Message string               `json:"message"`
	Entry   *domain.JournalEntry `json:"entry"`
}

func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	input, err := decodeEntryInput(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.journalService.Create(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrMissingEntryFields) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("ERROR [journal.Create] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to save journal entry.")
		return
	}

	respondJSON(w, http.StatusCreated, EntryResponse{
		Message: "Journal entry saved successfully",
		Entry:   entry,
	})
}

func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entries, err := h.journalService.List(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [journal.List] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch journal entries.")
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// A malformed id cannot match any entry; same response as a
		// missing one.
		respondError(w, http.StatusNotFound, "Entry not found or unauthorized")
		return
	}

	input, err := decodeEntryInput(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.journalService.Update(r.Context(), userID, entryID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntryNotFound):
			respondError(w, http.StatusNotFound, "Entry not found or unauthorized")
		case errors.Is(err, service.ErrMissingEntryFields):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("ERROR [journal.Update] %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to update journal entry.")
		}
		return
	}

	respondJSON(w, http.StatusOK, EntryResponse{
		Message: "Journal entry updated",
		Entry:   updated,
	})
}

func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Journal entry not found or unauthorized")
		return
	}

	if err := h.journalService.Delete(r.Context(), userID, entryID); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			respondError(w, http.StatusNotFound, "Journal entry not found or unauthorized")
			return
		}
		log.Printf("ERROR [journal.Delete] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete journal entry.")
		return
	}

	respondMessage(w, http.StatusOK, "Journal entry deleted successfully.")
}

func decodeEntryInput(r *http.Request) (service.EntryInput, error) {
	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return service.EntryInput{}, errors.New("Invalid request body.")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return service.EntryInput{}, err
	}

	return service.EntryInput{
		Date:  date,
		Mood:  req.Mood,
		Entry: req.Entry,
		Tags:  req.Tags,
	}, nil
}

// parseDate accepts both a bare date and a full timestamp, which is what the
// frontend sends depending on the picker.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("Date is required.")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("Invalid date format.")
}
