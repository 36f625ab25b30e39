package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mindmate/mindmate-server/internal/service"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	reply, err := h.chatService.Reply(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			respondError(w, http.StatusBadRequest, "Message is required")
			return
		}
		log.Printf("ERROR [chat.Send] %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to get response from chat provider")
		return
	}

	respondJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}
