package service

import (
	"context"
	"errors"

	"github.com/mindmate/mindmate-server/internal/chat"
)

var (
	ErrEmptyMessage = errors.New("message is required")
)

// ChatService forwards a user's message to the configured chat provider.
// The provider is an external collaborator: it takes a prompt and returns a
// completion or an error, nothing is stored on this side.
type ChatService struct {
	completer chat.Completer
}

func NewChatService(completer chat.Completer) *ChatService {
	return &ChatService{completer: completer}
}

func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}
	return s.completer.Complete(ctx, message)
}
