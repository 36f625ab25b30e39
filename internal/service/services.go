package service

import (
	"github.com/mindmate/mindmate-server/internal/chat"
	"github.com/mindmate/mindmate-server/internal/repository"
	"github.com/mindmate/mindmate-server/internal/token"
)

type Services struct {
	Auth    *AuthService
	Journal *JournalService
	Chat    *ChatService
}

func NewServices(repos *repository.Repositories, tokens *token.Manager, completer chat.Completer) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, tokens),
		Journal: NewJournalService(repos.Journal),
		Chat:    NewChatService(completer),
	}
}
