package messages

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wefund/wefund/internal/domain"
	"github.com/wefund/wefund/internal/dto"
	"github.com/wefund/wefund/internal/service/messageservice"
	"github.com/wefund/wefund/pkg/auth"
	"github.com/wefund/wefund/pkg/utils"
)

//go:generate mockgen -source=messages.go -destination=mocks.go -package=messages

type Service interface {
	Send(ctx context.Context, senderID, receiverID, content string) (*messageservice.SentMessage, error)
	ListConversations(ctx context.Context, userID string) ([]domain.ConversationSummary, error)
	GetDialog(ctx context.Context, userID, partnerID string) ([]domain.Message, error)
}

type MessageHandler struct {
	messageService Service
}

func New(messageService Service) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

func messageDTO(m *domain.Message) dto.MessageDTO {
	return dto.MessageDTO{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Message:    m.Content,
		Read:       m.Read,
		Timestamp:  m.SentAt,
	}
}

// ListConversations godoc
//
//	@Summary		List conversations
//	@Description	Get one entry per chat partner with the latest message exchanged, newest first.
//	@Tags			Messages
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ConversationDTO	"Conversation summaries"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/messages [get]
func (h *MessageHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	conversations, err := h.messageService.ListConversations(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch conversations")
		return
	}

	response := make([]dto.ConversationDTO, len(conversations))
	for i, c := range conversations {
		response[i] = dto.ConversationDTO{
			UserID:      c.UserID,
			UserName:    c.UserName,
			LastMessage: c.LastMessage,
			Timestamp:   c.Timestamp,
			Unread:      c.Unread,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetDialog godoc
//
//	@Summary		Get a dialog
//	@Description	Get the full exchange with another user, oldest first. Their unread messages to the caller are marked read.
//	@Tags			Messages
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"Partner user ID"
//	@Success		200	{array}		dto.MessageDTO	"Messages in the dialog"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Partner not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/messages/{id} [get]
func (h *MessageHandler) GetDialog(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	partnerID := chi.URLParam(r, "id")

	messages, err := h.messageService.GetDialog(r.Context(), userID, partnerID)
	if err != nil {
		switch {
		case errors.Is(err, messageservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch messages")
		}
		return
	}

	response := make([]dto.MessageDTO, len(messages))
	for i, m := range messages {
		response[i] = messageDTO(&m)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Send godoc
//
//	@Summary		Send a message
//	@Description	Send a direct message to another user. The message starts unread.
//	@Tags			Messages
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SendMessageRequestDTO	true	"Message payload"
//	@Success		200		{object}	dto.MessageSentResponseDTO	"Stored message"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Recipient not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/messages/send [post]
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.SendMessageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sent, err := h.messageService.Send(r.Context(), userID, req.ReceiverID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, messageservice.ErrEmptyMessage), errors.Is(err, messageservice.ErrSelfMessage):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, messageservice.ErrRecipientNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send message")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MessageSentResponseDTO{
		ID:           sent.Message.ID,
		SenderID:     sent.Message.SenderID,
		SenderName:   sent.SenderName,
		ReceiverID:   sent.Message.ReceiverID,
		ReceiverName: sent.ReceiverName,
		Message:      sent.Message.Content,
		Read:         sent.Message.Read,
		Timestamp:    sent.Message.SentAt,
	})
}
