package messageservice

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wefund/wefund/internal/domain"
)

//go:generate mockgen -source=messageservice.go -destination=mocks.go -package=messageservice

type UserRepo interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
}

type MessageRepo interface {
	Create(ctx context.Context, message *domain.Message) (*domain.Message, error)
	FindDialog(ctx context.Context, userID, partnerID string) ([]domain.Message, error)
	MarkRead(ctx context.Context, senderID, receiverID string) error
	ListLatest(ctx context.Context, userID string) ([]domain.Message, error)
}

type Service struct {
	userRepo    UserRepo
	messageRepo MessageRepo
}

func New(userRepo UserRepo, messageRepo MessageRepo) *Service {
	return &Service{
		userRepo:    userRepo,
		messageRepo: messageRepo,
	}
}

var (
	ErrEmptyMessage      = errors.New("message cannot be empty")
	ErrSelfMessage       = errors.New("cannot send a message to yourself")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrUserNotFound      = errors.New("user not found")
)

// SentMessage carries the stored message plus the participant names the
// response echoes back.
type SentMessage struct {
	Message      *domain.Message
	SenderName   string
	ReceiverName string
}

func (s *Service) Send(ctx context.Context, senderID, receiverID, content string) (*SentMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	if senderID == receiverID {
		return nil, ErrSelfMessage
	}

	sender, err := s.userRepo.FindByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, ErrUserNotFound
	}
	receiver, err := s.userRepo.FindByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, ErrRecipientNotFound
	}

	message, err := s.messageRepo.Create(ctx, &domain.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		SentAt:     time.Now(),
	})
	if err != nil {
		zap.L().Error("can't send message",
			zap.String("sender_id", senderID),
			zap.String("receiver_id", receiverID),
			zap.Error(err))
		return nil, err
	}

	return &SentMessage{
		Message:      message,
		SenderName:   sender.Name,
		ReceiverName: receiver.Name,
	}, nil
}

// ListConversations builds the user's inbox: one entry per partner with the
// latest message exchanged, newest first. The entry is unread when the latest
// message is addressed to the user and not yet read.
func (s *Service) ListConversations(ctx context.Context, userID string) ([]domain.ConversationSummary, error) {
	latest, err := s.messageRepo.ListLatest(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list conversations", zap.Error(err))
		return nil, err
	}

	summaries := make([]domain.ConversationSummary, 0, len(latest))
	for _, message := range latest {
		partnerID := message.SenderID
		if partnerID == userID {
			partnerID = message.ReceiverID
		}
		partner, err := s.userRepo.FindByID(ctx, partnerID)
		if err != nil {
			return nil, err
		}
		if partner == nil {
			// Partner account removed; the conversation is orphaned.
			continue
		}
		summaries = append(summaries, domain.ConversationSummary{
			UserID:      partnerID,
			UserName:    partner.Name,
			LastMessage: message.Content,
			Timestamp:   message.SentAt,
			Unread:      !message.Read && message.ReceiverID == userID,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Timestamp.After(summaries[j].Timestamp)
	})
	return summaries, nil
}

// GetDialog returns the full exchange with a partner, oldest first, and marks
// the partner's messages to the user as read.
func (s *Service) GetDialog(ctx context.Context, userID, partnerID string) ([]domain.Message, error) {
	partner, err := s.userRepo.FindByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, ErrUserNotFound
	}

	messages, err := s.messageRepo.FindDialog(ctx, userID, partnerID)
	if err != nil {
		zap.L().Error("failed to fetch dialog", zap.Error(err))
		return nil, err
	}

	if err := s.messageRepo.MarkRead(ctx, partnerID, userID); err != nil {
		return nil, err
	}
	return messages, nil
}
