package dto

import "time"

type SendMessageRequestDTO struct {
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message" example:"Is the project still open?"`
}

type MessageDTO struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	Timestamp  time.Time `json:"timestamp"`
}

type MessageSentResponseDTO struct {
	ID           string    `json:"id"`
	SenderID     string    `json:"senderId"`
	SenderName   string    `json:"senderName"`
	ReceiverID   string    `json:"receiverId"`
	ReceiverName string    `json:"receiverName"`
	Message      string    `json:"message"`
	Read         bool      `json:"read"`
	Timestamp    time.Time `json:"timestamp"`
}

type ConversationDTO struct {
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	LastMessage string    `json:"lastMessage"`
	Timestamp   time.Time `json:"timestamp"`
	Unread      bool      `json:"unread"`
}
