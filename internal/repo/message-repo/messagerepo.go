package messagerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/wefund/wefund/internal/domain"
	"github.com/wefund/wefund/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const messageColumns = `id, sender_id, receiver_id, content, read, sent_at`

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.Read, &m.SentAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Create(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, content, read, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		message.ID, message.SenderID, message.ReceiverID, message.Content, message.Read, message.SentAt,
	)
	if err != nil {
		zap.L().Error("can't save message", zap.Error(err))
		return nil, err
	}
	return message, nil
}

// FindDialog returns the full two-way exchange between two users, oldest
// first.
func (r *Repository) FindDialog(ctx context.Context, userID, partnerID string) ([]domain.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY sent_at ASC
	`
	rows, err := r.db.Query(ctx, query, userID, partnerID)
	if err != nil {
		zap.L().Error("can't get dialog", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			zap.L().Error("failed to scan message row", zap.Error(err))
			return nil, err
		}
		messages = append(messages, *message)
	}

	return messages, nil
}

// MarkRead marks every unread message from senderID to receiverID as read.
func (r *Repository) MarkRead(ctx context.Context, senderID, receiverID string) error {
	query := `UPDATE messages SET read = TRUE WHERE sender_id = $1 AND receiver_id = $2 AND NOT read`
	if _, err := r.db.Exec(ctx, query, senderID, receiverID); err != nil {
		zap.L().Error("can't mark messages read", zap.Error(err))
		return err
	}
	return nil
}

// ListLatest returns the most recent message of every conversation the user
// participates in, newest conversation first.
func (r *Repository) ListLatest(ctx context.Context, userID string) ([]domain.Message, error) {
	query := `
		SELECT DISTINCT ON (LEAST(sender_id, receiver_id), GREATEST(sender_id, receiver_id))
		       ` + messageColumns + `
		FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY LEAST(sender_id, receiver_id), GREATEST(sender_id, receiver_id), sent_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list conversations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			zap.L().Error("failed to scan message row", zap.Error(err))
			return nil, err
		}
		messages = append(messages, *message)
	}

	return messages, nil
}
