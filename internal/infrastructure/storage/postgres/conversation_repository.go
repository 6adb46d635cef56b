package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"commandcenter/internal/domain/conversation"
)

type ConversationRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewConversationRepository(pool *pgxpool.Pool, log *slog.Logger) *ConversationRepository {
	return &ConversationRepository{
		pool: pool,
		log:  log.With("component", "conversation_repository"),
	}
}

func (r *ConversationRepository) MeetingsBetween(ctx context.Context, from, to time.Time) ([]conversation.Conversation, error) {
	const query = `
		SELECT cv.id, cv.contact_id, ct.nom_complet, cv.type, cv.happened_at,
		       cv.notes, cv.created_at
		FROM conversations cv
		JOIN contacts ct ON ct.id = cv.contact_id
		WHERE cv.type = 'meeting' AND cv.happened_at >= $1 AND cv.happened_at < $2
		ORDER BY cv.happened_at ASC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("failed to list meetings", "from", from, "to", to, "error", err)
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	defer rows.Close()

	var meetings []conversation.Conversation
	for rows.Next() {
		var c conversation.Conversation
		err := rows.Scan(
			&c.ID, &c.ContactID, &c.ContactName, &c.Type, &c.HappenedAt,
			&c.Notes, &c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		meetings = append(meetings, c)
	}

	return meetings, rows.Err()
}
