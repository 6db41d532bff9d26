package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"guildboard/models"
)

type PostgresMessagesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column list for the messages listing. The author join is inner by
// design: messages whose author row is gone are excluded. Channel and
// guild resolve through outer joins and may be null.
var messageColumns = []string{
	"m.message_id",
	"COALESCE(m.content, '') AS content",
	"m.created_at",
	"m.edited_at",
	"u.username",
	"u.display_name",
	"c.channel_name",
	"g.guild_name",
	"m.attachments",
	"m.embeds",
}

func NewPostgresMessagesRepository(db *sqlx.DB, schema string) *PostgresMessagesRepository {
	return &PostgresMessagesRepository{db: db, schema: schema}
}

func (r *PostgresMessagesRepository) ListMessages(
	ctx context.Context,
	filters models.MessageFilters,
	limit, offset int,
) ([]models.Message, error) {
	b := buildMessageFilters(filters)
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.messages m
		JOIN %s.users u ON m.user_id = u.user_id
		LEFT JOIN %s.channels c ON m.channel_id = c.channel_id
		LEFT JOIN %s.guilds g ON m.guild_id = g.guild_id
		%s
		ORDER BY m.created_at DESC
		LIMIT ? OFFSET ?`,
		strings.Join(messageColumns, ", "), r.schema, r.schema, r.schema, r.schema, b.Clause())

	args := append(b.Args(), limit, offset)
	var messages []models.Message
	if err := r.db.SelectContext(ctx, &messages, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// CountMessages runs the same filter predicates as ListMessages without
// limit/offset, including the inner author join.
func (r *PostgresMessagesRepository) CountMessages(
	ctx context.Context,
	filters models.MessageFilters,
) (int64, error) {
	b := buildMessageFilters(filters)
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s.messages m
		JOIN %s.users u ON m.user_id = u.user_id
		LEFT JOIN %s.channels c ON m.channel_id = c.channel_id
		LEFT JOIN %s.guilds g ON m.guild_id = g.guild_id
		%s`, r.schema, r.schema, r.schema, r.schema, b.Clause())

	var total int64
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(query), b.Args()...); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return total, nil
}

// TotalMessages counts every captured message, including messages whose
// author row is gone. The stats scalar uses this; the listing count
// keeps the inner author join of the listing itself.
func (r *PostgresMessagesRepository) TotalMessages(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s.messages`, r.schema)

	var total int64
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("failed to count all messages: %w", err)
	}
	return total, nil
}

// MessagesPerDay returns the daily message histogram for the window
// starting at since, grouped by calendar day ascending.
func (r *PostgresMessagesRepository) MessagesPerDay(
	ctx context.Context,
	since time.Time,
) ([]models.DailyMessageCount, error) {
	query := fmt.Sprintf(`
		SELECT to_char(created_at, 'YYYY-MM-DD') AS date, COUNT(*) AS count
		FROM %s.messages
		WHERE created_at >= ?
		GROUP BY to_char(created_at, 'YYYY-MM-DD')
		ORDER BY date ASC`, r.schema)

	var days []models.DailyMessageCount
	if err := r.db.SelectContext(ctx, &days, r.db.Rebind(query), since); err != nil {
		return nil, fmt.Errorf("failed to get messages per day: %w", err)
	}
	if days == nil {
		days = []models.DailyMessageCount{}
	}
	return days, nil
}

// RecentMessages returns messages created at or after since as activity
// events tagged with the message discriminator, newest first.
func (r *PostgresMessagesRepository) RecentMessages(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]models.ActivityEvent, error) {
	query := fmt.Sprintf(`
		SELECT
			m.message_id AS id,
			COALESCE(m.content, '') AS content,
			m.created_at,
			'message' AS activity_type,
			u.username,
			u.display_name,
			c.channel_name,
			g.guild_name
		FROM %s.messages m
		JOIN %s.users u ON m.user_id = u.user_id
		LEFT JOIN %s.channels c ON m.channel_id = c.channel_id
		LEFT JOIN %s.guilds g ON m.guild_id = g.guild_id
		WHERE m.created_at >= ?
		ORDER BY m.created_at DESC
		LIMIT ?`, r.schema, r.schema, r.schema, r.schema)

	var events []models.ActivityEvent
	if err := r.db.SelectContext(ctx, &events, r.db.Rebind(query), since, limit); err != nil {
		return nil, fmt.Errorf("failed to get recent messages: %w", err)
	}
	if events == nil {
		events = []models.ActivityEvent{}
	}
	return events, nil
}
