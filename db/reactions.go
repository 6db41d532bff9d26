package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"guildboard/models"
)

type PostgresReactionsRepository struct {
	db     *sqlx.DB
	schema string
}

func NewPostgresReactionsRepository(db *sqlx.DB, schema string) *PostgresReactionsRepository {
	return &PostgresReactionsRepository{db: db, schema: schema}
}

// ListReactions returns reactions with their author and target message
// resolved, newest first. Author and message joins are inner: reactions
// whose user or message row is gone are excluded.
func (r *PostgresReactionsRepository) ListReactions(
	ctx context.Context,
	limit, offset int,
) ([]models.Reaction, error) {
	query := fmt.Sprintf(`
		SELECT
			r.id,
			COALESCE(r.emoji_name, '') AS emoji_name,
			r.emoji_id,
			COALESCE(r.emoji_animated, false) AS emoji_animated,
			r.created_at,
			u.username,
			u.display_name,
			COALESCE(m.content, '') AS message_content,
			c.channel_name,
			g.guild_name
		FROM %s.reactions r
		JOIN %s.users u ON r.user_id = u.user_id
		JOIN %s.messages m ON r.message_id = m.message_id
		LEFT JOIN %s.channels c ON m.channel_id = c.channel_id
		LEFT JOIN %s.guilds g ON m.guild_id = g.guild_id
		ORDER BY r.created_at DESC
		LIMIT ? OFFSET ?`, r.schema, r.schema, r.schema, r.schema, r.schema)

	var reactions []models.Reaction
	if err := r.db.SelectContext(ctx, &reactions, r.db.Rebind(query), limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}
	if reactions == nil {
		reactions = []models.Reaction{}
	}
	return reactions, nil
}

func (r *PostgresReactionsRepository) CountReactions(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s.reactions`, r.schema)

	var total int64
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("failed to count reactions: %w", err)
	}
	return total, nil
}

// TopEmojis returns the emoji frequency table over all reactions,
// independent of pagination.
func (r *PostgresReactionsRepository) TopEmojis(ctx context.Context, limit int) ([]models.EmojiStat, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(emoji_name, '') AS emoji_name, COUNT(*) AS count
		FROM %s.reactions
		GROUP BY emoji_name
		ORDER BY count DESC
		LIMIT ?`, r.schema)

	var emojis []models.EmojiStat
	if err := r.db.SelectContext(ctx, &emojis, r.db.Rebind(query), limit); err != nil {
		return nil, fmt.Errorf("failed to get top emojis: %w", err)
	}
	if emojis == nil {
		emojis = []models.EmojiStat{}
	}
	return emojis, nil
}

// RecentReactions returns reactions created at or after since as
// activity events tagged with the reaction discriminator, newest first.
// Content carries the raw emoji name; the display string is synthesized
// by the reports service.
func (r *PostgresReactionsRepository) RecentReactions(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]models.ActivityEvent, error) {
	query := fmt.Sprintf(`
		SELECT
			r.id,
			COALESCE(r.emoji_name, '') AS content,
			r.created_at,
			'reaction' AS activity_type,
			u.username,
			u.display_name,
			c.channel_name,
			g.guild_name
		FROM %s.reactions r
		JOIN %s.users u ON r.user_id = u.user_id
		JOIN %s.messages m ON r.message_id = m.message_id
		LEFT JOIN %s.channels c ON m.channel_id = c.channel_id
		LEFT JOIN %s.guilds g ON m.guild_id = g.guild_id
		WHERE r.created_at >= ?
		ORDER BY r.created_at DESC
		LIMIT ?`, r.schema, r.schema, r.schema, r.schema, r.schema)

	var events []models.ActivityEvent
	if err := r.db.SelectContext(ctx, &events, r.db.Rebind(query), since, limit); err != nil {
		return nil, fmt.Errorf("failed to get recent reactions: %w", err)
	}
	if events == nil {
		events = []models.ActivityEvent{}
	}
	return events, nil
}
