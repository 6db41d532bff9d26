package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"

	"guildboard/models"
)

type PostgresChannelsRepository struct {
	db     *sqlx.DB
	schema string
}

func NewPostgresChannelsRepository(db *sqlx.DB, schema string) *PostgresChannelsRepository {
	return &PostgresChannelsRepository{db: db, schema: schema}
}

// ListChannels returns channels annotated with their message count and
// resolved guild/category names, ordered by guild name then position.
// When guildID is present the listing is restricted to that guild.
func (r *PostgresChannelsRepository) ListChannels(
	ctx context.Context,
	guildID mo.Option[int64],
) ([]models.ChannelActivity, error) {
	b := &whereBuilder{}
	if id, ok := guildID.Get(); ok {
		b.Add("c.guild_id = ?", id)
	}

	query := fmt.Sprintf(`
		SELECT
			c.channel_id,
			c.channel_name,
			c.channel_type,
			c.position,
			c.created_at,
			g.guild_name,
			cat.category_name,
			COUNT(m.message_id) AS message_count
		FROM %s.channels c
		LEFT JOIN %s.guilds g ON c.guild_id = g.guild_id
		LEFT JOIN %s.categories cat ON c.category_id = cat.category_id
		LEFT JOIN %s.messages m ON c.channel_id = m.channel_id
		%s
		GROUP BY c.channel_id, g.guild_name, cat.category_name
		ORDER BY g.guild_name, c.position`,
		r.schema, r.schema, r.schema, r.schema, b.Clause())

	var channels []models.ChannelActivity
	if err := r.db.SelectContext(ctx, &channels, r.db.Rebind(query), b.Args()...); err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	if channels == nil {
		channels = []models.ChannelActivity{}
	}
	return channels, nil
}

func (r *PostgresChannelsRepository) CountChannels(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s.channels`, r.schema)

	var total int64
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("failed to count channels: %w", err)
	}
	return total, nil
}

func (r *PostgresChannelsRepository) ChannelOptions(ctx context.Context) ([]models.ChannelOption, error) {
	query := fmt.Sprintf(`
		SELECT c.channel_id, c.channel_name, g.guild_name
		FROM %s.channels c
		JOIN %s.guilds g ON c.guild_id = g.guild_id
		ORDER BY g.guild_name, c.channel_name`, r.schema, r.schema)

	var channels []models.ChannelOption
	if err := r.db.SelectContext(ctx, &channels, query); err != nil {
		return nil, fmt.Errorf("failed to get channel options: %w", err)
	}
	if channels == nil {
		channels = []models.ChannelOption{}
	}
	return channels, nil
}
