package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"guildboard/models"
)

type PostgresGuildsRepository struct {
	db     *sqlx.DB
	schema string
}

func NewPostgresGuildsRepository(db *sqlx.DB, schema string) *PostgresGuildsRepository {
	return &PostgresGuildsRepository{db: db, schema: schema}
}

// ListGuilds returns every guild annotated with its distinct channel and
// message counts, most recently joined first. Outer joins keep guilds
// without channels or messages in the result with zero counts.
func (r *PostgresGuildsRepository) ListGuilds(ctx context.Context) ([]models.GuildActivity, error) {
	query := fmt.Sprintf(`
		SELECT
			g.guild_id,
			g.guild_name,
			g.owner_id,
			g.member_count,
			g.created_at,
			g.joined_at,
			COUNT(DISTINCT c.channel_id) AS channel_count,
			COUNT(DISTINCT m.message_id) AS message_count
		FROM %s.guilds g
		LEFT JOIN %s.channels c ON g.guild_id = c.guild_id
		LEFT JOIN %s.messages m ON g.guild_id = m.guild_id
		GROUP BY g.guild_id
		ORDER BY g.joined_at DESC`, r.schema, r.schema, r.schema)

	var guilds []models.GuildActivity
	if err := r.db.SelectContext(ctx, &guilds, query); err != nil {
		return nil, fmt.Errorf("failed to list guilds: %w", err)
	}
	if guilds == nil {
		guilds = []models.GuildActivity{}
	}
	return guilds, nil
}

func (r *PostgresGuildsRepository) CountGuilds(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s.guilds`, r.schema)

	var total int64
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("failed to count guilds: %w", err)
	}
	return total, nil
}

func (r *PostgresGuildsRepository) GuildOptions(ctx context.Context) ([]models.GuildOption, error) {
	query := fmt.Sprintf(`
		SELECT guild_id, guild_name
		FROM %s.guilds
		ORDER BY guild_name`, r.schema)

	var guilds []models.GuildOption
	if err := r.db.SelectContext(ctx, &guilds, query); err != nil {
		return nil, fmt.Errorf("failed to get guild options: %w", err)
	}
	if guilds == nil {
		guilds = []models.GuildOption{}
	}
	return guilds, nil
}
