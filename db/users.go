package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"guildboard/models"
)

type PostgresUsersRepository struct {
	db     *sqlx.DB
	schema string
}

func NewPostgresUsersRepository(db *sqlx.DB, schema string) *PostgresUsersRepository {
	return &PostgresUsersRepository{db: db, schema: schema}
}

// ListUsers returns users annotated with their message count and last
// message timestamp, most active first. Bot accounts are included here,
// unlike the filter option and top user rankings.
func (r *PostgresUsersRepository) ListUsers(
	ctx context.Context,
	limit, offset int,
) ([]models.UserActivity, error) {
	query := fmt.Sprintf(`
		SELECT
			u.user_id,
			u.username,
			u.display_name,
			u.discriminator,
			COALESCE(u.bot, false) AS bot,
			u.created_at,
			u.first_seen,
			COUNT(m.message_id) AS message_count,
			MAX(m.created_at) AS last_message
		FROM %s.users u
		LEFT JOIN %s.messages m ON u.user_id = m.user_id
		GROUP BY u.user_id
		ORDER BY message_count DESC
		LIMIT ? OFFSET ?`, r.schema, r.schema)

	var users []models.UserActivity
	if err := r.db.SelectContext(ctx, &users, r.db.Rebind(query), limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []models.UserActivity{}
	}
	return users, nil
}

func (r *PostgresUsersRepository) CountUsers(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s.users`, r.schema)

	var total int64
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return total, nil
}

// TopUsers ranks non-bot users by message count. Ties break in store
// order.
func (r *PostgresUsersRepository) TopUsers(ctx context.Context, limit int) ([]models.TopUser, error) {
	query := fmt.Sprintf(`
		SELECT u.username, u.display_name, COUNT(m.message_id) AS message_count
		FROM %s.users u
		LEFT JOIN %s.messages m ON u.user_id = m.user_id
		WHERE NOT COALESCE(u.bot, false)
		GROUP BY u.user_id
		ORDER BY message_count DESC
		LIMIT ?`, r.schema, r.schema)

	var users []models.TopUser
	if err := r.db.SelectContext(ctx, &users, r.db.Rebind(query), limit); err != nil {
		return nil, fmt.Errorf("failed to get top users: %w", err)
	}
	if users == nil {
		users = []models.TopUser{}
	}
	return users, nil
}

// ActiveUserOptions returns non-bot users with at least one message,
// most active first, for the dashboard filter controls.
func (r *PostgresUsersRepository) ActiveUserOptions(
	ctx context.Context,
	limit int,
) ([]models.UserOption, error) {
	query := fmt.Sprintf(`
		SELECT u.user_id, u.username, u.display_name, COUNT(m.message_id) AS message_count
		FROM %s.users u
		LEFT JOIN %s.messages m ON u.user_id = m.user_id
		WHERE NOT COALESCE(u.bot, false)
		GROUP BY u.user_id
		HAVING COUNT(m.message_id) > 0
		ORDER BY message_count DESC
		LIMIT ?`, r.schema, r.schema)

	var users []models.UserOption
	if err := r.db.SelectContext(ctx, &users, r.db.Rebind(query), limit); err != nil {
		return nil, fmt.Errorf("failed to get active user options: %w", err)
	}
	if users == nil {
		users = []models.UserOption{}
	}
	return users, nil
}
