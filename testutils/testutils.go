package testutils

import (
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"guildboard/config"
)

// LoadTestConfig loads configuration for integration tests from
// environment variables. Tests skip when no database is configured.
func LoadTestConfig() (*config.AppConfig, error) {
	_ = godotenv.Load("../.env.test") // From package directories
	_ = godotenv.Load(".env.test")    // From root directory
	_ = godotenv.Load()               // Default .env file

	databaseURL := os.Getenv("DB_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DB_URL is not set")
	}

	databaseSchema := os.Getenv("DB_SCHEMA")
	if databaseSchema == "" {
		return nil, fmt.Errorf("DB_SCHEMA is not set")
	}

	return &config.AppConfig{
		DatabaseURL:    databaseURL,
		DatabaseSchema: databaseSchema,
	}, nil
}

// NewSnowflake returns a random positive id for seeded rows, large
// enough to stay clear of real collector-assigned snowflakes.
func NewSnowflake() int64 {
	return rand.Int63n(1<<62) + 1
}

// InsertTestGuild seeds a guild with a unique name and registers its
// cleanup. Returns the guild id.
func InsertTestGuild(t *testing.T, db *sqlx.DB, schema string, joinedAt time.Time) int64 {
	guildID := NewSnowflake()
	name := "test-guild-" + uuid.NewString()

	query := fmt.Sprintf(`
		INSERT INTO %s.guilds (guild_id, guild_name, member_count, created_at, joined_at)
		VALUES ($1, $2, $3, $4, $5)`, schema)
	_, err := db.Exec(query, guildID, name, 1, joinedAt, joinedAt)
	require.NoError(t, err, "Failed to insert test guild")

	t.Cleanup(func() {
		_, _ = db.Exec(fmt.Sprintf(`DELETE FROM %s.guilds WHERE guild_id = $1`, schema), guildID)
	})
	return guildID
}

// InsertTestUser seeds a user with a unique username and registers its
// cleanup. Returns the user id.
func InsertTestUser(t *testing.T, db *sqlx.DB, schema string, bot bool) int64 {
	userID := NewSnowflake()
	username := "test-user-" + uuid.NewString()

	query := fmt.Sprintf(`
		INSERT INTO %s.users (user_id, username, bot, created_at, first_seen)
		VALUES ($1, $2, $3, NOW(), NOW())`, schema)
	_, err := db.Exec(query, userID, username, bot)
	require.NoError(t, err, "Failed to insert test user")

	t.Cleanup(func() {
		_, _ = db.Exec(fmt.Sprintf(`DELETE FROM %s.users WHERE user_id = $1`, schema), userID)
	})
	return userID
}

// InsertTestChannel seeds a text channel in the given guild and
// registers its cleanup. Returns the channel id.
func InsertTestChannel(t *testing.T, db *sqlx.DB, schema string, guildID int64) int64 {
	channelID := NewSnowflake()
	name := "test-channel-" + uuid.NewString()

	query := fmt.Sprintf(`
		INSERT INTO %s.channels (channel_id, guild_id, channel_name, channel_type, position, created_at)
		VALUES ($1, $2, $3, 'text', 0, NOW())`, schema)
	_, err := db.Exec(query, channelID, guildID, name)
	require.NoError(t, err, "Failed to insert test channel")

	t.Cleanup(func() {
		_, _ = db.Exec(fmt.Sprintf(`DELETE FROM %s.channels WHERE channel_id = $1`, schema), channelID)
	})
	return channelID
}

// InsertTestMessage seeds a message and registers its cleanup. Returns
// the message id.
func InsertTestMessage(
	t *testing.T,
	db *sqlx.DB,
	schema string,
	guildID, channelID, userID int64,
	content string,
	createdAt time.Time,
) int64 {
	messageID := NewSnowflake()

	query := fmt.Sprintf(`
		INSERT INTO %s.messages (message_id, channel_id, guild_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`, schema)
	_, err := db.Exec(query, messageID, channelID, guildID, userID, content, createdAt)
	require.NoError(t, err, "Failed to insert test message")

	t.Cleanup(func() {
		_, _ = db.Exec(fmt.Sprintf(`DELETE FROM %s.messages WHERE message_id = $1`, schema), messageID)
	})
	return messageID
}

// InsertTestReaction seeds a reaction on the given message and registers
// its cleanup. Returns the reaction id.
func InsertTestReaction(
	t *testing.T,
	db *sqlx.DB,
	schema string,
	messageID, userID int64,
	emojiName string,
	createdAt time.Time,
) int64 {
	reactionID := NewSnowflake()

	query := fmt.Sprintf(`
		INSERT INTO %s.reactions (id, message_id, user_id, emoji_name, emoji_animated, created_at)
		VALUES ($1, $2, $3, $4, false, $5)`, schema)
	_, err := db.Exec(query, reactionID, messageID, userID, emojiName, createdAt)
	require.NoError(t, err, "Failed to insert test reaction")

	t.Cleanup(func() {
		_, _ = db.Exec(fmt.Sprintf(`DELETE FROM %s.reactions WHERE id = $1`, schema), reactionID)
	})
	return reactionID
}
