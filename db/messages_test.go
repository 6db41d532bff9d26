package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildboard/models"
	"guildboard/testutils"
)

func setupRepositoryTest(t *testing.T) (*sqlx.DB, string) {
	cfg, err := testutils.LoadTestConfig()
	if err != nil {
		t.Skipf("skipping integration test: %v", err)
	}

	dbConn, err := NewConnection(cfg.DatabaseURL)
	require.NoError(t, err)
	t.Cleanup(func() { dbConn.Close() })

	return dbConn, cfg.DatabaseSchema
}

func TestMessagesRepository_ListAndCount(t *testing.T) {
	dbConn, schema := setupRepositoryTest(t)
	repo := NewPostgresMessagesRepository(dbConn, schema)
	ctx := context.Background()

	now := time.Now()
	guildID := testutils.InsertTestGuild(t, dbConn, schema, now)
	channelID := testutils.InsertTestChannel(t, dbConn, schema, guildID)
	userID := testutils.InsertTestUser(t, dbConn, schema, false)

	token := uuid.NewString()
	for i := 0; i < 15; i++ {
		content := fmt.Sprintf("message %d", i)
		if i < 3 {
			content = fmt.Sprintf("needle-%s %d", token, i)
		}
		testutils.InsertTestMessage(t, dbConn, schema, guildID, channelID, userID,
			content, now.Add(-time.Duration(i)*time.Minute))
	}

	guildFilter := models.MessageFilters{GuildID: mo.Some(guildID)}

	t.Run("page size and total reflect the filtered set", func(t *testing.T) {
		messages, err := repo.ListMessages(ctx, guildFilter, 10, 0)
		require.NoError(t, err)
		assert.Len(t, messages, 10)

		total, err := repo.CountMessages(ctx, guildFilter)
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
	})

	t.Run("listing is ordered newest first", func(t *testing.T) {
		messages, err := repo.ListMessages(ctx, guildFilter, 15, 0)
		require.NoError(t, err)
		for i := 1; i < len(messages); i++ {
			assert.False(t, messages[i].CreatedAt.After(messages[i-1].CreatedAt))
		}
	})

	t.Run("offset beyond total yields an empty page, not an error", func(t *testing.T) {
		messages, err := repo.ListMessages(ctx, guildFilter, 10, 100)
		require.NoError(t, err)
		assert.Empty(t, messages)

		total, err := repo.CountMessages(ctx, guildFilter)
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
	})

	t.Run("search composes with the guild filter", func(t *testing.T) {
		filters := models.MessageFilters{
			GuildID: mo.Some(guildID),
			Search:  mo.Some("needle-" + token),
		}

		messages, err := repo.ListMessages(ctx, filters, 50, 0)
		require.NoError(t, err)
		assert.Len(t, messages, 3)

		total, err := repo.CountMessages(ctx, filters)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("nonexistent guild silently yields an empty set", func(t *testing.T) {
		filters := models.MessageFilters{GuildID: mo.Some[int64](0)}

		messages, err := repo.ListMessages(ctx, filters, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, messages)
	})
}

func TestMessagesRepository_TotalMessages(t *testing.T) {
	dbConn, schema := setupRepositoryTest(t)
	repo := NewPostgresMessagesRepository(dbConn, schema)
	ctx := context.Background()

	now := time.Now()
	guildID := testutils.InsertTestGuild(t, dbConn, schema, now)
	channelID := testutils.InsertTestChannel(t, dbConn, schema, guildID)
	userID := testutils.InsertTestUser(t, dbConn, schema, false)

	totalBefore, err := repo.TotalMessages(ctx)
	require.NoError(t, err)
	joinedBefore, err := repo.CountMessages(ctx, models.MessageFilters{})
	require.NoError(t, err)

	testutils.InsertTestMessage(t, dbConn, schema, guildID, channelID, userID,
		"authored "+uuid.NewString(), now)
	// The collector's tables carry no foreign keys, so a message can
	// outlive its author row. Seed one whose author was never captured.
	testutils.InsertTestMessage(t, dbConn, schema, guildID, channelID, testutils.NewSnowflake(),
		"orphaned "+uuid.NewString(), now)

	totalAfter, err := repo.TotalMessages(ctx)
	require.NoError(t, err)
	joinedAfter, err := repo.CountMessages(ctx, models.MessageFilters{})
	require.NoError(t, err)

	assert.Equal(t, totalBefore+2, totalAfter, "total must include messages without an author row")
	assert.Equal(t, joinedBefore+1, joinedAfter, "listing count resolves authors and skips orphans")
}

func TestMessagesRepository_MessagesPerDay(t *testing.T) {
	dbConn, schema := setupRepositoryTest(t)
	repo := NewPostgresMessagesRepository(dbConn, schema)
	ctx := context.Background()

	now := time.Now()
	guildID := testutils.InsertTestGuild(t, dbConn, schema, now)
	channelID := testutils.InsertTestChannel(t, dbConn, schema, guildID)
	userID := testutils.InsertTestUser(t, dbConn, schema, false)

	since := now.Add(-7 * 24 * time.Hour)
	testutils.InsertTestMessage(t, dbConn, schema, guildID, channelID, userID,
		"today "+uuid.NewString(), now.Add(-time.Hour))
	testutils.InsertTestMessage(t, dbConn, schema, guildID, channelID, userID,
		"midweek "+uuid.NewString(), now.Add(-3*24*time.Hour))
	testutils.InsertTestMessage(t, dbConn, schema, guildID, channelID, userID,
		"lastweek "+uuid.NewString(), now.Add(-10*24*time.Hour))

	days, err := repo.MessagesPerDay(ctx, since)
	require.NoError(t, err)
	require.NotEmpty(t, days)

	seen := make(map[string]bool)
	for i, d := range days {
		assert.GreaterOrEqual(t, d.Date, since.Format("2006-01-02"), "no bucket may predate the window")
		assert.False(t, seen[d.Date], "each calendar day appears once")
		seen[d.Date] = true
		if i > 0 {
			assert.Greater(t, d.Date, days[i-1].Date, "buckets are ordered by day ascending")
		}
		assert.Positive(t, d.Count)
	}
	assert.True(t, seen[now.Add(-3*24*time.Hour).Format("2006-01-02")],
		"a day with seeded messages inside the window must have a bucket")
}

func TestMessagesRepository_RecentMessages(t *testing.T) {
	dbConn, schema := setupRepositoryTest(t)
	repo := NewPostgresMessagesRepository(dbConn, schema)
	ctx := context.Background()

	now := time.Now()
	guildID := testutils.InsertTestGuild(t, dbConn, schema, now)
	channelID := testutils.InsertTestChannel(t, dbConn, schema, guildID)
	userID := testutils.InsertTestUser(t, dbConn, schema, false)

	token := uuid.NewString()
	testutils.InsertTestMessage(t, dbConn, schema, guildID, channelID, userID,
		"fresh "+token, now.Add(-2*time.Hour))
	testutils.InsertTestMessage(t, dbConn, schema, guildID, channelID, userID,
		"stale "+token, now.Add(-30*time.Hour))

	events, err := repo.RecentMessages(ctx, now.Add(-24*time.Hour), 100)
	require.NoError(t, err)

	var fresh, stale bool
	for _, e := range events {
		assert.Equal(t, models.ActivityTypeMessage, e.ActivityType)
		if e.Content == "fresh "+token {
			fresh = true
		}
		if e.Content == "stale "+token {
			stale = true
		}
	}
	assert.True(t, fresh, "message inside the window must be returned")
	assert.False(t, stale, "message outside the window must be excluded")
}
