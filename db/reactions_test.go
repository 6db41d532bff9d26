package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildboard/models"
	"guildboard/testutils"
)

func TestReactionsRepository_ListAndCount(t *testing.T) {
	dbConn, schema := setupRepositoryTest(t)
	repo := NewPostgresReactionsRepository(dbConn, schema)
	ctx := context.Background()

	now := time.Now()
	guildID := testutils.InsertTestGuild(t, dbConn, schema, now)
	channelID := testutils.InsertTestChannel(t, dbConn, schema, guildID)
	userID := testutils.InsertTestUser(t, dbConn, schema, false)
	messageContent := "reacted-to " + uuid.NewString()
	messageID := testutils.InsertTestMessage(t, dbConn, schema, guildID, channelID, userID,
		messageContent, now.Add(-time.Hour))

	totalBefore, err := repo.CountReactions(ctx)
	require.NoError(t, err)

	emoji := "emoji-" + uuid.NewString()
	for i := 0; i < 3; i++ {
		testutils.InsertTestReaction(t, dbConn, schema, messageID, userID, emoji,
			now.Add(-time.Duration(i)*time.Minute))
	}

	t.Run("count reflects every seeded reaction", func(t *testing.T) {
		total, err := repo.CountReactions(ctx)
		require.NoError(t, err)
		assert.Equal(t, totalBefore+3, total)
	})

	t.Run("listing resolves author and message, newest first", func(t *testing.T) {
		reactions, err := repo.ListReactions(ctx, 1000, 0)
		require.NoError(t, err)

		var seeded int
		for i, r := range reactions {
			if i > 0 {
				assert.False(t, r.CreatedAt.After(reactions[i-1].CreatedAt))
			}
			if r.EmojiName == emoji {
				seeded++
				assert.Equal(t, messageContent, r.MessageContent)
				assert.NotEmpty(t, r.Username)
			}
		}
		assert.Equal(t, 3, seeded)
	})

	t.Run("offset beyond total yields an empty page, not an error", func(t *testing.T) {
		reactions, err := repo.ListReactions(ctx, 10, 100000)
		require.NoError(t, err)
		assert.Empty(t, reactions)
	})
}

func TestReactionsRepository_TopEmojis(t *testing.T) {
	dbConn, schema := setupRepositoryTest(t)
	repo := NewPostgresReactionsRepository(dbConn, schema)
	ctx := context.Background()

	now := time.Now()
	guildID := testutils.InsertTestGuild(t, dbConn, schema, now)
	channelID := testutils.InsertTestChannel(t, dbConn, schema, guildID)
	userID := testutils.InsertTestUser(t, dbConn, schema, false)
	messageID := testutils.InsertTestMessage(t, dbConn, schema, guildID, channelID, userID,
		"popular "+uuid.NewString(), now.Add(-time.Hour))

	frequent := "emoji-" + uuid.NewString()
	rare := "emoji-" + uuid.NewString()
	for i := 0; i < 3; i++ {
		testutils.InsertTestReaction(t, dbConn, schema, messageID, userID, frequent,
			now.Add(-time.Duration(i)*time.Minute))
	}
	testutils.InsertTestReaction(t, dbConn, schema, messageID, userID, rare, now.Add(-time.Hour))

	findEmoji := func(emojis []models.EmojiStat, name string) (int, int64) {
		for i, e := range emojis {
			if e.EmojiName == name {
				return i, e.Count
			}
		}
		return -1, 0
	}

	t.Run("emojis are grouped and ordered by frequency", func(t *testing.T) {
		emojis, err := repo.TopEmojis(ctx, 100000)
		require.NoError(t, err)

		frequentIdx, frequentCount := findEmoji(emojis, frequent)
		rareIdx, rareCount := findEmoji(emojis, rare)
		require.NotEqual(t, -1, frequentIdx)
		require.NotEqual(t, -1, rareIdx)
		assert.Equal(t, int64(3), frequentCount)
		assert.Equal(t, int64(1), rareCount)
		assert.Less(t, frequentIdx, rareIdx, "higher counts must rank first")
	})

	t.Run("frequency table ignores listing pagination", func(t *testing.T) {
		reactions, err := repo.ListReactions(ctx, 1, 0)
		require.NoError(t, err)
		require.Len(t, reactions, 1)

		emojis, err := repo.TopEmojis(ctx, 100000)
		require.NoError(t, err)

		_, frequentCount := findEmoji(emojis, frequent)
		assert.Equal(t, int64(3), frequentCount, "counts must span all reactions, not one page")
	})
}

func TestReactionsRepository_RecentReactions(t *testing.T) {
	dbConn, schema := setupRepositoryTest(t)
	repo := NewPostgresReactionsRepository(dbConn, schema)
	ctx := context.Background()

	now := time.Now()
	guildID := testutils.InsertTestGuild(t, dbConn, schema, now)
	channelID := testutils.InsertTestChannel(t, dbConn, schema, guildID)
	userID := testutils.InsertTestUser(t, dbConn, schema, false)
	messageID := testutils.InsertTestMessage(t, dbConn, schema, guildID, channelID, userID,
		"reacted-to "+uuid.NewString(), now.Add(-40*time.Hour))

	freshEmoji := "fresh-" + uuid.NewString()
	staleEmoji := "stale-" + uuid.NewString()
	testutils.InsertTestReaction(t, dbConn, schema, messageID, userID, freshEmoji, now.Add(-2*time.Hour))
	testutils.InsertTestReaction(t, dbConn, schema, messageID, userID, staleEmoji, now.Add(-30*time.Hour))

	events, err := repo.RecentReactions(ctx, now.Add(-24*time.Hour), 100000)
	require.NoError(t, err)

	var fresh, stale bool
	for _, e := range events {
		assert.Equal(t, models.ActivityTypeReaction, e.ActivityType)
		if e.Content == freshEmoji {
			fresh = true
		}
		if e.Content == staleEmoji {
			stale = true
		}
	}
	assert.True(t, fresh, "reaction inside the window must carry its raw emoji name")
	assert.False(t, stale, "reaction outside the window must be excluded")
}
