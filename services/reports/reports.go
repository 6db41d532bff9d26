package reports

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/samber/mo"

	"guildboard/db"
	"guildboard/models"
)

const (
	// statsWindow is the histogram window of the stats view.
	statsWindow = 7 * 24 * time.Hour
	// activityWindow bounds the recent activity feed.
	activityWindow = 24 * time.Hour

	topUsersLimit    = 5
	topEmojisLimit   = 10
	userOptionsLimit = 50
)

type ReportsService struct {
	messagesRepo  *db.PostgresMessagesRepository
	usersRepo     *db.PostgresUsersRepository
	guildsRepo    *db.PostgresGuildsRepository
	channelsRepo  *db.PostgresChannelsRepository
	reactionsRepo *db.PostgresReactionsRepository
}

func NewReportsService(
	messagesRepo *db.PostgresMessagesRepository,
	usersRepo *db.PostgresUsersRepository,
	guildsRepo *db.PostgresGuildsRepository,
	channelsRepo *db.PostgresChannelsRepository,
	reactionsRepo *db.PostgresReactionsRepository,
) *ReportsService {
	return &ReportsService{
		messagesRepo:  messagesRepo,
		usersRepo:     usersRepo,
		guildsRepo:    guildsRepo,
		channelsRepo:  channelsRepo,
		reactionsRepo: reactionsRepo,
	}
}

func (s *ReportsService) GetStats(ctx context.Context) (*models.Stats, error) {
	log.Printf("📋 Starting to collect dashboard stats")

	totalMessages, err := s.messagesRepo.TotalMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	totalUsers, err := s.usersRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	totalGuilds, err := s.guildsRepo.CountGuilds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	totalChannels, err := s.channelsRepo.CountChannels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	messagesPerDay, err := s.messagesRepo.MessagesPerDay(ctx, time.Now().Add(-statsWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	topUsers, err := s.usersRepo.TopUsers(ctx, topUsersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	log.Printf("📋 Completed successfully - collected stats over %d messages", totalMessages)
	return &models.Stats{
		TotalMessages:  totalMessages,
		TotalUsers:     totalUsers,
		TotalServers:   totalGuilds,
		TotalChannels:  totalChannels,
		MessagesPerDay: messagesPerDay,
		TopUsers:       topUsers,
	}, nil
}

func (s *ReportsService) ListMessages(
	ctx context.Context,
	filters models.MessageFilters,
	page models.PageParams,
) (*models.MessagePage, error) {
	log.Printf("📋 Starting to list messages - limit: %d, offset: %d", page.Limit, page.Offset)

	messages, err := s.messagesRepo.ListMessages(ctx, filters, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	// Separate count query over the same predicates; the two may observe
	// different snapshots under concurrent writes.
	total, err := s.messagesRepo.CountMessages(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved %d of %d messages", len(messages), total)
	return &models.MessagePage{
		Messages: messages,
		Total:    total,
		Limit:    page.Limit,
		Offset:   page.Offset,
	}, nil
}

func (s *ReportsService) ListUsers(
	ctx context.Context,
	page models.PageParams,
) (*models.UserPage, error) {
	log.Printf("📋 Starting to list users - limit: %d, offset: %d", page.Limit, page.Offset)

	users, err := s.usersRepo.ListUsers(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	total, err := s.usersRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved %d of %d users", len(users), total)
	return &models.UserPage{
		Users:  users,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

func (s *ReportsService) ListServers(ctx context.Context) ([]models.GuildActivity, error) {
	log.Printf("📋 Starting to list servers")

	guilds, err := s.guildsRepo.ListGuilds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved %d servers", len(guilds))
	return guilds, nil
}

func (s *ReportsService) ListChannels(
	ctx context.Context,
	guildID mo.Option[int64],
) ([]models.ChannelActivity, error) {
	log.Printf("📋 Starting to list channels")

	channels, err := s.channelsRepo.ListChannels(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved %d channels", len(channels))
	return channels, nil
}

func (s *ReportsService) ListReactions(
	ctx context.Context,
	page models.PageParams,
) (*models.ReactionPage, error) {
	log.Printf("📋 Starting to list reactions - limit: %d, offset: %d", page.Limit, page.Offset)

	reactions, err := s.reactionsRepo.ListReactions(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}
	emojiStats, err := s.reactionsRepo.TopEmojis(ctx, topEmojisLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}
	total, err := s.reactionsRepo.CountReactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved %d of %d reactions", len(reactions), total)
	return &models.ReactionPage{
		Reactions:  reactions,
		EmojiStats: emojiStats,
		Total:      total,
		Limit:      page.Limit,
		Offset:     page.Offset,
	}, nil
}

// GetRecentActivity merges messages and reactions from the last 24 hours
// into one feed ordered by timestamp descending. Each source query is
// bounded by limit, and the merged feed is truncated to limit again
// after the merge.
func (s *ReportsService) GetRecentActivity(ctx context.Context, limit int) ([]models.ActivityEvent, error) {
	log.Printf("📋 Starting to collect recent activity - limit: %d", limit)

	since := time.Now().Add(-activityWindow)
	messageEvents, err := s.messagesRepo.RecentMessages(ctx, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent activity: %w", err)
	}
	reactionEvents, err := s.reactionsRepo.RecentReactions(ctx, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent activity: %w", err)
	}

	for i := range reactionEvents {
		reactionEvents[i].Content = formatReactionContent(reactionEvents[i].Content)
	}

	activity := mergeActivity(messageEvents, reactionEvents, limit)
	log.Printf("📋 Completed successfully - merged %d activity events", len(activity))
	return activity, nil
}

func (s *ReportsService) GetFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	log.Printf("📋 Starting to collect filter options")

	guilds, err := s.guildsRepo.GuildOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get filter options: %w", err)
	}
	channels, err := s.channelsRepo.ChannelOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get filter options: %w", err)
	}
	users, err := s.usersRepo.ActiveUserOptions(ctx, userOptionsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get filter options: %w", err)
	}

	log.Printf("📋 Completed successfully - %d servers, %d channels, %d users",
		len(guilds), len(channels), len(users))
	return &models.FilterOptions{
		Servers:  guilds,
		Channels: channels,
		Users:    users,
	}, nil
}

// formatReactionContent builds the human-readable content string of a
// reaction activity event from its emoji name.
func formatReactionContent(emojiName string) string {
	return fmt.Sprintf("Reaction %s added", emojiName)
}

// mergeActivity merges two activity streams that are each already
// ordered by timestamp descending, preserving that order and truncating
// the result to limit.
func mergeActivity(a, b []models.ActivityEvent, limit int) []models.ActivityEvent {
	if limit < 0 {
		limit = 0
	}
	merged := make([]models.ActivityEvent, 0, min(limit, len(a)+len(b)))
	i, j := 0, 0
	for len(merged) < limit && (i < len(a) || j < len(b)) {
		switch {
		case i >= len(a):
			merged = append(merged, b[j])
			j++
		case j >= len(b):
			merged = append(merged, a[i])
			i++
		case b[j].CreatedAt.After(a[i].CreatedAt):
			merged = append(merged, b[j])
			j++
		default:
			merged = append(merged, a[i])
			i++
		}
	}
	return merged
}
