package services

import (
	"context"

	"github.com/samber/mo"

	"guildboard/models"
)

// ReportsService exposes the reporting views consumed by the dashboard.
// Every operation is a read-only request-response cycle; any store
// failure aborts the operation with no partial result.
type ReportsService interface {
	GetStats(ctx context.Context) (*models.Stats, error)
	ListMessages(
		ctx context.Context,
		filters models.MessageFilters,
		page models.PageParams,
	) (*models.MessagePage, error)
	ListUsers(ctx context.Context, page models.PageParams) (*models.UserPage, error)
	ListServers(ctx context.Context) ([]models.GuildActivity, error)
	ListChannels(ctx context.Context, guildID mo.Option[int64]) ([]models.ChannelActivity, error)
	ListReactions(ctx context.Context, page models.PageParams) (*models.ReactionPage, error)
	GetRecentActivity(ctx context.Context, limit int) ([]models.ActivityEvent, error)
	GetFilterOptions(ctx context.Context) (*models.FilterOptions, error)
}
