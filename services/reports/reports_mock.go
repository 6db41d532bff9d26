package reports

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"guildboard/models"
)

// MockReportsService is a mock implementation of the ReportsService interface
type MockReportsService struct {
	mock.Mock
}

func (m *MockReportsService) GetStats(ctx context.Context) (*models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stats), args.Error(1)
}

func (m *MockReportsService) ListMessages(
	ctx context.Context,
	filters models.MessageFilters,
	page models.PageParams,
) (*models.MessagePage, error) {
	args := m.Called(ctx, filters, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MessagePage), args.Error(1)
}

func (m *MockReportsService) ListUsers(
	ctx context.Context,
	page models.PageParams,
) (*models.UserPage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserPage), args.Error(1)
}

func (m *MockReportsService) ListServers(ctx context.Context) ([]models.GuildActivity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GuildActivity), args.Error(1)
}

func (m *MockReportsService) ListChannels(
	ctx context.Context,
	guildID mo.Option[int64],
) ([]models.ChannelActivity, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChannelActivity), args.Error(1)
}

func (m *MockReportsService) ListReactions(
	ctx context.Context,
	page models.PageParams,
) (*models.ReactionPage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReactionPage), args.Error(1)
}

func (m *MockReportsService) GetRecentActivity(
	ctx context.Context,
	limit int,
) ([]models.ActivityEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActivityEvent), args.Error(1)
}

func (m *MockReportsService) GetFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FilterOptions), args.Error(1)
}
