package models

// DailyMessageCount is one bucket of the 7-day message histogram. Date is
// a calendar day formatted as YYYY-MM-DD.
type DailyMessageCount struct {
	Date  string `json:"date"  db:"date"`
	Count int64  `json:"count" db:"count"`
}

// Stats is the dashboard overview: scalar totals, the 7-day message
// histogram and the top-5 non-bot users by message count.
type Stats struct {
	TotalMessages  int64               `json:"total_messages"`
	TotalUsers     int64               `json:"total_users"`
	TotalServers   int64               `json:"total_servers"`
	TotalChannels  int64               `json:"total_channels"`
	MessagesPerDay []DailyMessageCount `json:"messages_per_day"`
	TopUsers       []TopUser           `json:"top_users"`
}

// FilterOptions feeds the dashboard filter controls.
type FilterOptions struct {
	Servers  []GuildOption   `json:"servers"`
	Channels []ChannelOption `json:"channels"`
	Users    []UserOption    `json:"users"`
}

// PageParams is the limit/offset pair shared by the paginated listings.
type PageParams struct {
	Limit  int
	Offset int
}
