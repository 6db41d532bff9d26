package models

import (
	"encoding/json"
	"time"

	"github.com/samber/mo"
)

// Message is a single row of the messages listing. Channel and guild are
// resolved through outer joins and stay nil when the parent was deleted
// upstream. Attachments and embeds are opaque JSON blobs written by the
// collector.
type Message struct {
	MessageID   int64           `json:"message_id"   db:"message_id"`
	Content     string          `json:"content"      db:"content"`
	CreatedAt   time.Time       `json:"created_at"   db:"created_at"`
	EditedAt    *time.Time      `json:"edited_at"    db:"edited_at"`
	Username    string          `json:"username"     db:"username"`
	DisplayName *string         `json:"display_name" db:"display_name"`
	ChannelName *string         `json:"channel_name" db:"channel_name"`
	GuildName   *string         `json:"guild_name"   db:"guild_name"`
	Attachments json.RawMessage `json:"attachments"  db:"attachments"`
	Embeds      json.RawMessage `json:"embeds"       db:"embeds"`
}

// MessageFilters holds the optional predicates of the messages listing.
// Absent filters contribute no predicate and bind no parameter.
type MessageFilters struct {
	GuildID   mo.Option[int64]
	ChannelID mo.Option[int64]
	UserID    mo.Option[int64]
	Search    mo.Option[string]
}

// MessagePage is the paginated messages response. Total counts the full
// filtered set, not the page.
type MessagePage struct {
	Messages []Message `json:"messages"`
	Total    int64     `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}
