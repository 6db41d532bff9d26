package models

import (
	"time"
)

type ActivityType string

const (
	ActivityTypeMessage  ActivityType = "message"
	ActivityTypeReaction ActivityType = "reaction"
)

// ActivityEvent is one entry of the recent activity feed: either a
// message or a reaction from the last 24 hours, tagged with its source
// kind. Reaction events carry a synthesized content string embedding the
// emoji name.
type ActivityEvent struct {
	ID           int64        `json:"id"            db:"id"`
	Content      string       `json:"content"       db:"content"`
	CreatedAt    time.Time    `json:"created_at"    db:"created_at"`
	ActivityType ActivityType `json:"activity_type" db:"activity_type"`
	Username     string       `json:"username"      db:"username"`
	DisplayName  *string      `json:"display_name"  db:"display_name"`
	ChannelName  *string      `json:"channel_name"  db:"channel_name"`
	GuildName    *string      `json:"guild_name"    db:"guild_name"`
}
