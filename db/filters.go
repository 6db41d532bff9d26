package db

import (
	"strings"

	"guildboard/models"
)

// whereBuilder collects AND-ed predicates together with their bind
// values. Filter values are always bound positionally, never
// interpolated into the query text. Predicates use ? placeholders and
// the final query is rebound to the driver's bind type.
type whereBuilder struct {
	conds []string
	args  []any
}

func (b *whereBuilder) Add(expr string, arg any) {
	b.conds = append(b.conds, expr)
	b.args = append(b.args, arg)
}

// Clause returns the assembled WHERE clause, or the empty string when no
// predicate was added.
func (b *whereBuilder) Clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}

func (b *whereBuilder) Args() []any {
	return b.args
}

// buildMessageFilters translates the optional message filters into
// predicates against the aliased messages table. The same builder feeds
// both the listing query and its count query so pagination metadata
// always reflects the full filtered set.
func buildMessageFilters(filters models.MessageFilters) *whereBuilder {
	b := &whereBuilder{}
	if guildID, ok := filters.GuildID.Get(); ok {
		b.Add("m.guild_id = ?", guildID)
	}
	if channelID, ok := filters.ChannelID.Get(); ok {
		b.Add("m.channel_id = ?", channelID)
	}
	if userID, ok := filters.UserID.Get(); ok {
		b.Add("m.user_id = ?", userID)
	}
	if search, ok := filters.Search.Get(); ok {
		b.Add("m.content ILIKE ?", "%"+search+"%")
	}
	return b
}
