package telegram

import (
	"context"

	tele "gopkg.in/telebot.v3"
)

// ChannelGate answers channel-membership questions against the chat
// transport. Errors are returned as-is; the identity gate treats any error
// as "not a member".
type ChannelGate struct {
	bot     *tele.Bot
	channel string
}

func NewChannelGate(bot *tele.Bot, channel string) *ChannelGate {
	return &ChannelGate{bot: bot, channel: channel}
}

func (g *ChannelGate) IsMember(ctx context.Context, userID int64) (bool, error) {
	chat, err := g.bot.ChatByUsername(g.channel)
	if err != nil {
		return false, err
	}

	member, err := g.bot.ChatMemberOf(chat, &tele.User{ID: userID})
	if err != nil {
		return false, err
	}

	switch member.Role {
	case tele.Member, tele.Creator, tele.Administrator:
		return true, nil
	}
	return false, nil
}
