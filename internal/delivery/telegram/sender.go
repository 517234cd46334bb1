package telegram

import (
	"context"
	"path/filepath"

	"github.com/rekberinx/rekber-bot/internal/domain"
	tele "gopkg.in/telebot.v3"
)

// Sender adapts the bot handle to the dispatcher's transport surface.
type Sender struct {
	bot *tele.Bot
}

func NewSender(bot *tele.Bot) *Sender {
	return &Sender{bot: bot}
}

func (s *Sender) Send(ctx context.Context, chatID int64, text string, kb domain.Keyboard) error {
	if kb == nil {
		_, err := s.bot.Send(tele.ChatID(chatID), text, tele.ModeHTML)
		return err
	}
	_, err := s.bot.Send(tele.ChatID(chatID), text, toMarkup(kb), tele.ModeHTML)
	return err
}

func (s *Sender) SendDocument(ctx context.Context, chatID int64, path, caption string) error {
	doc := &tele.Document{
		File:     tele.FromDisk(path),
		FileName: filepath.Base(path),
		Caption:  caption,
	}
	_, err := s.bot.Send(tele.ChatID(chatID), doc)
	return err
}

func toMarkup(kb domain.Keyboard) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(kb))
	for _, row := range kb {
		btns := make([]tele.Btn, 0, len(row))
		for _, b := range row {
			if b.URL != "" {
				btns = append(btns, markup.URL(b.Text, b.URL))
				continue
			}
			btns = append(btns, markup.Data(b.Text, b.Unique, b.Data))
		}
		rows = append(rows, markup.Row(btns...))
	}
	markup.Inline(rows...)
	return markup
}
