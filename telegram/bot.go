package telegram

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	log "github.com/sirupsen/logrus"

	"songsnap/helpers"
	"songsnap/sentryhelper"
)

// Bot is the Telegram command surface: /start replies with a greeting,
// /ask relays free text to the completion API.
type Bot struct {
	client   *bot.Bot
	complete helpers.CompleteFunc
}

func New(token string, complete helpers.CompleteFunc) (*Bot, error) {
	b := &Bot{complete: complete}

	client, err := bot.New(token)
	if err != nil {
		return nil, err
	}
	client.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, b.handleStart)
	client.RegisterHandler(bot.HandlerTypeMessageText, "/ask", bot.MatchTypePrefix, b.handleAsk)

	b.client = client
	return b, nil
}

// Start long-polls for updates until the context is cancelled.
func (b *Bot) Start(ctx context.Context) {
	log.Info("Starting Telegram bot")
	b.client.Start(ctx)
}

func (b *Bot) handleStart(ctx context.Context, client *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	b.reply(ctx, client, update, helpers.GreetingReply)
}

func (b *Bot) handleAsk(ctx context.Context, client *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	ctx, transaction := sentryhelper.StartCommandTransaction(ctx, "ask", update.Message.Chat.ID, senderID(update))
	defer transaction.Finish()

	prompt := strings.TrimPrefix(update.Message.Text, "/ask")
	b.reply(ctx, client, update, helpers.AnswerAsk(ctx, b.complete, prompt))
}

func (b *Bot) reply(ctx context.Context, client *bot.Bot, update *models.Update, text string) {
	_, err := client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
	if err != nil {
		log.Errorf("Error sending reply: %v", err)
		sentryhelper.CaptureException(ctx, err)
	}
}

func senderID(update *models.Update) int64 {
	if update.Message.From == nil {
		return 0
	}
	return update.Message.From.ID
}
