// Package sentryhelper provides utilities for Sentry transaction and scope
// management. It ensures breadcrumbs and context stay isolated per bot
// command.
package sentryhelper

import (
	"context"
	"fmt"

	sentry "github.com/getsentry/sentry-go"
)

// contextKey is used to store the cloned hub in context
type contextKey string

const hubContextKey contextKey = "sentry_hub"

// StartCommandTransaction creates a new transaction with a cloned hub for a
// bot command. The cloned hub ensures breadcrumbs and scope are isolated to
// this command only.
func StartCommandTransaction(ctx context.Context, commandName string, chatID int64, userID int64) (context.Context, *sentry.Span) {
	hub := sentry.CurrentHub().Clone()
	ctx = context.WithValue(ctx, hubContextKey, hub)

	transactionName := fmt.Sprintf("bot.command.%s", commandName)
	transaction := sentry.StartTransaction(ctx, transactionName,
		sentry.WithOpName("bot.command"),
		sentry.WithTransactionSource(sentry.SourceRoute),
	)

	transaction.SetTag("command", commandName)
	transaction.SetTag("chat_id", fmt.Sprintf("%d", chatID))
	transaction.SetTag("user_id", fmt.Sprintf("%d", userID))

	hub.Scope().SetSpan(transaction)

	return transaction.Context(), transaction
}

// HubFromContext retrieves the cloned hub from context, falling back to
// CurrentHub when none was stored.
func HubFromContext(ctx context.Context) *sentry.Hub {
	if ctx == nil {
		return sentry.CurrentHub()
	}
	if hub, ok := ctx.Value(hubContextKey).(*sentry.Hub); ok && hub != nil {
		return hub
	}
	return sentry.CurrentHub()
}

// CaptureException captures an exception on the hub in context.
func CaptureException(ctx context.Context, err error) *sentry.EventID {
	hub := HubFromContext(ctx)
	return hub.CaptureException(err)
}
