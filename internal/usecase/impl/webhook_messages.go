package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	deliverycontext "clubrelay/internal/delivery/context"
	"clubrelay/internal/domain/entity"
	"clubrelay/internal/domain/service"
)

// Templates may use {id} and {status}.
var (
	orderMessages = map[string]entity.NotificationContent{
		"pending":    {Title: "Order received", Body: "Order #{id} is awaiting payment."},
		"processing": {Title: "Order confirmed", Body: "We are preparing order #{id}."},
		"on-hold":    {Title: "Order on hold", Body: "Order #{id} is on hold until payment is confirmed."},
		"completed":  {Title: "Order completed", Body: "Order #{id} is complete. Enjoy!"},
		"cancelled":  {Title: "Order cancelled", Body: "Order #{id} has been cancelled."},
		"refunded":   {Title: "Order refunded", Body: "Order #{id} has been refunded."},
		"failed":     {Title: "Payment failed", Body: "Payment for order #{id} failed. Please try again."},
	}

	subscriptionMessages = map[string]entity.NotificationContent{
		"active":         {Title: "Membership active", Body: "Your membership is active. See you at the club!"},
		"on-hold":        {Title: "Membership on hold", Body: "Your membership is on hold. Renew to keep access."},
		"pending-cancel": {Title: "Membership ending", Body: "Your membership will end at the close of the current period."},
		"cancelled":      {Title: "Membership cancelled", Body: "Your membership has been cancelled."},
		"expired":        {Title: "Membership expired", Body: "Your membership has expired. Renew any time in the app."},
		"pending":        {Title: "Membership pending", Body: "Your membership is waiting for payment."},
	}

	genericMessages = map[entity.WebhookDomain]entity.NotificationContent{
		entity.WebhookDomainOrder:        {Title: "Order update", Body: "Order #{id} is now {status}."},
		entity.WebhookDomainSubscription: {Title: "Membership update", Body: "Your membership is now {status}."},
	}
)

// settingKeyPrefix plus "<domain>.<status>" holds an admin override.
const settingKeyPrefix = "notification."

type messageComposer struct {
	settings service.SettingsProvider
	logger   *slog.Logger
}

func newMessageComposer(settings service.SettingsProvider, logger *slog.Logger) *messageComposer {
	return &messageComposer{settings: settings, logger: logger}
}

// Compose picks the built-in message for domain and status and applies any admin override field by field.
func (c *messageComposer) Compose(ctx context.Context, domain entity.WebhookDomain, status, resourceID string) entity.NotificationContent {
	content, ok := builtinMessage(domain, status)
	if !ok {
		content = genericMessages[domain]
	}

	if raw, found := c.settings.Get(ctx, settingKeyPrefix+string(domain)+"."+status); found {
		var override entity.NotificationContent
		if err := json.Unmarshal([]byte(raw), &override); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, c.logger).WarnContext(ctx, "Ignoring malformed notification override",
				slog.String("domain", string(domain)),
				slog.String("status", status),
				slog.Any("error", err),
			)
		} else {
			content = mergeContent(content, override)
		}
	}

	r := strings.NewReplacer("{id}", resourceID, "{status}", strings.ReplaceAll(status, "-", " "))

	return entity.NotificationContent{
		Title: r.Replace(content.Title),
		Body:  r.Replace(content.Body),
		Icon:  content.Icon,
	}
}

func builtinMessage(domain entity.WebhookDomain, status string) (entity.NotificationContent, bool) {
	switch domain {
	case entity.WebhookDomainOrder:
		m, ok := orderMessages[status]
		return m, ok
	case entity.WebhookDomainSubscription:
		m, ok := subscriptionMessages[status]
		return m, ok
	default:
		return entity.NotificationContent{}, false
	}
}

func mergeContent(base, override entity.NotificationContent) entity.NotificationContent {
	if override.Title != "" {
		base.Title = override.Title
	}
	if override.Body != "" {
		base.Body = override.Body
	}
	if override.Icon != "" {
		base.Icon = override.Icon
	}

	return base
}
