package notify

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"brainrot-value-bot/internal/interfaces"
	"brainrot-value-bot/internal/logger"
	"brainrot-value-bot/internal/store"
	"brainrot-value-bot/internal/trade"
	"brainrot-value-bot/internal/types"
)

// sourceLabel renders the source tag the way the alerts display it.
func sourceLabel(s types.Source) string {
	if s == types.SourceManual {
		return "Manual Override"
	}
	return "Website"
}

// ChangeMessage builds the alert embed for one material change.
func ChangeMessage(ch types.Change) types.Message {
	return types.Message{
		Title:       "📈 Value Update",
		Description: fmt.Sprintf("**%s** updated", ch.Name),
		Fields: []types.MessageField{
			{Name: "Value", Value: fmt.Sprintf("`%d`", ch.Value), Inline: true},
			{Name: "Demand", Value: fmt.Sprintf("`%s`", strings.ToUpper(string(ch.Demand))), Inline: true},
			{Name: "Source", Value: sourceLabel(ch.Source), Inline: true},
		},
		Color: 0x2ecc71,
	}
}

// AnnounceChanges sends one alert per material change to the configured
// alert channel. Every send is best-effort: failures are logged and
// swallowed, independently per item. No channel configured means no
// sends.
func AnnounceChanges(ctx context.Context, files *store.Files, notifier interfaces.Notifier, changes []types.Change, limit int) {
	if len(changes) == 0 {
		return
	}

	channels, err := files.Channels()
	if err != nil {
		logger.ErrorWithErr(ctx, "Cannot read channel config, skipping alerts", err)
		return
	}
	if channels.AlertChannel == nil {
		logger.Debug(ctx, "No alert channel configured", "changes", len(changes))
		return
	}
	channelID := *channels.AlertChannel

	if limit < 1 {
		limit = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, ch := range changes {
		ch := ch
		g.Go(func() error {
			if err := notifier.Send(gctx, channelID, ChangeMessage(ch)); err != nil {
				logger.Warn(gctx, "Alert delivery failed", "name", ch.Name, "channel", channelID, "error", err)
			}
			return nil
		})
	}
	g.Wait()
}

// TradeMessage builds the embed mirrored to the trade-log channel.
func TradeMessage(r trade.Report) types.Message {
	msg := types.Message{
		Title: "⚖️ Trade Check",
		Fields: []types.MessageField{
			{Name: "Your Side", Value: fmt.Sprintf("`%d`", r.YourTotal), Inline: true},
			{Name: "Their Side", Value: fmt.Sprintf("`%d`", r.TheirTotal), Inline: true},
			{Name: "Result", Value: VerdictLabel(r.Verdict), Inline: true},
		},
		Color: VerdictColor(r.Verdict),
	}
	unresolved := append(append([]string{}, r.YourUnresolved...), r.TheirUnresolved...)
	if len(unresolved) > 0 {
		msg.Footer = "Unknown items: " + strings.Join(unresolved, ", ")
	}
	return msg
}

// MirrorTrade mirrors a trade evaluation to the trade-log channel,
// best-effort.
func MirrorTrade(ctx context.Context, files *store.Files, notifier interfaces.Notifier, r trade.Report) {
	channels, err := files.Channels()
	if err != nil {
		logger.ErrorWithErr(ctx, "Cannot read channel config, skipping trade mirror", err)
		return
	}
	if channels.TradeLogChannel == nil {
		return
	}
	if err := notifier.Send(ctx, *channels.TradeLogChannel, TradeMessage(r)); err != nil {
		logger.Warn(ctx, "Trade mirror delivery failed", "channel", *channels.TradeLogChannel, "error", err)
	}
}

// VerdictLabel renders a verdict for display.
func VerdictLabel(v trade.Verdict) string {
	switch v {
	case trade.VerdictWinning:
		return "You're Winning"
	case trade.VerdictLosing:
		return "You're Losing"
	default:
		return "Fair"
	}
}

// VerdictColor picks the embed color for a verdict.
func VerdictColor(v trade.Verdict) int {
	switch v {
	case trade.VerdictWinning:
		return 0x2ecc71
	case trade.VerdictLosing:
		return 0xe74c3c
	default:
		return 0x95a5a6
	}
}
