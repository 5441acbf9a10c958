package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"brainrot-value-bot/internal/demand"
	"brainrot-value-bot/internal/interfaces"
	"brainrot-value-bot/internal/logger"
	"brainrot-value-bot/internal/notify"
	"brainrot-value-bot/internal/store"
	"brainrot-value-bot/internal/trade"
	"brainrot-value-bot/internal/tradelog"
	"brainrot-value-bot/internal/types"
)

// Request is one parsed command invocation handed over by the dispatch
// front end, which owns argument parsing and the administrator check.
type Request struct {
	Command string            `json:"command"`
	Options map[string]string `json:"options"`
	Admin   bool              `json:"admin"`
}

func (r Request) option(key string) string {
	return strings.TrimSpace(r.Options[key])
}

// Response is what the front end displays. Either plain content or an
// embed; every invocation gets exactly one.
type Response struct {
	Content string         `json:"content,omitempty"`
	Embed   *types.Message `json:"embed,omitempty"`
}

// Handler translates command invocations into store, evaluator, and
// notifier calls.
type Handler struct {
	files    *store.Files
	notifier interfaces.Notifier
}

func NewHandler(files *store.Files, notifier interfaces.Notifier) *Handler {
	return &Handler{files: files, notifier: notifier}
}

var failureNotice = Response{Content: "⚠️ Something went wrong, try again later"}

const adminRefusal = "🔒 This command requires administrator permissions"

// Dispatch routes one request. It never returns an error: failures become
// a response the caller can display.
func (h *Handler) Dispatch(ctx context.Context, req Request) Response {
	switch req.Command {
	case "help":
		return helpResponse()
	case "rules":
		return rulesResponse()
	case "value":
		return h.value(ctx, req)
	case "tradecheck":
		return h.tradeCheck(ctx, req)
	case "setvalue":
		return h.admin(req, h.setValue)
	case "setdemand":
		return h.admin(req, h.setDemand)
	case "seticon":
		return h.admin(req, h.setIcon)
	case "settradechannel":
		return h.admin(req, h.setTradeChannel)
	case "setalertchannel":
		return h.admin(req, h.setAlertChannel)
	case "removevalue":
		return h.admin(req, h.removeValue)
	case "clearoverride":
		return h.admin(req, h.clearOverride)
	default:
		return Response{Content: fmt.Sprintf("❓ Unknown command `%s`", req.Command)}
	}
}

func (h *Handler) admin(req Request, fn func(Request) Response) Response {
	if !req.Admin {
		return Response{Content: adminRefusal}
	}
	return fn(req)
}

func helpResponse() Response {
	return Response{Embed: &types.Message{
		Title: "🧠 Brainrot Values Bot — Help",
		Description: "**📊 Values**\n" +
			"`/value` `/tradecheck`\n\n" +
			"**🛠 Admin**\n" +
			"`/setvalue` `/setdemand` `/seticon` `/removevalue` `/clearoverride`\n\n" +
			"**ℹ️ Info**\n" +
			"`/rules` `/help`",
		Color: 0x2c3e50,
	}}
}

func rulesResponse() Response {
	return Response{Embed: &types.Message{
		Title: "📋 Trading Rules & Disclaimer",
		Description: "This bot provides value estimates based on market data.\n\n" +
			"**⚠️ Disclaimer:**\n" +
			"• Values are estimates and may change\n" +
			"• Always verify with current market\n" +
			"• Use at your own risk\n" +
			"• Admin can override values",
		Color: 0xe74c3c,
	}}
}

func (h *Handler) value(ctx context.Context, req Request) Response {
	name := strings.ToLower(req.option("name"))
	if name == "" {
		return Response{Content: "❌ Provide an item name"}
	}

	data, err := h.files.Data()
	if err != nil {
		logger.ErrorWithErr(ctx, "Value lookup failed", err, "name", name)
		return failureNotice
	}

	item, ok := data[name]
	if !ok {
		return Response{Content: fmt.Sprintf("❌ **%s** not found in database", name)}
	}

	info := demand.Lookup(item.Demand)
	source := "Website"
	if item.Source == types.SourceManual {
		source = "Manual Override"
	}
	return Response{Embed: &types.Message{
		Title: fmt.Sprintf("%s %s", item.Icon, strings.ToUpper(name)),
		Fields: []types.MessageField{
			{Name: "Value", Value: fmt.Sprintf("`%d`", item.Value), Inline: true},
			{Name: "Demand", Value: fmt.Sprintf("%s %s", info.Glyph, strings.ToUpper(string(item.Demand))), Inline: true},
			{Name: "Trade Value", Value: fmt.Sprintf("`%d`", demand.TradeValue(item.Value, item.Demand)), Inline: true},
			{Name: "Source", Value: source, Inline: true},
		},
		Color: info.Color,
	}}
}

func (h *Handler) tradeCheck(ctx context.Context, req Request) Response {
	yours := req.option("your_side")
	theirs := req.option("their_side")

	data, err := h.files.Data()
	if err != nil {
		logger.ErrorWithErr(ctx, "Trade check failed", err)
		return failureNotice
	}

	report := trade.Evaluate(data, yours, theirs)
	logger.TradeCheck(ctx, report.YourTotal, report.TheirTotal, string(report.Verdict))

	unresolved := append(append([]string{}, report.YourUnresolved...), report.TheirUnresolved...)
	if err := tradelog.Append(tradelog.Entry{
		YourItems:  yours,
		TheirItems: theirs,
		YourTotal:  report.YourTotal,
		TheirTotal: report.TheirTotal,
		Verdict:    string(report.Verdict),
		Unresolved: unresolved,
	}); err != nil {
		logger.Warn(ctx, "Failed to append trade log", "error", err)
	}

	notify.MirrorTrade(ctx, h.files, h.notifier, report)

	msg := notify.TradeMessage(report)
	return Response{Embed: &msg}
}

func (h *Handler) setValue(req Request) Response {
	name := strings.ToLower(req.option("name"))
	if name == "" {
		return Response{Content: "❌ Provide an item name"}
	}
	value, err := strconv.ParseInt(req.option("value"), 10, 64)
	if err != nil {
		return Response{Content: "❌ Value must be an integer"}
	}
	if value < 0 {
		return Response{Content: "❌ Value must be non-negative"}
	}

	err = h.files.UpdateOverrides(func(m map[string]types.OverrideRecord) error {
		o := m[name]
		o.Value = &value
		m[name] = o
		return nil
	})
	if err != nil {
		return failureNotice
	}
	return Response{Content: fmt.Sprintf("✅ **%s** value manually set to **%d**", name, value)}
}

func (h *Handler) setDemand(req Request) Response {
	name := strings.ToLower(req.option("name"))
	if name == "" {
		return Response{Content: "❌ Provide an item name"}
	}
	d, err := demand.Parse(req.option("demand"))
	if err != nil {
		return Response{Content: "❌ Demand must be one of low, medium, high, insane"}
	}

	err = h.files.UpdateOverrides(func(m map[string]types.OverrideRecord) error {
		o := m[name]
		o.Demand = &d
		m[name] = o
		return nil
	})
	if err != nil {
		return failureNotice
	}
	return Response{Content: fmt.Sprintf("🔥 **%s** demand manually set to **%s**", name, strings.ToUpper(string(d)))}
}

func (h *Handler) setIcon(req Request) Response {
	name := strings.ToLower(req.option("name"))
	icon := req.option("icon")
	if name == "" || icon == "" {
		return Response{Content: "❌ Provide an item name and an icon"}
	}

	err := h.files.UpdateOverrides(func(m map[string]types.OverrideRecord) error {
		o := m[name]
		o.Icon = &icon
		m[name] = o
		return nil
	})
	if err != nil {
		return failureNotice
	}
	return Response{Content: fmt.Sprintf("🎨 **%s** icon updated to %s", name, icon)}
}

func (h *Handler) setTradeChannel(req Request) Response {
	channel := req.option("channel")
	if channel == "" {
		return Response{Content: "❌ Provide a channel"}
	}
	err := h.files.UpdateChannels(func(c *types.ChannelConfig) error {
		c.TradeLogChannel = &channel
		return nil
	})
	if err != nil {
		return failureNotice
	}
	return Response{Content: fmt.Sprintf("✅ Trade log channel set to **%s**", channel)}
}

func (h *Handler) setAlertChannel(req Request) Response {
	channel := req.option("channel")
	if channel == "" {
		return Response{Content: "❌ Provide a channel"}
	}
	err := h.files.UpdateChannels(func(c *types.ChannelConfig) error {
		c.AlertChannel = &channel
		return nil
	})
	if err != nil {
		return failureNotice
	}
	return Response{Content: fmt.Sprintf("✅ Alert channel set to **%s**", channel)}
}

func (h *Handler) removeValue(req Request) Response {
	name := strings.ToLower(req.option("name"))
	if name == "" {
		return Response{Content: "❌ Provide an item name"}
	}

	found := false
	err := h.files.UpdateData(func(m map[string]types.ValuationRecord) error {
		if _, ok := m[name]; ok {
			found = true
			delete(m, name)
		}
		return nil
	})
	if err != nil {
		return failureNotice
	}
	if !found {
		return Response{Content: fmt.Sprintf("❌ **%s** not found in database", name)}
	}
	// The override entry, if any, is left alone on purpose: it represents
	// standing administrator intent and re-applies if the item returns.
	return Response{Content: fmt.Sprintf("🗑 **%s** removed from database", name)}
}

func (h *Handler) clearOverride(req Request) Response {
	name := strings.ToLower(req.option("name"))
	if name == "" {
		return Response{Content: "❌ Provide an item name"}
	}

	found := false
	err := h.files.UpdateOverrides(func(m map[string]types.OverrideRecord) error {
		if _, ok := m[name]; ok {
			found = true
			delete(m, name)
		}
		return nil
	})
	if err != nil {
		return failureNotice
	}
	if !found {
		return Response{Content: fmt.Sprintf("❌ No override exists for **%s**", name)}
	}
	return Response{Content: fmt.Sprintf("✅ Override for **%s** cleared", name)}
}
