// Package bot binds the conversation engine to the Telegram transport:
// inbound text is stepped through the per-customer state machine and the
// resulting replies are dispatched asynchronously.
package bot

import (
	"fmt"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"
	"log/slog"

	"github.com/bruske/smashbot/internal/archive"
	"github.com/bruske/smashbot/internal/logger"
	"github.com/bruske/smashbot/internal/order"
	"github.com/bruske/smashbot/internal/telegram"
	"github.com/bruske/smashbot/internal/telegram/helpers"
	"github.com/bruske/smashbot/internal/telegram/keyboard"
	"github.com/bruske/smashbot/internal/telegram/middleware"
)

// Handlers owns the pieces each route needs. Repo is nil when the order
// archive is disabled; confirmed orders are then only logged.
type Handlers struct {
	Engine   *order.Engine
	Sessions *order.Store
	Repo     *archive.Repository
	AdminID  int64
}

// Routes returns every bot route in registration order.
func (h *Handlers) Routes() []telegram.Route {
	admin := middleware.AdminOnlyMiddleware(middleware.AdminOptions{AdminID: h.AdminID})
	return []telegram.Route{
		{Endpoint: "/start", Handler: h.onStart},
		{Endpoint: "/pedidos", Handler: admin(h.onOrders)},
		{Endpoint: tele.OnText, Handler: h.onText},
	}
}

// onStart drops any conversation in progress and greets with the menu.
func (h *Handlers) onStart(c tele.Context) error {
	ctx := helpers.WithHandler(c, "start")
	start := time.Now()

	s := h.Sessions.GetOrCreate(c.Sender().ID)
	s.Lock()
	s.State = order.StateInitial
	s.Cart = nil
	res := h.Engine.Step(s, "")
	s.Unlock()

	err := h.dispatch(c, res)
	logger.Info(ctx, "bot", "handler.done",
		slog.Duration("duration", logger.Took(start)),
	)
	return err
}

// onText advances the sender's session by one step.
func (h *Handlers) onText(c tele.Context) error {
	ctx := helpers.WithHandler(c, "text")
	start := time.Now()

	s := h.Sessions.GetOrCreate(c.Sender().ID)
	s.Lock()
	state := s.State
	res := h.Engine.Step(s, c.Text())
	s.Unlock()

	if res.Completed != nil {
		h.archiveOrder(c, res.Completed)
	}

	err := h.dispatch(c, res)
	logger.Debug(ctx, "bot", "handler.done",
		slog.String("state", string(state)),
		slog.Duration("duration", logger.Took(start)),
	)
	return err
}

// onOrders lists the latest archived orders for the admin.
func (h *Handlers) onOrders(c tele.Context) error {
	ctx := helpers.WithHandler(c, "orders")

	if h.Repo == nil {
		return helpers.SendText(c, "Arquivo de pedidos desativado.")
	}

	recs, err := h.Repo.ListRecent(ctx, 10)
	if err != nil {
		logger.Error(ctx, "bot", "orders.list",
			slog.String("err", err.Error()),
		)
		return helpers.SendText(c, "Não foi possível consultar os pedidos agora.")
	}
	if len(recs) == 0 {
		return helpers.SendText(c, "Nenhum pedido registrado ainda.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Últimos %d pedidos:\n", len(recs)))
	for _, rec := range recs {
		b.WriteString(fmt.Sprintf("\n• %s — %s — %s\n  %s\n",
			rec.PlacedAt.Format("02/01 15:04"),
			order.FormatCents(rec.GrossCents),
			rec.Payment,
			strings.Join(rec.ItemNames(), ", "),
		))
	}
	return helpers.SendText(c, b.String())
}

func (h *Handlers) archiveOrder(c tele.Context, o *order.CompletedOrder) {
	ctx := helpers.BuildContext(c)
	if h.Repo == nil {
		logger.Info(ctx, "bot", "order.confirmed",
			slog.Int64("gross_cents", o.Totals.Gross),
			slog.Int("items", len(o.Items)),
		)
		return
	}
	id, err := h.Repo.Save(ctx, *o)
	if err != nil {
		// Confirmation already went out; losing the archive row must not
		// surface to the customer.
		logger.Error(ctx, "bot", "order.archive",
			slog.String("err", err.Error()),
		)
		return
	}
	logger.Info(ctx, "bot", "order.confirmed",
		slog.String("order_id", id.String()),
		slog.Int64("gross_cents", o.Totals.Gross),
		slog.Int("items", len(o.Items)),
	)
}

// dispatch sends every reply of a step in order, mapping keyboard hints to
// reply markup.
func (h *Handlers) dispatch(c tele.Context, res order.StepResult) error {
	for _, r := range res.Replies {
		if r.Document != nil {
			if err := helpers.SendDocument(c, r.Document.Name, r.Document.Data); err != nil {
				return err
			}
			continue
		}
		markup := markupFor(r.Keyboard)
		if r.Markdown {
			if err := helpers.SendMD(c, r.Text, markup); err != nil {
				return err
			}
			continue
		}
		var err error
		if markup != nil {
			err = helpers.SendText(c, r.Text, &tele.SendOptions{ReplyMarkup: markup})
		} else {
			err = helpers.SendText(c, r.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func markupFor(hint order.KeyboardHint) *tele.ReplyMarkup {
	switch hint {
	case order.KeyboardOptions:
		return keyboard.ReplyButtons([]string{"1", "2", "3"}, []string{"4", "5"})
	case order.KeyboardRemove:
		return keyboard.RemoveKeyboard()
	default:
		return nil
	}
}
