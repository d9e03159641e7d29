package effects

import (
	"log/slog"

	"github.com/mosberg/alchemy/internal/catalog"
	"github.com/mosberg/alchemy/internal/domain"
	"github.com/mosberg/alchemy/internal/identifier"
	"github.com/mosberg/alchemy/internal/metrics"
	"github.com/mosberg/alchemy/internal/resolve"
)

// Consumption describes what happened when a beverage was consumed
type Consumption struct {
	Beverage   identifier.ID
	Fired      int
	Food       domain.Food
	UseAction  domain.UseAction
	ReturnItem identifier.ID // zero when nothing is handed back
}

// Consumer is the host entry point for drinking a beverage.
// It holds only the immutable catalog and is safe for concurrent use.
type Consumer struct {
	catalog  *catalog.Catalog
	resolver *resolve.Resolver
	log      *slog.Logger
}

// NewConsumer creates a consumer over c. A nil logger means slog.Default().
func NewConsumer(c *catalog.Catalog, log *slog.Logger) *Consumer {
	if log == nil {
		log = slog.Default()
	}
	return &Consumer{
		catalog:  c,
		resolver: resolve.NewResolver(c),
		log:      log,
	}
}

// Consume applies the effects of the beverage with the given id.
// An unknown or disabled beverage is a no-op and reports false.
func (c *Consumer) Consume(id identifier.ID, rng RandomSource, sink Sink) (Consumption, bool) {
	def, ok := c.catalog.Beverage(id)
	if !ok {
		c.log.Debug(LogMsgUnknownBeverage, "beverage", id.String())
		return Consumption{}, false
	}
	if !def.Config.Enabled {
		c.log.Debug(LogMsgDisabledBeverage, "beverage", id.String())
		return Consumption{}, false
	}

	metrics.BeveragesConsumed.WithLabelValues(id.String()).Inc()
	fired := Apply(def, rng, sink)

	out := Consumption{
		Beverage:  id,
		Fired:     fired,
		Food:      def.Food(),
		UseAction: c.resolver.UseAction(id),
	}
	if item, ok := c.resolver.ReturnItem(id); ok {
		out.ReturnItem = item
	}

	c.log.Debug(LogMsgConsumed, "beverage", id.String(), "fired", fired, "effects", len(def.Effects))
	return out, true
}
