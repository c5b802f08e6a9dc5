// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

// Package signage assembles the full display snapshot shown on the
// storefront screen: hero recommendation, alternates, cross-sell callout,
// low-stock ticker, and the contextual announcement line.
package signage

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/panbord/signage/internal/catalog"
	"github.com/panbord/signage/internal/crosssell"
	"github.com/panbord/signage/internal/daypart"
	"github.com/panbord/signage/internal/inventory"
	"github.com/panbord/signage/internal/recommend"
	"github.com/panbord/signage/internal/season"
)

// Display is one complete render of the signage screen. Main is nil when
// every product is out of stock; the view renders an explicit empty state
// in that case rather than hiding the section.
type Display struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Hour        int              `json:"hour"`
	TimeSlot    daypart.TimeSlot `json:"time_slot"`
	Season      season.Season    `json:"season"`

	Main *recommend.Recommendation  `json:"main"`
	Subs []recommend.Recommendation `json:"subs"`

	CrossSell          *crosssell.Pair  `json:"cross_sell,omitempty"`
	CrossSellCompanion *catalog.Product `json:"cross_sell_companion,omitempty"`

	LowStock     []inventory.Item  `json:"low_stock"`
	Summary      inventory.Summary `json:"summary"`
	Announcement string            `json:"announcement"`
}

// Builder composes Display snapshots from the core services. It holds no
// mutable state of its own; every Build call works from the arguments.
type Builder struct {
	catalog *catalog.Catalog
	engine  *recommend.Engine
	advisor *crosssell.Advisor
	logger  zerolog.Logger
}

// NewBuilder wires the display assembler to the catalog, ranking engine,
// and cross-sell advisor.
func NewBuilder(cat *catalog.Catalog, engine *recommend.Engine, advisor *crosssell.Advisor, logger zerolog.Logger) *Builder {
	return &Builder{
		catalog: cat,
		engine:  engine,
		advisor: advisor,
		logger:  logger.With().Str("component", "signage").Logger(),
	}
}

// Build assembles a Display for the given effective hour and season
// against the supplied inventory snapshot.
func (b *Builder) Build(hour int, seasonID season.ID, store inventory.Store, w recommend.Weights, now time.Time) Display {
	slot := daypart.ForHour(hour)
	sea := season.ByID(seasonID)

	d := Display{
		GeneratedAt:  now,
		Hour:         hour,
		TimeSlot:     slot,
		Season:       sea,
		LowStock:     store.LowStock(),
		Summary:      store.Summarize(),
		Announcement: slot.Catchphrase + " / " + sea.SpecialMessage,
	}

	d.Main = b.engine.Main(slot, seasonID, store, w)
	if d.Main == nil {
		b.logger.Warn().Int("hour", hour).Msg("no eligible products, rendering empty display")
		d.Subs = []recommend.Recommendation{}
		return d
	}

	d.Subs = b.engine.Subs(slot, seasonID, store, d.Main.Product.Code, w, 0)

	if pair, ok := b.advisor.Best(d.Main.Product.Code); ok {
		d.CrossSell = &pair
		if companion, found := b.catalog.ByCode(pair.CompanionOf(d.Main.Product.Code)); found {
			d.CrossSellCompanion = &companion
		}
	}

	return d
}
