package domain

import (
	"strings"

	"github.com/mosberg/alchemy/internal/identifier"
)

// Beverage is a validated drinkable definition loaded from beverages/*.json.
// It names its container by id only; the container is resolved through the catalog.
type Beverage struct {
	ID        identifier.ID  `json:"id"`
	Category  string         `json:"category"`
	Style     string         `json:"style"`
	Container identifier.ID  `json:"container"`
	Rarity    string         `json:"rarity"`
	StackSize int            `json:"stack_size" validate:"min=1"`
	Stats     Stats          `json:"stats"`
	Effects   []EffectEntry  `json:"effects" validate:"dive"`
	Text      TextKeys       `json:"text"`
	Config    BeverageConfig `json:"config"`
}

// Stats holds the drink's numeric properties
type Stats struct {
	AlcoholByVolume float64      `json:"alcohol_by_volume"`
	Strength        float64      `json:"strength"`
	Intoxication    Intoxication `json:"intoxication"`
	Nutrition       Nutrition    `json:"nutrition"`
}

// Intoxication is applied by host code; the core only carries it
type Intoxication struct {
	Value            float64 `json:"value"`
	DecayRatePerTick float64 `json:"decay_rate_per_tick"`
}

// Nutrition feeds the host's food component
type Nutrition struct {
	Hunger     int     `json:"hunger" validate:"gte=0"`
	Saturation float64 `json:"saturation" validate:"gte=0"`
}

// EffectEntry is one probabilistic status effect granted on consumption
type EffectEntry struct {
	Effect        identifier.ID `json:"effect"`
	Duration      int           `json:"duration" validate:"gte=0"` // ticks
	Amplifier     int           `json:"amplifier" validate:"gte=0"`
	Chance        float64       `json:"chance" validate:"gte=0,lte=1"`
	ShowParticles bool          `json:"show_particles"`
	ShowIcon      bool          `json:"show_icon"`
	Ambient       bool          `json:"ambient"`
}

// TextKeys are optional translation-key overrides; blank means "use the derived key"
type TextKeys struct {
	Name        string `json:"name_key,omitempty"`
	Lore        string `json:"lore_key,omitempty"`
	Tooltip     string `json:"tooltip_key,omitempty"`
	Effect      string `json:"effect_text_key,omitempty"`
	BrewTime    string `json:"brew_time_text_key,omitempty"`
	Ingredients string `json:"ingredients_text_key,omitempty"`
	Container   string `json:"container_text_key,omitempty"`
	Rarity      string `json:"rarity_text_key,omitempty"`
	Category    string `json:"category_text_key,omitempty"`
	Flavor      string `json:"flavor_text_key,omitempty"`
	Warning     string `json:"warning_key,omitempty"`
	Crafting    string `json:"crafting_instructions_key,omitempty"`
}

// BeverageConfig carries per-beverage switches and overrides
type BeverageConfig struct {
	Enabled               bool   `json:"enabled"`
	OverrideRarity        string `json:"override_rarity,omitempty"`
	OverrideStackSize     *int   `json:"override_stack_size,omitempty" validate:"omitempty,min=1"`
	OverrideLootWeight    *int   `json:"override_loot_weight,omitempty" validate:"omitempty,gte=0"`
	DisableRandomFailures bool   `json:"disable_random_failures"`
	DisableSpoilage       bool   `json:"disable_spoilage"`
}

// Food is the host food component derived from nutrition
type Food struct {
	Hunger       int
	Saturation   float64
	AlwaysEdible bool
}

// TextSlot names a piece of beverage text rendered by the host
type TextSlot string

const (
	TextName        TextSlot = "name"
	TextLore        TextSlot = "lore"
	TextTooltip     TextSlot = "tooltip"
	TextEffect      TextSlot = "effect"
	TextBrewTime    TextSlot = "brew_time"
	TextIngredients TextSlot = "ingredients"
	TextContainer   TextSlot = "container"
	TextRarity      TextSlot = "rarity"
	TextCategory    TextSlot = "category"
	TextFlavor      TextSlot = "flavor"
	TextWarning     TextSlot = "warning"
	TextCrafting    TextSlot = "crafting"
)

// translation key suffixes used when a slot has no override
var textSlotSuffix = map[TextSlot]string{
	TextName:        "",
	TextLore:        "lore",
	TextTooltip:     "tooltip",
	TextEffect:      "effects",
	TextBrewTime:    "brew_time",
	TextIngredients: "ingredients",
	TextContainer:   "container",
	TextRarity:      "rarity",
	TextCategory:    "category",
	TextFlavor:      "flavor_text",
	TextWarning:     "warning",
	TextCrafting:    "crafting_instructions",
}

// PrimaryEffect returns the first configured effect
func (b Beverage) PrimaryEffect() (EffectEntry, bool) {
	if len(b.Effects) == 0 {
		return EffectEntry{}, false
	}
	return b.Effects[0], true
}

// EffectiveRarity honors config.override_rarity
func (b Beverage) EffectiveRarity() string {
	if strings.TrimSpace(b.Config.OverrideRarity) != "" {
		return b.Config.OverrideRarity
	}
	return b.Rarity
}

// EffectiveStackSize honors config.override_stack_size
func (b Beverage) EffectiveStackSize() int {
	if b.Config.OverrideStackSize != nil {
		return *b.Config.OverrideStackSize
	}
	return b.StackSize
}

// Food builds the host food component. Effects are not part of it; they are
// applied separately so they never fire twice.
func (b Beverage) Food() Food {
	return Food{
		Hunger:       b.Stats.Nutrition.Hunger,
		Saturation:   b.Stats.Nutrition.Saturation,
		AlwaysEdible: true,
	}
}

// TranslationKey returns item.<namespace>.<path>[.<suffix>]
func (b Beverage) TranslationKey(suffix string) string {
	key := "item." + b.ID.Namespace + "." + b.ID.Path
	if strings.TrimSpace(suffix) == "" {
		return key
	}
	return key + "." + suffix
}

// TextKey returns the override for slot, or the derived translation key
func (b Beverage) TextKey(slot TextSlot) string {
	if explicit := b.Text.get(slot); strings.TrimSpace(explicit) != "" {
		return explicit
	}
	return b.TranslationKey(textSlotSuffix[slot])
}

func (t TextKeys) get(slot TextSlot) string {
	switch slot {
	case TextName:
		return t.Name
	case TextLore:
		return t.Lore
	case TextTooltip:
		return t.Tooltip
	case TextEffect:
		return t.Effect
	case TextBrewTime:
		return t.BrewTime
	case TextIngredients:
		return t.Ingredients
	case TextContainer:
		return t.Container
	case TextRarity:
		return t.Rarity
	case TextCategory:
		return t.Category
	case TextFlavor:
		return t.Flavor
	case TextWarning:
		return t.Warning
	case TextCrafting:
		return t.Crafting
	default:
		return ""
	}
}
