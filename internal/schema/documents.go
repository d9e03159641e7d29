package schema

// Raw documents mirror the JSON on disk. Every scalar is a pointer so the
// parser can tell "absent" from "zero" and apply defaults exactly once.
// The jsonschema tags feed the reflected shape schemas.

// BeverageDocument is the on-disk form of beverages/*.json
type BeverageDocument struct {
	Type      *string            `json:"type" jsonschema:"title=Type tag,description=Must be alchemy:alcohol"`
	ID        *string            `json:"id" jsonschema:"title=Beverage id,description=namespace:path"`
	Category  *string            `json:"category,omitempty"`
	Style     *string            `json:"style,omitempty"`
	Container *string            `json:"container" jsonschema:"description=Id of the container the beverage is served in"`
	Rarity    *string            `json:"rarity,omitempty"`
	StackSize *int               `json:"stack_size,omitempty"`
	Stats     *StatsDocument     `json:"stats,omitempty"`
	Effects   []EffectDocument   `json:"effects" jsonschema:"description=Effects granted on consumption; must not be empty"`
	Text      *TextDocument      `json:"text,omitempty"`
	Config    *BeverageConfigDoc `json:"config,omitempty"`

	// Text keys may also sit at the document root when no text object is given
	TextDocument
}

// StatsDocument is the stats block of a beverage
type StatsDocument struct {
	AlcoholByVolume *float64              `json:"alcohol_by_volume,omitempty"`
	Strength        *float64              `json:"strength,omitempty"`
	Nutrition       *NutritionDocument    `json:"nutrition,omitempty"`
	Intoxication    *IntoxicationDocument `json:"intoxication,omitempty"`
}

// NutritionDocument is stats.nutrition
type NutritionDocument struct {
	Hunger     *int     `json:"hunger,omitempty"`
	Saturation *float64 `json:"saturation,omitempty"`
}

// IntoxicationDocument is stats.intoxication
type IntoxicationDocument struct {
	Value            *float64 `json:"value,omitempty"`
	DecayRatePerTick *float64 `json:"decay_rate_per_tick,omitempty"`
}

// EffectDocument is one entry of effects[]
type EffectDocument struct {
	Effect        *string  `json:"effect" jsonschema:"description=Status effect id known to the host"`
	Duration      *int     `json:"duration,omitempty"`
	Amplifier     *int     `json:"amplifier,omitempty"`
	Chance        *float64 `json:"chance,omitempty"`
	ShowParticles *bool    `json:"show_particles,omitempty"`
	ShowIcon      *bool    `json:"show_icon,omitempty"`
	Ambient       *bool    `json:"ambient,omitempty"`
}

// TextDocument holds translation-key overrides
type TextDocument struct {
	NameKey                 *string `json:"name_key,omitempty"`
	LoreKey                 *string `json:"lore_key,omitempty"`
	TooltipKey              *string `json:"tooltip_key,omitempty"`
	EffectTextKey           *string `json:"effect_text_key,omitempty"`
	BrewTimeTextKey         *string `json:"brew_time_text_key,omitempty"`
	IngredientsTextKey      *string `json:"ingredients_text_key,omitempty"`
	ContainerTextKey        *string `json:"container_text_key,omitempty"`
	RarityTextKey           *string `json:"rarity_text_key,omitempty"`
	CategoryTextKey         *string `json:"category_text_key,omitempty"`
	FlavorTextKey           *string `json:"flavor_text_key,omitempty"`
	WarningKey              *string `json:"warning_key,omitempty"`
	CraftingInstructionsKey *string `json:"crafting_instructions_key,omitempty"`
}

// BeverageConfigDoc is the config block of a beverage
type BeverageConfigDoc struct {
	Enabled               *bool   `json:"enabled,omitempty"`
	OverrideRarity        *string `json:"override_rarity,omitempty"`
	OverrideStackSize     *int    `json:"override_stack_size,omitempty"`
	OverrideLootWeight    *int    `json:"override_loot_weight,omitempty"`
	DisableRandomFailures *bool   `json:"disable_random_failures,omitempty"`
	DisableSpoilage       *bool   `json:"disable_spoilage,omitempty"`
}

// ContainerDocument is the on-disk form of containers/*.json
type ContainerDocument struct {
	Type          *string               `json:"type" jsonschema:"title=Type tag,description=Must be alchemy:container"`
	ID            *string               `json:"id" jsonschema:"title=Container id,description=namespace:path"`
	ContainerKind *string               `json:"container_kind,omitempty"`
	StackSize     *int                  `json:"stack_size,omitempty"`
	Rarity        *string               `json:"rarity,omitempty"`
	Durability    *DurabilityDocument   `json:"durability,omitempty"`
	Interaction   *InteractionDocument  `json:"interaction,omitempty"`
	Seal          *SealDocument         `json:"seal,omitempty"`
	StateStorage  *StateStorageDocument `json:"state_storage,omitempty"`
}

// DurabilityDocument is the durability block of a container
type DurabilityDocument struct {
	Breakable           *bool   `json:"breakable,omitempty"`
	MaxDamage           *int    `json:"max_damage,omitempty"`
	Fireproof           *bool   `json:"fireproof,omitempty"`
	ExplosionResistance *string `json:"explosion_resistance,omitempty"`
}

// InteractionDocument is the interaction block of a container
type InteractionDocument struct {
	UseAction        *string `json:"use_action,omitempty"`
	ReturnsContainer *bool   `json:"returns_container,omitempty"`
	ReturnItemID     *string `json:"return_item_id,omitempty"`
	ConsumeOnUse     *bool   `json:"consume_on_use,omitempty"`
	ConsumeOnDrink   *bool   `json:"consume_on_drink,omitempty"`
}

// SealDocument is the seal block of a container
type SealDocument struct {
	StartsSealed *bool   `json:"starts_sealed,omitempty"`
	Reopenable   *bool   `json:"reopenable,omitempty"`
	SealQuality  *string `json:"seal_quality,omitempty"`
}

// StateStorageDocument is the state_storage block of a container
type StateStorageDocument struct {
	PlacedBlock *PlacedBlockDocument `json:"placed_block,omitempty"`
}

// PlacedBlockDocument is state_storage.placed_block
type PlacedBlockDocument struct {
	Enabled           *bool   `json:"enabled,omitempty"`
	BlockID           *string `json:"block_id,omitempty"`
	BlockEntityID     *string `json:"block_entity_id,omitempty"`
	SyncToClient      *bool   `json:"sync_to_client,omitempty"`
	DropsKeepContents *bool   `json:"drops_keep_contents,omitempty"`
}

// EquipmentDocument is the on-disk form of equipment/*.json
type EquipmentDocument struct {
	Type      *string            `json:"type" jsonschema:"title=Type tag,description=Must be alchemy:equipment"`
	ID        *string            `json:"id" jsonschema:"title=Equipment id,description=namespace:path"`
	NameKey   *string            `json:"name_key,omitempty"`
	Rarity    *string            `json:"rarity,omitempty"`
	Material  *string            `json:"material,omitempty"`
	Function  *string            `json:"function,omitempty"`
	StackSize *int               `json:"stack_size,omitempty"`
	Placement *PlacementDocument `json:"placement,omitempty"`
}

// PlacementDocument is the placement block of equipment
type PlacementDocument struct {
	Kind          *string `json:"kind,omitempty"`
	BlockID       *string `json:"block_id,omitempty"`
	BlockEntityID *string `json:"block_entity_id,omitempty"`
}
