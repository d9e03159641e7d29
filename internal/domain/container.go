package domain

import (
	"strings"

	"github.com/mosberg/alchemy/internal/identifier"
)

// Container is an empty vessel definition loaded from containers/*.json
type Container struct {
	ID           identifier.ID `json:"id"`
	Kind         string        `json:"container_kind"`
	StackSize    int           `json:"stack_size" validate:"min=1"`
	Rarity       string        `json:"rarity"`
	Durability   Durability    `json:"durability"`
	Interaction  Interaction   `json:"interaction"`
	Seal         Seal          `json:"seal"`
	StateStorage StateStorage  `json:"state_storage"`
}

// Durability describes how the container wears and survives damage
type Durability struct {
	Breakable           bool   `json:"breakable"`
	MaxDamage           int    `json:"max_damage" validate:"gte=0"`
	Fireproof           bool   `json:"fireproof"`
	ExplosionResistance string `json:"explosion_resistance"`
}

// Interaction describes what happens when a filled container is used
type Interaction struct {
	UseAction        UseAction     `json:"use_action"`
	ReturnsContainer bool          `json:"returns_container"`
	ReturnItemID     identifier.ID `json:"return_item_id"`
	ConsumeOnUse     bool          `json:"consume_on_use"`
	ConsumeOnDrink   bool          `json:"consume_on_drink"`
}

// Seal describes the container's closure
type Seal struct {
	StartsSealed bool   `json:"starts_sealed"`
	Reopenable   bool   `json:"reopenable"`
	SealQuality  string `json:"seal_quality"`
}

// StateStorage groups the block-side representation of a container
type StateStorage struct {
	PlacedBlock PlacedBlock `json:"placed_block"`
}

// PlacedBlock is the placeable-block form of a container.
// BlockID and BlockEntityID are always populated, derived when not explicit.
type PlacedBlock struct {
	Enabled           bool          `json:"enabled"`
	BlockID           identifier.ID `json:"block_id"`
	BlockEntityID     identifier.ID `json:"block_entity_id"`
	SyncToClient      bool          `json:"sync_to_client"`
	DropsKeepContents bool          `json:"drops_keep_contents"`
}

// UseAction is the host animation played while using an item
type UseAction string

const (
	UseActionDrink    UseAction = "drink"
	UseActionEat      UseAction = "eat"
	UseActionBlock    UseAction = "block"
	UseActionBow      UseAction = "bow"
	UseActionCrossbow UseAction = "crossbow"
	UseActionSpyglass UseAction = "spyglass"
)

// ParseUseAction maps a tag to a UseAction, case-insensitively; unknown tags drink
func ParseUseAction(tag string) UseAction {
	switch action := UseAction(strings.ToLower(strings.TrimSpace(tag))); action {
	case UseActionEat, UseActionBlock, UseActionBow, UseActionCrossbow, UseActionSpyglass:
		return action
	default:
		return UseActionDrink
	}
}
