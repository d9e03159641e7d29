package domain

import "github.com/mosberg/alchemy/internal/identifier"

// Equipment is a brewing tool definition loaded from equipment/*.json
type Equipment struct {
	ID        identifier.ID `json:"id"`
	NameKey   string        `json:"name_key"`
	Rarity    string        `json:"rarity"`
	Material  string        `json:"material"`
	Function  string        `json:"function"`
	StackSize int           `json:"stack_size" validate:"min=1"`
	Placement Placement     `json:"placement"`
}

// Placement describes whether the equipment can be placed as a block
type Placement struct {
	Kind          string        `json:"kind"`
	BlockEnabled  bool          `json:"block_enabled"`
	BlockID       identifier.ID `json:"block_id"`
	BlockEntityID identifier.ID `json:"block_entity_id"`
}

// PlacementKindBlock enables block placement
const PlacementKindBlock = "block"
