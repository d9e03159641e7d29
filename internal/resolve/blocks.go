package resolve

import (
	"github.com/mosberg/alchemy/internal/domain"
	"github.com/mosberg/alchemy/internal/identifier"
)

// BlockID returns explicit, or the owner's id with the block suffix
func BlockID(owner, explicit identifier.ID) identifier.ID {
	if !explicit.IsZero() {
		return explicit
	}
	return owner.WithSuffix(domain.BlockSuffix)
}

// BlockEntityID returns explicit, or the block id itself
func BlockEntityID(blockID, explicit identifier.ID) identifier.ID {
	if !explicit.IsZero() {
		return explicit
	}
	return blockID
}

// DeriveContainerBlock fills the placed-block ids of a container
func DeriveContainerBlock(def domain.Container) domain.Container {
	placed := &def.StateStorage.PlacedBlock
	placed.BlockID = BlockID(def.ID, placed.BlockID)
	placed.BlockEntityID = BlockEntityID(placed.BlockID, placed.BlockEntityID)
	return def
}

// DeriveEquipmentBlock fills the placement block ids of an equipment definition
func DeriveEquipmentBlock(def domain.Equipment) domain.Equipment {
	placement := &def.Placement
	placement.BlockID = BlockID(def.ID, placement.BlockID)
	placement.BlockEntityID = BlockEntityID(placement.BlockID, placement.BlockEntityID)
	return def
}
