package schema

import "fmt"

// JSON field paths used in error reports
const (
	FieldType                   = "type"
	FieldID                     = "id"
	FieldContainer              = "container"
	FieldStackSize              = "stack_size"
	FieldEffects                = "effects"
	FieldEffect                 = "effect"
	FieldReturnItemID           = "interaction.return_item_id"
	FieldPlacedBlockID          = "state_storage.placed_block.block_id"
	FieldPlacedBlockEntityID    = "state_storage.placed_block.block_entity_id"
	FieldPlacementBlockID       = "placement.block_id"
	FieldPlacementBlockEntityID = "placement.block_entity_id"
)

// Error messages
const (
	ErrMsgInvalidJSON = "document is not valid JSON"
)

// Format strings for error construction
const (
	ErrFmtUndecodable    = "cannot decode document: %v"
	ErrFmtMissingTypeTag = "missing type tag, expected '%s'"
	ErrFmtWrongTypeTag   = "expected type '%s' but found '%s'"
)

// EffectField returns the JSON path of a field inside effects[index]
func EffectField(index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", FieldEffects, index, field)
}
