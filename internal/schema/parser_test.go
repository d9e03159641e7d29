package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosberg/alchemy/internal/domain"
	"github.com/mosberg/alchemy/internal/identifier"
)

const lagerJSON = `{
	"type": "alchemy:alcohol",
	"id": "demo:lager",
	"container": "demo:can",
	"effects": [
		{"effect": "minecraft:haste", "duration": 6000, "amplifier": 0, "chance": 1.0}
	]
}`

func TestParseBeverage_Defaults(t *testing.T) {
	parsed, err := ParseBeverage("beverages/lager.json", []byte(lagerJSON))
	require.NoError(t, err)

	def := parsed.Definition
	assert.Equal(t, identifier.MustParse("demo:lager"), def.ID)
	assert.Equal(t, identifier.MustParse("demo:can"), def.Container)
	assert.Equal(t, 16, def.StackSize)
	assert.Equal(t, "beer", def.Category)
	assert.Equal(t, "", def.Style)
	assert.Equal(t, domain.RarityCommon, def.Rarity)
	assert.Equal(t, 1, def.Stats.Nutrition.Hunger)
	assert.Equal(t, 0.0, def.Stats.Nutrition.Saturation)
	assert.True(t, def.Config.Enabled)
	assert.Nil(t, def.Config.OverrideStackSize)

	require.Len(t, def.Effects, 1)
	effect := def.Effects[0]
	assert.Equal(t, identifier.MustParse("minecraft:haste"), effect.Effect)
	assert.Equal(t, 6000, effect.Duration)
	assert.Equal(t, 0, effect.Amplifier)
	assert.Equal(t, 1.0, effect.Chance)
	assert.True(t, effect.ShowParticles)
	assert.True(t, effect.ShowIcon)
	assert.False(t, effect.Ambient)
}

func TestParseBeverage_EffectDefaults(t *testing.T) {
	data := `{"type":"alchemy:alcohol","id":"demo:stout","container":"demo:can",
		"effects":[{"effect":"minecraft:resistance"}]}`
	parsed, err := ParseBeverage("stout.json", []byte(data))
	require.NoError(t, err)

	effect := parsed.Definition.Effects[0]
	assert.Equal(t, DefaultEffectDuration, effect.Duration)
	assert.Equal(t, DefaultEffectChance, effect.Chance)
}

func TestParseBeverage_FullDocument(t *testing.T) {
	data := `{
		"type": "alchemy:alcohol",
		"id": "alchemy:blackvault_stout",
		"category": "stout",
		"style": "imperial",
		"container": "alchemy:aluminum_can",
		"rarity": "rare",
		"stack_size": 8,
		"stats": {
			"alcohol_by_volume": 9.5,
			"strength": 3,
			"nutrition": {"hunger": 5, "saturation": 0.7},
			"intoxication": {"value": 2.5, "decay_rate_per_tick": 0.01}
		},
		"effects": [
			{"effect": "minecraft:resistance", "duration": 3600, "amplifier": 1, "chance": 0.5,
			 "show_particles": false, "show_icon": false, "ambient": true},
			{"effect": "minecraft:nausea", "chance": 0.1}
		],
		"text": {"lore_key": "lore.stout", "warning_key": "warn.stout"},
		"config": {"enabled": false, "override_rarity": "epic", "override_stack_size": 4,
			"override_loot_weight": 3, "disable_random_failures": true, "disable_spoilage": true}
	}`
	parsed, err := ParseBeverage("stout.json", []byte(data))
	require.NoError(t, err)

	def := parsed.Definition
	assert.Equal(t, "stout", def.Category)
	assert.Equal(t, "imperial", def.Style)
	assert.Equal(t, "rare", def.Rarity)
	assert.Equal(t, 8, def.StackSize)
	assert.Equal(t, 9.5, def.Stats.AlcoholByVolume)
	assert.Equal(t, 3.0, def.Stats.Strength)
	assert.Equal(t, domain.Nutrition{Hunger: 5, Saturation: 0.7}, def.Stats.Nutrition)
	assert.Equal(t, domain.Intoxication{Value: 2.5, DecayRatePerTick: 0.01}, def.Stats.Intoxication)

	require.Len(t, def.Effects, 2)
	assert.Equal(t, domain.EffectEntry{
		Effect:    identifier.MustParse("minecraft:resistance"),
		Duration:  3600,
		Amplifier: 1,
		Chance:    0.5,
		Ambient:   true,
	}, def.Effects[0])
	assert.Equal(t, 0.1, def.Effects[1].Chance)

	assert.Equal(t, "lore.stout", def.Text.Lore)
	assert.Equal(t, "warn.stout", def.Text.Warning)

	assert.False(t, def.Config.Enabled)
	assert.Equal(t, "epic", def.EffectiveRarity())
	assert.Equal(t, 4, def.EffectiveStackSize())
	require.NotNil(t, def.Config.OverrideLootWeight)
	assert.Equal(t, 3, *def.Config.OverrideLootWeight)
	assert.True(t, def.Config.DisableRandomFailures)
	assert.True(t, def.Config.DisableSpoilage)
}

func TestParseBeverage_RootTextKeys(t *testing.T) {
	data := `{"type":"alchemy:alcohol","id":"demo:pils","container":"demo:can",
		"lore_key":"lore.root","effects":[{"effect":"minecraft:speed"}]}`
	parsed, err := ParseBeverage("pils.json", []byte(data))
	require.NoError(t, err)
	assert.Equal(t, "lore.root", parsed.Definition.Text.Lore)

	withObject := `{"type":"alchemy:alcohol","id":"demo:pils","container":"demo:can",
		"lore_key":"lore.root","text":{"flavor_text_key":"flavor.obj"},"effects":[{"effect":"minecraft:speed"}]}`
	parsed, err = ParseBeverage("pils.json", []byte(withObject))
	require.NoError(t, err)
	assert.Equal(t, "", parsed.Definition.Text.Lore, "text object replaces root keys")
	assert.Equal(t, "flavor.obj", parsed.Definition.Text.Flavor)
}

func TestParseBeverage_Idempotent(t *testing.T) {
	first, err := ParseBeverage("lager.json", []byte(lagerJSON))
	require.NoError(t, err)
	second, err := ParseBeverage("lager.json", []byte(lagerJSON))
	require.NoError(t, err)
	assert.Equal(t, first.Definition, second.Definition)
}

func TestParseBeverage_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		field string
	}{
		{name: "invalid JSON", data: `{"type": "alchemy:alcohol",`},
		{name: "not an object", data: `[1, 2]`, field: FieldType},
		{name: "missing type tag", data: `{"id": "demo:lager"}`, field: FieldType},
		{name: "wrong type tag", data: `{"type": "alchemy:container", "id": "demo:lager"}`, field: FieldType},
		{name: "type tag not a string", data: `{"type": 7}`, field: FieldType},
		{name: "wrong field type", data: `{"type": "alchemy:alcohol", "stack_size": "lots"}`},
		{name: "bad identifier", data: `{"type": "alchemy:alcohol", "id": "Demo:Lager"}`, field: FieldID},
		{name: "bad effect identifier", data: `{"type": "alchemy:alcohol", "id": "demo:lager",
			"effects": [{"effect": "minecraft:ok"}, {"effect": "bad id"}]}`, field: "effects[1].effect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBeverage("bad.json", []byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedDocument))

			var docErr *domain.DocumentError
			require.True(t, errors.As(err, &docErr))
			assert.Equal(t, "bad.json", docErr.Path)
			assert.Equal(t, domain.KindBeverage, docErr.Kind)
			assert.Equal(t, tt.field, docErr.Field)
		})
	}
}

func TestParseBeverage_AbsentFieldsStayZero(t *testing.T) {
	parsed, err := ParseBeverage("x.json", []byte(`{"type":"alchemy:alcohol"}`))
	require.NoError(t, err, "required fields are the validator's concern")
	assert.True(t, parsed.Definition.ID.IsZero())
	assert.True(t, parsed.Definition.Container.IsZero())
	assert.Nil(t, parsed.Raw.ID)
	assert.Empty(t, parsed.Definition.Effects)
}

func TestParseContainer_Defaults(t *testing.T) {
	data := `{"type":"alchemy:container","id":"demo:can","state_storage":{"placed_block":{}}}`
	parsed, err := ParseContainer("containers/can.json", []byte(data))
	require.NoError(t, err)

	def := parsed.Definition
	assert.Equal(t, "can", def.Kind)
	assert.Equal(t, 16, def.StackSize)
	assert.Equal(t, domain.RarityCommon, def.Rarity)
	assert.Equal(t, domain.Durability{Breakable: true, ExplosionResistance: "low"}, def.Durability)
	assert.Equal(t, domain.Interaction{
		UseAction:        domain.UseActionDrink,
		ReturnsContainer: true,
		ReturnItemID:     identifier.MustParse("demo:can"),
		ConsumeOnDrink:   true,
	}, def.Interaction)
	assert.Equal(t, domain.Seal{StartsSealed: true, Reopenable: true, SealQuality: "good"}, def.Seal)

	placed := def.StateStorage.PlacedBlock
	assert.False(t, placed.Enabled, "no block_id means disabled unless stated")
	assert.True(t, placed.BlockID.IsZero(), "derivation is left to the resolver")
	assert.True(t, placed.SyncToClient)
	assert.True(t, placed.DropsKeepContents)
}

func TestParseContainer_Explicit(t *testing.T) {
	data := `{
		"type": "alchemy:container",
		"id": "alchemy:aluminum_keg",
		"container_kind": "keg",
		"stack_size": 1,
		"rarity": "uncommon",
		"durability": {"breakable": false, "max_damage": 250, "fireproof": true, "explosion_resistance": "high"},
		"interaction": {"use_action": "EAT", "returns_container": false, "return_item_id": "alchemy:scrap",
			"consume_on_use": true, "consume_on_drink": false},
		"seal": {"starts_sealed": false, "reopenable": false, "seal_quality": "poor"},
		"state_storage": {"placed_block": {"block_id": "alchemy:keg", "block_entity_id": "alchemy:keg_entity",
			"sync_to_client": false, "drops_keep_contents": false}}
	}`
	parsed, err := ParseContainer("keg.json", []byte(data))
	require.NoError(t, err)

	def := parsed.Definition
	assert.Equal(t, "keg", def.Kind)
	assert.Equal(t, 250, def.Durability.MaxDamage)
	assert.Equal(t, domain.UseActionEat, def.Interaction.UseAction)
	assert.Equal(t, identifier.MustParse("alchemy:scrap"), def.Interaction.ReturnItemID)
	assert.Equal(t, "poor", def.Seal.SealQuality)
	assert.Equal(t, domain.PlacedBlock{
		Enabled:       true,
		BlockID:       identifier.MustParse("alchemy:keg"),
		BlockEntityID: identifier.MustParse("alchemy:keg_entity"),
	}, def.StateStorage.PlacedBlock)
}

func TestParseContainer_WrongTag(t *testing.T) {
	_, err := ParseContainer("can.json", []byte(`{"type":"alchemy:alcohol","id":"demo:can"}`))
	assert.True(t, errors.Is(err, domain.ErrMalformedDocument))
}

func TestParseEquipment(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		parsed, err := ParseEquipment("kettle.json", []byte(`{"type":"alchemy:equipment","id":"demo:kettle"}`))
		require.NoError(t, err)
		def := parsed.Definition
		assert.Equal(t, 1, def.StackSize)
		assert.Equal(t, domain.RarityCommon, def.Rarity)
		assert.False(t, def.Placement.BlockEnabled)
		assert.True(t, def.Placement.BlockID.IsZero())
	})

	t.Run("block placement", func(t *testing.T) {
		data := `{"type":"alchemy:equipment","id":"demo:kettle","name_key":"block.demo.kettle",
			"material":"copper","function":"boil","stack_size":4,"placement":{"kind":"Block","block_entity_id":"demo:kettle_be"}}`
		parsed, err := ParseEquipment("kettle.json", []byte(data))
		require.NoError(t, err)
		def := parsed.Definition
		assert.Equal(t, "block.demo.kettle", def.NameKey)
		assert.Equal(t, "copper", def.Material)
		assert.Equal(t, "boil", def.Function)
		assert.Equal(t, 4, def.StackSize)
		assert.True(t, def.Placement.BlockEnabled)
		assert.Equal(t, identifier.MustParse("demo:kettle_be"), def.Placement.BlockEntityID)
	})
}
