package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosberg/alchemy/internal/domain"
	"github.com/mosberg/alchemy/internal/identifier"
)

func beverage(id string, stack int) domain.Beverage {
	return domain.Beverage{
		ID:        identifier.MustParse(id),
		Container: identifier.MustParse("demo:can"),
		StackSize: stack,
		Effects: []domain.EffectEntry{
			{Effect: identifier.MustParse("minecraft:haste"), Duration: 200, Chance: 1.0},
		},
		Config: domain.BeverageConfig{Enabled: true},
	}
}

func TestBuilder_LastWriteWins(t *testing.T) {
	b := NewBuilder()
	b.AddBeverage(beverage("demo:lager", 16))
	b.AddBeverage(beverage("demo:stout", 8))
	b.AddBeverage(beverage("demo:lager", 4))
	c := b.Build()

	def, ok := c.Beverage(identifier.MustParse("demo:lager"))
	require.True(t, ok)
	assert.Equal(t, 4, def.StackSize)

	// The replaced id keeps its first position
	all := c.Beverages()
	require.Len(t, all, 2)
	assert.Equal(t, "demo:lager", all[0].ID.String())
	assert.Equal(t, "demo:stout", all[1].ID.String())
	assert.Equal(t, Counts{Beverages: 2}, c.Counts())
}

func TestCatalog_Lookups(t *testing.T) {
	b := NewBuilder()
	b.AddContainer(domain.Container{ID: identifier.MustParse("demo:can"), StackSize: 16})
	b.AddEquipment(domain.Equipment{ID: identifier.MustParse("demo:kettle"), StackSize: 1})
	b.AddBeverage(beverage("demo:lager", 16))
	c := b.Build()

	_, ok := c.Container(identifier.MustParse("demo:can"))
	assert.True(t, ok)
	_, ok = c.Equipment(identifier.MustParse("demo:kettle"))
	assert.True(t, ok)

	t.Run("missing ids return zero values", func(t *testing.T) {
		def, ok := c.Container(identifier.MustParse("demo:bottle"))
		assert.False(t, ok)
		assert.Equal(t, domain.Container{}, def)

		bev, ok := c.Beverage(identifier.MustParse("demo:bottle"))
		assert.False(t, ok)
		assert.True(t, bev.ID.IsZero())
	})

	t.Run("kinds are partitioned", func(t *testing.T) {
		_, ok := c.Beverage(identifier.MustParse("demo:can"))
		assert.False(t, ok)
	})

	counts := c.Counts()
	assert.Equal(t, 3, counts.Total())
	assert.Equal(t, 1, counts.Of(domain.KindEquipment))
	assert.Len(t, c.Containers(), 1)
	assert.Len(t, c.AllEquipment(), 1)
}

func TestCatalog_Immutable(t *testing.T) {
	b := NewBuilder()
	original := beverage("demo:lager", 16)
	b.AddBeverage(original)
	c := b.Build()

	// Mutating the caller's value after Add does not leak in
	original.Effects[0].Chance = 0
	def, _ := c.Beverage(original.ID)
	assert.Equal(t, 1.0, def.Effects[0].Chance)

	// Mutating a returned value does not leak back
	def.Effects[0].Chance = 0.5
	again, _ := c.Beverage(original.ID)
	assert.Equal(t, 1.0, again.Effects[0].Chance)

	list := c.Beverages()
	list[0].Effects[0].Chance = 0.25
	again, _ = c.Beverage(original.ID)
	assert.Equal(t, 1.0, again.Effects[0].Chance)
}

func TestCatalog_EnabledBeverages(t *testing.T) {
	b := NewBuilder()
	disabled := beverage("demo:flat", 16)
	disabled.Config.Enabled = false
	b.AddBeverage(beverage("demo:lager", 16))
	b.AddBeverage(disabled)
	b.AddBeverage(beverage("demo:stout", 16))
	c := b.Build()

	enabled := c.EnabledBeverages()
	require.Len(t, enabled, 2)
	assert.Equal(t, "demo:lager", enabled[0].ID.String())
	assert.Equal(t, "demo:stout", enabled[1].ID.String())
	assert.Len(t, c.Beverages(), 3)
}

func TestBuilder_UnusableAfterBuild(t *testing.T) {
	b := NewBuilder()
	b.Build()

	assert.PanicsWithValue(t, ErrMsgBuilderClosed, func() {
		b.AddBeverage(beverage("demo:lager", 16))
	})
	assert.Panics(t, func() { b.Build() })
}

func TestEmpty(t *testing.T) {
	c := Empty()
	assert.Equal(t, 0, c.Counts().Total())
	assert.Empty(t, c.Beverages())
	assert.NotNil(t, c.Beverages())
}
