package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mosberg/alchemy/internal/domain"
	"github.com/mosberg/alchemy/internal/identifier"
)

// ParsedBeverage is the intermediate form handed to the validator.
// Raw keeps presence information; Definition has every default applied.
type ParsedBeverage struct {
	Path       string
	Raw        *BeverageDocument
	Definition domain.Beverage
}

// ParsedContainer is the intermediate form of a container document
type ParsedContainer struct {
	Path       string
	Raw        *ContainerDocument
	Definition domain.Container
}

// ParsedEquipment is the intermediate form of an equipment document
type ParsedEquipment struct {
	Path       string
	Raw        *EquipmentDocument
	Definition domain.Equipment
}

type header struct {
	Type *string `json:"type"`
}

// ParseBeverage parses one beverages/*.json document
func ParseBeverage(path string, data []byte) (*ParsedBeverage, error) {
	var doc BeverageDocument
	if err := decode(domain.KindBeverage, path, data, &doc); err != nil {
		return nil, err
	}

	p := fieldParser{path: path, kind: domain.KindBeverage}
	def := domain.Beverage{
		ID:        p.id(FieldID, doc.ID),
		Category:  valueOr(doc.Category, DefaultCategory),
		Style:     valueOr(doc.Style, DefaultStyle),
		Container: p.id(FieldContainer, doc.Container),
		Rarity:    valueOr(doc.Rarity, DefaultRarity),
		StackSize: valueOr(doc.StackSize, DefaultBeverageStackSize),
		Stats:     beverageStats(doc.Stats),
		Text:      textKeys(&doc),
		Config:    beverageConfig(doc.Config),
	}

	if len(doc.Effects) > 0 {
		def.Effects = make([]domain.EffectEntry, len(doc.Effects))
		for i := range doc.Effects {
			def.Effects[i] = p.effect(i, &doc.Effects[i])
		}
	}

	if p.err != nil {
		return nil, p.err
	}
	return &ParsedBeverage{Path: path, Raw: &doc, Definition: def}, nil
}

// ParseContainer parses one containers/*.json document.
// Placed-block ids are left zero when absent; the resolver derives them.
func ParseContainer(path string, data []byte) (*ParsedContainer, error) {
	var doc ContainerDocument
	if err := decode(domain.KindContainer, path, data, &doc); err != nil {
		return nil, err
	}

	p := fieldParser{path: path, kind: domain.KindContainer}
	id := p.id(FieldID, doc.ID)

	durability := valueOr(doc.Durability, DurabilityDocument{})
	interaction := valueOr(doc.Interaction, InteractionDocument{})
	seal := valueOr(doc.Seal, SealDocument{})
	storage := valueOr(doc.StateStorage, StateStorageDocument{})
	placed := valueOr(storage.PlacedBlock, PlacedBlockDocument{})

	returnItem := id
	if interaction.ReturnItemID != nil {
		returnItem = p.id(FieldReturnItemID, interaction.ReturnItemID)
	}

	def := domain.Container{
		ID:        id,
		Kind:      valueOr(doc.ContainerKind, DefaultContainerKind),
		StackSize: valueOr(doc.StackSize, DefaultContainerStackSize),
		Rarity:    valueOr(doc.Rarity, DefaultRarity),
		Durability: domain.Durability{
			Breakable:           valueOr(durability.Breakable, DefaultBreakable),
			MaxDamage:           valueOr(durability.MaxDamage, DefaultMaxDamage),
			Fireproof:           valueOr(durability.Fireproof, DefaultFireproof),
			ExplosionResistance: valueOr(durability.ExplosionResistance, DefaultExplosionResistance),
		},
		Interaction: domain.Interaction{
			UseAction:        domain.ParseUseAction(valueOr(interaction.UseAction, DefaultUseAction)),
			ReturnsContainer: valueOr(interaction.ReturnsContainer, DefaultReturnsContainer),
			ReturnItemID:     returnItem,
			ConsumeOnUse:     valueOr(interaction.ConsumeOnUse, DefaultConsumeOnUse),
			ConsumeOnDrink:   valueOr(interaction.ConsumeOnDrink, DefaultConsumeOnDrink),
		},
		Seal: domain.Seal{
			StartsSealed: valueOr(seal.StartsSealed, DefaultStartsSealed),
			Reopenable:   valueOr(seal.Reopenable, DefaultReopenable),
			SealQuality:  valueOr(seal.SealQuality, DefaultSealQuality),
		},
		StateStorage: domain.StateStorage{
			PlacedBlock: domain.PlacedBlock{
				// A placed block is enabled by default only when it names its block
				Enabled:           valueOr(placed.Enabled, placed.BlockID != nil),
				BlockID:           p.id(FieldPlacedBlockID, placed.BlockID),
				BlockEntityID:     p.id(FieldPlacedBlockEntityID, placed.BlockEntityID),
				SyncToClient:      valueOr(placed.SyncToClient, DefaultSyncToClient),
				DropsKeepContents: valueOr(placed.DropsKeepContents, DefaultDropsKeepContents),
			},
		},
	}

	if p.err != nil {
		return nil, p.err
	}
	return &ParsedContainer{Path: path, Raw: &doc, Definition: def}, nil
}

// ParseEquipment parses one equipment/*.json document
func ParseEquipment(path string, data []byte) (*ParsedEquipment, error) {
	var doc EquipmentDocument
	if err := decode(domain.KindEquipment, path, data, &doc); err != nil {
		return nil, err
	}

	p := fieldParser{path: path, kind: domain.KindEquipment}
	placement := valueOr(doc.Placement, PlacementDocument{})
	kind := valueOr(placement.Kind, DefaultPlacementKind)

	def := domain.Equipment{
		ID:        p.id(FieldID, doc.ID),
		NameKey:   valueOr(doc.NameKey, DefaultNameKey),
		Rarity:    valueOr(doc.Rarity, DefaultRarity),
		Material:  valueOr(doc.Material, DefaultMaterial),
		Function:  valueOr(doc.Function, DefaultFunction),
		StackSize: valueOr(doc.StackSize, DefaultEquipmentStackSize),
		Placement: domain.Placement{
			Kind:          kind,
			BlockEnabled:  strings.EqualFold(kind, domain.PlacementKindBlock),
			BlockID:       p.id(FieldPlacementBlockID, placement.BlockID),
			BlockEntityID: p.id(FieldPlacementBlockEntityID, placement.BlockEntityID),
		},
	}

	if p.err != nil {
		return nil, p.err
	}
	return &ParsedEquipment{Path: path, Raw: &doc, Definition: def}, nil
}

// decode checks well-formedness and the type tag, then fills doc
func decode(kind domain.Kind, path string, data []byte, doc any) error {
	if !json.Valid(data) {
		return malformed(kind, path, "", ErrMsgInvalidJSON)
	}

	var h header
	if err := json.Unmarshal(data, &h); err != nil {
		return malformed(kind, path, FieldType, fmt.Sprintf(ErrFmtUndecodable, err))
	}
	want := kind.TypeTag()
	if h.Type == nil {
		return malformed(kind, path, FieldType, fmt.Sprintf(ErrFmtMissingTypeTag, want))
	}
	if *h.Type != want {
		return malformed(kind, path, FieldType, fmt.Sprintf(ErrFmtWrongTypeTag, want, *h.Type))
	}

	if err := json.Unmarshal(data, doc); err != nil {
		return malformed(kind, path, "", fmt.Sprintf(ErrFmtUndecodable, err))
	}
	return nil
}

func malformed(kind domain.Kind, path, field, detail string) error {
	return &domain.DocumentError{
		Path:  path,
		Kind:  kind,
		Field: field,
		Err:   fmt.Errorf("%w: %s", domain.ErrMalformedDocument, detail),
	}
}

// fieldParser keeps the first identifier error so a parse function can
// build its whole definition before reporting
type fieldParser struct {
	path string
	kind domain.Kind
	err  error
}

// id parses a present identifier. An absent one stays zero; the validator
// decides whether it was required.
func (p *fieldParser) id(field string, raw *string) identifier.ID {
	if raw == nil {
		return identifier.ID{}
	}
	id, err := identifier.Parse(*raw)
	if err != nil {
		if p.err == nil {
			p.err = malformed(p.kind, p.path, field, err.Error())
		}
		return identifier.ID{}
	}
	return id
}

func (p *fieldParser) effect(index int, doc *EffectDocument) domain.EffectEntry {
	return domain.EffectEntry{
		Effect:        p.id(EffectField(index, FieldEffect), doc.Effect),
		Duration:      valueOr(doc.Duration, DefaultEffectDuration),
		Amplifier:     valueOr(doc.Amplifier, DefaultEffectAmplifier),
		Chance:        valueOr(doc.Chance, DefaultEffectChance),
		ShowParticles: valueOr(doc.ShowParticles, DefaultShowParticles),
		ShowIcon:      valueOr(doc.ShowIcon, DefaultShowIcon),
		Ambient:       valueOr(doc.Ambient, DefaultAmbient),
	}
}

func beverageStats(doc *StatsDocument) domain.Stats {
	stats := valueOr(doc, StatsDocument{})
	nutrition := valueOr(stats.Nutrition, NutritionDocument{})
	intox := valueOr(stats.Intoxication, IntoxicationDocument{})

	return domain.Stats{
		AlcoholByVolume: valueOr(stats.AlcoholByVolume, DefaultAlcoholByVolume),
		Strength:        valueOr(stats.Strength, DefaultStrength),
		Intoxication: domain.Intoxication{
			Value:            valueOr(intox.Value, DefaultIntoxicationValue),
			DecayRatePerTick: valueOr(intox.DecayRatePerTick, DefaultIntoxicationDecay),
		},
		Nutrition: domain.Nutrition{
			Hunger:     valueOr(nutrition.Hunger, DefaultHunger),
			Saturation: valueOr(nutrition.Saturation, DefaultSaturation),
		},
	}
}

// textKeys reads the text object, or the document root when there is none
func textKeys(doc *BeverageDocument) domain.TextKeys {
	src := doc.TextDocument
	if doc.Text != nil {
		src = *doc.Text
	}
	return domain.TextKeys{
		Name:        valueOr(src.NameKey, ""),
		Lore:        valueOr(src.LoreKey, ""),
		Tooltip:     valueOr(src.TooltipKey, ""),
		Effect:      valueOr(src.EffectTextKey, ""),
		BrewTime:    valueOr(src.BrewTimeTextKey, ""),
		Ingredients: valueOr(src.IngredientsTextKey, ""),
		Container:   valueOr(src.ContainerTextKey, ""),
		Rarity:      valueOr(src.RarityTextKey, ""),
		Category:    valueOr(src.CategoryTextKey, ""),
		Flavor:      valueOr(src.FlavorTextKey, ""),
		Warning:     valueOr(src.WarningKey, ""),
		Crafting:    valueOr(src.CraftingInstructionsKey, ""),
	}
}

func beverageConfig(doc *BeverageConfigDoc) domain.BeverageConfig {
	cfg := valueOr(doc, BeverageConfigDoc{})
	return domain.BeverageConfig{
		Enabled:               valueOr(cfg.Enabled, DefaultBeverageEnabled),
		OverrideRarity:        valueOr(cfg.OverrideRarity, ""),
		OverrideStackSize:     copyPtr(cfg.OverrideStackSize),
		OverrideLootWeight:    copyPtr(cfg.OverrideLootWeight),
		DisableRandomFailures: valueOr(cfg.DisableRandomFailures, DefaultDisableFailures),
		DisableSpoilage:       valueOr(cfg.DisableSpoilage, DefaultDisableSpoilage),
	}
}
