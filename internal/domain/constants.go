package domain

// Namespace owned by this content pack
const Namespace = "alchemy"

// Document type tags
const (
	TypeTagBeverage  = "alchemy:alcohol"
	TypeTagContainer = "alchemy:container"
	TypeTagEquipment = "alchemy:equipment"
)

// Content directories, relative to the content root
const (
	DirBeverages  = "beverages"
	DirContainers = "containers"
	DirEquipment  = "equipment"
)

// Error kind labels
const (
	ErrorKindMalformedDocument = "MalformedDocument"
	ErrorKindMissingField      = "MissingField"
	ErrorKindInvalidRange      = "InvalidRange"
	ErrorKindUnknownReference  = "UnknownReference"
	ErrorKindEmptyEffectList   = "EmptyEffectList"
)

// Rarity values seen in content; rarity is a free-form tag
const (
	RarityCommon   = "common"
	RarityUncommon = "uncommon"
	RarityRare     = "rare"
	RarityEpic     = "epic"
)

// BlockSuffix is appended to an owner id to derive its placed-block id
const BlockSuffix = "_block"

// Ticks per second on the host
const TicksPerSecond = 20
