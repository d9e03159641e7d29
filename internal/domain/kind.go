package domain

// Kind partitions the catalog
type Kind string

const (
	KindBeverage  Kind = "beverage"
	KindContainer Kind = "container"
	KindEquipment Kind = "equipment"
)

// Kinds lists every kind in load order. Containers load first so that beverage
// container references usually resolve on the first pass.
var Kinds = []Kind{KindContainer, KindBeverage, KindEquipment}

// TypeTag returns the document type tag expected for the kind
func (k Kind) TypeTag() string {
	switch k {
	case KindBeverage:
		return TypeTagBeverage
	case KindContainer:
		return TypeTagContainer
	case KindEquipment:
		return TypeTagEquipment
	default:
		return ""
	}
}

// Dir returns the content directory scanned for the kind
func (k Kind) Dir() string {
	switch k {
	case KindBeverage:
		return DirBeverages
	case KindContainer:
		return DirContainers
	case KindEquipment:
		return DirEquipment
	default:
		return ""
	}
}

func (k Kind) String() string {
	return string(k)
}
