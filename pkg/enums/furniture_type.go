package enums

import "fmt"

// FurnitureType selects the 3D asset and default scale of a placed item.
type FurnitureType string

const (
	FurnitureTypeTableSmall FurnitureType = "table-small"
	FurnitureTypeTableLarge FurnitureType = "table-large"
	FurnitureTypeTableRound FurnitureType = "table-round"
	FurnitureTypeChair      FurnitureType = "chair"
	FurnitureTypeArmchair   FurnitureType = "armchair"
	FurnitureTypeSofa       FurnitureType = "sofa"
	FurnitureTypeBarCounter FurnitureType = "bar-counter"
	FurnitureTypePlant      FurnitureType = "plant"
)

var validFurnitureTypes = []FurnitureType{
	FurnitureTypeTableSmall,
	FurnitureTypeTableLarge,
	FurnitureTypeTableRound,
	FurnitureTypeChair,
	FurnitureTypeArmchair,
	FurnitureTypeSofa,
	FurnitureTypeBarCounter,
	FurnitureTypePlant,
}

// FurnitureTypes returns every known furniture type.
func FurnitureTypes() []FurnitureType {
	out := make([]FurnitureType, len(validFurnitureTypes))
	copy(out, validFurnitureTypes)
	return out
}

// String implements fmt.Stringer.
func (f FurnitureType) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FurnitureType.
func (f FurnitureType) IsValid() bool {
	return isValid(f, validFurnitureTypes)
}

// IsTable reports whether the type carries a reservation status in the UI.
func (f FurnitureType) IsTable() bool {
	switch f {
	case FurnitureTypeTableSmall, FurnitureTypeTableLarge, FurnitureTypeTableRound:
		return true
	}
	return false
}

// ParseFurnitureType converts raw input into a FurnitureType.
func ParseFurnitureType(value string) (FurnitureType, error) {
	for _, candidate := range validFurnitureTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid furniture type %q", value)
}
