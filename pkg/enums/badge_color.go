package enums

// BadgeColor is the fixed palette used for status badges.
type BadgeColor string

const (
	BadgeColorGreen  BadgeColor = "green"
	BadgeColorRed    BadgeColor = "red"
	BadgeColorYellow BadgeColor = "yellow"
	BadgeColorGray   BadgeColor = "gray"
	BadgeColorBlue   BadgeColor = "blue"
)

// String implements fmt.Stringer.
func (b BadgeColor) String() string {
	return string(b)
}
