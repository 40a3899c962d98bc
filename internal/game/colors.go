package game

// Color identifies one of the pads on the board.
type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
	Orange Color = "orange"
	Purple Color = "purple"
	Cyan   Color = "cyan"
	Pink   Color = "pink"
	White  Color = "white"
)

// Catalog lists every color in unlock order. The order is fixed at build
// time; the first four pads are available from level 1 and one more unlocks
// every third level.
var Catalog = []Color{Red, Blue, Green, Yellow, Orange, Purple, Cyan, Pink, White}

const (
	baseColorCount = 4
	unlockEvery    = 3
)

// AvailableColors returns the catalog prefix unlocked at the given level:
// min(4 + (level-1)/3, 9) entries. The result is a view into Catalog and
// must not be mutated.
func AvailableColors(level int) []Color {
	if level < 1 {
		level = 1
	}
	n := baseColorCount + (level-1)/unlockEvery
	if n > len(Catalog) {
		n = len(Catalog)
	}
	return Catalog[:n]
}

func colorAvailable(c Color, level int) bool {
	for _, a := range AvailableColors(level) {
		if a == c {
			return true
		}
	}
	return false
}
