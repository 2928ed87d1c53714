package chart

// palette is the fixed ordered set of category colors. Categories beyond
// the tenth wrap around to the start.
var palette = [10]string{
	"#7823DC",
	"#3B82F6",
	"#22C55E",
	"#EAB308",
	"#EF4444",
	"#14B8A6",
	"#F97316",
	"#8B5CF6",
	"#EC4899",
	"#64748B",
}

// PaletteSize is the number of colors before assignment cycles.
const PaletteSize = len(palette)

// ColorAt returns the palette color for category index i, cycling past
// the end of the palette.
func ColorAt(i int) string {
	if i < 0 {
		i = -i
	}
	return palette[i%PaletteSize]
}

// Palette returns a copy of the full palette in order.
func Palette() []string {
	out := make([]string, PaletteSize)
	copy(out, palette[:])
	return out
}
