package domain

// Color is a Notion text or background colour annotation.
type Color string

// Notion colours. Background variants apply to the span's background
// rather than the glyphs themselves; both render identically in the
// markup dialect's colour attribute.
const (
	ColorDefault Color = "default"

	ColorGray   Color = "gray"
	ColorBrown  Color = "brown"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorPink   Color = "pink"
	ColorRed    Color = "red"

	ColorGrayBackground   Color = "gray_background"
	ColorBrownBackground  Color = "brown_background"
	ColorOrangeBackground Color = "orange_background"
	ColorYellowBackground Color = "yellow_background"
	ColorGreenBackground  Color = "green_background"
	ColorBlueBackground   Color = "blue_background"
	ColorPurpleBackground Color = "purple_background"
	ColorPinkBackground   Color = "pink_background"
	ColorRedBackground    Color = "red_background"
)

// IsDefault reports whether the colour is the default (uncoloured) value.
// The empty string counts as default so zero-valued payloads render plainly.
func (c Color) IsDefault() bool {
	return c == ColorDefault || c == ""
}

// String returns the colour name as used on the wire.
func (c Color) String() string {
	if c == "" {
		return string(ColorDefault)
	}
	return string(c)
}
