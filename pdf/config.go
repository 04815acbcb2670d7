package pdf

import "pkt.systems/bhumi/layout"

// Config holds rendering settings: page geometry and the four font
// resources. Fonts may be given as paths or as raw TTF bytes, not both.
// When neither is set, CoreFont selects a built-in PDF font family; core
// fonts carry no Devanagari glyphs, so that mode suits Latin-only output
// and tests.
type Config struct {
	Geometry layout.Geometry

	LatinRegular      string
	LatinBold         string
	DevanagariRegular string
	DevanagariBold    string

	LatinRegularBytes      []byte
	LatinBoldBytes         []byte
	DevanagariRegularBytes []byte
	DevanagariBoldBytes    []byte

	CoreFont string
}

// DefaultConfig returns the deployment defaults: house geometry and the
// Noto font files the service ships beside the binary.
func DefaultConfig() Config {
	return Config{
		Geometry:          layout.DefaultGeometry(),
		LatinRegular:      "fonts/NotoSans-Regular.ttf",
		LatinBold:         "fonts/NotoSans-Bold.ttf",
		DevanagariRegular: "fonts/NotoSansDevanagari-Regular.ttf",
		DevanagariBold:    "fonts/NotoSansDevanagari-Bold.ttf",
	}
}

func applyConfig(dst *Config, src Config) {
	var zeroGeom layout.Geometry
	if src.Geometry != zeroGeom {
		dst.Geometry = src.Geometry
	}
	if src.LatinRegular != "" {
		dst.LatinRegular = src.LatinRegular
	}
	if src.LatinBold != "" {
		dst.LatinBold = src.LatinBold
	}
	if src.DevanagariRegular != "" {
		dst.DevanagariRegular = src.DevanagariRegular
	}
	if src.DevanagariBold != "" {
		dst.DevanagariBold = src.DevanagariBold
	}
	if len(src.LatinRegularBytes) > 0 {
		dst.LatinRegularBytes = src.LatinRegularBytes
	}
	if len(src.LatinBoldBytes) > 0 {
		dst.LatinBoldBytes = src.LatinBoldBytes
	}
	if len(src.DevanagariRegularBytes) > 0 {
		dst.DevanagariRegularBytes = src.DevanagariRegularBytes
	}
	if len(src.DevanagariBoldBytes) > 0 {
		dst.DevanagariBoldBytes = src.DevanagariBoldBytes
	}
	if src.CoreFont != "" {
		dst.CoreFont = src.CoreFont
		dst.LatinRegular = ""
		dst.LatinBold = ""
		dst.DevanagariRegular = ""
		dst.DevanagariBold = ""
	}
}
