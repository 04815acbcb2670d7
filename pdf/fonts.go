package pdf

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
	"pkt.systems/bhumi/layout"
)

// ErrMissingFont wraps every font configuration failure. It is the only
// fatal error the core produces: verified once at startup, never per
// request.
var ErrMissingFont = errors.New("font asset missing")

// Font family names registered with the page writer.
const (
	latinFamily      = "latin"
	devanagariFamily = "devanagari"
)

// FontSet holds the four loaded font resources. It is immutable after
// LoadFonts and safe for concurrent readers: load once at process start and
// share across requests.
type FontSet struct {
	core string

	latinRegular []byte
	latinBold    []byte
	devaRegular  []byte
	devaBold     []byte
}

// LoadFonts loads the configured fonts. Byte slices win over paths; with
// neither, CoreFont must name a built-in PDF font family.
func LoadFonts(cfg Config) (*FontSet, error) {
	hasBytes := len(cfg.LatinRegularBytes) > 0 || len(cfg.LatinBoldBytes) > 0 ||
		len(cfg.DevanagariRegularBytes) > 0 || len(cfg.DevanagariBoldBytes) > 0
	if hasBytes {
		if len(cfg.LatinRegularBytes) == 0 || len(cfg.LatinBoldBytes) == 0 ||
			len(cfg.DevanagariRegularBytes) == 0 || len(cfg.DevanagariBoldBytes) == 0 {
			return nil, fmt.Errorf("load fonts: incomplete embedded font bytes: %w", ErrMissingFont)
		}
		return &FontSet{
			latinRegular: cfg.LatinRegularBytes,
			latinBold:    cfg.LatinBoldBytes,
			devaRegular:  cfg.DevanagariRegularBytes,
			devaBold:     cfg.DevanagariBoldBytes,
		}, nil
	}
	if cfg.CoreFont != "" {
		if !isCoreFont(cfg.CoreFont) {
			return nil, fmt.Errorf("load fonts: %q is not a core font family: %w", cfg.CoreFont, ErrMissingFont)
		}
		return &FontSet{core: cfg.CoreFont}, nil
	}
	fs := &FontSet{}
	for _, f := range []struct {
		path string
		dst  *[]byte
	}{
		{cfg.LatinRegular, &fs.latinRegular},
		{cfg.LatinBold, &fs.latinBold},
		{cfg.DevanagariRegular, &fs.devaRegular},
		{cfg.DevanagariBold, &fs.devaBold},
	} {
		if f.path == "" {
			return nil, fmt.Errorf("load fonts: font path not configured: %w", ErrMissingFont)
		}
		data, err := os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("load fonts: %s: %v: %w", f.path, err, ErrMissingFont)
		}
		*f.dst = data
	}
	return fs, nil
}

func isCoreFont(name string) bool {
	switch name {
	case "Courier", "Helvetica", "Times":
		return true
	default:
		return false
	}
}

// register adds the fonts to a document. UTF-8 fonts are embedded as
// subsets so the output is viewable without the fonts installed.
func (fs *FontSet) register(doc *fpdf.Fpdf) {
	if fs.core != "" {
		return
	}
	doc.AddUTF8FontFromBytes(latinFamily, "", fs.latinRegular)
	doc.AddUTF8FontFromBytes(latinFamily, "B", fs.latinBold)
	doc.AddUTF8FontFromBytes(devanagariFamily, "", fs.devaRegular)
	doc.AddUTF8FontFromBytes(devanagariFamily, "B", fs.devaBold)
}

// font resolves a layout face to a registered family and style.
func (fs *FontSet) font(face layout.Face) (family, style string) {
	if fs.core != "" {
		family = fs.core
	} else if face == layout.FaceDevanagari || face == layout.FaceDevanagariBold {
		family = devanagariFamily
	} else {
		family = latinFamily
	}
	if face == layout.FaceLatinBold || face == layout.FaceDevanagariBold {
		style = "B"
	}
	return family, style
}
