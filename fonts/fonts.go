package fonts

import (
	"bytes"
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUDLabel FontName = "hud-label"
	HUDScore FontName = "hud-score"
	Button   FontName = "button"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}

	uiRegular *text.GoTextFaceSource
	uiBold    *text.GoTextFaceSource
)

// LoadDefaults loads the bundled Go fonts used by the HUD and overlays
func LoadDefaults() {
	LoadFontWithSize(HUDLabel, gobold.TTF, 10)
	LoadFontWithSize(HUDScore, gomono.TTF, 20)
	LoadFontWithSize(Button, gobold.TTF, 28)

	uiRegular = mustFaceSource(goregular.TTF)
	uiBold = mustFaceSource(gobold.TTF)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

func mustFaceSource(ttf []byte) *text.GoTextFaceSource {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		panic(err)
	}
	return src
}

// UIFace returns a text/v2 face for the overlay widgets
func UIFace(size float64, bold bool) text.Face {
	src := uiRegular
	if bold {
		src = uiBold
	}
	if src == nil {
		panic("fonts: LoadDefaults not called")
	}
	return &text.GoTextFace{Source: src, Size: size}
}
