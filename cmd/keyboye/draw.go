package main

import (
	"strconv"

	"github.com/minikomi/temper/internal/keymap"
	"github.com/minikomi/temper/note"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const octaveWidth = 70

var red = sdl.Color{R: 225, G: 30, B: 30, A: 225}
var gray = sdl.Color{R: 180, G: 180, B: 180, A: 225}

// marker x offsets inside an octave, by pitch class
var whiteOffsets = map[int]int32{0: 2, 2: 12, 4: 22, 5: 32, 7: 42, 9: 52, 11: 62}
var blackOffsets = map[int]int32{1: 8, 3: 18, 6: 38, 8: 48, 10: 58}

func getKeyboardColor(octave int) (uint8, uint8, uint8) {
	if octave%2 == 0 {
		return 240, 240, 240
	}
	return 215, 215, 225
}

func (kb *keyboye) Draw(renderer *sdl.Renderer, font *ttf.Font) {
	renderer.SetDrawColor(225, 225, 225, 255)
	renderer.Clear()

	// draw keyboard
	for i := keymap.MinOctave; i <= keymap.MaxOctave; i++ {
		kbOffsetLeft := int32(10 + octaveWidth*(i-keymap.MinOctave))

		// text
		if font != nil {
			color := gray
			if i == kb.layout.Octave {
				color = red
			}
			drawText(renderer, font, strconv.Itoa(i), color, kbOffsetLeft, 0)
		}

		// bg
		r, g, b := getKeyboardColor(i)
		renderer.SetDrawColor(r, g, b, 255)
		rect := sdl.Rect{X: kbOffsetLeft, Y: 12, W: octaveWidth, H: 40}
		renderer.FillRect(&rect)

		// keys
		for j := int32(0); j < 7; j++ {
			renderer.SetDrawColor(50, 50, 50, 255)
			rect = sdl.Rect{X: kbOffsetLeft + j*10, Y: 12, W: 10, H: 40}
			renderer.DrawRect(&rect)
		}

		// black keys
		for _, j := range []int32{0, 1, 3, 4, 5} {
			renderer.SetDrawColor(50, 50, 50, 255)
			rect = sdl.Rect{X: kbOffsetLeft + 5 + j*10 + 2, Y: 12, W: 6, H: 20}
			renderer.FillRect(&rect)
		}

		// active marker spans the octave plus the high keys
		if i == kb.layout.Octave {
			renderer.SetDrawColor(255, 30, 30, 255)
			w := int32(octaveWidth + 20)
			if i == keymap.MaxOctave {
				w = octaveWidth
			}
			rect = sdl.Rect{X: kbOffsetLeft, Y: 52, W: w, H: 2}
			renderer.FillRect(&rect)
		}
	}

	// draw pressed keys
	renderer.SetDrawColor(255, 30, 30, 255)
	for _, idx := range kb.active {
		oct := note.Octave(idx) - keymap.MinOctave
		pc := ((idx % 12) + 12) % 12
		kbOffsetLeft := int32(10 + oct*octaveWidth)

		var rect sdl.Rect
		if keymap.IsBlack(idx) {
			rect = sdl.Rect{X: kbOffsetLeft + blackOffsets[pc], Y: 12, W: 4, H: 8}
		} else {
			rect = sdl.Rect{X: kbOffsetLeft + whiteOffsets[pc], Y: 40, W: 6, H: 8}
		}
		renderer.FillRect(&rect)
	}

	renderer.Present()
}

func drawText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color, x, y int32) {
	solid, err := font.RenderUTF8Solid(text, color)
	if err != nil {
		return
	}
	defer solid.Free()

	texture, err := renderer.CreateTextureFromSurface(solid)
	if err != nil {
		return
	}
	defer texture.Destroy()

	srcRect := sdl.Rect{X: 0, Y: 0, W: 10, H: 12}
	rect := sdl.Rect{X: x, Y: y, W: 10, H: 12}
	renderer.Copy(texture, &srcRect, &rect)
}
