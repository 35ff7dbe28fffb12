package ui

// Color is an 8-bit RGBA color, independent of any drawing backend.
type Color struct {
	R, G, B, A uint8
}

// Canvas is the drawing surface a host hands to the Renderer once per frame.
// Coordinates are in the host's pixel space with the origin top-left.
type Canvas interface {
	Size() (width, height float32)
	Clear(c Color)
	Line(x1, y1, x2, y2, thickness float32, c Color)
	FillRect(x, y, w, h float32, c Color)
	Text(s string, x, y, size float32, c Color)
}

// Theme holds every color the Renderer draws with.
type Theme struct {
	Background Color
	Grid       Color
	Body       Color
	Head       Color
	Fruit      Color
	Text       Color
	GameOver   Color
}

func DefaultTheme() Theme {
	return Theme{
		Background: Color{R: 51, G: 51, B: 51, A: 255},
		Grid:       Color{R: 102, G: 102, B: 102, A: 255},
		Body:       Color{R: 0, G: 204, B: 0, A: 255},
		Head:       Color{R: 0, G: 255, B: 0, A: 255},
		Fruit:      Color{R: 255, G: 0, B: 0, A: 255},
		Text:       Color{R: 255, G: 255, B: 255, A: 255},
		GameOver:   Color{R: 255, G: 0, B: 0, A: 255},
	}
}
