package flappy

import (
	"fmt"
	"unicode/utf8"

	"github.com/bnookala/flappy-claude/internal/core"
)

// Visual characters for rendering
const (
	BirdChar  = '▶'
	PipeChar  = '█'
	RuleChar  = '─'
	TitleText = " Flappy Claude "
)

// Frame layout: border, header, rule, field rows, rule, footer, border.
const chromeRows = 6

// ScreenSize returns the terminal cells needed to draw a field.
func ScreenSize(fieldW, fieldH int) (w, h int) {
	return fieldW + 2, fieldH + chromeRows
}

// Render draws a snapshot into dst, resizing it to ScreenSize first.
// The field is drawn for every status; prompt and death screens are boxes
// on top of it.
func Render(snap Snapshot, dst *core.Screen) {
	w, h := ScreenSize(snap.FieldWidth, snap.FieldHeight)
	dst.Resize(w, h)
	dst.Clear()
	frame := dst.Bounds()

	borderColor := core.ColorBlue
	switch snap.Status {
	case StatusPrompted:
		borderColor = core.ColorCyan
	case StatusDead:
		borderColor = core.ColorRed
	}
	dst.DrawBox(frame, borderColor)
	dst.DrawTextCentered(0, TitleText, core.ColorBrightCyan)

	header := fmt.Sprintf(" Score: %d", snap.Score)
	dst.DrawText(1, 1, header, core.ColorGreen)
	dst.DrawText(1+len(header), 1, "  |  ", core.ColorGray)
	dst.DrawText(1+len(header)+5, 1, fmt.Sprintf("High: %d", snap.HighScore), core.ColorYellow)

	dst.DrawHLine(1, 2, snap.FieldWidth, RuleChar, core.ColorGray)
	dst.DrawHLine(1, h-3, snap.FieldWidth, RuleChar, core.ColorGray)
	dst.DrawText(1, h-2, " SPACE to flap | Q to quit", core.ColorGray)

	field := core.NewRect(1, 3, snap.FieldWidth, snap.FieldHeight)
	drawField(snap, dst, field)

	switch snap.Status {
	case StatusPrompted:
		drawMessage(dst, field, core.ColorCyan,
			"* Claude is ready! *",
			"",
			"Return to session? (y/n)",
			"",
			fmt.Sprintf("Current Score: %d", snap.Score),
		)
	case StatusDead:
		if snap.Mode == ModeSingleLife {
			drawMessage(dst, field, core.ColorRed,
				"Game Over!",
				"",
				fmt.Sprintf("Score: %d", snap.Score),
				fmt.Sprintf("High Score: %d", snap.HighScore),
				"",
				"Press any key to exit",
			)
		} else {
			drawMessage(dst, field, core.ColorRed,
				fmt.Sprintf("Score: %d", snap.Score),
				fmt.Sprintf("High Score: %d", snap.HighScore),
				"",
				"Restarting...",
			)
		}
	}
}

// drawField draws pipes and the bird inside the field rectangle.
func drawField(snap Snapshot, dst *core.Screen, field core.Rect) {
	for row := 0; row < field.H; row++ {
		for col := 0; col < field.W; col++ {
			probe := Bird{X: col, Y: float64(row)}
			for _, p := range snap.Pipes {
				if IsInsidePipe(probe, p) {
					dst.SetColor(field.X+col, field.Y+row, PipeChar, core.ColorGreen)
					break
				}
			}
		}
	}

	x, y := field.X+snap.Bird.X, field.Y+snap.Bird.Row()
	if field.Contains(x, y) {
		dst.SetColor(x, y, BirdChar, core.ColorBrightYellow)
	}
}

// drawMessage draws a boxed, centered block of lines over the field.
func drawMessage(dst *core.Screen, field core.Rect, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	box := field.Centered(width+6, len(lines)+4)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	for i, l := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(l))/2
		dst.DrawText(x, box.Y+2+i, l, c)
	}
}
