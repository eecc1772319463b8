package hud

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"nusantara/internal/assets"
)

const (
	fontSize      = 18
	smallFontSize = 16
	lineHeight    = 22
	panelWidth    = 560
	panelPadding  = 16
)

var (
	colorPanel   = rl.NewColor(22, 33, 62, 235)
	colorGold    = rl.NewColor(255, 215, 0, 255)
	colorText    = rl.NewColor(235, 235, 240, 255)
	colorMuted   = rl.NewColor(170, 170, 185, 255)
	colorCorrect = rl.NewColor(76, 175, 80, 255)
	colorWrong   = rl.NewColor(244, 67, 54, 255)
)

// InitStyle applies the overlay theme to raygui. Call once after the window
// is open.
func InitStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(40, 50, 90, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.NewColor(60, 75, 130, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorGold))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorGold))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(rl.Black))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorGold))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(colorGold))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, fontSize)
}

func measure(size int32) func(string) int32 {
	return func(s string) int32 { return rl.MeasureText(s, size) }
}

// Draw renders the overlay. It must run between BeginDrawing and
// EndDrawing, after the 3D pass.
func (o *Overlay) Draw() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	o.drawCrosshair(w, h)
	o.drawCollectibles()
	if o.promptVisible && o.prompt != "" && !o.ModalOpen() {
		o.drawBanner(o.prompt, w/2, h-80, colorText)
	}
	if o.notice != "" {
		o.drawBanner(o.notice, w/2, 40, colorGold)
	}

	switch o.panel {
	case PanelInfo:
		o.drawInfo(w, h)
	case PanelQuiz:
		o.drawQuiz(w, h)
	case PanelArtifact:
		o.drawArtifact(w, h)
	}

	if o.Debug {
		for i, line := range o.DebugLines {
			rl.DrawText(line, 10, h-int32(len(o.DebugLines)-i)*lineHeight-10, smallFontSize, rl.Lime)
		}
	}

	if a := o.FadeAlpha(); a > 0 {
		rl.DrawRectangle(0, 0, w, h, rl.Fade(rl.Black, a))
	}
}

func (o *Overlay) drawCrosshair(w, h int32) {
	if o.ModalOpen() {
		return
	}
	rl.DrawCircleLines(w/2, h/2, 6, rl.Fade(rl.White, 0.8))
	rl.DrawCircle(w/2, h/2, 1.5, rl.White)
}

func (o *Overlay) drawBanner(text string, cx, y int32, color rl.Color) {
	tw := rl.MeasureText(text, fontSize)
	rl.DrawRectangle(cx-tw/2-panelPadding, y-8, tw+2*panelPadding, fontSize+16, colorPanel)
	rl.DrawText(text, cx-tw/2, y, fontSize, color)
}

func (o *Overlay) drawCollectibles() {
	x, y := int32(16), int32(16)
	height := int32(lineHeight*(len(o.records)+1) + 12)
	rl.DrawRectangle(x-6, y-6, 260, height, colorPanel)
	rl.DrawText(fmt.Sprintf("%d/%d Terkumpul", o.stats.Found, o.stats.Total), x, y, fontSize, colorGold)
	for i, r := range o.records {
		mark, color := "[ ]", colorMuted
		if r.Found {
			mark, color = "[x]", colorCorrect
		}
		rl.DrawText(mark+" "+r.Name, x, y+int32(i+1)*lineHeight, smallFontSize, color)
	}
}

func panelRect(w, h, height int32) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(w-panelWidth) / 2,
		Y:      float32(h-height) / 2,
		Width:  panelWidth,
		Height: float32(height),
	}
}

// drawParagraph draws wrapped text and returns the y below it.
func drawParagraph(text string, x, y, width int32, size int32, color rl.Color) int32 {
	for _, line := range wrapText(text, width, measure(size)) {
		rl.DrawText(line, x, y, size, color)
		y += lineHeight
	}
	return y
}

func (o *Overlay) drawInfo(w, h int32) {
	k := o.info
	r := panelRect(w, h, 420)
	if gui.WindowBox(r, k.Name) {
		o.Close()
		return
	}
	x, y := int32(r.X)+panelPadding, int32(r.Y)+40
	width := int32(r.Width) - 2*panelPadding
	rl.DrawText("Periode: "+k.Period, x, y, smallFontSize, colorGold)
	y += lineHeight
	rl.DrawText("Lokasi: "+k.Location, x, y, smallFontSize, colorGold)
	y += lineHeight + 6
	y = drawParagraph(k.Description, x, y, width, smallFontSize, colorText)
	y += 6
	drawParagraph("Fakta menarik: "+k.FunFact, x, y, width, smallFontSize, colorMuted)

	bottom := r.Y + r.Height - 48
	if gui.Button(rl.Rectangle{X: r.X + panelPadding, Y: bottom, Width: 160, Height: 32}, "Mulai Kuis") {
		o.QuizRequested.Invoke(k.ID)
	}
	if gui.Button(rl.Rectangle{X: r.X + r.Width - panelPadding - 120, Y: bottom, Width: 120, Height: 32}, "Tutup") {
		o.Close()
	}
}

func (o *Overlay) drawQuiz(w, h int32) {
	s := o.quiz
	q := s.Quiz
	r := panelRect(w, h, 440)
	if gui.WindowBox(r, "Kuis") && s.Answered() {
		o.Close()
		return
	}
	x, y := int32(r.X)+panelPadding, int32(r.Y)+40
	width := int32(r.Width) - 2*panelPadding
	y = drawParagraph(q.Question, x, y, width, fontSize, colorText) + 8

	answered := s.Answered()
	result := s.Result()
	if answered {
		gui.Disable()
	}
	for i, opt := range q.Options {
		bounds := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width), Height: 32}
		if gui.Button(bounds, fmt.Sprintf("%c. %s", 'A'+i, opt)) && !answered {
			o.AnswerSelected.Invoke(i)
		}
		if answered {
			switch i {
			case q.Correct:
				rl.DrawRectangleLinesEx(bounds, 3, colorCorrect)
			case result.Selected:
				rl.DrawRectangleLinesEx(bounds, 3, colorWrong)
			}
		}
		y += 40
	}
	if answered {
		gui.Enable()
		verdict, color := "Salah!", colorWrong
		if result.Correct {
			verdict, color = "Benar!", colorCorrect
		}
		rl.DrawText(verdict, x, y, fontSize, color)
		drawParagraph(result.Explanation, x, y+lineHeight, width, smallFontSize, colorMuted)
		if gui.Button(rl.Rectangle{X: r.X + r.Width - panelPadding - 120, Y: r.Y + r.Height - 48, Width: 120, Height: 32}, "Tutup") {
			o.Close()
		}
	}
}

func (o *Overlay) drawArtifact(w, h int32) {
	a := o.artifact
	height := int32(260)
	if a.Image != "" {
		height += 220
	}
	r := panelRect(w, h, height)
	if gui.WindowBox(r, a.Title) {
		o.Close()
		return
	}
	x, y := int32(r.X)+panelPadding, int32(r.Y)+40
	width := int32(r.Width) - 2*panelPadding

	if a.Image != "" {
		if tex, ok := assets.LoadTexture(a.Image); ok {
			scale := float32(200) / float32(tex.Height)
			if sw := float32(width) / float32(tex.Width); sw < scale {
				scale = sw
			}
			tw := float32(tex.Width) * scale
			pos := rl.Vector2{X: r.X + (r.Width-tw)/2, Y: float32(y)}
			rl.DrawTextureEx(tex, pos, 0, scale, rl.White)
		}
		y += 220
	}
	drawParagraph(a.Description, x, y, width, smallFontSize, colorText)
	if gui.Button(rl.Rectangle{X: r.X + r.Width - panelPadding - 120, Y: r.Y + r.Height - 48, Width: 120, Height: 32}, "Tutup") {
		o.Close()
	}
}
