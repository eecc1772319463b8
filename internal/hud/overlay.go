package hud

import (
	"time"

	"github.com/gen2brain/raylib-go/easings"
	"github.com/sirupsen/logrus"

	"nusantara/internal/assets"
	"nusantara/internal/collectibles"
	"nusantara/internal/engine"
	"nusantara/internal/kingdoms"
)

// FadeDuration is how long the transition overlay takes to fade, in
// seconds.
const FadeDuration float32 = 0.3

// Panel is the modal panel currently open.
type Panel int

const (
	PanelNone Panel = iota
	PanelInfo
	PanelQuiz
	PanelArtifact
)

type ArtifactInfo struct {
	Title       string
	Description string
	Image       string
}

// Overlay implements Bridge on top of raygui. State changes happen
// immediately; Draw renders whatever the state is.
type Overlay struct {
	// QuizRequested fires with the kingdom id when the info panel's quiz
	// button is pressed.
	QuizRequested engine.Event[string]
	// AnswerSelected fires with the option index the player picked.
	AnswerSelected engine.Event[int]

	Debug      bool
	DebugLines []string

	log      logrus.FieldLogger
	panel    Panel
	info     kingdoms.Kingdom
	quiz     *kingdoms.Session
	artifact ArtifactInfo

	prompt        string
	promptVisible bool

	fadeIn   bool
	fadeFrom float32
	fadeT    float32

	stats   collectibles.Stats
	records []collectibles.Record

	notice     string
	noticeLeft time.Duration
}

var _ Bridge = (*Overlay)(nil)

func NewOverlay(log logrus.FieldLogger) *Overlay {
	return &Overlay{log: log, fadeT: FadeDuration}
}

func (o *Overlay) ShowInfoPanel(k kingdoms.Kingdom) {
	o.info = k
	o.panel = PanelInfo
}

func (o *Overlay) ShowQuizPanel(s *kingdoms.Session) {
	if s == nil {
		return
	}
	o.quiz = s
	o.panel = PanelQuiz
}

// ShowArtifactPanel opens the artifact panel. The image is left out when
// the path is empty or no file exists for it.
func (o *Overlay) ShowArtifactPanel(title, description, imagePath string) {
	if imagePath != "" && !assets.Exists(imagePath) {
		o.log.WithField("image", imagePath).Debug("Artifact image missing")
		imagePath = ""
	}
	o.artifact = ArtifactInfo{Title: title, Description: description, Image: imagePath}
	o.panel = PanelArtifact
}

func (o *Overlay) ShowPrompt(text string) {
	o.prompt = text
	o.promptVisible = true
}

func (o *Overlay) HidePrompt() {
	o.promptVisible = false
}

func (o *Overlay) ShowTransitionOverlay() {
	o.startFade(true)
}

func (o *Overlay) HideTransitionOverlay() {
	o.startFade(false)
}

func (o *Overlay) startFade(in bool) {
	o.fadeFrom = o.FadeAlpha()
	o.fadeIn = in
	o.fadeT = 0
}

func (o *Overlay) RenderCollectibleHUD(stats collectibles.Stats, records []collectibles.Record) {
	o.stats = stats
	o.records = append(o.records[:0], records...)
}

// Notify shows message for durationMs, replacing any current notice.
func (o *Overlay) Notify(message string, durationMs int) {
	o.notice = message
	o.noticeLeft = time.Duration(durationMs) * time.Millisecond
}

// Update advances the fade and the notice timer.
func (o *Overlay) Update(deltaTime float32) {
	o.fadeT += deltaTime
	if o.fadeT > FadeDuration {
		o.fadeT = FadeDuration
	}
	if o.noticeLeft > 0 {
		o.noticeLeft -= time.Duration(float64(deltaTime) * float64(time.Second))
		if o.noticeLeft <= 0 {
			o.notice = ""
			o.noticeLeft = 0
		}
	}
}

// FadeAlpha is the transition overlay opacity in [0, 1].
func (o *Overlay) FadeAlpha() float32 {
	t := o.fadeT
	if t > FadeDuration {
		t = FadeDuration
	}
	if o.fadeIn {
		return easings.QuadOut(t, o.fadeFrom, 1-o.fadeFrom, FadeDuration)
	}
	return easings.QuadIn(t, o.fadeFrom, -o.fadeFrom, FadeDuration)
}

// Close dismisses the open panel.
func (o *Overlay) Close() {
	o.panel = PanelNone
}

// ModalOpen reports whether a panel is capturing the pointer.
func (o *Overlay) ModalOpen() bool {
	return o.panel != PanelNone
}

func (o *Overlay) Panel() Panel {
	return o.panel
}

func (o *Overlay) Info() kingdoms.Kingdom {
	return o.info
}

func (o *Overlay) Quiz() *kingdoms.Session {
	return o.quiz
}

func (o *Overlay) Artifact() ArtifactInfo {
	return o.artifact
}

// Prompt returns the hover prompt and whether it is visible.
func (o *Overlay) Prompt() (string, bool) {
	return o.prompt, o.promptVisible
}

// Notice returns the current notification, if any.
func (o *Overlay) Notice() (string, bool) {
	return o.notice, o.notice != ""
}

func (o *Overlay) Collected() (collectibles.Stats, []collectibles.Record) {
	return o.stats, o.records
}
