// Package zones runs the zone lifecycle: fade out, swap the active zone,
// fade back in.
package zones

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"nusantara/internal/collectibles"
	"nusantara/internal/engine"
	"nusantara/internal/hud"
	"nusantara/internal/interaction"
	"nusantara/internal/kingdoms"
	"nusantara/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	FadeOutDelay = 800 * time.Millisecond
	FadeInDelay  = 100 * time.Millisecond
)

type State int

const (
	Idle State = iota
	FadingOut
	Loading
	FadingIn
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case FadingOut:
		return "fading-out"
	case Loading:
		return "loading"
	case FadingIn:
		return "fading-in"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Spawner moves the player to a zone's spawn point.
type Spawner interface {
	Teleport(pos rl.Vector3)
}

// Manager owns the active zone. Transitions are driven by Tick, never by
// timers of their own.
type Manager struct {
	// Entered fires with the zone id after a zone is installed.
	Entered engine.Event[string]
	// QuizAnswered relays the answer of the current quiz session.
	QuizAnswered engine.Event[kingdoms.AnswerResult]

	log      logrus.FieldLogger
	world    *world.World
	provider world.Provider
	detector *interaction.Detector
	store    *collectibles.Store
	catalog  *kingdoms.Catalog
	bridge   hud.Bridge
	player   Spawner

	state   State
	pending string
	elapsed time.Duration
	quiz    *kingdoms.Session
}

type Deps struct {
	World    *world.World
	Provider world.Provider
	Detector *interaction.Detector
	Store    *collectibles.Store
	Catalog  *kingdoms.Catalog
	Bridge   hud.Bridge
	Player   Spawner
}

func NewManager(d Deps, log logrus.FieldLogger) *Manager {
	return &Manager{
		log:      log,
		world:    d.World,
		provider: d.Provider,
		detector: d.Detector,
		store:    d.Store,
		catalog:  d.Catalog,
		bridge:   d.Bridge,
		player:   d.Player,
	}
}

func (m *Manager) State() State {
	return m.state
}

// CurrentZone returns the active zone id, or "" before Start.
func (m *Manager) CurrentZone() string {
	if m.world.Zone == nil {
		return ""
	}
	return m.world.Zone.ID
}

// Start installs the first zone without a transition.
func (m *Manager) Start(zoneID string) error {
	if !m.provider.Has(zoneID) {
		return fmt.Errorf("start zone %q: %w", zoneID, world.ErrUnknownZone)
	}
	return m.load(zoneID)
}

// Enter begins a transition to dest. It is rejected while another
// transition is in flight or when dest is unknown.
func (m *Manager) Enter(dest string) bool {
	entry := m.log.WithFields(logrus.Fields{"from": m.CurrentZone(), "to": dest})
	if m.state != Idle {
		entry.WithField("state", m.state).Debug("Transition already in flight")
		return false
	}
	if !m.provider.Has(dest) {
		entry.Warn("Unknown destination")
		return false
	}

	m.bridge.ShowTransitionOverlay()
	m.pending = dest
	m.elapsed = 0
	m.state = FadingOut
	entry.Info("Entering zone")
	return true
}

// Tick advances an in-flight transition by deltaTime seconds.
func (m *Manager) Tick(deltaTime float32) {
	if m.state == Idle {
		return
	}
	m.elapsed += time.Duration(float64(deltaTime) * float64(time.Second))

	switch m.state {
	case FadingOut:
		if m.elapsed < FadeOutDelay {
			return
		}
		m.state = Loading
		if err := m.load(m.pending); err != nil {
			m.log.WithError(err).WithField("zone", m.pending).Error("Zone load failed, staying put")
		}
		m.pending = ""
		m.elapsed = 0
		m.state = FadingIn
	case FadingIn:
		if m.elapsed < FadeInDelay {
			return
		}
		m.bridge.HideTransitionOverlay()
		m.elapsed = 0
		m.state = Idle
	}
}

// load builds the destination first so a provider failure leaves the
// current zone untouched.
func (m *Manager) load(zoneID string) error {
	z, err := m.provider.LoadZone(zoneID)
	if err != nil {
		return err
	}

	m.detector.Reset()
	m.world.Teardown()
	m.world.Install(z)

	m.player.Teleport(z.Spawn)
	if m.world.AttachPlayer() {
		m.log.Warn("Player was detached from the scene, re-attached")
	}
	if n := z.DropFound(m.store); n > 0 {
		m.log.WithFields(logrus.Fields{"zone": zoneID, "dropped": n}).Debug("Skipped found collectibles")
	}
	m.detector.Index(m.world.Scene, z.Entities, z.Scenery)
	m.RefreshHUD()

	m.quiz = nil
	if k, ok := m.catalog.Get(zoneID); ok {
		m.bridge.ShowInfoPanel(k)
	}

	m.log.WithFields(logrus.Fields{
		"zone":     zoneID,
		"entities": len(z.Entities),
	}).Info("Zone ready")
	m.Entered.Invoke(zoneID)
	return nil
}

// RefreshHUD republishes collectible progress for the active zone.
func (m *Manager) RefreshHUD() {
	m.bridge.RenderCollectibleHUD(m.store.Stats(), m.store.ListForZone(m.CurrentZone()))
}

// RequestQuiz opens a fresh quiz session for the current kingdom. It
// returns false in the lobby or during a transition.
func (m *Manager) RequestQuiz() bool {
	if m.state != Idle {
		return false
	}
	k, ok := m.catalog.Get(m.CurrentZone())
	if !ok {
		return false
	}
	m.quiz = kingdoms.NewSession(k)
	m.quiz.AnswerChecked.AddListener(func(r kingdoms.AnswerResult) {
		m.log.WithFields(logrus.Fields{
			"kingdom":  r.KingdomID,
			"selected": r.Selected,
			"correct":  r.Correct,
		}).Info("Quiz answered")
		m.QuizAnswered.Invoke(r)
	})
	m.bridge.ShowQuizPanel(m.quiz)
	return true
}

// AnswerQuiz answers the open quiz session. Only the first answer counts.
func (m *Manager) AnswerQuiz(i int) (kingdoms.AnswerResult, bool) {
	if m.quiz == nil {
		return kingdoms.AnswerResult{}, false
	}
	return m.quiz.Answer(i)
}
