// Package audio plays short synthesized cues through oto.
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/sirupsen/logrus"
)

const (
	SampleRate     = 44100
	ChannelCount   = 2
	bytesPerSample = 4
)

// Cue names a sound effect.
type Cue int

const (
	CueCollect Cue = iota
	CueDoor
	CueCorrect
	CueWrong
)

func (c Cue) String() string {
	switch c {
	case CueCollect:
		return "collect"
	case CueDoor:
		return "door"
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Note is one decaying sine tone. Start and Length are in seconds.
type Note struct {
	Freq   float64
	Start  float64
	Length float64
}

var cueNotes = map[Cue][]Note{
	CueCollect: {{Freq: 880, Start: 0, Length: 0.15}, {Freq: 1318.5, Start: 0.08, Length: 0.3}},
	CueDoor:    {{Freq: 220, Start: 0, Length: 0.6}, {Freq: 330, Start: 0.1, Length: 0.6}},
	CueCorrect: {{Freq: 523.25, Start: 0, Length: 0.2}, {Freq: 659.25, Start: 0.1, Length: 0.2}, {Freq: 783.99, Start: 0.2, Length: 0.4}},
	CueWrong:   {{Freq: 196, Start: 0, Length: 0.25}, {Freq: 185, Start: 0.2, Length: 0.4}},
}

// Synthesize renders notes as interleaved stereo float32 little-endian
// samples at SampleRate.
func Synthesize(notes []Note, gain float64) []byte {
	var end float64
	for _, n := range notes {
		if e := n.Start + n.Length; e > end {
			end = e
		}
	}
	frames := int(end * SampleRate)
	mono := make([]float64, frames)
	for _, n := range notes {
		first := int(n.Start * SampleRate)
		count := int(n.Length * SampleRate)
		for i := 0; i < count && first+i < frames; i++ {
			t := float64(i) / SampleRate
			env := math.Exp(-5 * t / n.Length)
			mono[first+i] += math.Sin(2*math.Pi*n.Freq*t) * env * gain
		}
	}

	buf := make([]byte, frames*ChannelCount*bytesPerSample)
	for i, v := range mono {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		bits := math.Float32bits(float32(v))
		off := i * ChannelCount * bytesPerSample
		binary.LittleEndian.PutUint32(buf[off:], bits)
		binary.LittleEndian.PutUint32(buf[off+bytesPerSample:], bits)
	}
	return buf
}

// The oto context can only be created once per process.
var (
	otoContext     *oto.Context
	otoContextOnce sync.Once
	otoContextErr  error
)

func initOtoContext() error {
	otoContextOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: ChannelCount,
			Format:       oto.FormatFloat32LE,
		}
		var ready chan struct{}
		otoContext, ready, otoContextErr = oto.NewContext(op)
		if otoContextErr != nil {
			return
		}
		<-ready
	})
	return otoContextErr
}

// Player plays cues. A Player without an audio device is silent.
type Player struct {
	mu      sync.Mutex
	log     logrus.FieldLogger
	ctx     *oto.Context
	volume  float64
	clips   map[Cue][]byte
	playing []*oto.Player
}

// NewSilent returns a Player that never touches the audio device.
func NewSilent(log logrus.FieldLogger) *Player {
	return &Player{log: log, volume: 0.4, clips: renderCues(0.4)}
}

// New opens the audio device. When it cannot be opened the returned Player
// is silent and the error says why.
func New(log logrus.FieldLogger) (*Player, error) {
	p := NewSilent(log)
	if err := initOtoContext(); err != nil {
		return p, fmt.Errorf("open audio device: %w", err)
	}
	p.ctx = otoContext
	log.WithField("sampleRate", SampleRate).Info("Audio initialized")
	return p, nil
}

func renderCues(gain float64) map[Cue][]byte {
	clips := make(map[Cue][]byte, len(cueNotes))
	for c, notes := range cueNotes {
		clips[c] = Synthesize(notes, gain)
	}
	return clips
}

// Enabled reports whether cues reach an audio device.
func (p *Player) Enabled() bool {
	return p.ctx != nil
}

// Clip returns the rendered samples for c.
func (p *Player) Clip(c Cue) []byte {
	return p.clips[c]
}

// Play starts c without blocking.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.reap()
	if p.ctx == nil {
		p.log.WithField("cue", c).Trace("Cue (silent)")
		return
	}
	clip, ok := p.clips[c]
	if !ok {
		p.log.WithField("cue", c).Warn("Unknown cue")
		return
	}
	player := p.ctx.NewPlayer(bytes.NewReader(clip))
	player.Play()
	p.playing = append(p.playing, player)
}

// reap closes players that have finished.
func (p *Player) reap() {
	live := p.playing[:0]
	for _, pl := range p.playing {
		if pl.IsPlaying() {
			live = append(live, pl)
			continue
		}
		if err := pl.Close(); err != nil {
			p.log.WithError(err).Debug("Closing audio player")
		}
	}
	p.playing = live
}

// Close stops every cue still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, pl := range p.playing {
		pl.Close()
	}
	p.playing = nil
}
