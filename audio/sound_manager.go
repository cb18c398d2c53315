package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager owns the speaker and mixes short UI chimes. Initialization
// failure disables playback without failing the caller; a dashboard without
// a sound device just runs silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything; the speaker itself has no close
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayTalk is the rising blip for an opening dialogue
func (sm *SoundManager) PlayTalk() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*120), NewChimeGenerator(sampleRate, 520, 780)))
}

// PlayClose is the falling blip of a closing dialogue
func (sm *SoundManager) PlayClose() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*100), NewChimeGenerator(sampleRate, 660, 440)))
}

// PlaySelect is a short click for agent and room selection
func (sm *SoundManager) PlaySelect() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*60), NewChimeGenerator(sampleRate, 880, 880)))
}

// PlayDrop is the low thunk of a completed drag
func (sm *SoundManager) PlayDrop() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*150), NewThunkGenerator(sampleRate, 140)))
}

// ChimeGenerator sweeps a sine from startFreq to endFreq with a fade-out
type ChimeGenerator struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	pos       int
	samples   int
}

// NewChimeGenerator creates a frequency-sweep chime
func NewChimeGenerator(sr beep.SampleRate, startFreq, endFreq float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:        sr,
		startFreq: startFreq,
		endFreq:   endFreq,
		samples:   sr.N(time.Millisecond * 150),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(float64(g.pos)/float64(g.samples), 1.0)

		freq := g.startFreq + (g.endFreq-g.startFreq)*progress
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0) * (1.0 - progress)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// ThunkGenerator generates a low sine with harmonics and a fast decay
type ThunkGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewThunkGenerator creates a percussive low-frequency hit
func NewThunkGenerator(sr beep.SampleRate, freq float64) *ThunkGenerator {
	return &ThunkGenerator{sr: sr, freq: freq}
}

func (g *ThunkGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*2*t)

		decay := math.Exp(-t * 25)
		sample *= decay

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThunkGenerator) Err() error {
	return nil
}
