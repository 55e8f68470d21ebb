// Package audio plays synthesised sound effects for simulation events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/warpfield/internal/object"
)

const (
	SampleRate = beep.SampleRate(44100)
	MaxVoices  = 16 // Further sounds are dropped while this many play
)

// Sink is an object.Effects implementation that mixes one voice per
// sound-bearing event. A Sink that is not attached to the speaker can still
// be streamed by hand.
type Sink struct {
	Volume float64

	mu       sync.Mutex
	mixer    *beep.Mixer
	rate     beep.SampleRate
	speaking bool
}

// NewSink creates a detached sink.
func NewSink(volume float64) *Sink {
	return &Sink{Volume: volume, mixer: &beep.Mixer{}, rate: SampleRate}
}

// Open initialises the speaker and starts playing the sink's mixer.
func Open(volume float64) (*Sink, error) {
	s := NewSink(volume)
	if err := speaker.Init(s.rate, s.rate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.speaking = true
	return s, nil
}

// Trigger queues the sound for e.
func (s *Sink) Trigger(e object.Effect) {
	st := Sound(e, s.rate, s.Volume)
	if st == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lock()
	defer s.unlock()

	if s.mixer.Len() >= MaxVoices {
		return
	}
	s.mixer.Add(st)
}

// Stream pulls mixed samples from a detached sink.
func (s *Sink) Stream(samples [][2]float64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mixer.Stream(samples)
}

// Playing returns the number of voices still sounding.
func (s *Sink) Playing() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lock()
	defer s.unlock()
	return s.mixer.Len()
}

// Close silences everything and releases the speaker.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.speaking {
		s.mixer.Clear()
		return
	}
	speaker.Clear()
	speaker.Close()
	s.speaking = false
}

func (s *Sink) lock() {
	if s.speaking {
		speaker.Lock()
	}
}

func (s *Sink) unlock() {
	if s.speaking {
		speaker.Unlock()
	}
}
