package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays short tones for accepted and rejected actions. A Sound whose
// speaker could not be opened stays silent.
type Sound struct {
	enabled bool
}

func NewSound() *Sound {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Warnf("Audio initialization failed: %v", err)
		return &Sound{}
	}
	return &Sound{enabled: true}
}

func (s *Sound) tone(freq float64, d time.Duration) {
	if !s.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Warnf("Sound.tone %v: %v", freq, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (s *Sound) Accepted() {
	s.tone(880, 40*time.Millisecond)
}

func (s *Sound) Rejected() {
	s.tone(220, 120*time.Millisecond)
}

func (s *Sound) Close() {
	if s.enabled {
		speaker.Close()
	}
}
