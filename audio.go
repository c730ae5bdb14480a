package main

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/skyclimb/ecs"
)

const sampleRate = 44100

// tone is a short sine sweep from Start to End Hz.
type tone struct {
	Start, End float64
	Seconds    float64
	Volume     float64
}

var cueTones = map[ecs.EventType]tone{
	ecs.EventJumped:           {Start: 440, End: 660, Seconds: 0.08, Volume: 0.3},
	ecs.EventDoubleJumped:     {Start: 660, End: 990, Seconds: 0.08, Volume: 0.3},
	ecs.EventBananaCollected:  {Start: 880, End: 1320, Seconds: 0.06, Volume: 0.35},
	ecs.EventPowerUpCollected: {Start: 520, End: 1560, Seconds: 0.25, Volume: 0.4},
	ecs.EventObstacleHit:      {Start: 220, End: 110, Seconds: 0.15, Volume: 0.45},
	ecs.EventDied:             {Start: 330, End: 80, Seconds: 0.6, Volume: 0.5},
}

// Sounds plays a synthesized cue for gameplay events. A nil *Sounds is
// silent.
type Sounds struct {
	ctx     *audio.Context
	players map[ecs.EventType]cuePlayer
}

// cuePlayer is the part of *audio.Player a cue needs.
type cuePlayer interface {
	Rewind() error
	Play()
}

func NewSounds() *Sounds {
	ctx := audio.NewContext(sampleRate)
	s := &Sounds{ctx: ctx, players: make(map[ecs.EventType]cuePlayer, len(cueTones))}
	for ev, t := range cueTones {
		s.players[ev] = ctx.NewPlayerFromBytes(synthesize(t))
	}
	return s
}

func (s *Sounds) Play(ev ecs.EventType) {
	if s == nil {
		return
	}
	p, ok := s.players[ev]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("audio: rewind %s cue: %v", ev, err)
		return
	}
	p.Play()
}

// synthesize renders t as 16-bit little-endian stereo PCM with a linear
// fade out.
func synthesize(t tone) []byte {
	n := int(t.Seconds * sampleRate)
	buf := make([]byte, n*4)
	phase := 0.0
	for i := range n {
		progress := float64(i) / float64(n)
		freq := t.Start + (t.End-t.Start)*progress
		phase += 2 * math.Pi * freq / sampleRate
		v := int16(math.Sin(phase) * t.Volume * (1 - progress) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
