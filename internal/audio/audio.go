// Package audio is the fire-and-forget playback collaborator. Callers never
// wait on it and ignore its failures.
package audio

import (
	"context"

	"github.com/Tahmid447/Tahmid-English-Club/internal/logger"
)

// Cue is a symbolic sound effect.
type Cue string

const (
	CueClick   Cue = "click"
	CueCorrect Cue = "correct"
	CueWrong   Cue = "wrong"
	CueSuccess Cue = "success"
	CuePop     Cue = "pop"
)

// Player plays short feedback sounds.
type Player interface {
	Play(ctx context.Context, cue Cue)
}

// Speaker reads English text aloud.
type Speaker interface {
	Speak(ctx context.Context, text string)
}

// LogPlayer logs cues instead of producing audio. Playback happens in the
// presentation layer, outside this process.
type LogPlayer struct{}

func (LogPlayer) Play(ctx context.Context, cue Cue) {
	logger.FromContext(ctx).WithPrefix("audio").Debug("play cue: %s", cue)
}

// LogSpeaker logs speech requests instead of synthesizing them.
type LogSpeaker struct{}

func (LogSpeaker) Speak(ctx context.Context, text string) {
	logger.FromContext(ctx).WithPrefix("audio").Debug("speak: %q", text)
}
