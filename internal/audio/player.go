// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package audio plays synthesized feedback on the client machine by handing
// a temporary WAV file to an external player program.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/mattn/go-shellwords"
)

var (
	// ErrPlayerClosed is returned by Play after Close.
	ErrPlayerClosed = errors.New("audio player is closed")

	// ErrEmptyClip is returned by Play for an empty payload.
	ErrEmptyClip = errors.New("audio clip is empty")
)

// Player holds at most one clip. Playing a new clip stops the running
// playback and removes the previous file.
type Player struct {
	command []string
	dir     string
	logger  *logger.Logger

	mu     sync.Mutex
	file   string
	cmd    *exec.Cmd
	done   chan struct{}
	closed bool
}

// NewPlayer parses command with shell quoting rules. An empty command yields
// a player that keeps the clip on disk without playing it. Files are created
// in dir, or in the system temp directory when dir is empty.
func NewPlayer(command, dir string, log *logger.Logger) (*Player, error) {
	args, err := shellwords.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parse player command: %w", err)
	}

	return &Player{
		command: args,
		dir:     dir,
		logger:  log,
	}, nil
}

// Play writes wav to a new temp file and starts the player on it.
func (p *Player) Play(ctx context.Context, wav []byte) error {
	if len(wav) == 0 {
		return ErrEmptyClip
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPlayerClosed
	}
	p.releaseLocked()

	f, err := os.CreateTemp(p.dir, "feedback-*.wav")
	if err != nil {
		return fmt.Errorf("create audio file: %w", err)
	}
	if _, err = f.Write(wav); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return fmt.Errorf("write audio file: %w", err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("close audio file: %w", err)
	}
	p.file = f.Name()

	if len(p.command) == 0 {
		return nil
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	args := append(append([]string{}, p.command[1:]...), p.file)
	cmd := exec.Command(p.command[0], args...)
	if err = cmd.Start(); err != nil {
		return fmt.Errorf("start player: %w", err)
	}

	done := make(chan struct{})
	p.cmd, p.done = cmd, done
	go func() {
		defer close(done)
		if waitErr := cmd.Wait(); waitErr != nil {
			p.logger.Debug().Err(waitErr).Msg("player exited")
		}
	}()

	return nil
}

// File returns the path of the current clip, empty when there is none.
func (p *Player) File() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.file
}

// Release stops playback and removes the current file.
func (p *Player) Release() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.releaseLocked()
}

// Close releases the current clip and rejects further playback.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return p.releaseLocked()
}

// releaseLocked must be called with mu held.
func (p *Player) releaseLocked() error {
	if p.cmd != nil {
		if p.cmd.Process != nil {
			_ = p.cmd.Process.Kill()
		}
		<-p.done
		p.cmd, p.done = nil, nil
	}

	if p.file == "" {
		return nil
	}
	path := p.file
	p.file = ""
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove audio file: %w", err)
	}
	return nil
}
