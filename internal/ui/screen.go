// Package ui renders generated levels in the terminal using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen owns the terminal for the lifetime of a run and exposes the
// keyboard-only surface the game loop consumes. Resize events are
// absorbed with a full redraw; mouse and paste events are dropped.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens and initializes the terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := term.Init(); err != nil {
		return nil, err
	}
	return newScreen(term), nil
}

func newScreen(term tcell.Screen) *Screen {
	term.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	term.HideCursor()
	term.Clear()
	return &Screen{term: term}
}

// Close restores the terminal state.
func (s *Screen) Close() {
	s.term.Fini()
}

// NextKey blocks until the next keystroke and returns it. A nil result
// means the terminal is gone and the caller should stop.
func (s *Screen) NextKey() *tcell.EventKey {
	for {
		switch ev := s.term.PollEvent().(type) {
		case *tcell.EventKey:
			return ev
		case *tcell.EventResize:
			s.term.Sync()
		case nil:
			return nil
		}
	}
}

// FitsLevel reports whether the terminal can show a width x height map
// with the status line beneath it.
func (s *Screen) FitsLevel(width, height int) bool {
	w, h := s.term.Size()
	return w >= width && h >= height+1
}

// beginFrame, put and endFrame carry one rendered frame; only the
// Renderer draws, so they stay package-private.
func (s *Screen) beginFrame() {
	s.term.Clear()
}

func (s *Screen) put(x, y int, r rune, style tcell.Style) {
	s.term.SetContent(x, y, r, nil, style)
}

func (s *Screen) endFrame() {
	s.term.Show()
}
