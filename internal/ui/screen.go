// Package ui draws the overworld in the terminal using tcell.
package ui

import "github.com/gdamore/tcell/v2"

var backdrop = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Screen is the terminal surface. Map tiles are drawn cellWidth columns wide
// so the grid looks square in a typical terminal font.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(term)
}

// NewScreenFrom takes over an uninitialized tcell screen, such as a
// simulation screen in tests.
func NewScreenFrom(term tcell.Screen) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.SetStyle(backdrop)
	term.HideCursor()
	term.Clear()
	return &Screen{term: term}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.term.Fini()
}

// PollEvent blocks for the next terminal event. It returns nil once the
// screen is closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.term.PollEvent()
}

// Begin starts a new frame.
func (s *Screen) Begin() {
	s.term.Clear()
}

// Commit pushes the frame to the terminal.
func (s *Screen) Commit() {
	s.term.Show()
}

// Sync redraws everything, used after a resize.
func (s *Screen) Sync() {
	s.term.Sync()
}

// SetTile draws one map cell at grid column col of terminal row row.
func (s *Screen) SetTile(col, row int, glyph rune, style tcell.Style) {
	x := col * cellWidth
	s.term.SetContent(x, row, glyph, nil, style)
	for i := 1; i < cellWidth; i++ {
		s.term.SetContent(x+i, row, ' ', nil, style)
	}
}

// SetText writes text from column x of row y.
func (s *Screen) SetText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.term.SetContent(x, y, r, nil, style)
		x++
	}
}
