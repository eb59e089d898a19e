// Package teatest drives a bubbletea model synchronously in tests.
//
// The Driver stands in for tea.Program: it calls Update directly and runs
// every returned Cmd to completion before the next input. Cmds that block
// (timers behind cursor blinks, spinners and clocks) are abandoned after a
// short timeout, so tests see a settled model without sleeping.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds Cmd chains that keep producing messages.
const MaxDrainDepth = 100

// DefaultCmdTimeout separates store-backed Cmds, which finish in
// microseconds, from tea.Tick style Cmds.
const DefaultCmdTimeout = 10 * time.Millisecond

// Driver is a synchronous harness for any tea.Model.
type Driver struct {
	T     testing.TB
	Model tea.Model

	// Quitting records that a Cmd produced tea.QuitMsg. The real runtime
	// swallows that message, so the model may never see it.
	Quitting bool

	timeout time.Duration
	skip    []func(tea.Msg) bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout changes how long a Cmd may block before it is dropped.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.timeout = timeout }
}

// WithSkip drops messages matching fn instead of feeding them to Update.
func WithSkip(fn func(tea.Msg) bool) Option {
	return func(d *Driver) { d.skip = append(d.skip, fn) }
}

// New builds a Driver. Call DrainInit to run the model's Init Cmd.
func New(t testing.TB, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{
		T:       t,
		Model:   model,
		timeout: DefaultCmdTimeout,
		skip:    []func(tea.Msg) bool{isCursorBlink},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs Init and every message that follows from it.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send feeds msg through Update and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

// ── keys ─────────────────────────────────────────────────────────────────────

func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

func (d *Driver) sendType(t tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: t})
}

// PressKey sends a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.sendType(tea.KeyEnter)
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.sendType(tea.KeyEsc)
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.sendType(tea.KeyCtrlC)
}

func (d *Driver) PressUp() {
	d.T.Helper()
	d.sendType(tea.KeyUp)
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.sendType(tea.KeyDown)
}

func (d *Driver) PressBackspace() {
	d.T.Helper()
	d.sendType(tea.KeyBackspace)
}

// PressLeft and PressRight also flip huh confirm fields.
func (d *Driver) PressLeft() {
	d.T.Helper()
	d.sendType(tea.KeyLeft)
}

func (d *Driver) PressRight() {
	d.T.Helper()
	d.sendType(tea.KeyRight)
}

// View renders the model.
func (d *Driver) View() string {
	return d.Model.View()
}

// ── draining ─────────────────────────────────────────────────────────────────

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := d.run(cmd)
	if msg == nil || d.skipped(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
		return
	}

	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	d.drain(next, depth+1)
}

// run executes cmd, giving up after the driver timeout. An abandoned Cmd's
// goroutine finishes on its own once its timer fires.
func (d *Driver) run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(d.timeout):
		return nil
	}
}

func (d *Driver) skipped(msg tea.Msg) bool {
	for _, fn := range d.skip {
		if fn(msg) {
			return true
		}
	}
	return false
}

// isCursorBlink matches the unexported blink messages of bubbles/cursor,
// which would otherwise chain into blocking timer Cmds.
func isCursorBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
