package cli

import (
	"testing"

	"github.com/alexanderramin/joyshift/internal/cli/formatter"
	"github.com/alexanderramin/joyshift/internal/domain"
	"github.com/alexanderramin/joyshift/internal/teatest"
)

// TestDriver wraps teatest.Driver with inspection methods for appModel
// internals (view stack, shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size, and drains
// Init() (which loads the roster synchronously from the in-memory store).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	t.Cleanup(func() { formatter.ApplyTheme(domain.ThemeDark) })

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting checks model.quitting and the driver's Quitting flag.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastOutput returns the transient output displayed over the content area.
func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}

// SelectUser moves the cursor to the idx-th roster entry and presses enter.
func (d *TestDriver) SelectUser(idx int) {
	d.T.Helper()
	for i := 0; i < idx; i++ {
		d.PressKey('j')
	}
	d.PressEnter()
}
