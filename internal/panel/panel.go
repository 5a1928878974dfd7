// Package panel is a small reactive control panel. Controls are bound to
// application state through getter/setter closures; every mutation made
// through a control is clamped to its declared range and reported
// synchronously to the panel's change listeners.
package panel

// Control is anything that occupies rows in the panel.
type Control interface {
	Label() string
}

// Event describes a change made through the panel.
type Event struct {
	// Key of the changed control, empty for folder toggles.
	Key     string
	Control Control
	Folder  *Folder
}

// Listener is notified after each change.
type Listener func(Event)

type container struct {
	controls []Control
	panel    *Panel
}

func (c *container) add(ctl Control) {
	c.controls = append(c.controls, ctl)
}

func (c *container) Controls() []Control { return c.controls }

// Folder groups controls under a collapsible header.
type Folder struct {
	container
	Title    string
	expanded bool
}

func (f *Folder) Expanded() bool { return f.expanded }

// SetExpanded collapses or expands the folder and notifies listeners.
func (f *Folder) SetExpanded(v bool) {
	if f.expanded == v {
		return
	}
	f.expanded = v
	f.panel.emit(Event{Folder: f})
}

func (f *Folder) Toggle() { f.SetExpanded(!f.expanded) }

// Panel is the root container.
type Panel struct {
	container
	Title     string
	folders   []*Folder
	listeners []Listener
}

func New(title string) *Panel {
	p := &Panel{Title: title}
	p.panel = p
	return p
}

// AddFolder appends an expanded folder after the panel's current controls.
func (p *Panel) AddFolder(title string) *Folder {
	f := &Folder{Title: title, expanded: true}
	f.panel = p
	p.folders = append(p.folders, f)
	return f
}

func (p *Panel) Folders() []*Folder { return p.folders }

// Folder returns the folder with the given title, or nil.
func (p *Panel) Folder(title string) *Folder {
	for _, f := range p.folders {
		if f.Title == title {
			return f
		}
	}
	return nil
}

// OnChange registers l. Listeners run in registration order.
func (p *Panel) OnChange(l Listener) {
	p.listeners = append(p.listeners, l)
}

func (p *Panel) emit(e Event) {
	for _, l := range p.listeners {
		l(e)
	}
}

// Values returns every bound control, root controls first, then each
// folder's in order.
func (p *Panel) Values() []Value {
	var out []Value
	collect := func(ctls []Control) {
		for _, c := range ctls {
			if v, ok := c.(Value); ok {
				out = append(out, v)
			}
		}
	}
	collect(p.controls)
	for _, f := range p.folders {
		collect(f.controls)
	}
	return out
}

// Lookup finds a bound control by key.
func (p *Panel) Lookup(key string) (Value, bool) {
	for _, v := range p.Values() {
		if v.Key() == key {
			return v, true
		}
	}
	return nil, false
}
