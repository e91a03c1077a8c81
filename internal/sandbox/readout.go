package sandbox

import "strconv"

type slot struct {
	name  string
	label string
	value float64
	set   bool
}

// Readout is the live metrics panel: named scalar slots registered once at
// startup and overwritten in place every frame, plus static text lines
// (instructions). Pure presentation; rendering is up to the GUI or TUI.
type Readout struct {
	slots []slot
	index map[string]int
	lines []string
}

func NewReadout() *Readout {
	return &Readout{index: make(map[string]int)}
}

// AddParameter registers a displayed slot. Re-registering a name keeps the
// original position and updates the label.
func (r *Readout) AddParameter(name, label string) {
	if i, ok := r.index[name]; ok {
		r.slots[i].label = label
		return
	}
	r.index[name] = len(r.slots)
	r.slots = append(r.slots, slot{name: name, label: label})
}

// Update overwrites a slot's value in place. Unknown names are ignored.
func (r *Readout) Update(name string, value float64) {
	if i, ok := r.index[name]; ok {
		r.slots[i].value = value
		r.slots[i].set = true
	}
}

// Value returns a slot's current value.
func (r *Readout) Value(name string) (float64, bool) {
	if i, ok := r.index[name]; ok && r.slots[i].set {
		return r.slots[i].value, true
	}
	return 0, false
}

// AddLine appends a static text line shown under the parameter slots.
func (r *Readout) AddLine(text string) {
	r.lines = append(r.lines, text)
}

// Rows renders the panel as text rows: one "label: value" per slot in
// registration order, then the static lines.
func (r *Readout) Rows() []string {
	rows := make([]string, 0, len(r.slots)+len(r.lines))
	for _, s := range r.slots {
		rows = append(rows, s.label+": "+strconv.FormatFloat(s.value, 'f', -1, 64))
	}
	rows = append(rows, r.lines...)
	return rows
}
