package graph

// scrollStep is the zoom factor applied per scroll tick. Scrolling up
// widens the view by this factor; scrolling down narrows it by the
// inverse.
const scrollStep = 1.2

// ScrollDirection is the sign of one scroll tick.
type ScrollDirection int

const (
	// ScrollUp zooms out.
	ScrollUp ScrollDirection = iota
	// ScrollDown zooms in.
	ScrollDown
)

// Key is a discrete key event the interaction surface forwards.
type Key int

const (
	// KeyHome resets the viewport to the default view.
	KeyHome Key = iota
	// KeyEscape cancels an in-progress box zoom.
	KeyEscape
)

// Entry is one equation in a Session, addressed by a stable id that
// survives edits and removals of other entries.
type Entry struct {
	ID       int64
	Equation *Equation
}

// Session owns the ordered equation list and the viewport, and turns
// interaction events into viewport mutations. Every operation runs to
// completion before the next one is observed; a frame built by Curves
// always sees fully applied state.
//
// Session is not safe for concurrent use.
type Session struct {
	viewport *Viewport
	driver   *Driver
	entries  []*Entry
	nextID   int64

	dragging bool
	lastDrag Point

	boxActive bool
	boxStart  Point
}

// NewSession creates a Session with an empty equation list.
func NewSession(opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	vp := o.viewport
	if vp == nil {
		vp = NewViewport()
	}
	return &Session{
		viewport: vp,
		driver:   &Driver{samples: o.samples, margin: o.margin, palette: o.palette},
		nextID:   1,
	}
}

// Viewport returns the session's viewport. Mutating it directly is
// allowed between frames; the next Curves call observes the result.
func (s *Session) Viewport() *Viewport { return s.viewport }

// Add parses text and appends it to the equation list. On a parse
// error nothing is added and the error describes why; other equations
// are unaffected.
func (s *Session) Add(text string) (*Entry, error) {
	eq, err := Parse(text)
	if err != nil {
		return nil, err
	}
	e := &Entry{ID: s.nextID, Equation: eq}
	s.nextID++
	s.entries = append(s.entries, e)
	return e, nil
}

// Update reparses text and replaces the entry with the given id,
// keeping its position and id. If the new text does not parse, the
// existing entry is left in place and the parse error is returned.
func (s *Session) Update(id int64, text string) error {
	e := s.find(id)
	if e == nil {
		return ErrNotFound
	}
	eq, err := Parse(text)
	if err != nil {
		return err
	}
	e.Equation = eq
	return nil
}

// Remove deletes the entry with the given id.
func (s *Session) Remove(id int64) error {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// UpdateText edits the first entry whose original text equals oldText.
// It exists for callers that address equations by their text; new code
// should use Update with the entry id.
func (s *Session) UpdateText(oldText, newText string) error {
	e := s.findText(oldText)
	if e == nil {
		return ErrNotFound
	}
	return s.Update(e.ID, newText)
}

// RemoveText deletes the first entry whose original text equals text.
func (s *Session) RemoveText(text string) error {
	e := s.findText(text)
	if e == nil {
		return ErrNotFound
	}
	return s.Remove(e.ID)
}

// Entries returns the equation list in insertion order. The slice is a
// copy; the entries are shared.
func (s *Session) Entries() []*Entry {
	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of equations in the session.
func (s *Session) Len() int { return len(s.entries) }

// Curves builds the render data for the current viewport and equation
// list. Curve IDs carry the session ids of their source entries.
func (s *Session) Curves() []Curve {
	eqs := make([]*Equation, len(s.entries))
	for i, e := range s.entries {
		eqs[i] = e.Equation
	}
	curves := s.driver.Frame(s.viewport, eqs)
	for i := range curves {
		curves[i].ID = s.entries[curves[i].Index].ID
	}
	return curves
}

// PointerDown begins a drag at the given data-space position.
func (s *Session) PointerDown(x, y float64) {
	s.dragging = true
	s.lastDrag = Pt(x, y)
}

// PointerMove pans the viewport while a drag is active. The view moves
// against the pointer: the pan delta is the previous position minus
// the current one, so the content follows the pointer. Coordinates are
// interpreted in the data space of the frame the event was read from.
func (s *Session) PointerMove(x, y float64) {
	if !s.dragging {
		return
	}
	cur := Pt(x, y)
	delta := s.lastDrag.Sub(cur)
	s.viewport.Pan(delta.X, delta.Y)
	s.lastDrag = cur
}

// PointerUp ends a drag.
func (s *Session) PointerUp() {
	s.dragging = false
}

// Scroll applies one zoom tick around the pointer position. Scrolling
// up zooms out by scrollStep, scrolling down zooms in by its inverse.
func (s *Session) Scroll(x, y float64, dir ScrollDirection) {
	factor := scrollStep
	if dir == ScrollDown {
		factor = 1 / scrollStep
	}
	// Degenerate pivots are rejected inside ZoomAround; a failed tick
	// leaves the view unchanged, which is all the UI needs.
	_ = s.viewport.ZoomAround(x, y, factor)
}

// BoxZoomStart records one corner of a drag box.
func (s *Session) BoxZoomStart(p Point) {
	s.boxActive = true
	s.boxStart = p
}

// BoxZoomEnd completes a box zoom with the opposite corner. A box
// smaller than the minimum span in either axis leaves the viewport
// unchanged and reports ErrDegenerateZoom.
func (s *Session) BoxZoomEnd(p Point) error {
	if !s.boxActive {
		return ErrDegenerateZoom
	}
	s.boxActive = false
	return s.viewport.ZoomToRect(s.boxStart, p)
}

// HandleKey processes a discrete key event.
func (s *Session) HandleKey(k Key) {
	switch k {
	case KeyHome:
		*s.viewport = *NewViewport()
	case KeyEscape:
		s.boxActive = false
	}
}

func (s *Session) find(id int64) *Entry {
	for _, e := range s.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (s *Session) findText(text string) *Entry {
	for _, e := range s.entries {
		if e.Equation.Raw == text {
			return e
		}
	}
	return nil
}
