package input

// Snapshot holds the input state for one frame. Pressed/Released fields are
// edges: true only on the frame the transition happened.
type Snapshot struct {
	// MoveX is the horizontal axis in [-1, 1].
	MoveX float64
	// MoveY is the vertical axis in [-1, 1], up positive.
	MoveY float64

	JumpPressed bool
	JumpHeld    bool

	CrouchPressed  bool
	CrouchReleased bool
	// CrouchHeld is the level behind the crouch edges, used to catch up
	// after frames in which no edges were read.
	CrouchHeld bool
}

// Source produces a fresh snapshot every time it is polled.
type Source interface {
	Poll() Snapshot
}

// Binding gates a Source behind an enable/disable lifecycle. A disabled
// binding never polls its source and reports the zero snapshot.
type Binding struct {
	source  Source
	enabled bool
}

func NewBinding(source Source) *Binding {
	return &Binding{source: source}
}

func (b *Binding) Enable() {
	if b == nil {
		return
	}
	b.enabled = true
}

func (b *Binding) Disable() {
	if b == nil {
		return
	}
	b.enabled = false
}

func (b *Binding) Enabled() bool {
	return b != nil && b.enabled
}

// Read polls the source once. Call it exactly once per frame so edges are
// not lost.
func (b *Binding) Read() Snapshot {
	if !b.Enabled() || b.source == nil {
		return Snapshot{}
	}
	return b.source.Poll()
}

// SourceFunc adapts a function to Source.
type SourceFunc func() Snapshot

func (f SourceFunc) Poll() Snapshot {
	return f()
}
