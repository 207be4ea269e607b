package sat

import "time"

// Options configures the parts of solver behavior that sit outside the
// distilled core algorithm: the VSIDS decay rate, optional phase saving
// (§4.7, never required for correctness), a cooperative abort timeout
// (§5), and an optional BCPEngine substituting for the built-in propagator
// (§6). It mirrors the shape of the teacher's Options/DefaultOptions pair.
type Options struct {
	// VariableDecay is the VSIDS decay factor applied once per analyzed
	// conflict (§4.5). The reference design uses 0.95.
	VariableDecay float64

	// PhaseSaving enables remembering each variable's last assigned
	// value and reusing it as the polarity of its next decision, instead
	// of always deciding FALSE. Not required by the core (§4.7).
	PhaseSaving bool

	// Timeout, if positive, makes Solve cooperatively abort and return
	// Aborted once exceeded (§5: "MAY expose a cooperative abort
	// flag"). Not part of the core's two terminal statuses (§7); checked
	// only between search steps, never inside the BCP inner loop.
	Timeout time.Duration

	// Engine, if non-nil, replaces the built-in two-watched-literal BCP
	// engine with an external implementation satisfying the BCPEngine
	// contract (§6), e.g. a hardware accelerator.
	Engine BCPEngine
}

// DefaultOptions is the configuration used by NewDefault.
var DefaultOptions = Options{
	VariableDecay: 0.95,
}
