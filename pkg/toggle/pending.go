package toggle

// Pending tracks one show or hide transition. It settles exactly once:
// resolved when the transition completes, rejected when the opposite
// transition starts first. Callbacks registered with Then run synchronously
// on resolution; a rejected Pending never runs them.
type Pending struct {
	resolved bool
	rejected bool
	thens    []func()
}

func newPending() *Pending {
	return &Pending{}
}

// Resolved returns a Pending that is already settled.
func Resolved() *Pending {
	return &Pending{resolved: true}
}

// Then runs fn once p resolves, immediately if it already has.
func (p *Pending) Then(fn func()) {
	if p.rejected {
		return
	}
	if p.resolved {
		fn()
		return
	}
	p.thens = append(p.thens, fn)
}

// Settled reports whether p has been resolved or rejected.
func (p *Pending) Settled() bool {
	return p.resolved || p.rejected
}

// Resolved reports whether the transition completed.
func (p *Pending) Resolved() bool {
	return p.resolved
}

// Rejected reports whether the transition was superseded.
func (p *Pending) Rejected() bool {
	return p.rejected
}

func (p *Pending) resolve() {
	if p.Settled() {
		return
	}
	p.resolved = true
	thens := p.thens
	p.thens = nil
	for _, fn := range thens {
		fn()
	}
}

func (p *Pending) reject() {
	if p.Settled() {
		return
	}
	p.rejected = true
	p.thens = nil
}
