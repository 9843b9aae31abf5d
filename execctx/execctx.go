package execctx

import (
	"github.com/timandy/routine"
)

// Context is an opaque handle identifying one host runtime invocation. It is
// borrowed for the duration of exactly one wrapped call and must not be used
// after the Guard acquired with it has been released.
type Context struct {
	token string
}

// New wraps a host-provided token into a Context.
func New(token string) Context {
	return Context{token: token}
}

// Token returns the host token carried by the context.
func (c Context) Token() string { return c.token }

// stack is the per-goroutine context stack. Depth mirrors the current wrapped
// call nesting on that goroutine; it is emptied, not discarded, when the last
// guard releases.
type stack struct {
	entries []Context
}

var stacks = routine.NewThreadLocalWithInitial[*stack](func() *stack {
	return &stack{}
})

// Guard releases one stack entry. Release is safe to call more than once;
// only the first call pops.
type Guard struct {
	s        *stack
	released bool
}

// Enter pushes ctx onto the calling goroutine's context stack and returns a
// Guard that pops it. Callers must hold the Guard for the full duration of
// the wrapped call and release it on every exit path, including unwind:
//
//	guard := execctx.Enter(ctx)
//	defer guard.Release()
func Enter(ctx Context) *Guard {
	s := stacks.Get()
	s.entries = append(s.entries, ctx)
	return &Guard{s: s}
}

// Release pops the entry pushed by the matching Enter. Calling Release again
// is a no-op.
func (g *Guard) Release() {
	if g.released || g.s == nil {
		return
	}
	g.released = true
	if n := len(g.s.entries); n > 0 {
		g.s.entries[n-1] = Context{}
		g.s.entries = g.s.entries[:n-1]
	}
}

// Current returns the most recently entered, not-yet-released context on the
// calling goroutine. The second return is false when the goroutine is not
// inside any wrapped call; that is a normal outcome, not an error.
func Current() (Context, bool) {
	s := stacks.Get()
	if len(s.entries) == 0 {
		return Context{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Depth reports the current wrapped call nesting on the calling goroutine.
func Depth() int {
	return len(stacks.Get().entries)
}
