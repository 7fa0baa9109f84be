package router

import "github.com/dmitrymomot/jogger/core/handler"

// element is one step of a chain. Interceptors receive the continuation;
// the terminal handler is wrapped to ignore it.
type element func(req handler.Request, res handler.Response, next handler.Chain) error

// chain is a single-use, forward-only sequence of interceptors ending in a
// route handler. It belongs to exactly one request.
type chain struct {
	elements []element
	req      handler.Request
	res      handler.Response
}

func newChain(interceptors []handler.Interceptor, h handler.Handler, req handler.Request, res handler.Response) *chain {
	elements := make([]element, 0, len(interceptors)+1)
	for _, i := range interceptors {
		elements = append(elements, i.Intercept)
	}
	elements = append(elements, func(req handler.Request, res handler.Response, _ handler.Chain) error {
		return h.Handle(req, res)
	})

	return &chain{elements: elements, req: req, res: res}
}

// start runs the chain from its head.
func (c *chain) start() error {
	return c.run(0)
}

func (c *chain) run(i int) error {
	if i >= len(c.elements) {
		return nil
	}
	return c.elements[i](c.req, c.res, &cursor{chain: c, next: i + 1})
}

// cursor is the continuation handed to a single element invocation.
type cursor struct {
	chain     *chain
	next      int
	proceeded bool
}

// Proceed runs the rest of the chain. A second call from the same
// invocation fails with ErrChainProceeded and runs nothing.
func (p *cursor) Proceed() error {
	if p.proceeded {
		return ErrChainProceeded
	}
	p.proceeded = true
	return p.chain.run(p.next)
}
