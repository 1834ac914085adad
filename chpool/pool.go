// Package chpool provides a puddle-backed pool of ch.Client connections.
package chpool

import (
	"context"

	"github.com/jackc/puddle/v2"
	"go.uber.org/multierr"

	ch "github.com/nativeclick/ch-native"
)

// Pool hands out pooled *ch.Client connections, dialing new ones lazily up
// to MaxConns.
type Pool struct {
	inner *puddle.Pool[*ch.Client]
}

// Options configures a Pool.
type Options struct {
	ClientOptions ch.Options
	MaxConns      int32
}

// New builds a Pool that dials new connections with o.ClientOptions.
func New(o Options) (*Pool, error) {
	if o.MaxConns <= 0 {
		o.MaxConns = 1
	}
	constructor := func(ctx context.Context) (*ch.Client, error) {
		return ch.Dial(ctx, o.ClientOptions)
	}
	destructor := func(res *ch.Client) {
		_ = res.Close()
	}
	inner, err := puddle.NewPool(&puddle.Config[*ch.Client]{
		Constructor: constructor,
		Destructor:  destructor,
		MaxSize:     o.MaxConns,
	})
	if err != nil {
		return nil, err
	}
	return &Pool{inner: inner}, nil
}

// Close destroys every idle connection and prevents further acquisition.
func (p *Pool) Close() {
	p.inner.Close()
}

// Conn is a leased pool connection; callers must call Release exactly once.
type Conn struct {
	res *puddle.Resource[*ch.Client]
}

// Acquire leases a connection from the pool, dialing a new one if capacity
// allows and none is idle.
func (p *Pool) Acquire(ctx context.Context) (*Conn, error) {
	res, err := p.inner.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return &Conn{res: res}, nil
}

// client returns the underlying *ch.Client.
func (c *Conn) client() *ch.Client { return c.res.Value() }

// Release returns the connection to the pool, destroying it instead if it
// was closed while leased.
func (c *Conn) Release() {
	if c.client().IsClosed() {
		c.res.Destroy()
		return
	}
	c.res.Release()
}

// Close closes the underlying connection and destroys the pool resource.
func (c *Conn) Close() error {
	err := c.client().Close()
	c.res.Destroy()
	return err
}

// Ping pings the underlying connection.
func (c *Conn) Ping(ctx context.Context) error {
	return c.client().Ping(ctx)
}

// Do runs q against the underlying connection.
func (c *Conn) Do(ctx context.Context, q ch.Query) error {
	return c.client().Do(ctx, q)
}

// CloseAll closes every currently-idle connection, aggregating errors.
func (p *Pool) CloseAll() error {
	var err error
	for _, res := range p.inner.AcquireAllIdle() {
		if cerr := res.Value().Close(); cerr != nil {
			err = multierr.Append(err, cerr)
		}
		res.Destroy()
	}
	return err
}
