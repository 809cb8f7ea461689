package lower

import (
	"fmt"

	"github.com/alexisbeaulieu97/nodelift/internal/logger"
)

// Context carries the per-run mutable state of a lowering pass: the
// strictly-increasing ID counter and the run's logger. One Context per
// conversion run; sharing a Context across concurrent runs is not safe.
type Context struct {
	counter int
	log     *logger.Logger
}

// NewContext creates a fresh lowering context with its counter at zero.
func NewContext(log *logger.Logger) *Context {
	if log == nil {
		log = logger.Discard()
	}
	return &Context{log: log.WithComponent("lower")}
}

// NextID returns the next generated node ID for the given kind prefix.
func (c *Context) NextID(prefix string) string {
	c.counter++
	return fmt.Sprintf("%s-%d", prefix, c.counter)
}

// Log returns the context logger.
func (c *Context) Log() *logger.Logger {
	return c.log
}
