package resolver

import (
	"errors"

	"github.com/dhamidi/jtype/typeexpr"
)

// Chain tries each resolver in order and returns the first handle found.
// A failure other than ErrNotFound stops the search.
type Chain []typeexpr.Resolver

func (c Chain) Resolve(name string) (typeexpr.Handle, error) {
	for _, r := range c {
		h, err := r.Resolve(name)
		if err == nil {
			return h, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, notFound(name)
}
