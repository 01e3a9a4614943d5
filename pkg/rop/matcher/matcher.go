package matcher

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/ib-77/ropcmd/pkg/rop"
)

// ErrNoMatch is returned when no clause accepts the result.
var ErrNoMatch = errors.New("no matching clause")

type Matcher struct {
	clauses []Clause
}

func New(clauses ...Clause) *Matcher {
	return &Matcher{clauses: slices.Clone(clauses)}
}

// With returns a new matcher with extra clauses.
func (m *Matcher) With(clauses ...Clause) *Matcher {
	return &Matcher{clauses: append(slices.Clone(m.clauses), clauses...)}
}

func (m *Matcher) Clauses() []Clause {
	return slices.Clone(m.clauses)
}

// Match returns the most specific matching clause. Among equally specific
// clauses the first declared wins.
func (m *Matcher) Match(r rop.Resulter) (Clause, bool) {
	res := r.AsResult()

	var (
		best  Clause
		found bool
	)
	for _, c := range m.clauses {
		if !c.Matches(res) {
			continue
		}
		if !found || Compare(c, best) > 0 {
			best, found = c, true
		}
	}
	return best, found
}

func (m *Matcher) Matches(r rop.Resulter) bool {
	_, ok := m.Match(r)
	return ok
}

// Call runs the handler of the selected clause.
func (m *Matcher) Call(ctx context.Context, r rop.Resulter) (any, error) {
	c, ok := m.Match(r)
	if !ok {
		res := r.AsResult()
		return nil, fmt.Errorf("%w for %s result (error %s, value %s)",
			ErrNoMatch, res.Status(), rop.TypeName(res.Err()), rop.TypeName(res.Value()))
	}
	if c.handler == nil {
		return nil, nil
	}
	return c.handler(ctx, r.AsResult())
}

// List tries matchers in order and calls the first that matches.
type List []*Matcher

func (l List) Matches(r rop.Resulter) bool {
	for _, m := range l {
		if m.Matches(r) {
			return true
		}
	}
	return false
}

func (l List) Call(ctx context.Context, r rop.Resulter) (any, error) {
	for _, m := range l {
		if m.Matches(r) {
			return m.Call(ctx, r)
		}
	}
	res := r.AsResult()
	return nil, fmt.Errorf("%w for %s result in %d matchers", ErrNoMatch, res.Status(), len(l))
}
