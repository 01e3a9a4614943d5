package command

import "maps"

// Args is the argument tuple of a call: positional values, keyword values and
// an optional block (usually a func).
type Args struct {
	positional []any
	keywords   map[string]any
	block      any
}

func NewArgs(positional ...any) Args {
	return Args{positional: positional}
}

// Keywords builds keyword-only args.
func Keywords(keywords map[string]any) Args {
	return Args{keywords: maps.Clone(keywords)}
}

// With returns a copy with the keyword set.
func (a Args) With(name string, value any) Args {
	out := a.clone()
	if out.keywords == nil {
		out.keywords = make(map[string]any, 1)
	}
	out.keywords[name] = value
	return out
}

// WithBlock returns a copy carrying block.
func (a Args) WithBlock(block any) Args {
	out := a.clone()
	out.block = block
	return out
}

func (a Args) Positional() []any {
	return append([]any(nil), a.positional...)
}

// Keywords returns a copy of the keyword map, never nil.
func (a Args) Keywords() map[string]any {
	if a.keywords == nil {
		return map[string]any{}
	}
	return maps.Clone(a.keywords)
}

func (a Args) Block() any {
	return a.block
}

func (a Args) Len() int {
	return len(a.positional)
}

// Arg returns the i-th positional value or nil.
func (a Args) Arg(i int) any {
	if i < 0 || i >= len(a.positional) {
		return nil
	}
	return a.positional[i]
}

func (a Args) Keyword(name string) (any, bool) {
	v, ok := a.keywords[name]
	return v, ok
}

// Arg returns the i-th positional value converted to T.
func Arg[T any](a Args, i int) (T, bool) {
	v, ok := a.Arg(i).(T)
	return v, ok
}

// Keyword returns the named keyword converted to T.
func Keyword[T any](a Args, name string) (T, bool) {
	raw, _ := a.Keyword(name)
	v, ok := raw.(T)
	return v, ok
}

// BlockAs returns the block converted to T.
func BlockAs[T any](a Args) (T, bool) {
	v, ok := a.block.(T)
	return v, ok
}

// merge appends call positionals after a's, lets call keywords win and
// prefers the call block.
func (a Args) merge(call Args) Args {
	out := Args{
		positional: make([]any, 0, len(a.positional)+len(call.positional)),
		keywords:   make(map[string]any, len(a.keywords)+len(call.keywords)),
		block:      a.block,
	}
	out.positional = append(out.positional, a.positional...)
	out.positional = append(out.positional, call.positional...)
	maps.Copy(out.keywords, a.keywords)
	maps.Copy(out.keywords, call.keywords)
	if call.block != nil {
		out.block = call.block
	}
	return out
}

func (a Args) clone() Args {
	return Args{
		positional: append([]any(nil), a.positional...),
		keywords:   maps.Clone(a.keywords),
		block:      a.block,
	}
}
