package command

// Signature declares the parameter shape of a process. Map trims call args to
// it, dropping excess positionals, undeclared keywords and unexpected blocks.
type Signature struct {
	Required []string
	Optional []string
	Keywords []string

	Variadic         bool
	VariadicKeywords bool
	Block            bool
}

// Arity returns the minimum and maximum positional counts; max is -1 when variadic.
func (s Signature) Arity() (minArgs, maxArgs int) {
	minArgs = len(s.Required)
	if s.Variadic {
		return minArgs, -1
	}
	return minArgs, len(s.Required) + len(s.Optional)
}

func (s Signature) Map(args Args) Args {
	out := Args{}

	_, maxArgs := s.Arity()
	positional := args.positional
	if maxArgs >= 0 && len(positional) > maxArgs {
		positional = positional[:maxArgs]
	}
	out.positional = append([]any(nil), positional...)

	if len(args.keywords) > 0 {
		out.keywords = make(map[string]any, len(args.keywords))
		for name, value := range args.keywords {
			if s.VariadicKeywords || s.declaresKeyword(name) {
				out.keywords[name] = value
			}
		}
	}

	if s.Block {
		out.block = args.block
	}
	return out
}

// Named maps positional values onto the declared names. Missing required
// names map to nil; missing optional names are left out.
func (s Signature) Named(args Args) map[string]any {
	named := make(map[string]any, len(s.Required)+len(s.Optional))
	for i, name := range s.Required {
		named[name] = args.Arg(i)
	}
	for i, name := range s.Optional {
		idx := len(s.Required) + i
		if idx < args.Len() {
			named[name] = args.Arg(idx)
		}
	}
	return named
}

func (s Signature) declaresKeyword(name string) bool {
	for _, k := range s.Keywords {
		if k == name {
			return true
		}
	}
	return false
}
