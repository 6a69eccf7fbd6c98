package registry

import "fmt"

// OutcomeKind is the variant of a resolution.
type OutcomeKind int

const (
	Unresolved OutcomeKind = iota
	ListRequested
	NewRequested
	VerbOnSnippet
)

func (k OutcomeKind) String() string {
	switch k {
	case ListRequested:
		return "list"
	case NewRequested:
		return "new"
	case VerbOnSnippet:
		return "verb-on-snippet"
	default:
		return "unresolved"
	}
}

// Outcome is the single result of resolving an invocation.
type Outcome struct {
	Kind OutcomeKind

	// Verb and Name are set for VerbOnSnippet.
	Verb Verb
	Name string
	// Args are extra tokens forwarded to an executed shnippet.
	Args []string

	// Path lists the names of the matched nodes below the root. For
	// Unresolved it points at the node whose help should be shown.
	Path []string
	// Reason explains an Unresolved outcome.
	Reason string
}

// Descend follows argv from the root for as long as tokens name children,
// stopping early at a leaf. It returns the last node reached and the tokens
// consumed to get there.
func (t *Tree) Descend(argv []string) (*Node, []string) {
	node := t.Root
	path := make([]string, 0, len(argv))
	for _, tok := range argv {
		if node.IsLeaf() {
			break
		}
		child := node.Child(tok)
		if child == nil {
			break
		}
		node = child
		path = append(path, tok)
	}
	return node, path
}

// Resolve maps argv to exactly one Outcome. Matching is exact-string and
// positional; there is no abbreviation or fuzzy matching.
func Resolve(t *Tree, argv []string) Outcome {
	node, path := t.Descend(argv)
	rest := argv[len(path):]

	unresolved := func(reason string) Outcome {
		return Outcome{Kind: Unresolved, Path: path, Reason: reason}
	}

	switch node.Kind {
	case KindList, KindNew:
		if len(rest) > 0 {
			return unresolved(fmt.Sprintf("unexpected argument '%s'", rest[0]))
		}
		if node.Kind == KindList {
			return Outcome{Kind: ListRequested, Path: path}
		}
		return Outcome{Kind: NewRequested, Path: path}

	case KindSnippet:
		if node.Verb != VerbExec {
			if len(rest) > 0 {
				return unresolved(fmt.Sprintf("unexpected argument '%s'", rest[0]))
			}
		} else if len(rest) > 0 && rest[0] == "--" {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			rest = nil
		}
		return Outcome{Kind: VerbOnSnippet, Verb: node.Verb, Name: node.Name, Args: rest, Path: path}

	default:
		if len(rest) == 0 {
			return unresolved("missing subcommand")
		}
		return unresolved(fmt.Sprintf("unrecognized subcommand '%s'", rest[0]))
	}
}
