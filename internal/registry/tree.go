// Package registry turns a catalog of shnippets into a command tree, resolves
// command-line tokens against that tree and dispatches the result to the
// collaborator that performs the action.
//
// The tree is rebuilt from the live catalog on every invocation. Two shapes
// exist: the primary tree, where verbs such as delete and exec carry one child
// per shnippet, and the flat tree, where every shnippet is a top-level command
// that implies exec.
package registry

import "shnippet/internal/catalog"

// NodeKind tags what a node does when it is the end of a resolution.
type NodeKind int

const (
	KindRoot NodeKind = iota
	KindList
	KindNew
	KindVerb
	KindSnippet
)

// Node is one command of the tree.
type Node struct {
	Name     string
	Help     string
	Kind     NodeKind
	Verb     Verb // set on KindVerb and KindSnippet nodes
	Children []*Node

	// RequiresSubcommand marks nodes whose only valid use is selecting a child.
	RequiresSubcommand bool
	// ShowsHelpIfNoArgs marks nodes that print their help when invoked bare.
	ShowsHelpIfNoArgs bool
}

// Child returns the direct child with exactly the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// IsLeaf reports whether resolution ends at this node.
func (n *Node) IsLeaf() bool {
	switch n.Kind {
	case KindList, KindNew, KindSnippet:
		return true
	}
	return false
}

// Mode selects the tree shape.
type Mode int

const (
	ModePrimary Mode = iota
	ModeFlat
)

// CompletionsFlag is the root-level flag that requests a completion script.
// It is not a subcommand and is checked before any resolution.
const CompletionsFlag = "completions"

// Tree is the command surface for one invocation.
type Tree struct {
	Root *Node
	Mode Mode
}

// Find returns the node reached by following path from the root, or nil.
func (t *Tree) Find(path []string) *Node {
	n := t.Root
	for _, name := range path {
		if n = n.Child(name); n == nil {
			return nil
		}
	}
	return n
}

// snippetNodes maps every catalog entry to a child node for verb.
func snippetNodes(cat catalog.Catalog, verb Verb, template *string) []*Node {
	entries := cat.Entries()
	nodes := make([]*Node, 0, len(entries))
	for _, e := range entries {
		nodes = append(nodes, &Node{
			Name: e.Name,
			Help: Render(template, e.Name, e.Description),
			Kind: KindSnippet,
			Verb: verb,
		})
	}
	return nodes
}

func newRoot(name, about string) *Node {
	return &Node{
		Name:               name,
		Help:               about,
		Kind:               KindRoot,
		RequiresSubcommand: true,
		ShowsHelpIfNoArgs:  true,
	}
}

// BuildPrimary builds the multi-verb tree: list, new, then one node per verb
// holding one child per catalog entry.
func BuildPrimary(name, about string, cat catalog.Catalog, verbs []VerbDefinition) *Tree {
	root := newRoot(name, about)
	root.Children = append(root.Children,
		&Node{Name: ListCommand, Help: ListDescription, Kind: KindList},
		&Node{Name: NewCommand, Help: NewDescription, Kind: KindNew},
	)
	for _, v := range verbs {
		root.Children = append(root.Children, &Node{
			Name:               string(v.Verb),
			Help:               v.Description,
			Kind:               KindVerb,
			Verb:               v.Verb,
			Children:           snippetNodes(cat, v.Verb, v.Template),
			RequiresSubcommand: true,
			ShowsHelpIfNoArgs:  true,
		})
	}
	return &Tree{Root: root, Mode: ModePrimary}
}

// BuildFlat builds the direct-dispatch tree where each shnippet is a
// top-level command executed on selection.
func BuildFlat(name, about string, cat catalog.Catalog) *Tree {
	root := newRoot(name, about)
	root.Children = snippetNodes(cat, VerbExec, nil)
	return &Tree{Root: root, Mode: ModeFlat}
}
