package registry

// Verb is a built-in action applied to a single shnippet.
type Verb string

const (
	VerbDelete Verb = "delete"
	VerbEdit   Verb = "edit"
	VerbExec   Verb = "exec"
)

// Built-in commands that take no shnippet.
const (
	ListCommand = "list"
	NewCommand  = "new"

	ListDescription = "List all shnippets"
	NewDescription  = "Create a new shnippet"
)

// VerbDefinition describes a verb node of the primary tree. When Template is
// nil the help of each child is the shnippet's description.
type VerbDefinition struct {
	Verb        Verb
	Description string
	Template    *string
}

func tmpl(s string) *string { return &s }

// DefaultVerbs returns the verbs of the primary binary in display order.
func DefaultVerbs() []VerbDefinition {
	return []VerbDefinition{
		{
			Verb:        VerbDelete,
			Description: "Delete a shnippet",
			Template:    tmpl("Delete the '" + NamePlaceholder + "' shnippet (" + DescriptionPlaceholder + ")"),
		},
		{
			Verb:        VerbEdit,
			Description: "Edit a shnippet",
			Template:    tmpl("Edit the '" + NamePlaceholder + "' shnippet (" + DescriptionPlaceholder + ")"),
		},
		{
			Verb:        VerbExec,
			Description: "Execute a shnippet",
		},
	}
}
