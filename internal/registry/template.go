package registry

import "strings"

// Placeholders recognised in child help templates.
const (
	NamePlaceholder        = "{name}"
	DescriptionPlaceholder = "{description}"
)

// Render produces the help text for one shnippet under a verb. Without a
// template the description is returned as is. Otherwise every occurrence of
// both placeholders is replaced in a single left-to-right pass, so text that
// comes from name or description is never substituted again.
func Render(template *string, name, description string) string {
	if template == nil {
		return description
	}
	r := strings.NewReplacer(NamePlaceholder, name, DescriptionPlaceholder, description)
	return r.Replace(*template)
}
