package display

import (
	"fmt"
	"strings"
)

// BuildVersion returns the version line for page, e.g. "mytool v1.2.3".
// Without a version only the application name is returned.
func BuildVersion(page Page, style Style) string {
	name := style.paint(appLabel(page.AppName), ansiName...)
	if page.Version == "" {
		return name
	}
	return fmt.Sprintf("%s v%s", name, strings.TrimPrefix(page.Version, "v"))
}
