package core

import (
	"fmt"

	"github.com/trevin-j/iarglib/display"
)

// Page describes v for the display package.
func Page(v View) display.Page {
	page := display.Page{
		AppName: v.AppName(),
		Version: v.AppVersion(),
		Message: v.HelpMessage(),
	}
	for _, name := range v.AllOptions() {
		opt, ok := v.Option(name)
		if !ok {
			continue
		}
		page.Entries = append(page.Entries, display.Entry{
			Name:        opt.Name,
			Identifiers: opt.Identifiers,
			Description: opt.Description,
			TakesArg:    opt.Arg == RequiresArgument,
		})
	}
	return page
}

// Help renders the help screen for the Arger's registered options.
func (a *Arger) Help() string {
	return display.BuildHelp(Page(a), a.settings.style())
}

// VersionLine renders the version line.
func (a *Arger) VersionLine() string {
	return display.BuildVersion(Page(a), a.settings.style())
}

func (a *Arger) printHelp(View) {
	fmt.Fprint(a.settings.output(), a.Help())
}

func (a *Arger) printVersion(View) {
	fmt.Fprintln(a.settings.output(), a.VersionLine())
}
