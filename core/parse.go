package core

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/trevin-j/iarglib/errors"
)

// Parse scans the argument vector once, left to right, starting after the
// program name.
//
// Each token must be a registered identifier. An option that requires an
// argument consumes the next token as its value. Callbacks of event options
// are queued and run in command-line order once the whole vector has been
// accepted. The built-in help and version options print immediately instead.
//
// Parse returns true when the caller should carry on, and false when help or
// version output was printed with the matching continue setting off. Any
// error aborts the scan; the recorded state is then incomplete and should not
// be consulted.
func (a *Arger) Parse() (bool, error) {
	a.reset()
	a.buildIndex()

	for op := 1; op < len(a.args); op++ {
		token := a.args[op]
		name, ok := a.index[token]
		if !ok {
			return false, errors.NewUnknownOption(token, closestMatch(token, a.identifiers()))
		}
		a.passed = append(a.passed, name)
		reg := a.options[name]

		if name == HelpName && a.usingAutoHelp {
			a.printHelp(a)
			if !a.settings.ContinueOnHelp {
				return false, nil
			}
		} else if name == VersionName && a.usingAutoVersion {
			a.printVersion(a)
			if !a.settings.ContinueOnVersion {
				return false, nil
			}
		}

		if reg.opt.Arg == RequiresArgument {
			op++
			if op >= len(a.args) {
				return false, errors.NewMissingArgument(name)
			}
			value := a.args[op]
			// Rejects values equal to a registered option name, not to an
			// identifier: "file" is refused, "-f" is accepted.
			if value == "" || a.isOptionName(value) {
				return false, errors.NewMissingArgument(name)
			}
			a.arguments[name] = value
		}

		// Built-in callbacks already ran above.
		if reg.opt.IsEvent() && !reg.builtin {
			a.pending = append(a.pending, reg.opt.Callback)
		}
	}

	for _, cb := range a.pending {
		cb(a)
	}
	return true, nil
}

func (a *Arger) reset() {
	a.passed = nil
	a.arguments = map[string]string{}
	a.pending = nil
}

// buildIndex maps every identifier to its option name. Registrations are
// applied oldest first so the most recent one wins a shared identifier.
func (a *Arger) buildIndex() {
	regs := make([]registration, 0, len(a.options))
	for _, reg := range a.options {
		regs = append(regs, reg)
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].seq < regs[j].seq })

	a.index = make(map[string]string, len(regs))
	for _, reg := range regs {
		for _, id := range reg.opt.Identifiers {
			a.index[id] = reg.opt.Name
		}
	}
}

func (a *Arger) isOptionName(s string) bool {
	_, ok := a.options[s]
	return ok
}

// identifiers lists every indexed identifier in registration order.
func (a *Arger) identifiers() []string {
	var ids []string
	for _, name := range a.order {
		for _, id := range a.options[name].opt.Identifiers {
			if a.index[id] == name {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// closestMatch returns the candidate with the smallest edit distance to target, or
// empty string if none are within a reasonable threshold. Dashes are ignored and
// targets shorter than three characters get no suggestion, since every short
// flag is one edit away from every other.
func closestMatch(target string, candidates []string) string {
	low := strings.ToLower(strings.TrimLeft(target, "-"))
	if len(low) < 3 || len(candidates) == 0 {
		return ""
	}
	// Prefer prefix matches (case-insensitive)
	for _, c := range candidates {
		lc := strings.ToLower(strings.TrimLeft(c, "-"))
		if len(lc) >= 3 && strings.HasPrefix(lc, low) {
			return c
		}
	}

	best := ""
	bestDist := -1
	for _, c := range candidates {
		lc := strings.ToLower(strings.TrimLeft(c, "-"))
		// Quick length check to avoid large distances
		if abs(len(lc)-len(low)) > 3 {
			continue
		}
		d := levenshtein.Distance(low, lc, nil)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	// Only suggest if distance is small (adaptive threshold)
	if bestDist >= 0 && bestDist <= max(2, len(low)/3) {
		return best
	}
	return ""
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
