package iarglib

import (
	"github.com/trevin-j/iarglib/core"
)

// New returns an Arger for args, which must be laid out like os.Args: the
// first element is the program name and is skipped by Parse.
//
// Usage:
//
//	arger := iarglib.New(os.Args)
//	arger.SetAppName("mytool")
//	arger.AddHelpOption("Copies files around.")
//	arger.AddVersionOption("1.0.0")
//	arger.SetContinueOnHelp(false)
//	arger.SetContinueOnVersion(false)
//
//	arger.AddOption("file", "-f|--file", "The file to read", iarglib.RequiresArgument)
//	arger.AddOption("read", "-r|--read", "Read the file", iarglib.NoArgument)
//
//	keepRunning, err := arger.Parse()
//	if err != nil {
//		fmt.Fprintln(os.Stderr, "Error:", err)
//		os.Exit(1)
//	}
//	if !keepRunning {
//		return
//	}
//
//	if arger.OptionExists("file") {
//		file, _ := arger.OptionArgument("file")
//		fmt.Println("The file to read is:", file)
//	}
var New = core.New

// NewWithSettings is New with explicit Settings.
var NewWithSettings = core.NewWithSettings

// NewFromCommandLine splits a shell-quoted command line into words and
// returns an Arger for them. The first word is the program name.
//
// Example:
//
//	arger, err := iarglib.NewFromCommandLine(`tool -f "my file.txt"`, iarglib.DefaultSettings())
var NewFromCommandLine = core.NewFromCommandLine

// DefaultSettings returns the settings used by New: continue after help and
// version, print to standard output, color only on terminals.
var DefaultSettings = core.DefaultSettings
