package iarglib_test

import (
	stderrors "errors"
	"fmt"

	"github.com/trevin-j/iarglib"
	"github.com/trevin-j/iarglib/errors"
)

func Example_readme() {
	// Simulate command line arguments
	args := []string{"mytool", "-r", "--file", "data.txt"}

	arger := iarglib.New(args)
	arger.SetAppName("mytool")
	arger.AddOption("file", "-f|--file", "The file to read", iarglib.RequiresArgument)
	arger.AddOption("read", "-r|--read", "Read the file", iarglib.NoArgument)

	keepRunning, err := arger.Parse()
	if err != nil {
		panic(err)
	}
	if !keepRunning {
		return
	}

	file, _ := arger.OptionArgument("file")
	fmt.Println("read:", arger.OptionExists("read"))
	fmt.Println("file:", file)
	fmt.Println("passed:", arger.PassedOptions())
	// Output: read: true
	// file: data.txt
	// passed: [read file]
}

func Example_help() {
	arger := iarglib.New([]string{"mytool", "--help", "-f", "bogus"})
	arger.SetAppName("mytool")
	arger.AddHelpOption("Copies files around.")
	arger.SetContinueOnHelp(false)
	arger.AddOption("file", "-f|--file", "The file to read", iarglib.RequiresArgument)
	arger.AddOption("read", "-r|--read", "Read the file", iarglib.NoArgument)

	keepRunning, err := arger.Parse()
	if err != nil {
		panic(err)
	}
	fmt.Println("keep running:", keepRunning)
	// Output: Usage: mytool [OPTIONS]
	//
	// Copies files around.
	//
	// Options:
	//   -h, --help         Display this help message
	//   -f, --file [FILE]  The file to read
	//   -r, --read         Read the file
	// keep running: false
}

func Example_version() {
	arger := iarglib.New([]string{"mytool", "-v"})
	arger.SetAppName("mytool")
	arger.AddVersionOption("1.2.3")
	arger.SetContinueOnVersion(false)

	keepRunning, _ := arger.Parse()
	fmt.Println("keep running:", keepRunning)
	// Output: mytool v1.2.3
	// keep running: false
}

func Example_eventOption() {
	arger := iarglib.New([]string{"app", "-n", "-d", "-n"})
	count := 0
	arger.AddOptionWithCallback("notify", "-n|--notify", "Send a notification", iarglib.NoArgument,
		func(v iarglib.View) {
			count++
			fmt.Println("notify", count, "of", len(v.PassedOptions()), "options")
		})
	arger.AddOptionWithCallback("do-something", "-d|--do-something", "An example event", iarglib.NoArgument,
		func(iarglib.View) {
			fmt.Println("The -d or --do-something option was specified.")
		})

	if _, err := arger.Parse(); err != nil {
		panic(err)
	}
	// Output: notify 1 of 3 options
	// The -d or --do-something option was specified.
	// notify 2 of 3 options
}

// Example_error_types demonstrates checking for specific error kinds with errors.Is and accessing details with errors.As.
func Example_error_types() {
	arger := iarglib.New([]string{"app", "-f"})
	arger.AddOption("file", "-f|--file", "The file to read", iarglib.RequiresArgument)

	_, err := arger.Parse()
	if err == nil {
		fmt.Println("no error")
		return
	}

	if stderrors.Is(err, errors.ErrMissingArgument) {
		fmt.Println("missing argument detected")
	}

	var ma errors.MissingArgumentError
	if stderrors.As(err, &ma) {
		fmt.Println("missing argument for:", ma.Option)
	}

	// Output:
	// missing argument detected
	// missing argument for: file
}

// Example_unknown_option shows the parser suggesting a close identifier for a typo.
func Example_unknown_option() {
	arger := iarglib.New([]string{"app", "--outptu", "x"})
	arger.AddOption("output", "-o|--output", "The file to write", iarglib.RequiresArgument)

	_, err := arger.Parse()
	if err != nil {
		fmt.Println("Error:", err)
	}
	// Output: Error: invalid option: --outptu (did you mean "--output"?)
}

func ExampleNewFromCommandLine() {
	arger, err := iarglib.NewFromCommandLine(`tool --name "Alice Smith"`, iarglib.DefaultSettings())
	if err != nil {
		panic(err)
	}
	arger.AddOption("name", "-n|--name", "User name", iarglib.RequiresArgument)

	if _, err := arger.Parse(); err != nil {
		panic(err)
	}
	name, _ := arger.OptionArgument("name")
	fmt.Println("Hello,", name)
	// Output: Hello, Alice Smith
}
