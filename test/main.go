package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/trevin-j/iarglib"
)

func setupOptions(arger *iarglib.Arger) {
	arger.SetAppName("iarglib example")
	arger.AddHelpOption("Shows how to declare and parse options with iarglib.")
	arger.AddVersionOption("1.0.0")
	arger.SetContinueOnHelp(false)
	arger.SetContinueOnVersion(false)

	arger.AddOption("file", "-f|--file", "The file to read", iarglib.RequiresArgument)
	arger.AddOption("output", "-o|--output", "The file to write", iarglib.RequiresArgument)
	arger.AddOption("size", "-S|--size", "The size of the output file", iarglib.RequiresArgument)
	arger.AddOption("read", "-r|--read", "Read the file", iarglib.NoArgument)

	arger.AddOptionWithCallback("do-something", "-d|--do-something", "An example of an event option",
		iarglib.NoArgument, func(iarglib.View) {
			fmt.Println("The -d or --do-something option was specified.")
		})
}

func main() {
	arger := iarglib.New(os.Args)
	setupOptions(arger)

	keepRunning, err := arger.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
		os.Exit(1)
	}
	if !keepRunning {
		return
	}

	if arger.OptionExists("read") {
		fmt.Println("The -r or --read option was specified.")
	}
	if arger.OptionExists("file") {
		file, _ := arger.OptionArgument("file")
		fmt.Println("The file to read is:", file)
	}
	fmt.Printf("Passed options: %v\n", arger.PassedOptions())
}
