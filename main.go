package main

import (
	"fmt"
	"os"

	"github.com/Guerrilla-Interactive/featgen/app"
	"github.com/Guerrilla-Interactive/featgen/cmd"
)

// Version is set via linker flags during release builds.
var Version = "dev"

func main() {
	if err := cmd.Execute(Version); err != nil {
		fmt.Fprintln(os.Stderr, app.ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
