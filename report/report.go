// Package report prints user-facing messages and errors
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/schoolday/internal/osutil"
)

func Saved(what string) {
	pterm.Success.Printfln("%s saved successfully", what)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
