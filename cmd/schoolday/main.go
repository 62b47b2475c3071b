package main

import (
	"os"

	"github.com/ayoisaiah/schoolday/app"
	"github.com/ayoisaiah/schoolday/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		report.Quit(err)
	}
}
