package app

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/schoolday/internal/config"
	"github.com/ayoisaiah/schoolday/internal/osutil"
	"github.com/ayoisaiah/schoolday/store"
)

var errNoInput = errors.New("no input file given; pass a path or - for stdin")

// exportAction writes every stored key as JSON to the given file or stdout.
func exportAction(ctx *cli.Context) error {
	return withServices(ctx, func(_ *config.Config, s *services) error {
		path := ctx.Args().First()
		if path == "" || path == "-" {
			return store.Export(s.kv, config.Stdout)
		}

		var buf bytes.Buffer

		if err := store.Export(s.kv, &buf); err != nil {
			return err
		}

		if err := os.WriteFile(path, buf.Bytes(), osutil.FilePermission); err != nil {
			return err
		}

		pterm.Success.Printfln("Data exported to %s", path)

		return nil
	})
}

// importAction restores the keys of a JSON export. Existing values for the
// same keys are replaced, so confirmation is requested unless --yes is set.
func importAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errNoInput
	}

	var (
		b   []byte
		err error
	)

	if path == "-" {
		b, err = io.ReadAll(config.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}

	if err != nil {
		return err
	}

	return withServices(ctx, func(_ *config.Config, s *services) error {
		if !ctx.Bool(yesFlag.Name) && path != "-" {
			warning := pterm.Warning.Sprint(
				"Saved data with the same keys will be replaced. Press ENTER to proceed",
			)

			fmt.Fprint(config.Stdout, warning)

			reader := bufio.NewReader(config.Stdin)

			_, _ = reader.ReadString('\n')
		}

		n, err := store.Import(s.kv, bytes.NewReader(b))
		if err != nil {
			return err
		}

		pterm.Success.Printfln("%d keys imported", n)

		return nil
	})
}
