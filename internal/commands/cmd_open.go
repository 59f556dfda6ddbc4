package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/bluebook/internal/core/styles"
	"github.com/colonyops/bluebook/internal/navigator"
)

type OpenCmd struct {
	flags *Flags
	app   *navigator.App

	// flags
	part       string
	section    string
	subsection string
	printURL   bool
}

// NewOpenCmd creates a new open command
func NewOpenCmd(flags *Flags, app *navigator.App) *OpenCmd {
	return &OpenCmd{flags: flags, app: app}
}

// Register adds the open command to the application
func (cmd *OpenCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "open",
		Usage:     "Open a document at a part, section or subsection",
		UsageText: "bluebook open [<document>] [--part TITLE] [--section TITLE] [--subsection TITLE] [--print]",
		Description: `Resolves the page for the given titles and opens it in the browser.

The deepest title given sets the granularity. When a title repeats, the first
match in index order is used. Missing values are prompted for when stdin is a
terminal.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "part",
				Aliases:     []string{"p"},
				Usage:       "part title",
				Destination: &cmd.part,
			},
			&cli.StringFlag{
				Name:        "section",
				Aliases:     []string{"s"},
				Usage:       "section title",
				Destination: &cmd.section,
			},
			&cli.StringFlag{
				Name:        "subsection",
				Usage:       "subsection title",
				Destination: &cmd.subsection,
			},
			&cli.BoolFlag{
				Name:        "print",
				Usage:       "print the URL instead of opening it",
				Destination: &cmd.printURL,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *OpenCmd) run(ctx context.Context, c *cli.Command) error {
	if err := cmd.app.EnsureIndex(ctx); err != nil {
		return err
	}

	var chooser navigator.Chooser
	if term.IsTerminal(int(os.Stdin.Fd())) {
		chooser = huhChooser{}
	}

	target, err := cmd.app.Resolve(navigator.Request{
		Document:   c.Args().First(),
		Part:       cmd.part,
		Section:    cmd.section,
		Subsection: cmd.subsection,
	}, chooser)
	switch {
	case errors.Is(err, huh.ErrUserAborted):
		return nil
	case errors.Is(err, navigator.ErrMissingArgument):
		return cli.Exit(fmt.Sprintf("%v. Usage: %s", err, c.UsageText), 2)
	case err != nil:
		return err
	}

	out := c.Root().Writer
	if cmd.printURL {
		_, err := fmt.Fprintln(out, cmd.app.URL(target.Path))
		return err
	}

	url, err := cmd.app.Open(ctx, target.Document, target.Path)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, styles.TextSuccessStyle.Render("Opened ")+url)
	return nil
}

// huhChooser prompts with a huh select. Option values are indexes so repeated
// labels stay distinct.
type huhChooser struct{}

func (huhChooser) Choose(title string, options []string) (int, error) {
	opts := make([]huh.Option[int], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, i)
	}

	var choice int
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(opts...).
				Value(&choice),
		),
	).Run()
	return choice, err
}
