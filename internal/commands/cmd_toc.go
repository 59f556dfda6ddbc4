package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/bluebook/internal/core/bluebook"
	"github.com/colonyops/bluebook/internal/core/styles"
	"github.com/colonyops/bluebook/internal/navigator"
	"github.com/colonyops/bluebook/pkg/iojson"
)

type TocCmd struct {
	flags *Flags
	app   *navigator.App

	// flags
	jsonOutput bool
	indexFile  *iojson.FileReader[map[string]bluebook.DocumentStructure]
}

// NewTocCmd creates a new toc command
func NewTocCmd(flags *Flags, app *navigator.App) *TocCmd {
	return &TocCmd{
		flags: flags,
		app:   app,
		indexFile: &iojson.FileReader[map[string]bluebook.DocumentStructure]{
			Name:  "index-file",
			Usage: "read the index from a JSON file (- for stdin) instead of the server",
		},
	}
}

// Register adds the toc command to the application
func (cmd *TocCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "toc",
		Usage:     "Print a document's parts, sections and subsections",
		UsageText: "bluebook toc <document> [--json] [--index-file FILE]",
		Description: `Prints the indexed outline of a document as markdown, with page numbers.
Output is rendered for the terminal when stdout is a TTY.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the raw index entry as JSON",
				Destination: &cmd.jsonOutput,
			},
			cmd.indexFile.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *TocCmd) run(ctx context.Context, c *cli.Command) error {
	filename := c.Args().First()
	if filename == "" {
		return cli.Exit("document is required. Usage: bluebook toc <document>", 2)
	}

	if cmd.indexFile.IsSet() {
		docs, err := cmd.indexFile.Read()
		if err != nil {
			return fmt.Errorf("read index: %w", err)
		}
		cmd.app.Index.Load(docs)
	}

	structure, err := cmd.app.Structure(ctx, filename)
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, structure)
	}

	md := navigator.Outline(bluebook.DisplayName(filename), structure)
	_, err = io.WriteString(out, renderMarkdown(out, md))
	return err
}

// renderMarkdown renders md with glamour when w is a terminal and returns md
// unchanged otherwise.
func renderMarkdown(w io.Writer, md string) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return md
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, printing raw markdown")
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, printing raw markdown")
		return md
	}
	return rendered
}
