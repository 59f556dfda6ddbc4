package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/bluebook/internal/core/bluebook"
	"github.com/colonyops/bluebook/internal/navigator"
	"github.com/colonyops/bluebook/pkg/iojson"
)

type LsCmd struct {
	flags *Flags
	app   *navigator.App

	// flags
	jsonOutput bool
	match      string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *navigator.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List documents on the server",
		UsageText: "bluebook ls [--json] [--match GLOB]",
		Description: `Displays a table of the documents the server offers, with their display names
and whether the index holds their structure.

Use --match to filter filenames with a glob, e.g. --match '2023_*.pdf'.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringFlag{
				Name:        "match",
				Aliases:     []string{"m"},
				Usage:       "only list filenames matching a glob (doublestar syntax)",
				Destination: &cmd.match,
			},
		},
		Action: cmd.run,
	})

	return app
}

// documentInfo is the JSON output format for bluebook ls --json.
type documentInfo struct {
	Filename string `json:"filename"`
	Display  string `json:"display"`
	Indexed  bool   `json:"indexed"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	docs, err := cmd.app.Documents(ctx)
	if err != nil {
		return err
	}

	docs, err = filterDocuments(docs, cmd.match)
	if err != nil {
		return err
	}

	// a missing index only hides the INDEXED column
	indexErr := cmd.app.EnsureIndex(ctx)

	infos := make([]documentInfo, len(docs))
	for i, d := range docs {
		_, indexed := cmd.app.Index.Lookup(d.Filename)
		infos[i] = documentInfo{Filename: d.Filename, Display: d.Label(), Indexed: indexed}
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, infos)
	}

	if len(infos) == 0 {
		fmt.Fprintf(os.Stderr, "No documents found\n")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if indexErr != nil {
		_, _ = fmt.Fprintln(w, "FILENAME\tTITLE")
		for _, d := range infos {
			_, _ = fmt.Fprintf(w, "%s\t%s\n", d.Filename, d.Display)
		}
	} else {
		_, _ = fmt.Fprintln(w, "FILENAME\tTITLE\tINDEXED")
		for _, d := range infos {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", d.Filename, d.Display, yesNo(d.Indexed))
		}
	}
	_ = w.Flush()

	if indexErr != nil {
		fmt.Fprintf(os.Stderr, "\nIndex unavailable: %v\n", indexErr)
	}
	return nil
}

// filterDocuments keeps documents whose filename matches pattern. An empty
// pattern keeps everything.
func filterDocuments(docs []bluebook.DocumentEntry, pattern string) ([]bluebook.DocumentEntry, error) {
	if pattern == "" {
		return docs, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid --match pattern %q", pattern)
	}

	var out []bluebook.DocumentEntry
	for _, d := range docs {
		if ok, _ := doublestar.Match(pattern, d.Filename); ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
