package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/bluebook/internal/core/styles"
	"github.com/colonyops/bluebook/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "bluebook config validate [options]",
				Description: "Validates the configuration file, checking the server URL, timeout, opener command and theme.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	issues := collectIssues(cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath))

	if cmd.format == "json" {
		out := struct {
			Valid  bool              `json:"valid"`
			Errors []validationIssue `json:"errors,omitempty"`
		}{
			Valid:  len(issues) == 0,
			Errors: issues,
		}
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out); err != nil {
			return err
		}
		if len(issues) > 0 {
			return cli.Exit("", 1)
		}
		return nil
	}

	return outputIssues(c.Root().Writer, issues)
}

// collectIssues flattens a validation error into per-field issues.
func collectIssues(err error) []validationIssue {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		issues := make([]validationIssue, len(fieldErrs))
		for i, fe := range fieldErrs {
			issues[i] = validationIssue{Field: fe.Field, Message: fe.Err.Error()}
		}
		return issues
	}

	return []validationIssue{{Field: "config", Message: err.Error()}}
}

func outputIssues(w io.Writer, issues []validationIssue) error {
	if len(issues) == 0 {
		_, _ = fmt.Fprintln(w, styles.TextSuccessStyle.Render("✓ Configuration is valid"))
		return nil
	}

	for _, issue := range issues {
		_, _ = fmt.Fprintf(w, "%s %s: %s\n", styles.TextErrorStyle.Render("✗"), issue.Field, issue.Message)
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, styles.TextErrorStyle.Render(fmt.Sprintf("%d error(s) found", len(issues))))
	return cli.Exit("", 1)
}
