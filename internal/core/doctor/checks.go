package doctor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/bluebook/internal/core/bluebook"
	"github.com/colonyops/bluebook/internal/core/config"
)

// lookPathFunc is the function used to find executables on PATH.
// Package-level variable to allow test overrides.
var lookPathFunc = exec.LookPath

// ConfigCheck runs deep validation on the loaded configuration.
type ConfigCheck struct {
	cfg  *config.Config
	path string
}

// NewConfigCheck creates a config check for cfg loaded from path.
func NewConfigCheck(cfg *config.Config, path string) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, path: path}
}

func (c *ConfigCheck) Name() string { return "Configuration" }

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	err := c.cfg.ValidateDeep(c.path)
	if err == nil {
		result.Items = append(result.Items, pass("config", c.path))
		return result
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		result.Items = append(result.Items, fail("config", err.Error()))
		return result
	}

	for _, fe := range fieldErrs {
		// the opener has its own check
		if fe.Field == "opener.command" {
			continue
		}
		result.Items = append(result.Items, fail(fe.Field, fe.Err.Error()))
	}
	if len(result.Items) == 0 {
		result.Items = append(result.Items, pass("config", c.path))
	}
	return result
}

// Source is the part of the catalog client the server check needs.
type Source interface {
	ListDocuments(ctx context.Context) ([]bluebook.DocumentEntry, error)
	FetchIndex(ctx context.Context) (map[string]bluebook.DocumentStructure, error)
}

// ServerCheck verifies both index endpoints respond and agree with each other.
type ServerCheck struct {
	src     Source
	baseURL string
}

// NewServerCheck creates a server check against src.
func NewServerCheck(src Source, baseURL string) *ServerCheck {
	return &ServerCheck{src: src, baseURL: baseURL}
}

func (c *ServerCheck) Name() string { return "Server" }

func (c *ServerCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	docs, docsErr := c.src.ListDocuments(ctx)
	if docsErr != nil {
		result.Items = append(result.Items, fail("documents", docsErr.Error()))
	} else {
		result.Items = append(result.Items, pass("documents", fmt.Sprintf("%d available at %s", len(docs), c.baseURL)))
	}

	index, err := c.src.FetchIndex(ctx)
	if err != nil {
		result.Items = append(result.Items, fail("index", err.Error()))
		return result
	}
	result.Items = append(result.Items, pass("index", fmt.Sprintf("%d documents indexed", len(index))))

	if docsErr != nil {
		return result
	}

	var missing []string
	for _, d := range docs {
		if _, ok := index[d.Filename]; !ok {
			missing = append(missing, d.Filename)
		}
	}
	if len(missing) > 0 {
		result.Items = append(result.Items, warn("coverage",
			fmt.Sprintf("not indexed: %s", strings.Join(missing, ", "))))
	}

	return result
}

// OpenerCheck verifies the configured browser opener is on PATH.
type OpenerCheck struct {
	command []string
}

// NewOpenerCheck creates an opener check for command.
func NewOpenerCheck(command []string) *OpenerCheck {
	return &OpenerCheck{command: command}
}

func (c *OpenerCheck) Name() string { return "Opener" }

func (c *OpenerCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if len(c.command) == 0 {
		result.Items = append(result.Items, warn("opener", "no command configured (use 'open --print')"))
		return result
	}

	path, err := lookPathFunc(c.command[0])
	if err != nil {
		result.Items = append(result.Items, fail(c.command[0], "not found on PATH"))
		return result
	}
	result.Items = append(result.Items, pass(c.command[0], path))
	return result
}
