package config

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/hay-kot/criterio"
)

// ValidateDeep performs comprehensive validation of the configuration
// including the server URL shape, the opener executable and file
// accessibility. The configPath argument specifies the config file location
// to validate (empty string skips the config file check). This calls
// Validate() first for basic structural validation.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validateServer(),
		criterio.Run("opener.command", c.Opener.Command[0], executableExists),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func (c *Config) validateServer() error {
	var errs criterio.FieldErrorsBuilder

	u, err := c.ParsedServerURL()
	switch {
	case err != nil:
		errs = errs.Append("server.url", fmt.Errorf("invalid url: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = errs.Append("server.url", fmt.Errorf("scheme must be http or https, got %q", u.Scheme))
	case u.Host == "":
		errs = errs.Append("server.url", fmt.Errorf("missing host"))
	}

	if c.Server.Timeout == 0 {
		errs = errs.Append("server.timeout", fmt.Errorf("must be greater than zero"))
	}

	return errs.ToError()
}

// executableExists validates that the opener is on PATH.
func executableExists(path string) error {
	if _, err := exec.LookPath(path); err != nil {
		return fmt.Errorf("executable not found: %s", path)
	}
	return nil
}
