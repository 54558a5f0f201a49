package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateContact(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSource() error {
	if c.Source.ResultsCSV == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/ttresults/config.toml"
		}
		return fmt.Errorf("source.results_csv is required; edit %s (create with 'ttresults config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.Dir == "" {
		return errors.New("output.dir must be set")
	}
	if c.Output.Header == "" {
		return errors.New("output.header must be set")
	}
	return nil
}

func (c *Config) validateContact() error {
	if c.Contact.Email != "" && !strings.Contains(c.Contact.Email, "@") {
		return fmt.Errorf("contact.email %q is not an email address", c.Contact.Email)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
