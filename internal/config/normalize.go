package config

import "strings"

// normalize expands home-relative paths and trims free-text fields.
func (c *Config) normalize() error {
	expanded, err := ExpandPath(c.Source.ResultsCSV)
	if err != nil {
		return err
	}
	c.Source.ResultsCSV = expanded

	expanded, err = ExpandPath(c.Output.Dir)
	if err != nil {
		return err
	}
	c.Output.Dir = expanded

	c.Output.Header = strings.TrimSpace(c.Output.Header)
	c.Contact.Name = strings.TrimSpace(c.Contact.Name)
	c.Contact.Email = strings.TrimSpace(c.Contact.Email)
	return nil
}
