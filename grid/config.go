package grid

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/npillmayer/schuko"
)

// Configuration keys read by ConfigFrom.
const (
	KeyNamespace    = "grid.namespace"     // class prefix, default "el"
	KeyInlineStyles = "grid.inline-styles" // render style attributes, default true
	KeyColumns      = "grid.columns"       // number of grid columns, default 24
)

// ErrConfig flags an illegal configuration value.
var ErrConfig = errors.New("illegal grid configuration")

// Config holds the settings shared by all rows and columns of a grid.
type Config struct {
	Namespace    string // prefix of every class name, e.g. "el" → "el-col"
	InlineStyles bool   // if false, computed styles are not rendered as style attributes
	Columns      int    // grid columns per row; used for the stylesheet
}

// DefaultConfig returns the configuration used if clients do not provide one.
func DefaultConfig() Config {
	return Config{
		Namespace:    "el",
		InlineStyles: true,
		Columns:      24,
	}
}

var identifier = regexp.MustCompile(`^[a-zA-Z_][-a-zA-Z0-9_]*$`)

// ConfigFrom reads a grid configuration from an application configuration.
// Keys not set keep their defaults. A nil configuration yields the defaults.
func ConfigFrom(conf schuko.Configuration) (Config, error) {
	c := DefaultConfig()
	if conf == nil {
		return c, nil
	}
	if conf.IsSet(KeyNamespace) {
		ns := conf.GetString(KeyNamespace)
		if !identifier.MatchString(ns) {
			return c, fmt.Errorf("%w: %s = %q is not a CSS identifier", ErrConfig, KeyNamespace, ns)
		}
		c.Namespace = ns
	}
	if conf.IsSet(KeyInlineStyles) {
		c.InlineStyles = conf.GetBool(KeyInlineStyles)
		if !c.InlineStyles {
			tracer().Infof("grid: inline styles of columns will not be rendered")
		}
	}
	if conf.IsSet(KeyColumns) {
		n := conf.GetInt(KeyColumns)
		if n < 1 {
			return c, fmt.Errorf("%w: %s = %q", ErrConfig, KeyColumns, conf.GetString(KeyColumns))
		}
		c.Columns = n
	}
	return c, nil
}

// BlockClass returns the class name of a grid component, e.g. "el-col".
func (c Config) BlockClass(component string) string {
	ns := c.Namespace
	if ns == "" {
		ns = DefaultConfig().Namespace
	}
	return ns + "-" + component
}
