// Package theme loads theme files that override per-class attribute defaults.
//
// A theme file maps class names to attribute values under an "attrs" key, in
// YAML, TOML or JSON:
//
//	attrs:
//	  Plot:
//	    background_fill_color: "#fafafa"
//	    outline_line_color: null
//	  Axis:
//	    axis_label_text_font_style: normal
//
// Values apply to the named class and every subclass, unless a more derived
// class has its own entry. Explicit constructor attributes always win.
// Entity-valued and container properties (ranges, titles, slot lists) cannot
// be themed.
//
//	th, err := theme.Load("dark.yaml")
//	model.SetTheme(th)
package theme

import (
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/props"

	_ "github.com/matzehuels/plotkit/pkg/plot" // registers the Plot class
)

// EnvVar names the environment variable holding a default theme path.
const EnvVar = "PLOTKIT_THEME"

const attrsKey = "attrs"

// Formats lists the accepted file formats.
var Formats = []string{"yaml", "yml", "toml", "json"}

// Load reads a theme file. The format follows the file extension.
func Load(path string) (model.MapTheme, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme %s", path)
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "read theme %s", filepath.Base(path))
	}
	return decode(v)
}

// Parse reads a theme in the given format ("yaml", "toml" or "json").
func Parse(r io.Reader, format string) (model.MapTheme, error) {
	v := viper.New()
	v.SetConfigType(strings.ToLower(format))
	if err := v.ReadConfig(r); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse %s theme", format)
	}
	return decode(v)
}

// EnvPath returns the theme path set in PLOTKIT_THEME, or "".
func EnvPath() string {
	v := viper.New()
	v.SetEnvPrefix("plotkit")
	if err := v.BindEnv("theme"); err != nil {
		return ""
	}
	return v.GetString("theme")
}

// decode maps the lower-cased keys viper produces back to registered class
// names and checks every value against the class schema.
func decode(v *viper.Viper) (model.MapTheme, error) {
	if !v.IsSet(attrsKey) {
		return nil, errors.New(errors.ErrCodeInvalidTheme, "theme has no %q table", attrsKey)
	}
	byLower := make(map[string]string)
	for _, class := range props.Classes() {
		byLower[strings.ToLower(class)] = class
	}

	th := make(model.MapTheme)
	var errs []error
	table := v.GetStringMap(attrsKey)
	for _, key := range slices.Sorted(maps.Keys(table)) {
		raw := table[key]
		class, ok := byLower[key]
		if !ok {
			errs = append(errs, errors.New(errors.ErrCodeInvalidTheme, "unknown class %q", key))
			continue
		}
		attrs, ok := raw.(map[string]any)
		if !ok {
			errs = append(errs, errors.New(errors.ErrCodeInvalidTheme, "%s: expected a table of attributes, got %T", class, raw))
			continue
		}
		schema, err := props.LookupClass(class)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		th[class] = make(map[string]any, len(attrs))
		for _, name := range slices.Sorted(maps.Keys(attrs)) {
			val := attrs[name]
			p, err := schema.Lookup(name)
			if err != nil {
				errs = append(errs, errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme entry %s.%s", class, name))
				continue
			}
			if !p.Kind.Themeable() {
				errs = append(errs, errors.New(errors.ErrCodeInvalidTheme,
					"theme entry %s.%s: %s properties cannot be themed", class, name, p.Kind))
				continue
			}
			val = p.Kind.Coerce(val)
			if err := p.Check(val); err != nil {
				errs = append(errs, errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme entry %s.%s", class, name))
				continue
			}
			th[class][name] = val
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return th, nil
}
