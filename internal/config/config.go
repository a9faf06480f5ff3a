// Package config loads the board settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"math"

	"InfiniteBoard/internal/geom"
	"InfiniteBoard/internal/render"
	"InfiniteBoard/internal/viewport"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window   Window   `toml:"window"`
	Viewport Viewport `toml:"viewport"`
	Grid     Grid     `toml:"grid"`
	Arrow    Arrow    `toml:"arrow"`
	Style    Style    `toml:"style"`
}

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type Viewport struct {
	MinZoom     float64 `toml:"min_zoom"`
	MaxZoom     float64 `toml:"max_zoom"`
	ZoomStep    float64 `toml:"zoom_step"`
	LeadMargin  float64 `toml:"lead_margin"`
	TrailMargin float64 `toml:"trail_margin"`
}

type Grid struct {
	Show    bool    `toml:"show"`
	Spacing float64 `toml:"spacing"`
}

type Arrow struct {
	WingLength float64 `toml:"wing_length"`
	// WingAngle is in degrees.
	WingAngle float64 `toml:"wing_angle"`
}

type Style struct {
	FillLightness float64 `toml:"fill_lightness"`
	FontSize      float64 `toml:"font_size"`
	TextPadding   float64 `toml:"text_padding"`
	StrokeWidth   float64 `toml:"stroke_width"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Window: Window{Title: "Infinite Board", Width: 1024, Height: 768},
		Viewport: Viewport{
			MinZoom:     viewport.DefaultMinZoom,
			MaxZoom:     viewport.DefaultMaxZoom,
			ZoomStep:    viewport.DefaultZoomStep,
			LeadMargin:  viewport.DefaultLeadMargin,
			TrailMargin: viewport.DefaultTrailMargin,
		},
		Grid:  Grid{Show: true, Spacing: render.DefaultGridSpacing},
		Arrow: Arrow{WingLength: geom.DefaultWingLength, WingAngle: 30},
		Style: Style{
			FillLightness: render.DefaultLightness,
			FontSize:      render.DefaultFontSize,
			TextPadding:   render.DefaultTextPadding,
			StrokeWidth:   render.DefaultStrokeWidth,
		},
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults. Keys the file sets that no setting matches are an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return load(path, true)
}

// Parse is like Load but reads the TOML document from a string.
func Parse(doc string) (*Config, error) {
	return load(doc, false)
}

func load(conf string, isFileName bool) (*Config, error) {
	c := Default()
	var md toml.MetaData
	var err error
	if isFileName {
		md, err = toml.DecodeFile(conf, c)
	} else {
		md, err = toml.Decode(conf, c)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("undecoded fields in configuration: %v", undecoded)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports every inconsistent setting.
func (c *Config) Validate() error {
	var errs []error
	v := c.Viewport
	if v.MinZoom <= 0 {
		errs = append(errs, fmt.Errorf("viewport.min_zoom must be positive, got %g", v.MinZoom))
	}
	if v.MaxZoom < v.MinZoom {
		errs = append(errs, fmt.Errorf("viewport.max_zoom %g is below min_zoom %g", v.MaxZoom, v.MinZoom))
	}
	if v.ZoomStep <= 1 {
		errs = append(errs, fmt.Errorf("viewport.zoom_step must be greater than 1, got %g", v.ZoomStep))
	}
	if v.LeadMargin < 1 || v.TrailMargin < 1 {
		errs = append(errs, errors.New("viewport margins must be at least 1"))
	}
	if c.Grid.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("grid.spacing must be positive, got %g", c.Grid.Spacing))
	}
	if c.Arrow.WingLength < 0 {
		errs = append(errs, fmt.Errorf("arrow.wing_length must not be negative, got %g", c.Arrow.WingLength))
	}
	if c.Arrow.WingAngle <= 0 || c.Arrow.WingAngle >= 90 {
		errs = append(errs, fmt.Errorf("arrow.wing_angle must be in (0, 90) degrees, got %g", c.Arrow.WingAngle))
	}
	if c.Style.FillLightness < 0 || c.Style.FillLightness > 100 {
		errs = append(errs, fmt.Errorf("style.fill_lightness must be in [0, 100], got %g", c.Style.FillLightness))
	}
	if c.Style.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("style.font_size must be positive, got %g", c.Style.FontSize))
	}
	if c.Style.TextPadding < 0 || c.Style.StrokeWidth < 0 {
		errs = append(errs, errors.New("style.text_padding and style.stroke_width must not be negative"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	return errors.Join(errs...)
}

// ViewportLimits maps the [viewport] section.
func (c *Config) ViewportLimits() viewport.Limits {
	return viewport.Limits{
		MinZoom:     c.Viewport.MinZoom,
		MaxZoom:     c.Viewport.MaxZoom,
		ZoomStep:    c.Viewport.ZoomStep,
		LeadMargin:  c.Viewport.LeadMargin,
		TrailMargin: c.Viewport.TrailMargin,
	}
}

// RenderOptions maps the [arrow] and [style] sections.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		WingLength:  c.Arrow.WingLength,
		WingAngle:   c.Arrow.WingAngle * math.Pi / 180,
		StrokeWidth: c.Style.StrokeWidth,
		TextPadding: c.Style.TextPadding,
		FontSize:    c.Style.FontSize,
	}
}
