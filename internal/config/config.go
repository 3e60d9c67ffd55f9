// Package config defines the configuration of the turnip command and loads
// it through viper.
package config

import (
	"errors"
	"fmt"

	"github.com/mkacz/turnip"
	"github.com/spf13/viper"
)

// Config is the complete configuration.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Physics PhysicsConfig `mapstructure:"physics" yaml:"physics"`
	Editor  EditorConfig  `mapstructure:"editor" yaml:"editor"`
	Render  RenderConfig  `mapstructure:"render" yaml:"render"`
}

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// PhysicsConfig holds the body constants. DT is the length of one simulation
// tick in seconds.
type PhysicsConfig struct {
	Radius   float64 `mapstructure:"radius" yaml:"radius"`
	GravityX float64 `mapstructure:"gravity_x" yaml:"gravity_x"`
	GravityY float64 `mapstructure:"gravity_y" yaml:"gravity_y"`
	Accel    float64 `mapstructure:"accel" yaml:"accel"`
	MaxSpeed float64 `mapstructure:"max_speed" yaml:"max_speed"`
	DT       float64 `mapstructure:"dt" yaml:"dt"`
}

// EditorConfig holds the picking radii.
type EditorConfig struct {
	NodeHoverRadius     float64 `mapstructure:"node_hover_radius" yaml:"node_hover_radius"`
	SegmentHoverRadius  float64 `mapstructure:"segment_hover_radius" yaml:"segment_hover_radius"`
	SegmentInsertRadius float64 `mapstructure:"segment_insert_radius" yaml:"segment_insert_radius"`
}

// RenderConfig configures PNG snapshots.
type RenderConfig struct {
	Width  int     `mapstructure:"width" yaml:"width"`
	Height int     `mapstructure:"height" yaml:"height"`
	Margin float64 `mapstructure:"margin" yaml:"margin"`
}

// SetDefaults registers a default for every key.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "turnip")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)

	// -- Physics and editor --
	t := turnip.DefaultTuning()
	v.SetDefault("physics.radius", t.Radius)
	v.SetDefault("physics.gravity_x", t.Gravity.X)
	v.SetDefault("physics.gravity_y", t.Gravity.Y)
	v.SetDefault("physics.accel", t.Accel)
	v.SetDefault("physics.max_speed", t.MaxSpeed)
	v.SetDefault("physics.dt", 1.0/60)
	v.SetDefault("editor.node_hover_radius", t.NodeHoverRadius)
	v.SetDefault("editor.segment_hover_radius", t.SegmentHoverRadius)
	v.SetDefault("editor.segment_insert_radius", t.SegmentInsertRadius)

	// -- Render --
	v.SetDefault("render.width", 800)
	v.SetDefault("render.height", 600)
	v.SetDefault("render.margin", 20.0)
}

// NewConfigFromViper unmarshals and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// NewDefaultConfig returns the configuration consisting only of defaults.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := NewConfigFromViper(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	var errs []error
	if !(c.Physics.Radius > 0) {
		errs = append(errs, errors.New("physics.radius must be positive"))
	}
	if !(c.Physics.DT > 0) {
		errs = append(errs, errors.New("physics.dt must be positive"))
	}
	if c.Physics.Accel < 0 {
		errs = append(errs, errors.New("physics.accel must not be negative"))
	}
	if c.Physics.MaxSpeed < 0 {
		errs = append(errs, errors.New("physics.max_speed must not be negative"))
	}
	if !(c.Editor.NodeHoverRadius > 0) || !(c.Editor.SegmentHoverRadius > 0) {
		errs = append(errs, errors.New("editor hover radii must be positive"))
	}
	if c.Editor.SegmentInsertRadius < c.Editor.SegmentHoverRadius {
		errs = append(errs, fmt.Errorf("editor.segment_insert_radius (%g) must not be smaller than editor.segment_hover_radius (%g)",
			c.Editor.SegmentInsertRadius, c.Editor.SegmentHoverRadius))
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		errs = append(errs, errors.New("render.width and render.height must be positive integers"))
	}
	if c.Render.Margin < 0 || 2*c.Render.Margin >= float64(min(c.Render.Width, c.Render.Height)) {
		errs = append(errs, fmt.Errorf("render.margin %g does not fit the image", c.Render.Margin))
	}
	return errors.Join(errs...)
}

// Tuning returns the physics and editor constants as a [turnip.Tuning].
func (c *Config) Tuning() turnip.Tuning {
	return turnip.Tuning{
		Radius:              c.Physics.Radius,
		Gravity:             turnip.Vec(c.Physics.GravityX, c.Physics.GravityY),
		Accel:               c.Physics.Accel,
		MaxSpeed:            c.Physics.MaxSpeed,
		NodeHoverRadius:     c.Editor.NodeHoverRadius,
		SegmentHoverRadius:  c.Editor.SegmentHoverRadius,
		SegmentInsertRadius: c.Editor.SegmentInsertRadius,
	}
}
