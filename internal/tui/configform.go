package tui

import (
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianshen/pricemap/internal/catalog"
	"github.com/julianshen/pricemap/internal/config"
)

// ConfigForm wraps a Huh form for editing pricemap configuration.
type ConfigForm struct {
	form     *huh.Form
	cfg      *config.Config
	savePath string
}

// NewConfigForm creates a config editor form populated from the given config.
// Fields are bound directly to cfg.
func NewConfigForm(cfg *config.Config, savePath string) *ConfigForm {
	cf := &ConfigForm{
		cfg:      cfg,
		savePath: savePath,
	}

	providerOpts := make([]huh.Option[string], 0, len(catalog.ProviderGroups()))
	for _, g := range catalog.ProviderGroups() {
		providerOpts = append(providerOpts, huh.NewOption(string(g), string(g)))
	}
	classOpts := make([]huh.Option[string], 0, len(catalog.ModelClasses()))
	for _, c := range catalog.ModelClasses() {
		classOpts = append(classOpts, huh.NewOption(string(c), string(c)))
	}

	viewGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Default provider").
			Options(providerOpts...).
			Value(&cfg.View.Provider),
		huh.NewSelect[string]().
			Title("Default model class").
			Options(classOpts...).
			Value(&cfg.View.Class),
	).Title("View")

	dataGroup := huh.NewGroup(
		huh.NewInput().
			Title("Catalog file").
			Description("YAML catalog; leave empty for the built-in list").
			Value(&cfg.Catalog.File),
		huh.NewInput().
			Title("Cache expiry").
			Placeholder("24h").
			Validate(func(s string) error {
				if s == "" {
					return nil
				}
				_, err := time.ParseDuration(s)
				return err
			}).
			Value(&cfg.Cache.Expiry),
	).Title("Data")

	logGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Log level").
			Options(
				huh.NewOption("Debug", "debug"),
				huh.NewOption("Info", "info"),
				huh.NewOption("Warn", "warn"),
				huh.NewOption("Error", "error"),
			).
			Value(&cfg.Log.Level),
	).Title("Logging")

	cf.form = huh.NewForm(viewGroup, dataGroup, logGroup)

	return cf
}

// GroupCount returns the number of form groups.
func (c *ConfigForm) GroupCount() int { return 3 }

// Save persists the config to disk.
func (c *ConfigForm) Save() error {
	return config.Save(c.savePath, c.cfg)
}

// Form returns the underlying huh.Form for Bubble Tea embedding.
func (c *ConfigForm) Form() *huh.Form { return c.form }

// SetForm replaces the underlying huh.Form. This is used when the form's
// Update method returns a new Form instance.
func (c *ConfigForm) SetForm(f *huh.Form) { c.form = f }

// IsCompleted returns true if the form has been completed (submitted).
func (c *ConfigForm) IsCompleted() bool { return c.form.State == huh.StateCompleted }

// IsAborted returns true if the form has been aborted (cancelled).
func (c *ConfigForm) IsAborted() bool { return c.form.State == huh.StateAborted }
