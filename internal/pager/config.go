package pager

import (
	"fmt"
	"strings"
)

// Default option values.
const (
	DefaultPerPage            = 5
	DefaultContainerClass     = ""
	DefaultContainerID        = "pager"
	DefaultButtonClass        = "btn btn-default"
	DefaultFirstButtonText    = "First"
	DefaultLastButtonText     = "Last"
	DefaultPreviousButtonText = "Prev"
	DefaultNextButtonText     = "Next"
	DefaultCurrentPage        = 1
)

// Config lists every option the widget recognises. The zero value is not
// usable; start from DefaultConfig or NewConfig so unspecified options keep
// their defaults.
type Config struct {
	PerPage        int    `json:"perPage"        yaml:"perPage"`
	ContainerClass string `json:"containerClass" yaml:"containerClass"`
	ContainerID    string `json:"containerID"    yaml:"containerID"`

	PreviousButtonClass string `json:"previousButtonClass" yaml:"previousButtonClass"`
	NextButtonClass     string `json:"nextButtonClass"     yaml:"nextButtonClass"`
	FirstButtonClass    string `json:"firstButtonClass"    yaml:"firstButtonClass"`
	LastButtonClass     string `json:"lastButtonClass"     yaml:"lastButtonClass"`

	FirstButtonText    string `json:"firstButtonText"    yaml:"firstButtonText"`
	LastButtonText     string `json:"lastButtonText"     yaml:"lastButtonText"`
	PreviousButtonText string `json:"previousButtonText" yaml:"previousButtonText"`
	NextButtonText     string `json:"nextButtonText"     yaml:"nextButtonText"`

	// CurrentPage is the page shown right after initialization. Values outside
	// [1, pageCount] are clamped once the row count is known.
	CurrentPage int `json:"currentPage" yaml:"currentPage"`
}

// DefaultConfig returns the configuration used when the caller overrides nothing.
func DefaultConfig() Config {
	return Config{
		PerPage:             DefaultPerPage,
		ContainerClass:      DefaultContainerClass,
		ContainerID:         DefaultContainerID,
		PreviousButtonClass: DefaultButtonClass,
		NextButtonClass:     DefaultButtonClass,
		FirstButtonClass:    DefaultButtonClass,
		LastButtonClass:     DefaultButtonClass,
		FirstButtonText:     DefaultFirstButtonText,
		LastButtonText:      DefaultLastButtonText,
		PreviousButtonText:  DefaultPreviousButtonText,
		NextButtonText:      DefaultNextButtonText,
		CurrentPage:         DefaultCurrentPage,
	}
}

// Option overrides a single configuration value.
type Option func(*Config)

// NewConfig applies opts on top of DefaultConfig. Later options win.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithPerPage sets the number of rows per page.
func WithPerPage(perPage int) Option {
	return func(c *Config) { c.PerPage = perPage }
}

// WithCurrentPage sets the initial page.
func WithCurrentPage(page int) Option {
	return func(c *Config) { c.CurrentPage = page }
}

// WithContainer sets the identifier and class of the control group.
func WithContainer(id, class string) Option {
	return func(c *Config) {
		c.ContainerID = id
		c.ContainerClass = class
	}
}

// WithButtonText sets the label of one control.
func WithButtonText(control Control, text string) Option {
	return func(c *Config) {
		if field := c.textField(control); field != nil {
			*field = text
		}
	}
}

// WithButtonClass sets the class of one control.
func WithButtonClass(control Control, class string) Option {
	return func(c *Config) {
		if field := c.classField(control); field != nil {
			*field = class
		}
	}
}

func (c *Config) textField(control Control) *string {
	switch control {
	case ControlFirst:
		return &c.FirstButtonText
	case ControlPrevious:
		return &c.PreviousButtonText
	case ControlNext:
		return &c.NextButtonText
	case ControlLast:
		return &c.LastButtonText
	default:
		return nil
	}
}

func (c *Config) classField(control Control) *string {
	switch control {
	case ControlFirst:
		return &c.FirstButtonClass
	case ControlPrevious:
		return &c.PreviousButtonClass
	case ControlNext:
		return &c.NextButtonClass
	case ControlLast:
		return &c.LastButtonClass
	default:
		return nil
	}
}

// Validate reports whether the configuration can drive a Paginator.
// All failures wrap ErrInvalidConfiguration.
func (c Config) Validate() error {
	if c.PerPage <= 0 {
		return fmt.Errorf("%w: perPage must be > 0, got %d", ErrInvalidConfiguration, c.PerPage)
	}
	if strings.TrimSpace(c.ContainerID) == "" {
		return fmt.Errorf("%w: containerID must not be empty", ErrInvalidConfiguration)
	}
	if strings.ContainsAny(c.ContainerID, " \t\n\r\f") {
		return fmt.Errorf("%w: containerID %q must not contain whitespace", ErrInvalidConfiguration, c.ContainerID)
	}
	return nil
}

// ControlGroup describes the controls a surface has to build for this configuration.
func (c Config) ControlGroup() ControlGroup {
	return ControlGroup{
		ID:       c.ContainerID,
		Class:    c.ContainerClass,
		First:    Button{Control: ControlFirst, Text: c.FirstButtonText, Class: c.FirstButtonClass},
		Previous: Button{Control: ControlPrevious, Text: c.PreviousButtonText, Class: c.PreviousButtonClass},
		Next:     Button{Control: ControlNext, Text: c.NextButtonText, Class: c.NextButtonClass},
		Last:     Button{Control: ControlLast, Text: c.LastButtonText, Class: c.LastButtonClass},
	}
}
