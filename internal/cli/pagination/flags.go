package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/tablepager/internal/pager"
)

// Flag names.
const (
	FlagPerPage        = "per-page"
	FlagCurrentPage    = "current-page"
	FlagContainerID    = "container-id"
	FlagContainerClass = "container-class"
	FlagFirstText      = "first-text"
	FlagPrevText       = "prev-text"
	FlagNextText       = "next-text"
	FlagLastText       = "last-text"
	FlagFirstClass     = "first-class"
	FlagPrevClass      = "prev-class"
	FlagNextClass      = "next-class"
	FlagLastClass      = "last-class"
)

// Sort orders.
const (
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'name:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// Flags holds the pager options settable from the command line.
type Flags struct {
	PerPage        int
	CurrentPage    int
	ContainerID    string
	ContainerClass string
	Texts          map[pager.Control]*string
	Classes        map[pager.Control]*string
}

type controlFlag struct {
	control pager.Control
	text    string
	class   string
}

//nolint:gochecknoglobals // Fixed flag table.
var controlFlags = []controlFlag{
	{pager.ControlFirst, FlagFirstText, FlagFirstClass},
	{pager.ControlPrevious, FlagPrevText, FlagPrevClass},
	{pager.ControlNext, FlagNextText, FlagNextClass},
	{pager.ControlLast, FlagLastText, FlagLastClass},
}

// BindFlags registers the pager flags on cmd. Defaults shown in help are
// the built-in pager defaults; values only take effect when set.
func BindFlags(cmd *cobra.Command) *Flags {
	defaults := pager.DefaultConfig()
	group := defaults.ControlGroup()
	buttons := map[pager.Control]pager.Button{
		pager.ControlFirst:    group.First,
		pager.ControlPrevious: group.Previous,
		pager.ControlNext:     group.Next,
		pager.ControlLast:     group.Last,
	}

	f := &Flags{
		Texts:   make(map[pager.Control]*string, len(controlFlags)),
		Classes: make(map[pager.Control]*string, len(controlFlags)),
	}

	fs := cmd.Flags()
	fs.IntVar(&f.PerPage, FlagPerPage, defaults.PerPage, "rows per page")
	fs.IntVar(&f.CurrentPage, FlagCurrentPage, defaults.CurrentPage, "initial page (clamped to the page range)")
	fs.StringVar(&f.ContainerID, FlagContainerID, defaults.ContainerID, "id of the control group")
	fs.StringVar(&f.ContainerClass, FlagContainerClass, defaults.ContainerClass, "class of the control group")

	for _, cf := range controlFlags {
		b := buttons[cf.control]
		f.Texts[cf.control] = fs.String(cf.text, b.Text, fmt.Sprintf("label of the %s button", cf.control))
		f.Classes[cf.control] = fs.String(cf.class, b.Class, fmt.Sprintf("class of the %s button", cf.control))
	}

	return f
}

// Apply overlays the flags the user set on cfg. Unset flags leave cfg alone
// so configuration file values survive.
func (f *Flags) Apply(cmd *cobra.Command, cfg pager.Config) pager.Config {
	fs := cmd.Flags()
	var opts []pager.Option

	if fs.Changed(FlagPerPage) {
		opts = append(opts, pager.WithPerPage(f.PerPage))
	}
	if fs.Changed(FlagCurrentPage) {
		opts = append(opts, pager.WithCurrentPage(f.CurrentPage))
	}
	if fs.Changed(FlagContainerID) || fs.Changed(FlagContainerClass) {
		id, class := cfg.ContainerID, cfg.ContainerClass
		if fs.Changed(FlagContainerID) {
			id = f.ContainerID
		}
		if fs.Changed(FlagContainerClass) {
			class = f.ContainerClass
		}
		opts = append(opts, pager.WithContainer(id, class))
	}

	for _, cf := range controlFlags {
		if fs.Changed(cf.text) {
			opts = append(opts, pager.WithButtonText(cf.control, *f.Texts[cf.control]))
		}
		if fs.Changed(cf.class) {
			opts = append(opts, pager.WithButtonClass(cf.control, *f.Classes[cf.control]))
		}
	}

	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ValidatePage rejects page numbers below 1.
func ValidatePage(page int) error {
	if page < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	return nil
}

// ParseClicks parses a comma separated list of control names.
func ParseClicks(s string) ([]pager.Control, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	clicks := make([]pager.Control, 0, len(parts))
	for _, part := range parts {
		c, err := pager.ParseControl(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		clicks = append(clicks, c)
	}
	return clicks, nil
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "name", "total:desc".
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if sortStr == "" {
		return "", DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}
