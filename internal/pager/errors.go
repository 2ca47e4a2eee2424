package pager

import "errors"

// ErrInvalidConfiguration is returned when a Config cannot drive a Paginator.
var ErrInvalidConfiguration = errors.New("invalid pager configuration")

// ErrNilSurface is returned by New when no surface is supplied.
var ErrNilSurface = errors.New("pager surface is nil")

// ErrUnknownControl is returned by ParseControl for unrecognised names.
var ErrUnknownControl = errors.New("unknown pager control")
