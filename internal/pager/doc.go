// Package pager implements a table pagination widget independent of any
// rendering surface.
//
// A Paginator snapshots the rows of a host table once, mounts a control group
// (first, previous, status label, next, last) next to the host and toggles row
// visibility so that only the rows of the current page are shown. Everything
// the widget does to the host goes through the Surface interface:
//   - internal/htmldom implements it over a parsed HTML document.
//   - internal/tui implements it over a Bubble Tea table.
//
// Page arithmetic is exposed as pure functions (PageCount, PageRange,
// StatusLabel) so it can be tested without a surface.
package pager
