// Package pagination holds the CLI side of paging:
//   - Flags: pager options bound to cobra flags, applied only when set
//   - PaginationMeta: page metadata for JSON/YAML output
//   - RowSorter: column sort applied to a row snapshot before paging
package pagination
