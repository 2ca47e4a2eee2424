// Package source loads row snapshots for the terminal pager.
//
// A Table is captured once and never refreshed, matching the pager's snapshot
// semantics. Loaders exist for HTML tables (goquery), CSV files and SQL tables
// reached through GORM.
package source
