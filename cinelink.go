// Package cinelink resolves content pages of a movie subtitle site into
// normalized sets of download and stream links.
//
// A content page lists download entries. Each entry points at an
// intermediate redirector page, which in turn points at a hosting page
// exposing the final mirrors. This package contains the domain types and
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, http/, rod/).
package cinelink
