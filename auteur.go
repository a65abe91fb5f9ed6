// Package auteur turns Markdown-sourced article HTML into templated static
// blog pages: individual posts, landing-page previews, and an aggregated
// landing page, with chronological previous-post linkage derived from the
// site listing.
//
// This package contains domain types, pure extraction/render logic, and
// collaborator interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., fs/, gomarkdown/, etree/).
package auteur
