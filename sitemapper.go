// Package sitemapper discovers every in-domain page reachable from a seed
// URL and emits the discovered set as an XML sitemap.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, etree/, sqlite/).
package sitemapper
