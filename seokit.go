// Package seokit renders the search-engine facing parts of a web page:
// HTML meta tags, Open Graph tags, robots.txt content and XML sitemap and
// sitemap index documents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., etree/, dateparse/, goquery/).
package seokit
