// Package render turns field descriptors and customer records into view
// models for the search form and the results table.
//
// Nothing here writes markup. The html and text subpackages paint the view
// models; keeping the formatting rules in plain structs lets both share them
// and lets tests compare them directly.
package render
