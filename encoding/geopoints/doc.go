// Package geopoints reads and writes the flat file formats consumed and
// produced by the geocluster engine: a CSV of weighted (lon, lat) points on
// input, and a TSV of merge records on output. Both formats are transparently
// gzip-compressed when the path ends in ".gz".
package geopoints
