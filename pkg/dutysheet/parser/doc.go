// Package parser loads spreadsheet sheets into tables and extracts text
// from fixed cell windows.
package parser
