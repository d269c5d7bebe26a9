// Package input turns files and stdin into the ordered list of texts a guess
// runs over. The reader is chosen by file extension: plain text (one text
// per line, or the whole file), JSON arrays of strings, XLSX spreadsheets
// (one text per cell of a column) and HTML documents (one text per
// paragraph-level element).
package input
