// Package fortune parses fortune files into records and selects from them.
//
// A fortune file is plain text in which every record is terminated by a line
// containing exactly "%". Records are collected into an immutable Store, from
// which Pick chooses one at random (optionally from a fixed seed) and Filter
// streams the records matching a pattern, grouped by contiguous source file.
package fortune
