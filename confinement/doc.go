// Package confinement reads the lockdown event log and reduces it to one
// representative confinement date per area.
//
// The log is plain text with one record per line:
//
//	# area, type, date[, type, date, ...]
//	France, T, 3/17/2020
//	Ireland, P, 3/15/2020, P, 3/24/2020, T, 3/28/2020
//
// Type P marks a partial lockdown and T a total one. Dates are M/D/YY or M/D/YYYY.
// Blank lines and lines starting with # are ignored.
package confinement
