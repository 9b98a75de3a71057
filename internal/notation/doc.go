// Package notation reads the line-oriented observation log an observer keeps
// at the eyepiece and drives a domain.SessionBuilder with the events it
// denotes.
//
// A log line is one of:
//
//	-- comment                    ignored, as is anything after "--"
//	2237                          time checkpoint (22:37)
//	clouds(10) << 2307            statement, moving the checkpoint first
//	per(3.5)                      statement at the current checkpoint
//
// Statements are period_start, period_end, new_period, break_start,
// break_end, date("..."), clouds(N), showers(CODE, ...), areas(areaK(N), ...),
// fieldC(ra, dec) and a lowercase shower code applied to a magnitude, which
// records one meteor.
package notation
