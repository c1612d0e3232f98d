// Package songform holds the pure text transforms behind the song form
// wizard: parsing a structure string, picking the sections that need lyrics,
// keeping the lyrics map keyed to them and assembling the final song text.
//
// Nothing here does I/O or keeps state; every function returns new values.
package songform
