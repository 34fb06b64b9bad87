// Package seed loads catalog scripts and applies them to a [catalog.Store].
//
// A catalog script is a TOML document made of arrays of tables:
//
//	[[users]]      name, mobile
//	[[artists]]    name
//	[[albums]]     title, artist
//	[[songs]]      title, album, length
//	[[playlists]]  mobile, title, and either length or songs
//	[[listeners]]  mobile, playlist
//	[[likes]]      mobile, song
//
// Sections are applied in the order above regardless of their order in the file, so a script can reference
// entities declared further down. The first failing entry stops the run; entries applied before it stay in the
// store. Unknown keys are rejected so typos surface instead of being silently ignored.
package seed
