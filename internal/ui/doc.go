// Package ui implements an interactive terminal catalog browser using bubbletea's Elm architecture.
//
// The TUI shows three ranked lists, cycled with tab:
//  1. [ArtistListView] : artists ordered by likes, enter lists their songs
//  2. [SongListView] : songs ordered by likes with artist, album and length
//  3. [PlaylistListView] : playlists with creator and listener counts, enter lists their songs
//
// [DetailView] holds the songs of the selected artist or playlist; esc returns to the list it was opened from.
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// It reads value snapshots from a [Source], so the browser never holds the store lock while rendering. r reloads the snapshot.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, tab, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
