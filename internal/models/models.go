// package models defines the data model for the music catalog service
package models

// Artist is a performer. Likes is only ever changed by the store.
type Artist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Likes int    `json:"likes"`
}

// Album belongs to exactly one [Artist].
type Album struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ArtistID string `json:"artist_id"`
}

// Song belongs to exactly one [Album].
type Song struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Length  int    `json:"length"` // Length in seconds
	Likes   int    `json:"likes"`
	AlbumID string `json:"album_id"`
}

// User is identified by mobile number for every user-targeted operation.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

// Playlist is a snapshot of a playlist together with its songs, creator and listeners.
//
// Songs is fixed when the playlist is created. Listeners always contains the creator.
type Playlist struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Creator   User   `json:"creator"`
	Songs     []Song `json:"songs"`
	Listeners []User `json:"listeners"`
}

// HasListener reports whether the user with the given mobile number listens to the playlist.
func (p Playlist) HasListener(mobile string) bool {
	for _, u := range p.Listeners {
		if u.Mobile == mobile {
			return true
		}
	}
	return false
}

// SongTitles returns the titles of the playlist's songs in playlist order.
func (p Playlist) SongTitles() []string {
	titles := make([]string, 0, len(p.Songs))
	for _, s := range p.Songs {
		titles = append(titles, s.Title)
	}
	return titles
}

// Catalog is a point-in-time copy of everything held by the store, in creation order.
type Catalog struct {
	Artists   []Artist   `json:"artists"`
	Albums    []Album    `json:"albums"`
	Songs     []Song     `json:"songs"`
	Users     []User     `json:"users"`
	Playlists []Playlist `json:"playlists"`
}

// ArtistName resolves an artist ID to its name within the snapshot.
func (c Catalog) ArtistName(id string) string {
	for _, a := range c.Artists {
		if a.ID == id {
			return a.Name
		}
	}
	return ""
}

// AlbumTitle resolves an album ID to its title within the snapshot.
func (c Catalog) AlbumTitle(id string) string {
	for _, a := range c.Albums {
		if a.ID == id {
			return a.Title
		}
	}
	return ""
}

// SongArtist resolves the name of the artist owning the given song.
func (c Catalog) SongArtist(s Song) string {
	for _, a := range c.Albums {
		if a.ID == s.AlbumID {
			return c.ArtistName(a.ArtistID)
		}
	}
	return ""
}
