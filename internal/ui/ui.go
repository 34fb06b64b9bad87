package ui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/tunedex/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ArtistListView ViewState = iota
	SongListView
	PlaylistListView
	DetailView
)

var tabs = []ViewState{ArtistListView, SongListView, PlaylistListView}

func (v ViewState) String() string {
	switch v {
	case ArtistListView:
		return "Artists"
	case SongListView:
		return "Songs"
	case PlaylistListView:
		return "Playlists"
	case DetailView:
		return "Detail"
	default:
		return "Unknown"
	}
}

// Source provides catalog snapshots to browse.
type Source interface {
	Snapshot() models.Catalog
}

// Model represents the TUI application state.
type Model struct {
	source    Source
	view      ViewState
	parent    ViewState
	catalog   models.Catalog
	loaded    bool
	width     int
	height    int
	artists   list.Model
	songs     list.Model
	playlists list.Model
	detail    list.Model
	help      help.Model
	keys      keyMap
}

// NewModel creates a new TUI model reading from source.
func NewModel(source Source) *Model {
	return &Model{
		source:    source,
		view:      ArtistListView,
		artists:   newList("Artists"),
		songs:     newList("Songs"),
		playlists: newList("Playlists"),
		detail:    newList(""),
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// ViewState returns the active view.
func (m *Model) ViewState() ViewState { return m.view }

// Init loads the first catalog snapshot.
func (m *Model) Init() tea.Cmd {
	return m.load()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case Msg:
		if msg.kind == MsgCatalogLoaded {
			m.setCatalog(msg.data.(models.Catalog))
		}
		return m, nil

	case tea.KeyMsg:
		if m.active().FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.reload):
			return m, m.load()
		case key.Matches(msg, m.keys.next):
			m.nextTab()
			return m, nil
		case key.Matches(msg, m.keys.back):
			if m.view == DetailView {
				m.view = m.parent
				return m, nil
			}
		case key.Matches(msg, m.keys.enter):
			if m.openSelected() {
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	l := m.active()
	*l, cmd = l.Update(msg)
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if !m.loaded {
		return styles.help.Render("Loading catalog...")
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.active().View())
	b.WriteString("\n\n")

	helpKeys := []key.Binding{m.keys.next, m.keys.enter, m.keys.reload, m.keys.quit}
	if m.view == DetailView {
		helpKeys = []key.Binding{m.keys.back, m.keys.reload, m.keys.quit}
	}
	b.WriteString(m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) load() tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg(m.source.Snapshot())
	}
}

func (m *Model) active() *list.Model {
	switch m.view {
	case SongListView:
		return &m.songs
	case PlaylistListView:
		return &m.playlists
	case DetailView:
		return &m.detail
	default:
		return &m.artists
	}
}

func (m *Model) nextTab() {
	current := m.view
	if current == DetailView {
		current = m.parent
	}
	i := slices.Index(tabs, current)
	m.view = tabs[(i+1)%len(tabs)]
}

// setCatalog rebuilds every list from c. Artists and songs are ranked by likes.
func (m *Model) setCatalog(c models.Catalog) {
	m.catalog = c
	m.loaded = true

	m.artists.SetItems(artistItems(c))
	m.songs.SetItems(songItems(c, c.Songs))

	playlists := make([]list.Item, len(c.Playlists))
	for i, p := range c.Playlists {
		playlists[i] = playlistItem{playlist: p}
	}
	m.playlists.SetItems(playlists)

	if m.view == DetailView {
		m.view = m.parent
	}
}

// openSelected switches to the detail view for the selected artist or playlist.
func (m *Model) openSelected() bool {
	switch item := m.active().SelectedItem().(type) {
	case artistItem:
		var songs []models.Song
		for _, al := range m.catalog.Albums {
			if al.ArtistID != item.artist.ID {
				continue
			}
			for _, s := range m.catalog.Songs {
				if s.AlbumID == al.ID {
					songs = append(songs, s)
				}
			}
		}
		m.showDetail(fmt.Sprintf("Songs by %s", item.artist.Name), songItems(m.catalog, songs))
		return true
	case playlistItem:
		items := make([]list.Item, len(item.playlist.Songs))
		for i, s := range item.playlist.Songs {
			items[i] = newSongItem(m.catalog, s)
		}
		m.showDetail(fmt.Sprintf("Songs in '%s'", item.playlist.Title), items)
		return true
	default:
		return false
	}
}

func (m *Model) showDetail(title string, items []list.Item) {
	m.detail.Title = title
	m.detail.SetItems(items)
	m.detail.ResetSelected()
	m.parent = m.view
	m.view = DetailView
}

func (m *Model) resize() {
	w, h := max(m.width-4, 0), max(m.height-8, 0)
	for _, l := range []*list.Model{&m.artists, &m.songs, &m.playlists, &m.detail} {
		l.SetSize(w, h)
	}
}

func (m *Model) renderTabs() string {
	names := make([]string, len(tabs))
	for i, v := range tabs {
		if v == m.view || (m.view == DetailView && v == m.parent) {
			names[i] = styles.tab.Render(v.String())
		} else {
			names[i] = styles.help.Render(v.String())
		}
	}
	return styles.title.Render("tunedex") + "  " + strings.Join(names, "  ")
}

func newList(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	return l
}

func artistItems(c models.Catalog) []list.Item {
	albums := make(map[string]int)
	for _, al := range c.Albums {
		albums[al.ArtistID]++
	}

	artists := slices.Clone(c.Artists)
	slices.SortStableFunc(artists, func(a, b models.Artist) int {
		return cmp.Compare(b.Likes, a.Likes)
	})

	items := make([]list.Item, len(artists))
	for i, a := range artists {
		items[i] = artistItem{artist: a, albums: albums[a.ID]}
	}
	return items
}

func songItems(c models.Catalog, songs []models.Song) []list.Item {
	ranked := slices.Clone(songs)
	slices.SortStableFunc(ranked, func(a, b models.Song) int {
		return cmp.Compare(b.Likes, a.Likes)
	})

	items := make([]list.Item, len(ranked))
	for i, s := range ranked {
		items[i] = newSongItem(c, s)
	}
	return items
}
