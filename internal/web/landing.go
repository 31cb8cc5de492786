package web

import (
	"net/http"
	"time"

	"github.com/erazemk/garderoba/internal/model"
	"github.com/erazemk/garderoba/internal/wardrobe"
)

// navLinks returns the category navigation with active marked.
func navLinks(active model.Category) []NavLink {
	links := make([]NavLink, 0, 3)
	for _, c := range model.Categories() {
		links = append(links, NavLink{
			Href:   "/" + string(c),
			Label:  c.Schema().Title,
			Active: c == active,
		})
	}
	return links
}

// Landing handles GET /. Tiles are rendered as placeholders and revealed by
// the stylesheet once the landing delay has passed, staggered per tile.
func (s *Server) Landing(w http.ResponseWriter, r *http.Request) {
	landing := wardrobe.NewLanding(s.LandingDelay)

	type tileView struct {
		wardrobe.Tile
		Href   string
		Reveal time.Duration
	}
	tiles := landing.Tiles()
	views := make([]tileView, len(tiles))
	for i, t := range tiles {
		views[i] = tileView{
			Tile:   t,
			Href:   "/" + string(t.Category),
			Reveal: landing.Delay() + t.Delay,
		}
	}

	s.Templates.Render(w, "landing.html", &struct {
		PageData
		Delay time.Duration
		Tiles []tileView
	}{
		PageData: PageData{Title: "Wardrobe", Nav: navLinks("")},
		Delay:    landing.Delay(),
		Tiles:    views,
	})
}
