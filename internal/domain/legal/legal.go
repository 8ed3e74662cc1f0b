// Package legal sirve las páginas estáticas (privacidad, términos, cookies).
package legal

import "errors"

var ErrNotFound = errors.New("page not found")

type Page struct {
	Slug     string `json:"slug"`
	TitleKey string `json:"-"`
	BodyKey  string `json:"-"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

var pages = []Page{
	{Slug: "privacidad", TitleKey: "legal.privacy.title", BodyKey: "legal.privacy.body"},
	{Slug: "terminos", TitleKey: "legal.terms.title", BodyKey: "legal.terms.body"},
	{Slug: "cookies", TitleKey: "legal.cookies.title", BodyKey: "legal.cookies.body"},
}

func Slugs() []string {
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = p.Slug
	}
	return out
}

// Render resuelve la página con la función de traducción del visitante.
func Render(slug string, t func(key string) string) (Page, error) {
	for _, p := range pages {
		if p.Slug == slug {
			p.Title = t(p.TitleKey)
			p.Body = t(p.BodyKey)
			return p, nil
		}
	}
	return Page{}, ErrNotFound
}
