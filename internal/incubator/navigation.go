package incubator

import (
	"context"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"incubator/internal/messages"
	"incubator/internal/pages"
	"incubator/internal/prefix"
	"incubator/internal/wikistate"
)

// GotoMainPage is the goto parameter value that sends info page visitors
// to the wiki's main page.
const GotoMainPage = "mainpage"

// Redirect is where a request should be sent.
type Redirect struct {
	Location string `json:"location"`
}

// MainPageRedirect handles goto=mainpage on info pages. Existing wikis
// redirect to their own server; test wikis redirect to their main page
// when it exists. A nil Redirect means the page is shown as is.
func (s *Service) MainPageRedirect(ctx context.Context, title prefix.Title, gotoParam, uselang string) (*Redirect, error) {
	ctx, span := s.startSpan(ctx, "MainPageRedirect", attribute.String("title", title.Text))
	redirect, err := s.mainPageRedirect(ctx, s.Snapshot(), title, gotoParam, uselang)
	endSpan(span, err)
	return redirect, err
}

func (s *Service) mainPageRedirect(ctx context.Context, snap *Snapshot, title prefix.Title, gotoParam, uselang string) (*Redirect, error) {
	parsed := snap.Parser.ParseTitle(title, prefix.InfoPageOnly, false)
	if !parsed.OK() || gotoParam != GotoMainPage {
		return nil, nil
	}
	state, ok := snap.States.State(parsed)
	if !ok {
		return nil, nil
	}
	if state == wikistate.ExistingOpen {
		server, ok := snap.Addresses.SubdomainURL(parsed.Lang, parsed.Project, "")
		if !ok {
			return nil, nil
		}
		return &Redirect{Location: server}, nil
	}

	main, err := s.mainPage(ctx, snap, parsed.Lang, parsed.Prefix)
	if err != nil || !main.Exists {
		return nil, err
	}
	query := url.Values{"redirectfrom": {"infopage"}}
	if uselang != "" {
		query.Set("uselang", uselang)
	}
	return &Redirect{Location: pageURL(snap, main.Title, query)}, nil
}

// MyMainPage sends the viewer to the main page of their test wiki, through
// its info page, or to the site main page when they have none.
func (s *Service) MyMainPage(viewer Viewer, gotoParam string) Redirect {
	snap := s.Snapshot()
	if _, ok := contentProject(snap, viewer); !ok {
		return Redirect{Location: pageURL(snap, snap.Messages.Message("mainpage", messages.FallbackLanguage), nil)}
	}
	query := url.Values{}
	if gotoParam != "infopage" {
		query.Set("goto", GotoMainPage)
	}
	if p, ok := testWikiParam(snap, viewer.TestWiki); ok {
		query.Set("testwiki", p.Prefix)
	}
	return Redirect{Location: pageURL(snap, displayPrefix(snap, viewer), query)}
}

// ContentLanguage is the language a page's content is written in. Test
// wiki pages use the wiki's language and info pages the viewer's. ok is
// false for pages outside any test wiki.
func (s *Service) ContentLanguage(title prefix.Title, userLang string) (string, bool) {
	snap := s.Snapshot()
	parsed := snap.Parser.ParseTitle(title, prefix.FullTitle, false)
	if !parsed.OK() {
		return "", false
	}
	if snap.Parser.ParseTitle(title, prefix.InfoPageOnly, false).OK() {
		return userLang, true
	}
	return parsed.Lang, true
}

// TestWikiLogo returns the project logo to show on title when the viewer
// is working in the test wiki it belongs to.
func (s *Service) TestWikiLogo(title prefix.Title, viewer Viewer) (string, bool) {
	snap := s.Snapshot()
	parsed := snap.Parser.ParseTitle(title, prefix.FullTitle, false)
	if !parsed.OK() || displayPrefix(snap, viewer) != parsed.Prefix {
		return "", false
	}
	return snap.Addresses.LogoURL(messages.FallbackLanguage, parsed.Project)
}

// pageURL is the local URL of a page through the article path.
func pageURL(snap *Snapshot, title string, query url.Values) string {
	escaped := (&url.URL{Path: pages.DBKey(title)}).EscapedPath()
	location := strings.ReplaceAll(snap.Registry.ArticlePath(), "$1", escaped)
	if len(query) > 0 {
		location += "?" + query.Encode()
	}
	return location
}
