package incubator

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"incubator/internal/address"
	"incubator/internal/prefix"
	"incubator/internal/wikistate"
	dErrors "incubator/pkg/domain-errors"
)

// SubStatus refines a lifecycle state on an info page.
type SubStatus string

const (
	SubStatusMissing         SubStatus = "missing"
	SubStatusOpen            SubStatus = "open"
	SubStatusEligible        SubStatus = "eligible"
	SubStatusImported        SubStatus = "imported"
	SubStatusApproved        SubStatus = "approved"
	SubStatusCreated         SubStatus = "created"
	SubStatusBeforeIncubator SubStatus = "beforeincubator"
)

// View selects which info page layout is shown.
type View string

const (
	ViewMissing    View = "missing"
	ViewIncubating View = "incubator"
	ViewExisting   View = "existing"
)

// InfoPageOptions are the typed arguments of an info page declaration.
type InfoPageOptions struct {
	Status SubStatus
	// MainPage overrides the main page title, relative to the prefix.
	MainPage string
}

// ParseInfoPageOptions reads "key=value" arguments. Keys are case
// insensitive, arguments without "=" and unknown keys are ignored, and
// the last occurrence of a key wins. Status defaults to open.
func ParseInfoPageOptions(args ...string) InfoPageOptions {
	opts := InfoPageOptions{Status: SubStatusOpen}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "status":
			opts.Status = SubStatus(value)
		case "mainpage":
			opts.MainPage = value
		}
	}
	return opts
}

// InfoPageView picks the layout for a declared sub-status. Created and
// pre-incubator wikis show the existing layout; anything else incubates
// only while the test wiki has a main page.
func InfoPageView(status SubStatus, mainPageExists bool) View {
	switch {
	case status == SubStatusCreated || status == SubStatusBeforeIncubator:
		return ViewExisting
	case mainPageExists:
		return ViewIncubating
	default:
		return ViewMissing
	}
}

func statusView(state wikistate.State) View {
	switch state {
	case wikistate.ExistingOpen:
		return ViewExisting
	case wikistate.ExistingClosed, wikistate.Incubating:
		return ViewIncubating
	default:
		return ViewMissing
	}
}

// InfoPage is the content of a declared info page.
type InfoPage struct {
	Prefix        string    `json:"prefix"`
	Project       string    `json:"project"`
	ProjectName   string    `json:"project_name,omitempty"`
	Lang          string    `json:"lang"`
	Sister        bool      `json:"sister"`
	Heading       string    `json:"heading"`
	SubStatus     SubStatus `json:"sub_status"`
	View          View      `json:"view"`
	StatusMessage string    `json:"status_message"`
	MainPage      MainPage  `json:"main_page"`
	URL           string    `json:"url,omitempty"`
	LinkText      string    `json:"link_text,omitempty"`
	Logo          string    `json:"logo,omitempty"`
}

// InfoPage renders the info page declared on title with args, in the
// viewer's language.
func (s *Service) InfoPage(ctx context.Context, title string, viewer Viewer, args ...string) (*InfoPage, error) {
	ctx, span := s.startSpan(ctx, "InfoPage", attribute.String("title", title))
	page, err := s.infoPage(ctx, s.Snapshot(), title, viewer, args)
	endSpan(span, err)
	return page, err
}

func (s *Service) infoPage(ctx context.Context, snap *Snapshot, title string, viewer Viewer, args []string) (*InfoPage, error) {
	parsed := snap.Parser.Parse(title, prefix.FullTitle, false)
	if !parsed.OK() {
		return nil, dErrors.New(dErrors.CodeValidation,
			snap.Messages.Message("wminc-infopage-error", viewer.Lang))
	}
	opts := ParseInfoPageOptions(args...)

	var main MainPage
	if opts.MainPage != "" {
		t := joinTitle(parsed.Prefix, opts.MainPage)
		exists, err := s.pageExists(ctx, articleTitle(t))
		if err != nil {
			return nil, err
		}
		main = MainPage{Title: t, Exists: exists}
	} else {
		var err error
		if main, err = s.mainPage(ctx, snap, parsed.Lang, parsed.Prefix); err != nil {
			return nil, err
		}
	}

	page := &InfoPage{
		Prefix:    parsed.Prefix,
		Project:   parsed.Project,
		Lang:      parsed.Lang,
		Sister:    snap.Registry.IsSister(parsed.Project),
		SubStatus: opts.Status,
		View:      InfoPageView(opts.Status, main.Exists),
		MainPage:  main,
		Heading:   snap.Messages.Message("wminc-infopage-title-"+parsed.Project, viewer.Lang, parsed.Lang),
	}
	if p, ok := snap.Registry.Project(parsed.Project, true); ok {
		page.ProjectName = p.Name
	}
	if url, ok := snap.Addresses.SubdomainURL(parsed.Lang, parsed.Project, ""); ok {
		page.URL = url
		page.LinkText = address.LinkText(url)
	}
	if logo, ok := snap.Addresses.LogoURL(parsed.Lang, parsed.Project); ok {
		page.Logo = logo
	}
	page.StatusMessage = snap.Messages.Message(statusMessageKey(page), viewer.Lang, page.LinkText)
	return page, nil
}

func statusMessageKey(page *InfoPage) string {
	status := page.SubStatus
	if page.View == ViewMissing {
		return "wminc-infopage-missingwiki-text"
	}
	if status == SubStatusImported && page.Sister {
		return "wminc-infopage-status-closedsister"
	}
	if status == SubStatusBeforeIncubator && page.Sister {
		return "wminc-infopage-status-beforeincubator-sister"
	}
	return "wminc-infopage-status-" + string(status)
}
