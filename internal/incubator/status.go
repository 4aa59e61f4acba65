package incubator

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"incubator/internal/pages"
	"incubator/internal/prefix"
	"incubator/internal/registry"
	"incubator/internal/wikistate"
	dErrors "incubator/pkg/domain-errors"
)

// EnglishMainPage is tried when the localized main page does not exist.
const EnglishMainPage = "Main_Page"

// MainPage is the resolved main page of a test wiki. Exists is false when
// neither candidate exists; Title then holds the localized candidate.
type MainPage struct {
	Title  string `json:"title"`
	Exists bool   `json:"exists"`
}

// WikiStatus describes the lifecycle of the wiki a prefix addresses.
type WikiStatus struct {
	Prefix      string          `json:"prefix"`
	Project     string          `json:"project"`
	ProjectName string          `json:"project_name,omitempty"`
	Lang        string          `json:"lang"`
	Database    string          `json:"database"`
	State       wikistate.State `json:"state"`
	SubStatus   SubStatus       `json:"sub_status"`
	View        View            `json:"view"`
	MainPage    MainPage        `json:"main_page"`
	URL         string          `json:"url,omitempty"`
}

// Status resolves the lifecycle state of parsed, telling Incubating apart
// from Missing by whether the test wiki has a main page.
func (s *Service) Status(ctx context.Context, parsed prefix.Parsed) (*WikiStatus, error) {
	ctx, span := s.startSpan(ctx, "Status", attribute.String("prefix", parsed.Prefix))
	status, err := s.status(ctx, s.Snapshot(), parsed)
	endSpan(span, err)
	return status, err
}

func (s *Service) status(ctx context.Context, snap *Snapshot, parsed prefix.Parsed) (*WikiStatus, error) {
	if err := parsed.Err(); err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, err.Error())
	}
	state, ok := snap.States.State(parsed)
	if !ok {
		s.metrics.IncrementStatus("unknown")
		return nil, dErrors.New(dErrors.CodeUnavailable, "wiki state cannot be determined")
	}
	db, _ := snap.States.DatabaseID(parsed)

	main, err := s.mainPage(ctx, snap, parsed.Lang, parsed.Prefix)
	if err != nil {
		return nil, err
	}

	out := &WikiStatus{
		Prefix:   parsed.Prefix,
		Project:  parsed.Project,
		Lang:     parsed.Lang,
		Database: db,
		State:    state,
		MainPage: main,
	}
	if p, ok := snap.Registry.Project(parsed.Project, true); ok {
		out.ProjectName = p.Name
	}
	switch state {
	case wikistate.ExistingOpen:
		out.SubStatus = SubStatusBeforeIncubator
	case wikistate.ExistingClosed:
		out.SubStatus = SubStatusImported
	default:
		if main.Exists {
			out.State = wikistate.Incubating
			out.SubStatus = SubStatusOpen
		} else {
			out.SubStatus = SubStatusMissing
		}
	}
	out.View = statusView(out.State)
	if url, ok := snap.Addresses.SubdomainURL(parsed.Lang, parsed.Project, ""); ok {
		out.URL = url
	}

	s.metrics.IncrementStatus(out.State.String())
	s.logger.DebugContext(ctx, "wiki status resolved",
		"prefix", parsed.Prefix,
		"database", db,
		"state", out.State.String(),
	)
	return out, nil
}

// MainPage resolves the main page of the test wiki under prefixText: the
// "mainpage" message in lang, then the English Main_Page, else the
// localized title again. An empty prefixText resolves a top-level title.
func (s *Service) MainPage(ctx context.Context, lang, prefixText string) (MainPage, error) {
	ctx, span := s.startSpan(ctx, "MainPage",
		attribute.String("prefix", prefixText),
		attribute.String("lang", lang),
	)
	main, err := s.mainPage(ctx, s.Snapshot(), lang, prefixText)
	endSpan(span, err)
	return main, err
}

func (s *Service) mainPage(ctx context.Context, snap *Snapshot, lang, prefixText string) (MainPage, error) {
	localized := joinTitle(prefixText, snap.Messages.Message("mainpage", lang))
	english := joinTitle(prefixText, EnglishMainPage)

	start := time.Now()
	found, err := pages.FirstExisting(ctx, s.pages, registry.NamespaceMain, localized, english)
	s.metrics.ObservePageLookup(start)
	if err != nil {
		return MainPage{}, pageIndexError(err)
	}
	if found == "" {
		return MainPage{Title: localized}, nil
	}
	return MainPage{Title: found, Exists: true}, nil
}
