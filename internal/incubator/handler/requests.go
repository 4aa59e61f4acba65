package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"incubator/internal/incubator"
	"incubator/internal/prefix"
	dErrors "incubator/pkg/domain-errors"
)

// Headers carrying the viewer's saved test wiki preference.
const (
	HeaderTestWikiProject = "X-Incubator-Project"
	HeaderTestWikiCode    = "X-Incubator-Code"
)

const (
	defaultLang    = "en"
	maxTitleLength = 255
)

// TitleQuery is a title addressed through query parameters. HasNamespace is
// false when the request did not name a namespace.
type TitleQuery struct {
	Title        prefix.Title
	HasNamespace bool
	Mode         prefix.Mode
	Sister       bool
}

// parseTitleQuery reads title, ns, mode and sister from q.
func parseTitleQuery(q url.Values, defaultMode prefix.Mode) (TitleQuery, error) {
	title := strings.TrimSpace(q.Get("title"))
	if title == "" {
		return TitleQuery{}, dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if len(title) > maxTitleLength {
		return TitleQuery{}, dErrors.New(dErrors.CodeValidation, "title must be at most 255 bytes")
	}
	out := TitleQuery{Title: prefix.Title{Text: title}, Mode: defaultMode}

	if raw := q.Get("ns"); raw != "" {
		ns, err := strconv.Atoi(raw)
		if err != nil {
			return TitleQuery{}, dErrors.New(dErrors.CodeValidation, "ns must be an integer")
		}
		out.Title.Namespace = ns
		out.HasNamespace = true
	}
	switch q.Get("mode") {
	case "":
	case prefix.InfoPageOnly.String():
		out.Mode = prefix.InfoPageOnly
	case prefix.FullTitle.String():
		out.Mode = prefix.FullTitle
	default:
		return TitleQuery{}, dErrors.New(dErrors.CodeValidation, "mode must be info or full")
	}
	if raw := q.Get("sister"); raw != "" {
		sister, err := strconv.ParseBool(raw)
		if err != nil {
			return TitleQuery{}, dErrors.New(dErrors.CodeValidation, "sister must be a boolean")
		}
		out.Sister = sister
	}
	return out, nil
}

// WikiQuery names a wiki by language and project.
type WikiQuery struct {
	Lang    string
	Project string
	Page    string
}

func parseWikiQuery(q url.Values) (WikiQuery, error) {
	out := WikiQuery{
		Lang:    strings.TrimSpace(q.Get("lang")),
		Project: strings.TrimSpace(q.Get("project")),
		Page:    strings.TrimSpace(q.Get("page")),
	}
	if out.Lang == "" {
		return WikiQuery{}, dErrors.New(dErrors.CodeValidation, "lang is required")
	}
	if out.Project == "" {
		return WikiQuery{}, dErrors.New(dErrors.CodeValidation, "project is required")
	}
	return out, nil
}

// viewerFrom builds the viewer of a request from the testwiki and uselang
// query parameters and the preference headers.
func viewerFrom(r *http.Request) incubator.Viewer {
	q := r.URL.Query()
	lang := strings.TrimSpace(q.Get("uselang"))
	if lang == "" {
		lang = defaultLang
	}
	prefs := incubator.PreferenceMap{}
	if v := strings.TrimSpace(r.Header.Get(HeaderTestWikiProject)); v != "" {
		prefs[incubator.PreferenceProject] = v
	}
	if v := strings.TrimSpace(r.Header.Get(HeaderTestWikiCode)); v != "" {
		prefs[incubator.PreferenceCode] = v
	}
	return incubator.Viewer{
		TestWiki: strings.TrimSpace(q.Get("testwiki")),
		Prefs:    prefs,
		Lang:     lang,
	}
}

// EditCheckRequest is the body of POST /pages/edit-check.
type EditCheckRequest struct {
	Title            string `json:"title"`
	Namespace        int    `json:"namespace"`
	Action           string `json:"action"`
	CanEditInterface bool   `json:"can_edit_interface"`
}

func (r *EditCheckRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if len(r.Title) > maxTitleLength {
		return dErrors.New(dErrors.CodeValidation, "title must be at most 255 bytes")
	}
	r.Action = strings.ToLower(strings.TrimSpace(r.Action))
	if r.Action == "" {
		r.Action = incubator.ActionEdit
	}
	return nil
}

func (r *EditCheckRequest) PageTitle() prefix.Title {
	return prefix.Title{Namespace: r.Namespace, Text: r.Title}
}

// MoveCheckRequest is the body of POST /pages/move-check.
type MoveCheckRequest struct {
	Title     string `json:"title"`
	Namespace int    `json:"namespace"`
}

func (r *MoveCheckRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	return nil
}

func (r *MoveCheckRequest) PageTitle() prefix.Title {
	return prefix.Title{Namespace: r.Namespace, Text: r.Title}
}
