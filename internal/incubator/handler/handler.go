package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"incubator/internal/address"
	"incubator/internal/incubator"
	"incubator/internal/platform/middleware"
	"incubator/internal/prefix"
	dErrors "incubator/pkg/domain-errors"
	"incubator/pkg/platform/httputil"
	"incubator/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service-mocks.go -package=mocks Service

// Service defines the incubator operations exposed over HTTP.
type Service interface {
	Parse(title prefix.Title, mode prefix.Mode, allowSister bool) prefix.Parsed
	ParseText(text string, mode prefix.Mode, allowSister bool) prefix.Parsed
	ValidLanguageCode(code string) bool
	Status(ctx context.Context, parsed prefix.Parsed) (*incubator.WikiStatus, error)
	SubdomainURL(lang, project, page string) (string, error)
	LogoURL(lang, project string) (string, error)
	TestWikiParam(raw string) (prefix.Parsed, bool)
	DisplayPrefix(viewer incubator.Viewer) string
	MainPage(ctx context.Context, lang, prefixText string) (incubator.MainPage, error)
	MainPageRedirect(ctx context.Context, title prefix.Title, gotoParam, uselang string) (*incubator.Redirect, error)
	MyMainPage(viewer incubator.Viewer, gotoParam string) incubator.Redirect
	ContentLanguage(title prefix.Title, userLang string) (string, bool)
	CheckEdit(ctx context.Context, title prefix.Title, viewer incubator.Viewer, action string, canEditInterface bool) (incubator.EditDecision, error)
	CheckMove(target prefix.Title, viewer incubator.Viewer) incubator.EditDecision
	InfoPage(ctx context.Context, title string, viewer incubator.Viewer, args ...string) (*incubator.InfoPage, error)
	Reload(ctx context.Context) error
}

// Handler wires incubator endpoints to the service.
type Handler struct {
	service    Service
	logger     *slog.Logger
	adminToken string
}

// New constructs a handler. adminToken guards the admin routes; when empty
// they reject every request.
func New(service Service, logger *slog.Logger, adminToken string) *Handler {
	return &Handler{
		service:    service,
		logger:     logger,
		adminToken: adminToken,
	}
}

// Register mounts the incubator endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/prefix", h.HandleParse)
	r.Get("/languages/{code}", h.HandleLanguage)
	r.Get("/wikis/status", h.HandleStatus)
	r.Get("/wikis/url", h.HandleURL)
	r.Get("/wikis/logo", h.HandleLogo)
	r.Get("/testwiki", h.HandleTestWiki)
	r.Get("/pages/main", h.HandleMainPage)
	r.Get("/pages/mine", h.HandleMyMainPage)
	r.Get("/pages/redirect", h.HandleRedirect)
	r.Get("/pages/language", h.HandleContentLanguage)
	r.Get("/pages/info", h.HandleInfoPage)
	r.Post("/pages/edit-check", h.HandleEditCheck)
	r.Post("/pages/move-check", h.HandleMoveCheck)
	r.With(middleware.RequireAdminToken(h.adminToken, h.logger)).
		Post("/admin/registry/reload", h.HandleReload)
}

// HandleParse handles GET /prefix. Parse failures are part of the result.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	q, err := parseTitleQuery(r.URL.Query(), prefix.FullTitle)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	parsed := h.parse(q, q.Mode)
	httputil.WriteJSON(w, http.StatusOK, FromParsed(q, parsed))
}

// HandleLanguage handles GET /languages/{code}.
func (h *Handler) HandleLanguage(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	httputil.WriteJSON(w, http.StatusOK, LanguageResponse{
		Code:  code,
		Valid: h.service.ValidLanguageCode(code),
	})
}

// HandleStatus handles GET /wikis/status.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	q, err := parseTitleQuery(r.URL.Query(), prefix.FullTitle)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	parsed := h.parse(q, q.Mode)
	status, err := h.service.Status(r.Context(), parsed)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, status)
}

// HandleURL handles GET /wikis/url.
func (h *Handler) HandleURL(w http.ResponseWriter, r *http.Request) {
	q, err := parseWikiQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	url, err := h.service.SubdomainURL(q.Lang, q.Project, q.Page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, URLResponse{URL: url, LinkText: address.LinkText(url)})
}

// HandleLogo handles GET /wikis/logo.
func (h *Handler) HandleLogo(w http.ResponseWriter, r *http.Request) {
	q, err := parseWikiQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	url, err := h.service.LogoURL(q.Lang, q.Project)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, URLResponse{URL: url})
}

// HandleTestWiki handles GET /testwiki.
func (h *Handler) HandleTestWiki(w http.ResponseWriter, r *http.Request) {
	viewer := viewerFrom(r)
	resp := TestWikiResponse{
		Param:         viewer.TestWiki,
		DisplayPrefix: h.service.DisplayPrefix(viewer),
	}
	if parsed, ok := h.service.TestWikiParam(viewer.TestWiki); ok {
		resp.ParamValid = true
		resp.ParamPrefix = parsed.Prefix
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleMainPage handles GET /pages/main for any title under a prefix.
func (h *Handler) HandleMainPage(w http.ResponseWriter, r *http.Request) {
	q, err := parseTitleQuery(r.URL.Query(), prefix.FullTitle)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	parsed := h.parse(q, prefix.FullTitle)
	if err := parsed.Err(); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}
	main, err := h.service.MainPage(r.Context(), parsed.Lang, parsed.Prefix)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, main)
}

// HandleMyMainPage handles GET /pages/mine by redirecting to the viewer's
// test wiki.
func (h *Handler) HandleMyMainPage(w http.ResponseWriter, r *http.Request) {
	redirect := h.service.MyMainPage(viewerFrom(r), r.URL.Query().Get("goto"))
	http.Redirect(w, r, redirect.Location, http.StatusFound)
}

// HandleRedirect handles GET /pages/redirect. It answers 302 when the info
// page sends the visitor elsewhere and 204 when it is shown as is.
func (h *Handler) HandleRedirect(w http.ResponseWriter, r *http.Request) {
	q, err := parseTitleQuery(r.URL.Query(), prefix.InfoPageOnly)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	query := r.URL.Query()
	redirect, err := h.service.MainPageRedirect(r.Context(), q.Title, query.Get("goto"), query.Get("uselang"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if redirect == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, redirect.Location, http.StatusFound)
}

// HandleContentLanguage handles GET /pages/language.
func (h *Handler) HandleContentLanguage(w http.ResponseWriter, r *http.Request) {
	q, err := parseTitleQuery(r.URL.Query(), prefix.FullTitle)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	lang, ok := h.service.ContentLanguage(q.Title, viewerFrom(r).Lang)
	httputil.WriteJSON(w, http.StatusOK, ContentLanguageResponse{Language: lang, InTestWiki: ok})
}

// HandleInfoPage handles GET /pages/info. Each "option" parameter is one
// key=value info page argument.
func (h *Handler) HandleInfoPage(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		h.writeError(w, r, dErrors.New(dErrors.CodeValidation, "title is required"))
		return
	}
	page, err := h.service.InfoPage(r.Context(), title, viewerFrom(r), r.URL.Query()["option"]...)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

// HandleEditCheck handles POST /pages/edit-check.
func (h *Handler) HandleEditCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[EditCheckRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	decision, err := h.service.CheckEdit(ctx, req.PageTitle(), viewerFrom(r), req.Action, req.CanEditInterface)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, decision)
}

// HandleMoveCheck handles POST /pages/move-check.
func (h *Handler) HandleMoveCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[MoveCheckRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.CheckMove(req.PageTitle(), viewerFrom(r)))
}

// HandleReload handles POST /admin/registry/reload.
func (h *Handler) HandleReload(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reload(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parse applies the namespace checks only when the request named a namespace.
func (h *Handler) parse(q TitleQuery, mode prefix.Mode) prefix.Parsed {
	if q.HasNamespace {
		return h.service.Parse(q.Title, mode, q.Sister)
	}
	return h.service.ParseText(q.Title.Text, mode, q.Sister)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInternal, dErrors.CodeUnavailable:
		h.logger.ErrorContext(ctx, "request failed",
			"path", r.URL.Path,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	default:
		h.logger.DebugContext(ctx, "request rejected",
			"path", r.URL.Path,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
