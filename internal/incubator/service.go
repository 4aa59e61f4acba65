package incubator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"incubator/internal/incubator/metrics"
	"incubator/internal/prefix"
	"incubator/internal/registry"
	dErrors "incubator/pkg/domain-errors"
	"incubator/pkg/platform/sentinel"
)

const (
	tracerName    = "incubator/internal/incubator"
	parseResultOK = "ok"
)

// Service answers test wiki questions for the outer surfaces: parsing,
// lifecycle status, main pages, edit checks and redirects.
type Service struct {
	snapshot     atomic.Pointer[Snapshot]
	pages        PageIndex
	logger       *slog.Logger
	metrics      *metrics.Metrics
	tracer       trace.Tracer
	registryFile string
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// WithRegistryFile sets the file Reload reads.
func WithRegistryFile(path string) Option {
	return func(s *Service) {
		s.registryFile = path
	}
}

// New constructs a Service over an initial snapshot.
func New(snap *Snapshot, pages PageIndex, opts ...Option) *Service {
	s := &Service{pages: pages}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	s.snapshot.Store(snap)
	return s
}

// Snapshot returns the registry view currently served.
func (s *Service) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// Swap replaces the served snapshot. In-flight requests keep the old one.
func (s *Service) Swap(snap *Snapshot) {
	s.snapshot.Store(snap)
}

// Reload rebuilds the snapshot from the registry file. On failure the
// current snapshot stays in place.
func (s *Service) Reload(ctx context.Context) error {
	if s.registryFile == "" {
		return dErrors.New(dErrors.CodeBadRequest, "no registry file configured")
	}
	bundle, err := registry.LoadFile(s.registryFile)
	if err != nil {
		s.metrics.IncrementReload(false)
		s.logger.ErrorContext(ctx, "registry reload failed",
			"path", s.registryFile,
			"error", err,
		)
		return dErrors.Wrap(err, dErrors.CodeValidation, "registry file rejected")
	}
	s.Swap(NewSnapshot(bundle))
	s.metrics.IncrementReload(true)
	s.logger.InfoContext(ctx, "registry reloaded",
		"path", s.registryFile,
		"projects", len(bundle.Registry.Projects()),
	)
	return nil
}

// Parse parses a title and records the outcome.
func (s *Service) Parse(title prefix.Title, mode prefix.Mode, allowSister bool) prefix.Parsed {
	parsed := s.Snapshot().Parser.ParseTitle(title, mode, allowSister)
	s.recordParse(mode, parsed)
	return parsed
}

// ParseText parses a title whose namespace is unknown, so no namespace
// checks apply.
func (s *Service) ParseText(text string, mode prefix.Mode, allowSister bool) prefix.Parsed {
	parsed := s.Snapshot().Parser.Parse(text, mode, allowSister)
	s.recordParse(mode, parsed)
	return parsed
}

func (s *Service) recordParse(mode prefix.Mode, parsed prefix.Parsed) {
	result := parsed.Error.String()
	if parsed.OK() {
		result = parseResultOK
	}
	s.metrics.IncrementParse(mode.String(), result)
}

// ValidLanguageCode checks a bare language code.
func (s *Service) ValidLanguageCode(code string) bool {
	return s.Snapshot().Parser.ValidLanguageCode(code)
}

// SubdomainURL is the address of the real wiki for lang and project.
func (s *Service) SubdomainURL(lang, project, page string) (string, error) {
	url, ok := s.Snapshot().Addresses.SubdomainURL(lang, project, page)
	if !ok {
		return "", dErrors.New(dErrors.CodeNotFound, "no server configured for "+lang+"/"+project)
	}
	return url, nil
}

// LogoURL is the logo of the real wiki for lang and project.
func (s *Service) LogoURL(lang, project string) (string, error) {
	url, ok := s.Snapshot().Addresses.LogoURL(lang, project)
	if !ok {
		return "", dErrors.New(dErrors.CodeNotFound, "no logo configured for "+lang+"/"+project)
	}
	return url, nil
}

// IsAlwaysKnown reports whether title is a valid info page, which the
// platform treats as existing even without a stored page.
func (s *Service) IsAlwaysKnown(title prefix.Title) bool {
	return s.Snapshot().Parser.ParseTitle(title, prefix.InfoPageOnly, true).OK()
}

func (s *Service) pageExists(ctx context.Context, title prefix.Title) (bool, error) {
	start := time.Now()
	defer s.metrics.ObservePageLookup(start)
	ok, err := s.pages.Exists(ctx, title)
	if err != nil {
		return false, pageIndexError(err)
	}
	return ok, nil
}

func pageIndexError(err error) error {
	if errors.Is(err, sentinel.ErrUnavailable) {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "page index unavailable")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "page index lookup failed")
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "incubator."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func articleTitle(text string) prefix.Title {
	return prefix.Title{Namespace: registry.NamespaceMain, Text: text}
}

func joinTitle(prefixText, page string) string {
	if prefixText == "" {
		return page
	}
	return fmt.Sprintf("%s/%s", prefixText, page)
}
