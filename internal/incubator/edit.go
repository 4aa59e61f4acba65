package incubator

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"incubator/internal/address"
	"incubator/internal/prefix"
	"incubator/internal/wikistate"
)

// ActionEdit is the only action the edit check can deny.
const ActionEdit = "edit"

// Message keys returned by CheckEdit and CheckMove.
const (
	MsgWikiExists        = "wminc-error-wiki-exists"
	MsgWrongLangCode     = "wminc-error-wronglangcode"
	MsgUnprefixedSuggest = "wminc-error-unprefixed-suggest"
	MsgUnprefixed        = "wminc-error-unprefixed"
	MsgMoveUnprefixed    = "wminc-error-move-unprefixed"
)

// EditDecision is the outcome of a permission check. A denied decision
// carries the message key, its parameters and the rendered text.
type EditDecision struct {
	Allowed bool     `json:"allowed"`
	Message string   `json:"message,omitempty"`
	Params  []string `json:"params,omitempty"`
	Text    string   `json:"text,omitempty"`
}

func allowed() EditDecision { return EditDecision{Allowed: true} }

// CheckEdit decides whether the viewer may perform action on title.
//
// Pages of wikis that already exist are read-only, except their info page
// when it exists or the viewer can edit the interface. Creating an
// unprefixed page in a test wiki namespace is refused with a hint toward
// the right title.
func (s *Service) CheckEdit(ctx context.Context, title prefix.Title, viewer Viewer, action string, canEditInterface bool) (EditDecision, error) {
	ctx, span := s.startSpan(ctx, "CheckEdit",
		attribute.String("title", title.Text),
		attribute.String("action", action),
	)
	decision, err := s.checkEdit(ctx, s.Snapshot(), title, viewer, action, canEditInterface)
	endSpan(span, err)
	return decision, err
}

func (s *Service) checkEdit(ctx context.Context, snap *Snapshot, title prefix.Title, viewer Viewer, action string, canEditInterface bool) (EditDecision, error) {
	parsed := snap.Parser.Parse(title.Text, prefix.FullTitle, false)

	if state, ok := snap.States.State(parsed); ok && state == wikistate.ExistingOpen {
		if parsed.Prefix == title.Text {
			if canEditInterface {
				return allowed(), nil
			}
			exists, err := s.pageExists(ctx, title)
			if err != nil {
				return EditDecision{}, err
			}
			if exists {
				return allowed(), nil
			}
		}
		if action != ActionEdit {
			return allowed(), nil
		}
		page := strings.ReplaceAll(parsed.Remainder, " ", "_")
		if name := snap.Registry.NamespaceName(title.Namespace); name != "" {
			page = name + ":" + page
		}
		link, _ := snap.Addresses.SubdomainURL(parsed.Lang, parsed.Project, page)
		return s.deny(snap, viewer, MsgWikiExists, "["+link+" "+address.LinkText(link)+"]"), nil
	}

	if action != ActionEdit || !shouldShowUnprefixedError(snap, title, viewer) {
		return allowed(), nil
	}
	exists, err := s.pageExists(ctx, title)
	if err != nil {
		return EditDecision{}, err
	}
	if exists {
		return allowed(), nil
	}

	switch _, hasProject := contentProject(snap, viewer); {
	case parsed.Error == prefix.InvalidLanguageCode:
		return s.deny(snap, viewer, MsgWrongLangCode, parsed.Lang), nil
	case hasProject:
		text := title.Text
		if parsed.HasRemainder {
			text = parsed.Remainder
		}
		return s.deny(snap, viewer, MsgUnprefixedSuggest, prefixedTitle(snap, viewer, text, title.Namespace)), nil
	default:
		return s.deny(snap, viewer, MsgUnprefixed), nil
	}
}

// CheckMove refuses moving a page to an unprefixed title.
func (s *Service) CheckMove(target prefix.Title, viewer Viewer) EditDecision {
	snap := s.Snapshot()
	if shouldShowUnprefixedError(snap, target, viewer) {
		return s.deny(snap, viewer, MsgMoveUnprefixed)
	}
	return allowed()
}

func (s *Service) deny(snap *Snapshot, viewer Viewer, key string, params ...string) EditDecision {
	return EditDecision{
		Message: key,
		Params:  params,
		Text:    snap.Messages.Message(key, viewer.Lang, params...),
	}
}
