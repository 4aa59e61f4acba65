package handler

import (
	"incubator/internal/prefix"
)

// ParseResponse is the response of GET /prefix.
type ParseResponse struct {
	Title        string `json:"title"`
	Namespace    int    `json:"namespace"`
	Mode         string `json:"mode"`
	Valid        bool   `json:"valid"`
	Error        string `json:"error,omitempty"`
	Project      string `json:"project,omitempty"`
	Lang         string `json:"lang,omitempty"`
	Prefix       string `json:"prefix,omitempty"`
	Remainder    string `json:"remainder,omitempty"`
	HasRemainder bool   `json:"has_remainder"`
}

// FromParsed converts a parse result to its response.
func FromParsed(q TitleQuery, parsed prefix.Parsed) *ParseResponse {
	resp := &ParseResponse{
		Title:        q.Title.Text,
		Namespace:    q.Title.Namespace,
		Mode:         q.Mode.String(),
		Valid:        parsed.OK(),
		Project:      parsed.Project,
		Lang:         parsed.Lang,
		Prefix:       parsed.Prefix,
		Remainder:    parsed.Remainder,
		HasRemainder: parsed.HasRemainder,
	}
	if !parsed.OK() {
		resp.Error = parsed.Error.String()
	}
	return resp
}

// LanguageResponse is the response of GET /languages/{code}.
type LanguageResponse struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

// URLResponse carries a wiki address and its display text.
type URLResponse struct {
	URL      string `json:"url"`
	LinkText string `json:"link_text,omitempty"`
}

// TestWikiResponse is the response of GET /testwiki.
type TestWikiResponse struct {
	Param         string `json:"param,omitempty"`
	ParamValid    bool   `json:"param_valid"`
	ParamPrefix   string `json:"param_prefix,omitempty"`
	DisplayPrefix string `json:"display_prefix"`
}

// ContentLanguageResponse is the response of GET /pages/language.
type ContentLanguageResponse struct {
	Language   string `json:"language,omitempty"`
	InTestWiki bool   `json:"in_test_wiki"`
}
