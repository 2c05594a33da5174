package blogservice

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sushihentaime/inkpost/internal/memdb"
)

// SearchPosts matches term case-insensitively against the title, text, author name and tags
// of published posts. The reported field follows title, content, author, tag precedence.
func (s *BlogService) SearchPosts(ctx context.Context, term string) ([]SearchResult, error) {
	if err := s.db.Wait(ctx, memdb.Half); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0)

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return results, nil
	}

	err := s.db.View(func(tx *memdb.Tx) error {
		for _, p := range tx.Posts() {
			if !p.IsPublished() {
				continue
			}
			if r, ok := matchPost(p, term); ok {
				results = append(results, r)
			}
		}
		return nil
	})

	return results, err
}

func matchPost(p *memdb.Post, term string) (SearchResult, bool) {
	text := plainText(p.Content)
	lower := strings.ToLower(text)

	titleMatch := strings.Contains(strings.ToLower(p.Title), term)
	contentIdx := strings.Index(lower, term)
	authorMatch := strings.Contains(strings.ToLower(p.AuthorName), term)

	var tag string
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), term) {
			tag = t
			break
		}
	}

	var field MatchField
	switch {
	case titleMatch:
		field = MatchTitle
	case contentIdx >= 0:
		field = MatchContent
	case authorMatch:
		field = MatchAuthor
	case tag != "":
		field = MatchTag
	default:
		return SearchResult{}, false
	}

	var snippet string
	switch {
	case contentIdx >= 0:
		src := text
		if len(lower) != len(text) {
			src = lower
		}
		snippet = contextSnippet(src, contentIdx, utf8.RuneCountInString(term))
	case field == MatchTag:
		snippet = "Tagged with: " + tag
	default:
		snippet = truncate(text, snippetFallbackLength)
	}

	return SearchResult{Post: *p.Clone(), MatchField: field, MatchSnippet: snippet}, true
}

// contextSnippet returns the text around the match at byte offset idx, with "..." where clipped.
func contextSnippet(text string, idx, termLen int) string {
	runes := []rune(text)
	at := utf8.RuneCountInString(text[:idx])

	start := max(0, at-snippetRadius)
	end := min(len(runes), at+termLen+snippetRadius)

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(runes) {
		snippet += "..."
	}
	return snippet
}
