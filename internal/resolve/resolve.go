// Package resolve maps a user request — whole file, named entity, or
// line range — onto a concrete annotated span.
package resolve

import (
	"coderead/internal/align"
	"coderead/internal/dupes"
	"coderead/internal/errors"
	"coderead/internal/extract"
)

// RequestKind discriminates the request variants.
type RequestKind string

const (
	// KindWholeFile spans every line of the file
	KindWholeFile RequestKind = "whole-file"
	// KindEntity targets a named class, function, or method
	KindEntity RequestKind = "entity"
	// KindLineRange targets an explicit 1-indexed range
	KindLineRange RequestKind = "line-range"
)

// Request describes what the caller wants to see.
type Request struct {
	Kind RequestKind

	// Entity requests
	Name  string
	Class string // optional qualifier

	// Line-range requests; End 0 means End = Start
	Start int
	End   int
}

// WholeFile requests the entire file.
func WholeFile() Request {
	return Request{Kind: KindWholeFile}
}

// ByEntity requests a named entity, optionally class-qualified.
func ByEntity(name, class string) Request {
	return Request{Kind: KindEntity, Name: name, Class: class}
}

// ByLines requests an explicit line range.
func ByLines(start, end int) Request {
	return Request{Kind: KindLineRange, Start: start, End: end}
}

// Line pairs one source line with its change classification.
type Line struct {
	Number int       `json:"number"`
	Text   string    `json:"text"`
	Tag    align.Tag `json:"tag"`
	// DeletedBefore is how many committed lines vanished immediately
	// above this line; rendered as an adjacent indicator, it never
	// consumes a line slot.
	DeletedBefore int `json:"deletedBefore,omitempty"`
}

// ResolvedSpan is the annotated result for a single request.
type ResolvedSpan struct {
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
	Lines     []Line `json:"lines"`

	// Target is the matched entity for entity requests, nil otherwise.
	Target *extract.Entity `json:"target,omitempty"`
	// Ambiguous holds every match when a bare name matched more than
	// one entity. Ambiguity is reported, not failed: Target is the
	// first source-order occurrence.
	Ambiguous []*extract.Entity `json:"ambiguous,omitempty"`
	// Duplicates are the duplicate groups whose span intersects the
	// resolved range, for inline warnings.
	Duplicates []dupes.Group `json:"duplicates,omitempty"`
}

// Resolve maps the request onto lines of the current file. Entity and
// range failures abort only this query, never the surrounding run.
func Resolve(req Request, entities []*extract.Entity, groups []dupes.Group, cm *align.ChangeMap, sourceLines []string) (*ResolvedSpan, error) {
	total := len(sourceLines)

	var span *ResolvedSpan
	switch req.Kind {
	case KindWholeFile:
		span = &ResolvedSpan{StartLine: 1, EndLine: total}

	case KindEntity:
		target, ambiguous, err := lookup(req, entities)
		if err != nil {
			return nil, err
		}
		span = &ResolvedSpan{
			StartLine: target.StartLine,
			EndLine:   target.EndLine,
			Target:    target,
			Ambiguous: ambiguous,
		}

	case KindLineRange:
		start, end := req.Start, req.End
		if end == 0 {
			end = start
		}
		if start < 1 || end > total {
			return nil, errors.Newf(errors.RangeInvalid,
				"range %d-%d outside file bounds [1, %d]", start, end, total).
				WithDetails(map[string]int{"start": start, "end": end, "totalLines": total})
		}
		if start > end {
			return nil, errors.Newf(errors.RangeInvalid,
				"inverted range: start %d > end %d", start, end)
		}
		span = &ResolvedSpan{StartLine: start, EndLine: end}

	default:
		return nil, errors.Newf(errors.InternalError, "unknown request kind %q", req.Kind)
	}

	if span.EndLine > total {
		span.EndLine = total
	}
	for line := span.StartLine; line <= span.EndLine; line++ {
		span.Lines = append(span.Lines, Line{
			Number:        line,
			Text:          sourceLines[line-1],
			Tag:           cm.Tag(line),
			DeletedBefore: cm.DeletedBefore(line),
		})
	}
	span.Duplicates = dupes.Intersecting(groups, span.StartLine, span.EndLine)

	return span, nil
}

// lookup finds the requested entity. Qualified requests need an exact
// qualified match; bare requests take the first source-order bare-name
// match and report the rest as ambiguity.
func lookup(req Request, entities []*extract.Entity) (*extract.Entity, []*extract.Entity, error) {
	if req.Class != "" {
		qualified := req.Class + "." + req.Name
		for _, e := range entities {
			if e.QualifiedName() == qualified {
				return e, nil, nil
			}
		}
		return nil, nil, errors.Newf(errors.NotFound,
			"method '%s' not found in class '%s'", req.Name, req.Class)
	}

	var matches []*extract.Entity
	for _, e := range entities {
		if e.Name == req.Name {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return nil, nil, errors.Newf(errors.NotFound,
			"function/method '%s' not found", req.Name)
	case 1:
		return matches[0], nil, nil
	default:
		return matches[0], matches, nil
	}
}
