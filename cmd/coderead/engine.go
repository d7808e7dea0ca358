package main

import (
	"context"
	"os"
	"strings"
	"time"

	"coderead/internal/align"
	"coderead/internal/config"
	"coderead/internal/dupes"
	"coderead/internal/errors"
	"coderead/internal/extract"
	"coderead/internal/lang"
	"coderead/internal/logging"
	"coderead/internal/vcs"
)

// analysis bundles everything a command needs about one file. All four
// structures are computed fresh per invocation and shared read-only.
type analysis struct {
	Path     string
	Language lang.Language
	Source   []byte
	Lines    []string
	Entities []*extract.Entity
	Groups   []dupes.Group
	Changes  *align.ChangeMap
}

// analyzeFile reads, parses, and annotates a single source file.
func analyzeFile(ctx context.Context, path string, cfg *config.Config, logger *logging.Logger) (*analysis, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.InternalError, "cannot read file "+path, err)
	}

	language, ok := lang.FromPath(path)
	if !ok {
		return nil, errors.Newf(errors.LanguageUnsupported, "unsupported file type: %s", path)
	}

	entities, err := extract.NewExtractor().Extract(ctx, source, language)
	if err != nil {
		return nil, err
	}

	lines := splitLines(string(source))
	groups := dupes.Find(entities)

	changes := align.NewUnchanged(len(lines))
	if cfg.Git.Enabled && !noGitFlag {
		timeout := time.Duration(cfg.Git.TimeoutMs) * time.Millisecond
		repo := vcs.Detect(path, timeout)
		if repo.Available {
			differ := vcs.NewGitDiffer(repo, timeout)
			changes = align.ForFile(ctx, differ, path, len(lines))
		}
		logger.Debug("change detection", map[string]any{
			"repo":     repo.Root,
			"added":    changes.Added,
			"deleted":  changes.Deleted,
			"modified": changes.Modified,
		})
	}

	logger.Debug("analyzed file", map[string]any{
		"path":     path,
		"language": string(language),
		"entities": len(entities),
		"dupes":    len(groups),
	})

	return &analysis{
		Path:     path,
		Language: language,
		Source:   source,
		Lines:    lines,
		Entities: entities,
		Groups:   groups,
		Changes:  changes,
	}, nil
}

// splitLines splits file content into lines, 1-indexed by position.
// A trailing newline does not create a phantom last line.
func splitLines(content string) []string {
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
