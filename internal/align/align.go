package align

import (
	"context"
	"fmt"
	"strings"

	godiff "github.com/sourcegraph/go-diff/diff"

	"coderead/internal/vcs"
)

// Align classifies every current-file line from a unified diff. The
// diff is expected to describe a single file; all of its hunks apply.
//
// Modified is inferred positionally: a maximal run of removed lines
// immediately followed by a run of added lines pairs up to
// min(removed, added), and the paired added lines become Modified.
// This is an approximation — an unrelated delete-then-insert at the
// same spot also reads as a modification.
func Align(diffText string, totalLines int) (*ChangeMap, error) {
	cm := NewUnchanged(totalLines)
	if strings.TrimSpace(diffText) == "" {
		return cm, nil
	}

	fileDiffs, err := godiff.ParseMultiFileDiff([]byte(diffText))
	if err != nil {
		return nil, fmt.Errorf("failed to parse diff: %w", err)
	}

	for _, fd := range fileDiffs {
		for _, hunk := range fd.Hunks {
			applyHunk(cm, hunk)
		}
	}

	return cm, nil
}

// applyHunk walks one hunk's tagged lines with an old and a new cursor,
// collecting removed/added runs and flushing them at context lines.
func applyHunk(cm *ChangeMap, hunk *godiff.Hunk) {
	newLine := int(hunk.NewStartLine)

	removedRun := 0
	removedAttach := 0
	var addedRun []int

	flush := func() {
		pair := removedRun
		if len(addedRun) < pair {
			pair = len(addedRun)
		}
		for i, line := range addedRun {
			if i < pair {
				cm.mark(line, TagModified)
			} else {
				cm.mark(line, TagAdded)
			}
		}
		// Removed lines beyond the pairing are pure deletions with no
		// current-file position.
		cm.recordDeletions(removedAttach, removedRun-pair)
		removedRun = 0
		removedAttach = 0
		addedRun = nil
	}

	for _, line := range strings.Split(string(hunk.Body), "\n") {
		if line == "" {
			// Trailing split artifact or blank context line
			flush()
			newLine++
			continue
		}

		switch line[0] {
		case '+':
			// A removed run stays open across the additions that
			// immediately follow it; that adjacency drives pairing.
			addedRun = append(addedRun, newLine)
			newLine++
		case '-':
			if len(addedRun) > 0 {
				// Additions then removals again: the first run is over.
				flush()
			}
			if removedRun == 0 {
				removedAttach = newLine
			}
			removedRun++
		case '\\':
			// "\ No newline at end of file"
		default:
			flush()
			newLine++
		}
	}
	flush()
}

// ForFile obtains the diff for path and aligns it. This never fails:
// a missing repository, a diff tool error, or malformed output all
// degrade to the all-Unchanged map.
func ForFile(ctx context.Context, differ vcs.Differ, path string, totalLines int) *ChangeMap {
	if differ == nil {
		return NewUnchanged(totalLines)
	}

	diffText, err := differ.Diff(ctx, path)
	if err != nil {
		return NewUnchanged(totalLines)
	}

	cm, err := Align(diffText, totalLines)
	if err != nil {
		return NewUnchanged(totalLines)
	}
	return cm
}
