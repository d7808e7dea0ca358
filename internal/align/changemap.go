// Package align turns a unified git diff into a per-line change
// classification over the current file.
package align

// Tag classifies one current-file line.
type Tag string

const (
	// TagUnchanged marks a line untouched since the last commit
	TagUnchanged Tag = "unchanged"
	// TagAdded marks a pure insertion
	TagAdded Tag = "added"
	// TagModified marks an added line paired with a removed one
	TagModified Tag = "modified"
)

// ChangeMap maps current-file line numbers to change tags. Deleted
// lines have no current-file position; they are carried as a count
// attached to the nearest following retained line.
type ChangeMap struct {
	TotalLines int `json:"totalLines"`

	// Summary counters
	Added    int `json:"added"`
	Deleted  int `json:"deleted"`
	Modified int `json:"modified"`

	tags            map[int]Tag
	deletionsBefore map[int]int
}

// NewUnchanged returns a map classifying every line Unchanged. This is
// also the degraded result when no diff is available.
func NewUnchanged(totalLines int) *ChangeMap {
	return &ChangeMap{
		TotalLines:      totalLines,
		tags:            map[int]Tag{},
		deletionsBefore: map[int]int{},
	}
}

// Tag returns the classification of a 1-indexed line.
func (cm *ChangeMap) Tag(line int) Tag {
	if t, ok := cm.tags[line]; ok {
		return t
	}
	return TagUnchanged
}

// DeletedBefore returns how many removed lines vanished immediately
// before the given current-file line.
func (cm *ChangeMap) DeletedBefore(line int) int {
	return cm.deletionsBefore[line]
}

// HasChanges reports whether any line differs from the last commit.
func (cm *ChangeMap) HasChanges() bool {
	return cm.Added > 0 || cm.Deleted > 0 || cm.Modified > 0
}

// SummaryInRange counts tags within [start, end], plus deletions
// attached to lines in that range.
func (cm *ChangeMap) SummaryInRange(start, end int) (added, deleted, modified int) {
	for line := start; line <= end; line++ {
		switch cm.Tag(line) {
		case TagAdded:
			added++
		case TagModified:
			modified++
		}
		deleted += cm.DeletedBefore(line)
	}
	return added, deleted, modified
}

func (cm *ChangeMap) mark(line int, tag Tag) {
	// Line numbers are defined over the current file only; a stale
	// diff must not mint keys past EOF.
	if line < 1 || line > cm.TotalLines {
		return
	}
	prev := cm.tags[line]
	cm.tags[line] = tag

	switch tag {
	case TagAdded:
		cm.Added++
	case TagModified:
		cm.Modified++
	}
	switch prev {
	case TagAdded:
		cm.Added--
	case TagModified:
		cm.Modified--
	}
}

func (cm *ChangeMap) recordDeletions(attachLine, count int) {
	if count <= 0 {
		return
	}
	cm.Deleted += count
	if attachLine > cm.TotalLines {
		// Deletion at end of file: no following retained line exists,
		// keep the annotation on the last line.
		attachLine = cm.TotalLines
	}
	if attachLine >= 1 {
		cm.deletionsBefore[attachLine] += count
	}
}
