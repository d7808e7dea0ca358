package align

import (
	"context"
	"testing"

	"coderead/internal/errors"
)

func mustAlign(t *testing.T, diff string, totalLines int) *ChangeMap {
	t.Helper()
	cm, err := Align(diff, totalLines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cm
}

func TestAlign_EmptyDiff(t *testing.T) {
	cm := mustAlign(t, "", 10)
	if cm.HasChanges() {
		t.Error("expected no changes for empty diff")
	}
	if cm.Added != 0 || cm.Deleted != 0 || cm.Modified != 0 {
		t.Errorf("expected zero counters, got +%d -%d ~%d", cm.Added, cm.Deleted, cm.Modified)
	}
	for line := 1; line <= 10; line++ {
		if cm.Tag(line) != TagUnchanged {
			t.Errorf("expected line %d unchanged, got %s", line, cm.Tag(line))
		}
	}
}

func TestAlign_PureAddition(t *testing.T) {
	diff := `--- a/f.py
+++ b/f.py
@@ -1,2 +1,3 @@
 ctx1
+new line
 ctx2
`
	cm := mustAlign(t, diff, 3)
	if cm.Tag(2) != TagAdded {
		t.Errorf("expected line 2 added, got %s", cm.Tag(2))
	}
	if cm.Added != 1 || cm.Deleted != 0 || cm.Modified != 0 {
		t.Errorf("expected +1 -0 ~0, got +%d -%d ~%d", cm.Added, cm.Deleted, cm.Modified)
	}
}

func TestAlign_PureDeletion(t *testing.T) {
	diff := `--- a/f.py
+++ b/f.py
@@ -1,3 +1,2 @@
 ctx1
-gone
 ctx2
`
	cm := mustAlign(t, diff, 2)
	if cm.Added != 0 || cm.Deleted != 1 || cm.Modified != 0 {
		t.Errorf("expected +0 -1 ~0, got +%d -%d ~%d", cm.Added, cm.Deleted, cm.Modified)
	}
	// The deletion is attached to the retained line that now follows it.
	if cm.DeletedBefore(2) != 1 {
		t.Errorf("expected 1 deletion before line 2, got %d", cm.DeletedBefore(2))
	}
	if cm.Tag(2) != TagUnchanged {
		t.Errorf("deleted-adjacent line keeps its own tag, got %s", cm.Tag(2))
	}
}

func TestAlign_BalancedRunsBecomeModified(t *testing.T) {
	diff := `--- a/f.py
+++ b/f.py
@@ -1,4 +1,4 @@
 ctx1
-old1
-old2
+new1
+new2
 ctx2
`
	cm := mustAlign(t, diff, 4)
	if cm.Tag(2) != TagModified || cm.Tag(3) != TagModified {
		t.Errorf("expected lines 2-3 modified, got %s/%s", cm.Tag(2), cm.Tag(3))
	}
	if cm.Added != 0 || cm.Deleted != 0 || cm.Modified != 2 {
		t.Errorf("expected +0 -0 ~2, got +%d -%d ~%d", cm.Added, cm.Deleted, cm.Modified)
	}
}

func TestAlign_ExcessRemovalsStayDeleted(t *testing.T) {
	diff := `--- a/f.py
+++ b/f.py
@@ -1,5 +1,3 @@
 ctx1
-a
-b
-c
+x
 ctx2
`
	cm := mustAlign(t, diff, 3)
	if cm.Tag(2) != TagModified {
		t.Errorf("expected line 2 modified, got %s", cm.Tag(2))
	}
	if cm.Added != 0 || cm.Deleted != 2 || cm.Modified != 1 {
		t.Errorf("expected +0 -2 ~1, got +%d -%d ~%d", cm.Added, cm.Deleted, cm.Modified)
	}
	if cm.DeletedBefore(2) != 2 {
		t.Errorf("expected 2 deletions before line 2, got %d", cm.DeletedBefore(2))
	}
}

func TestAlign_ExcessAdditionsStayAdded(t *testing.T) {
	diff := `--- a/f.py
+++ b/f.py
@@ -1,3 +1,5 @@
 ctx1
-old
+new1
+new2
+new3
 ctx2
`
	cm := mustAlign(t, diff, 5)
	if cm.Tag(2) != TagModified {
		t.Errorf("expected line 2 modified, got %s", cm.Tag(2))
	}
	if cm.Tag(3) != TagAdded || cm.Tag(4) != TagAdded {
		t.Errorf("expected lines 3-4 added, got %s/%s", cm.Tag(3), cm.Tag(4))
	}
	if cm.Added != 2 || cm.Deleted != 0 || cm.Modified != 1 {
		t.Errorf("expected +2 -0 ~1, got +%d -%d ~%d", cm.Added, cm.Deleted, cm.Modified)
	}
}

func TestAlign_ContextBreaksPairing(t *testing.T) {
	// A deletion and an addition separated by context never pair.
	diff := `--- a/f.py
+++ b/f.py
@@ -1,4 +1,4 @@
 ctx1
+addA
 ctx2
-del1
 ctx3
`
	cm := mustAlign(t, diff, 4)
	if cm.Tag(2) != TagAdded {
		t.Errorf("expected line 2 added, got %s", cm.Tag(2))
	}
	if cm.Added != 1 || cm.Deleted != 1 || cm.Modified != 0 {
		t.Errorf("expected +1 -1 ~0, got +%d -%d ~%d", cm.Added, cm.Deleted, cm.Modified)
	}
	if cm.DeletedBefore(4) != 1 {
		t.Errorf("expected deletion attached to line 4, got %d", cm.DeletedBefore(4))
	}
}

func TestAlign_AdditionsThenRemovalsDoNotPair(t *testing.T) {
	// Pairing only fires for removals followed by additions.
	diff := `--- a/f.py
+++ b/f.py
@@ -1,3 +1,3 @@
 ctx1
+addA
-del1
 ctx2
`
	cm := mustAlign(t, diff, 3)
	if cm.Tag(2) != TagAdded {
		t.Errorf("expected line 2 added, got %s", cm.Tag(2))
	}
	if cm.Added != 1 || cm.Deleted != 1 || cm.Modified != 0 {
		t.Errorf("expected +1 -1 ~0, got +%d -%d ~%d", cm.Added, cm.Deleted, cm.Modified)
	}
}

func TestAlign_MultipleHunks(t *testing.T) {
	diff := `--- a/f.py
+++ b/f.py
@@ -1,2 +1,3 @@
 ctx1
+new top
 ctx2
@@ -10,3 +11,3 @@
 ctx3
-old
+edited
 ctx4
`
	cm := mustAlign(t, diff, 13)
	if cm.Tag(2) != TagAdded {
		t.Errorf("expected line 2 added, got %s", cm.Tag(2))
	}
	if cm.Tag(12) != TagModified {
		t.Errorf("expected line 12 modified, got %s", cm.Tag(12))
	}
	if cm.Added != 1 || cm.Modified != 1 {
		t.Errorf("expected +1 ~1, got +%d ~%d", cm.Added, cm.Modified)
	}
}

func TestAlign_MalformedDiff(t *testing.T) {
	malformed := "--- a/f.py\n+++ b/f.py\n@@ bogus @@\n context\n"
	if _, err := Align(malformed, 5); err == nil {
		t.Error("expected parse error for malformed diff")
	}
}

// fakeDiffer satisfies vcs.Differ for alignment tests.
type fakeDiffer struct {
	text string
	err  error
}

func (f *fakeDiffer) Diff(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

func TestForFile_DegradesOnDiffFailure(t *testing.T) {
	differ := &fakeDiffer{err: errors.New(errors.DiffUnavailable, "no repo", nil)}
	cm := ForFile(context.Background(), differ, "f.py", 7)
	if cm.HasChanges() {
		t.Error("expected all-unchanged map on diff failure")
	}
	if cm.TotalLines != 7 {
		t.Errorf("expected totalLines 7, got %d", cm.TotalLines)
	}
}

func TestForFile_DegradesOnMalformedDiff(t *testing.T) {
	differ := &fakeDiffer{text: "@@ bogus @@\ngarbage\n"}
	cm := ForFile(context.Background(), differ, "f.py", 3)
	if cm.HasChanges() {
		t.Error("expected all-unchanged map on malformed diff")
	}
}

func TestForFile_AppliesDiff(t *testing.T) {
	differ := &fakeDiffer{text: `--- a/f.py
+++ b/f.py
@@ -1,2 +1,3 @@
 ctx1
+new
 ctx2
`}
	cm := ForFile(context.Background(), differ, "f.py", 3)
	if cm.Tag(2) != TagAdded {
		t.Errorf("expected line 2 added, got %s", cm.Tag(2))
	}
}
