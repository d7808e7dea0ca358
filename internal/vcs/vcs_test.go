package vcs

import (
	"context"
	"testing"
	"time"

	"coderead/internal/errors"
)

func TestDetect_NonRepoDirectory(t *testing.T) {
	repo := Detect(t.TempDir()+"/file.py", 2*time.Second)
	if repo.Available {
		t.Errorf("expected unavailable context outside a repository, got %+v", repo)
	}
}

func TestGitDiffer_UnavailableContext(t *testing.T) {
	d := NewGitDiffer(RepoContext{}, time.Second)
	_, err := d.Diff(context.Background(), "whatever.py")
	if err == nil {
		t.Fatal("expected error for unavailable context")
	}
	if !errors.IsCode(err, errors.DiffUnavailable) {
		t.Errorf("expected DIFF_UNAVAILABLE, got %v", err)
	}
}

func TestGitDiffer_FileOutsideRepo(t *testing.T) {
	d := NewGitDiffer(RepoContext{Root: t.TempDir(), Available: true}, time.Second)
	_, err := d.Diff(context.Background(), "/etc/hosts")
	if err == nil {
		t.Fatal("expected error for file outside repository root")
	}
	if !errors.IsCode(err, errors.DiffUnavailable) {
		t.Errorf("expected DIFF_UNAVAILABLE, got %v", err)
	}
}

func TestNewGitDiffer_DefaultTimeout(t *testing.T) {
	d := NewGitDiffer(RepoContext{}, 0)
	if d.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", d.Timeout)
	}
}
