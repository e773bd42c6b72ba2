package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/u1and0/DiskUsageMonitor/internal/domain"
	"github.com/u1and0/DiskUsageMonitor/internal/ports"
)

func TestFileStoreAppendAndRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "samples.log")

	fs := NewFileStore(path)
	if err := fs.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer fs.Close()

	for _, ts := range []int64{20, 10, 30} {
		if err := fs.Insert(ctx, domain.Sample{Timestamp: ts, Size: 1000, Used: 500}); err != nil {
			t.Fatalf("Insert(%d) failed: %v", ts, err)
		}
	}

	err := fs.Insert(ctx, domain.Sample{Timestamp: 20, Size: 9999, Used: 1})
	if !errors.Is(err, ports.ErrDuplicateTimestamp) {
		t.Fatalf("expected ErrDuplicateTimestamp, got %v", err)
	}

	got, err := fs.ReadRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ReadRecent failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(got))
	}
	for i, want := range []int64{10, 20, 30} {
		if got[i].Timestamp != want {
			t.Fatalf("position %d: expected timestamp %d, got %d", i, want, got[i].Timestamp)
		}
	}
}

func TestFileStoreReplaysAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "samples.log")

	fs := NewFileStore(path)
	if err := fs.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	for ts := int64(1); ts <= 3; ts++ {
		if err := fs.Insert(ctx, domain.Sample{Timestamp: ts * 10, Size: 1000, Used: ts * 100}); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	if err := fs.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewFileStore(path)
	if err := reopened.Init(ctx); err != nil {
		t.Fatalf("reopen Init failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.ReadRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ReadRecent failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 replayed samples, got %d", len(got))
	}
	if got[2].Timestamp != 30 || got[2].Used != 300 {
		t.Fatalf("unexpected newest sample after replay: %+v", got[2])
	}

	// Replay must not reject what it just read back.
	if err := reopened.Insert(ctx, domain.Sample{Timestamp: 40, Size: 1000, Used: 400}); err != nil {
		t.Fatalf("Insert after replay failed: %v", err)
	}
}

func TestFileStoreTruncatesTornRecord(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "samples.log")

	fs := NewFileStore(path)
	if err := fs.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	for ts := int64(1); ts <= 3; ts++ {
		if err := fs.Insert(ctx, domain.Sample{Timestamp: ts * 10, Size: 1000, Used: 500}); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	if err := fs.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Simulate a crash mid-write: a few stray bytes after the last record.
	raw, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatalf("open log for corruption: %v", err)
	}
	if _, err := raw.Write([]byte{0xde, 0xad, 0xbe, 0xef, 0x01}); err != nil {
		t.Fatalf("write torn record: %v", err)
	}
	raw.Close()

	reopened := NewFileStore(path)
	if err := reopened.Init(ctx); err != nil {
		t.Fatalf("Init after torn record failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.ReadRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ReadRecent failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 intact samples, got %d", len(got))
	}

	if err := reopened.Insert(ctx, domain.Sample{Timestamp: 40, Size: 1000, Used: 500}); err != nil {
		t.Fatalf("Insert after truncation failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat log: %v", err)
	}
	if info.Size() != 4*recordLen {
		t.Fatalf("expected %d bytes after truncation and append, got %d", 4*recordLen, info.Size())
	}
}

func TestFileStoreRequiresInit(t *testing.T) {
	ctx := context.Background()
	fs := NewFileStore(filepath.Join(t.TempDir(), "samples.log"))

	err := fs.Insert(ctx, domain.Sample{Timestamp: 1, Size: 1, Used: 1})
	if !errors.Is(err, ports.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable on Insert, got %v", err)
	}
	if _, err := fs.ReadRecent(ctx, 1); !errors.Is(err, ports.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable on ReadRecent, got %v", err)
	}
}
