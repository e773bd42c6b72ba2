package store

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/u1and0/DiskUsageMonitor/internal/domain"
	"github.com/u1and0/DiskUsageMonitor/internal/ports"
)

// recordLen is the fixed on-disk size of one sample: three big-endian int64s.
const recordLen = 24

// FileStore is an append-only log of fixed-width sample records with the
// full series mirrored in memory. Init replays the log and truncates a torn
// trailing record left by an interrupted write; reads are then served from
// memory and every insert appends exactly one record.
type FileStore struct {
	mu   sync.Mutex
	path string
	file *os.File
	se   series
}

var _ ports.SampleStore = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Name() string { return "file" }

func (f *FileStore) Init(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file != nil {
		return nil
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create store dir: %w", ports.ErrStoreUnavailable, err)
		}
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open store log: %w", ports.ErrStoreUnavailable, err)
	}
	if err := f.replay(file); err != nil {
		file.Close()
		return err
	}
	f.file = file
	return nil
}

// replay loads every complete record into the in-memory series. A trailing
// partial record is truncated away rather than failing recovery.
func (f *FileStore) replay(file *os.File) error {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek store log: %w", ports.ErrStoreUnavailable, err)
	}

	reader := bufio.NewReader(file)
	var offset int64

	for {
		var rec [recordLen]byte
		_, err := io.ReadFull(reader, rec[:])
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			if err := file.Truncate(offset); err != nil {
				return fmt.Errorf("%w: truncate torn record: %w", ports.ErrStoreUnavailable, err)
			}
			break
		}
		if err != nil {
			return fmt.Errorf("%w: scan store log: %w", ports.ErrStoreUnavailable, err)
		}

		if err := f.se.insert(decodeRecord(rec)); err != nil && !errors.Is(err, ports.ErrDuplicateTimestamp) {
			return err
		}
		offset += recordLen
	}
	return nil
}

func (f *FileStore) Insert(ctx context.Context, s domain.Sample) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return fmt.Errorf("%w: store log not initialized", ports.ErrStoreUnavailable)
	}
	if f.se.contains(s.Timestamp) {
		return fmt.Errorf("%w: %d", ports.ErrDuplicateTimestamp, s.Timestamp)
	}

	rec := encodeRecord(s)
	if _, err := f.file.Write(rec[:]); err != nil {
		return fmt.Errorf("%w: append sample: %w", ports.ErrStoreUnavailable, err)
	}
	return f.se.insert(s)
}

func (f *FileStore) ReadRecent(ctx context.Context, limit int) ([]domain.Sample, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: read limit %d", ports.ErrInvalidArgument, limit)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return nil, fmt.Errorf("%w: store log not initialized", ports.ErrStoreUnavailable)
	}
	return f.se.recent(limit), nil
}

// Close releases the log handle. The store must be re-initialized before use.
func (f *FileStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

func encodeRecord(s domain.Sample) [recordLen]byte {
	var rec [recordLen]byte
	binary.BigEndian.PutUint64(rec[0:8], uint64(s.Timestamp))
	binary.BigEndian.PutUint64(rec[8:16], uint64(s.Size))
	binary.BigEndian.PutUint64(rec[16:24], uint64(s.Used))
	return rec
}

func decodeRecord(rec [recordLen]byte) domain.Sample {
	return domain.Sample{
		Timestamp: int64(binary.BigEndian.Uint64(rec[0:8])),
		Size:      int64(binary.BigEndian.Uint64(rec[8:16])),
		Used:      int64(binary.BigEndian.Uint64(rec[16:24])),
	}
}
