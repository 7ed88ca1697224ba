package submission

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gbhwdb/sitegen/internal/photos"
	"github.com/parquet-go/parquet-go"
	"golang.org/x/sync/errgroup"
)

// Loader reads staged submission records and hydrates their photo slots.
type Loader struct {
	path        string
	resolver    photos.Resolver
	concurrency int
}

// NewLoader creates a loader for the given submissions file. Photo stats run
// with at most concurrency in flight.
func NewLoader(path string, resolver photos.Resolver, concurrency int) *Loader {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Loader{
		path:        path,
		resolver:    resolver,
		concurrency: concurrency,
	}
}

// Load reads all submission records and resolves their photo slots. The
// returned slice preserves the input order index-for-index. A missing game
// type or a dangling photo reference aborts the load.
func (l *Loader) Load(ctx context.Context) ([]*Submission, error) {
	var subs []*Submission
	var err error

	// Detect file format
	ext := strings.ToLower(filepath.Ext(l.path))

	switch ext {
	case ".parquet":
		subs, err = l.loadParquet()
	case ".jsonl":
		subs, err = l.loadJSONL()
	case ".json":
		subs, err = l.loadJSON()
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .json, .jsonl, .parquet)", ext)
	}
	if err != nil {
		return nil, err
	}

	for i, sub := range subs {
		sub.Index = i
		if sub.Type == "" {
			return nil, fmt.Errorf("submission %d (%q) has no game type", i, sub.Title)
		}
	}

	if err := l.hydrate(ctx, subs); err != nil {
		return nil, err
	}

	slog.Debug("Submissions loaded", "count", len(subs))

	return subs, nil
}

// loadJSONL loads records from a JSONL file
func (l *Loader) loadJSONL() ([]*Submission, error) {
	slog.Debug("Opening JSONL file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open submissions file: %w", err)
	}
	defer file.Close()

	var subs []*Submission
	scanner := bufio.NewScanner(file)

	// Increase buffer size for large JSON lines
	const maxCapacity = 1024 * 1024 // 1MB per line
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()

		if len(line) == 0 {
			continue
		}

		var sub Submission
		if err := json.Unmarshal(line, &sub); err != nil {
			return nil, fmt.Errorf("failed to parse submission at line %d: %w", lineNum, err)
		}

		subs = append(subs, &sub)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading submissions: %w", err)
	}

	slog.Debug("Finished reading JSONL file", "total_records", len(subs), "total_lines", lineNum)

	return subs, nil
}

// loadJSON loads records from a single JSON array file
func (l *Loader) loadJSON() ([]*Submission, error) {
	slog.Debug("Opening JSON file", "path", l.path)

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open submissions file: %w", err)
	}

	var subs []*Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, fmt.Errorf("failed to parse submissions file %s: %w", l.path, err)
	}

	return subs, nil
}

// parquetRow is the flattened row shape used for parquet exports of the
// submission corpus.
type parquetRow struct {
	Type          string `parquet:"type"`
	Title         string `parquet:"title"`
	Slug          string `parquet:"slug"`
	Contributor   string `parquet:"contributor,optional"`
	BoardKind     string `parquet:"board_kind,optional"`
	BoardLayout   string `parquet:"board_layout,optional"`
	BoardStamp    string `parquet:"board_stamp,optional"`
	MapperKind    string `parquet:"mapper_kind,optional"`
	PhotoFront    string `parquet:"photo_front,optional"`
	PhotoPcbFront string `parquet:"photo_pcb_front,optional"`
	PhotoPcbBack  string `parquet:"photo_pcb_back,optional"`
}

func (r parquetRow) submission() *Submission {
	sub := &Submission{
		Type:        r.Type,
		Title:       r.Title,
		Slug:        r.Slug,
		Contributor: r.Contributor,
	}
	if r.BoardKind != "" || r.BoardLayout != "" || r.BoardStamp != "" || r.MapperKind != "" {
		board := &Board{
			Kind:   r.BoardKind,
			Layout: r.BoardLayout,
			Stamp:  r.BoardStamp,
		}
		if r.MapperKind != "" {
			board.Mapper = &Chip{Kind: r.MapperKind}
		}
		sub.Metadata.Board = board
	}
	if r.PhotoFront != "" {
		sub.Photos.Front = &Photo{Path: r.PhotoFront}
	}
	if r.PhotoPcbFront != "" {
		sub.Photos.PcbFront = &Photo{Path: r.PhotoPcbFront}
	}
	if r.PhotoPcbBack != "" {
		sub.Photos.PcbBack = &Photo{Path: r.PhotoPcbBack}
	}
	return sub
}

// loadParquet loads records from a Parquet file
func (l *Loader) loadParquet() ([]*Submission, error) {
	slog.Debug("Opening Parquet file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[parquetRow](pf)
	defer reader.Close()

	subs, err := readParquetRows(reader)
	if err != nil {
		return nil, err
	}

	slog.Debug("Finished reading Parquet file", "total_records", len(subs))

	return subs, nil
}

// parquetRowReader is the read surface of parquet.GenericReader.
type parquetRowReader interface {
	Read(rows []parquetRow) (int, error)
}

// readParquetRows drains the reader in batches. Only a clean EOF ends the
// read; any other error aborts it, so a damaged file can never pass for a
// complete corpus.
func readParquetRows(r parquetRowReader) ([]*Submission, error) {
	var subs []*Submission
	rows := make([]parquetRow, 128) // Read in batches

	for {
		n, err := r.Read(rows)
		for _, row := range rows[:n] {
			subs = append(subs, row.submission())
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	return subs, nil
}

// hydrate resolves every present photo slot. Results are written in place per
// index, so the sequence order is unchanged regardless of scheduling.
func (l *Loader) hydrate(ctx context.Context, subs []*Submission) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for _, sub := range subs {
		g.Go(func() error {
			for _, slot := range sub.Photos.Slots() {
				md, err := l.resolver.Resolve(slot.Photo.Path)
				if err != nil {
					return fmt.Errorf("submission %s: photo %s: %w", sub.Ref(), slot.Name, err)
				}
				slot.Photo.Size = md.Size
				slot.Photo.ModTime = md.ModTime
			}
			return nil
		})
	}

	return g.Wait()
}
