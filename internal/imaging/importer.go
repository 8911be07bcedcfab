package imaging

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mrsinham/chiroforge/internal/narrative"
)

// ToEntry converts a header into an imaging visit. The city is never present
// in DICOM and is left blank.
func ToEntry(h Header) narrative.ImagingEntry {
	var parts []string
	if p := BodyPartLabel(h.BodyPart, h.StudyDescription); p != "" {
		parts = []string{p}
	}
	return narrative.ImagingEntry{
		Type:      ImagingType(h.Modality),
		BodyParts: parts,
		Facility:  h.Institution,
		Date:      FormatDate(h.StudyDate),
	}
}

// Importer collects imaging visits from DICOM files.
type Importer struct {
	log zerolog.Logger
}

// NewImporter returns an importer logging skipped files to log.
func NewImporter(log zerolog.Logger) *Importer {
	return &Importer{log: log.With().Str("component", "imaging").Logger()}
}

// ImportFiles reads every file (directories are walked) and returns one
// entry per distinct study visit, in first-seen order. Unreadable files are
// logged and skipped; ErrNoReadableFiles is returned if none could be read.
func (im *Importer) ImportFiles(ctx context.Context, paths []string) ([]narrative.ImagingEntry, []Header, error) {
	files, err := expand(paths)
	if err != nil {
		return nil, nil, err
	}

	var (
		entries []narrative.ImagingEntry
		headers []Header
		seen    = make(map[string]struct{})
	)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		h, err := ReadHeader(path)
		if err != nil {
			im.log.Warn().Err(err).Str("path", path).Msg("skipping file")
			continue
		}
		headers = append(headers, h)

		e := ToEntry(h)
		key := entryKey(e)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, e)
		im.log.Debug().Str("path", path).Str("type", e.Type).Str("facility", e.Facility).Msg("imaging visit found")
	}

	if len(headers) == 0 {
		return nil, nil, fmt.Errorf("%w (%d files tried)", ErrNoReadableFiles, len(files))
	}
	return entries, headers, nil
}

func entryKey(e narrative.ImagingEntry) string {
	return strings.ToLower(strings.Join([]string{e.Type, strings.Join(e.BodyParts, ","), e.Facility, e.Date}, "|"))
}

func expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		err := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", p, err)
		}
	}
	return files, nil
}
