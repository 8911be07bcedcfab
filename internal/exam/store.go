package exam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mrsinham/chiroforge/internal/util"
)

// Store lays exams out on disk as
// <root>/<year>cases/<patient folder>/exams/<exam slug>.json.
type Store struct {
	root string
	year int
	log  zerolog.Logger
}

// NewStore returns a store rooted at dataDir for the given case year.
// A zero year means the current year.
func NewStore(dataDir string, year int, log zerolog.Logger) *Store {
	if year == 0 {
		year = time.Now().Year()
	}
	return &Store{root: dataDir, year: year, log: log.With().Str("component", "exam.store").Logger()}
}

// YearDir returns the case folder for the store's year.
func (s *Store) YearDir() string {
	return filepath.Join(s.root, strconv.Itoa(s.year)+"cases")
}

// PatientFolder returns the patient's folder path.
func (s *Store) PatientFolder(p Patient) (string, error) {
	name, err := util.PatientFolderName(p.First, p.Last, p.DOB, p.DOI)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIncompletePatient, err)
	}
	return filepath.Join(s.YearDir(), name), nil
}

// EnsurePatientDirs creates the patient folder and its standard subfolders.
func (s *Store) EnsurePatientDirs(p Patient) (string, error) {
	dir, err := s.PatientFolder(p)
	if err != nil {
		return "", err
	}
	for _, sub := range util.PatientSubdirs {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", sub, err)
		}
	}
	return dir, nil
}

// ExamPath returns where an exam is saved.
func (s *Store) ExamPath(e *Exam) (string, error) {
	dir, err := s.PatientFolder(e.Patient)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "exams", util.SafeSlug(e.ExamName)+".json"), nil
}

// Save writes the exam atomically and returns its path.
func (s *Store) Save(ctx context.Context, e *Exam) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := s.EnsurePatientDirs(e.Patient); err != nil {
		return "", err
	}
	path, err := s.ExamPath(e)
	if err != nil {
		return "", err
	}

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	e.Version = SchemaVersion

	if err := WriteFile(path, e); err != nil {
		return "", err
	}
	s.log.Info().Str("exam", e.ExamName).Str("path", path).Msg("exam saved")
	return path, nil
}

// List returns the exams saved for the patient whose folder is patientDir,
// sorted by exam name.
func (s *Store) List(ctx context.Context, patientDir string) ([]*Exam, error) {
	paths, err := filepath.Glob(filepath.Join(patientDir, "exams", "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}

	var exams []*Exam
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e, err := Load(p)
		if err != nil {
			s.log.Warn().Err(err).Str("path", p).Msg("skipping unreadable exam")
			continue
		}
		exams = append(exams, e)
	}
	sort.Slice(exams, func(i, j int) bool {
		return strings.ToLower(exams[i].ExamName) < strings.ToLower(exams[j].ExamName)
	})
	return exams, nil
}

// Load reads an exam file.
func Load(path string) (*Exam, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read exam: %w", err)
	}
	var e Exam
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("parse exam %s: %w", filepath.Base(path), err)
	}
	return &e, nil
}

// WriteFile writes e to path through a temporary file and a rename.
func WriteFile(path string, e *Exam) error {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("encode exam: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create exam dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".exam-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write exam: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close exam: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename exam: %w", err)
	}
	return nil
}

// IsIncomplete reports whether err came from missing patient data.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncompletePatient)
}
