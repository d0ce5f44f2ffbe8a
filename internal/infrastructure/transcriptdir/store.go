package transcriptdir

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/devpulse-team/devpulse/errors"
	"github.com/devpulse-team/devpulse/pkg/config"
)

// supportedExtensions is the transcript file allow-list
var supportedExtensions = map[string]struct{}{
	".txt":  {},
	".md":   {},
	".docx": {},
}

// Store manages the transcript directory layout: files arrive in incoming,
// move to processing while being analyzed, and end up in archive.
type Store struct {
	incomingDir   string
	processingDir string
	archiveDir    string
	templateDir   string
	logger        *zap.Logger
}

// NewStore creates the store and its directory layout
func NewStore(cfg *config.TranscriptConfig, logger *zap.Logger) (*Store, error) {
	s := &Store{
		incomingDir:   cfg.IncomingDir,
		processingDir: cfg.ProcessingDir,
		archiveDir:    cfg.ArchiveDir,
		templateDir:   cfg.TemplateDir,
		logger:        logger,
	}

	for _, dir := range []string{s.incomingDir, s.processingDir, s.archiveDir, s.templateDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperrors.ErrStorageFailed("create directory "+dir, err)
		}
	}
	return s, nil
}

// IncomingDir returns the watched incoming directory path
func (s *Store) IncomingDir() string {
	return s.incomingDir
}

// IsSupported reports whether a filename has an allowed transcript extension
func IsSupported(filename string) bool {
	_, ok := supportedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// ListPending returns supported transcript filenames waiting in incoming,
// sorted by name.
func (s *Store) ListPending() ([]string, error) {
	return s.listSupported(s.incomingDir)
}

// ListTemplates returns the sample transcript filenames
func (s *Store) ListTemplates() ([]string, error) {
	return s.listSupported(s.templateDir)
}

func (s *Store) listSupported(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperrors.ErrStorageFailed("list "+dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the content of an incoming transcript file
func (s *Store) Read(filename string) (string, error) {
	if !IsSupported(filename) {
		return "", apperrors.ErrUnsupportedTranscriptFile(filename)
	}

	data, err := os.ReadFile(filepath.Join(s.incomingDir, filename))
	if err != nil {
		return "", apperrors.ErrStorageFailed("read "+filename, err)
	}
	return string(data), nil
}

// ReadTemplate returns the content of a template file
func (s *Store) ReadTemplate(filename string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.templateDir, filename))
	if err != nil {
		return "", apperrors.ErrStorageFailed("read template "+filename, err)
	}
	return string(data), nil
}

// MoveToProcessing moves an incoming file into the processing directory
func (s *Store) MoveToProcessing(filename string) error {
	return s.move(s.incomingDir, s.processingDir, filename)
}

// MoveToArchive moves a processing file into the archive directory
func (s *Store) MoveToArchive(filename string) error {
	return s.move(s.processingDir, s.archiveDir, filename)
}

func (s *Store) move(fromDir, toDir, filename string) error {
	from := filepath.Join(fromDir, filename)
	to := filepath.Join(toDir, filename)

	if err := os.Rename(from, to); err != nil {
		return apperrors.ErrStorageFailed("move "+filename, err)
	}

	if s.logger != nil {
		s.logger.Info("📁 Transcript moved",
			zap.String("file", filename),
			zap.String("to", toDir),
		)
	}
	return nil
}
