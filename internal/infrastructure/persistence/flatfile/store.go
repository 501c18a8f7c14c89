package flatfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/config"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
	"github.com/orris-inc/gymdesk/internal/shared/utils/logutil"
)

const maxLineSize = 1 << 20

// LineError locates a record that failed to load.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Store implements member.Repository on a single text file.
type Store struct {
	path   string
	strict bool
	logger logger.Interface
}

var _ member.Repository = (*Store)(nil)

// NewStore creates a file store. With StrictLoad set, Load stops at the
// first bad record instead of skipping it.
func NewStore(cfg config.StoreConfig, logger logger.Interface) *Store {
	return &Store{
		path:   cfg.Path,
		strict: cfg.StrictLoad,
		logger: logger,
	}
}

func (s *Store) Path() string {
	return s.path
}

// Save writes the registry to a temporary file next to the target and
// renames it into place, so readers never see a half-written file.
func (s *Store) Save(ctx context.Context, registry *member.Registry) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to open member file for writing: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	members := registry.List()
	if err = Encode(tmp, members); err != nil {
		return fmt.Errorf("failed to write members: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync member file: %w", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to set member file mode: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close member file: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace member file: %w", err)
	}

	s.logger.Debugw("members saved",
		"path", s.path,
		"count", len(members),
	)
	return nil
}

// Load reads every record into a new registry. Bad records, including
// duplicate ids, are skipped and reported unless the store is strict.
func (s *Store) Load(ctx context.Context) (*member.Registry, *member.LoadReport, error) {
	registry := member.NewRegistry()
	report := &member.LoadReport{Source: s.path}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Infow("member file not found, starting empty", "path", s.path)
			return registry, report, nil
		}
		return nil, nil, fmt.Errorf("failed to open member file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if IsSkippable(line) {
			continue
		}

		m, err := DecodeLine(line)
		if err == nil {
			err = registry.Add(m)
		}
		if err != nil {
			lineErr := &LineError{Line: lineNo, Err: err}
			if s.strict {
				return nil, nil, lineErr
			}
			s.logger.Warnw("skipping member record",
				"path", s.path,
				"line", lineNo,
				"record", logutil.TruncateForLog(line, 60),
				"error", err,
			)
			report.Skipped = append(report.Skipped, member.SkippedRecord{
				Line:   lineNo,
				Reason: err.Error(),
			})
			continue
		}
		report.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read member file: %w", err)
	}

	s.logger.Infow("members loaded",
		"path", s.path,
		"loaded", report.Loaded,
		"skipped", len(report.Skipped),
	)
	return registry, report, nil
}
