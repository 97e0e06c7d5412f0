package assessment

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// logVersion is the schema version written into the result log file.
const logVersion = 1

type resultLogFile struct {
	Version int      `json:"version"`
	Results []Result `json:"results"`
}

// ResultLog is an append-only, file-backed log of submitted results.
// Entries keep insertion order (most recent last) and are never rewritten.
// The backing file is a single JSON blob with a schema version tag.
type ResultLog struct {
	mu      sync.Mutex
	path    string
	logger  zerolog.Logger
	results []Result
}

// OpenResultLog loads the result log from path, creating parent directories
// as needed. A missing file yields an empty log. A corrupt or unreadable
// blob resets the log to empty with a warning; it is never a failure, so a
// bad file cannot block new submissions.
func OpenResultLog(path string, logger zerolog.Logger) (*ResultLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create result log directory: %w", err)
	}

	l := &ResultLog{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("result log unreadable, starting empty")
		return l, nil
	}

	var file resultLogFile
	if err := json.Unmarshal(data, &file); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("result log corrupt, starting empty")
		return l, nil
	}
	if file.Version > logVersion {
		logger.Warn().Int("version", file.Version).Str("path", path).
			Msg("result log written by a newer version, starting empty")
		return l, nil
	}

	l.results = file.Results
	return l, nil
}

// Append adds a result to the log and persists the whole blob. The write
// goes through a temp file and rename so a crash cannot leave a torn blob.
func (l *ResultLog) Append(r Result) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.results = append(l.results, r)
	if err := l.persist(); err != nil {
		// Roll back the in-memory append so memory and disk stay in step.
		l.results = l.results[:len(l.results)-1]
		return err
	}
	return nil
}

func (l *ResultLog) persist() error {
	data, err := json.Marshal(resultLogFile{Version: logVersion, Results: l.results})
	if err != nil {
		return fmt.Errorf("encode result log: %w", err)
	}

	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write result log: %w", err)
	}
	if err := os.Rename(tmp, l.path); err != nil {
		return fmt.Errorf("replace result log: %w", err)
	}
	return nil
}

// All returns a copy of the stored results in insertion order.
func (l *ResultLog) All() []Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Result, len(l.results))
	copy(out, l.results)
	return out
}

// Len returns the number of stored results.
func (l *ResultLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.results)
}
