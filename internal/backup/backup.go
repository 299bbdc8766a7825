// Package backup snapshots the two config files into a timestamped
// archive and enforces retention.
package backup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/joss/agentcfg/internal/domain"
)

const (
	// RetainCount is how many archive entries survive a retention
	// sweep, counted across both kinds together.
	RetainCount = 5

	timestampLayout = "20060102-150405"
	nameInfix       = "-backup-"
)

// Manager copies the live config files into the archive directory.
type Manager struct {
	dir     string
	sources map[domain.Kind]string
	log     *zap.Logger
	now     func() time.Time
}

// NewManager creates a manager over the archive directory and the two
// live config file paths.
func NewManager(dir, agentFile, providerFile string, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		dir: dir,
		sources: map[domain.Kind]string{
			domain.KindAgent:    agentFile,
			domain.KindProvider: providerFile,
		},
		log: log,
		now: time.Now,
	}
}

// Dir returns the archive directory.
func (m *Manager) Dir() string { return m.dir }

// Result reports one snapshot attempt per config kind. The two copies
// are independent: one failing never blocks the other.
type Result struct {
	AgentFile    string
	AgentErr     error
	ProviderFile string
	ProviderErr  error
}

// Create snapshots both config files under one timestamp, then runs a
// retention sweep if at least one copy landed.
func (m *Manager) Create() Result {
	ts := m.now().Format(timestampLayout)

	var res Result
	res.AgentFile, res.AgentErr = m.snapshot(domain.KindAgent, ts)
	res.ProviderFile, res.ProviderErr = m.snapshot(domain.KindProvider, ts)

	if res.AgentErr == nil || res.ProviderErr == nil {
		m.prune()
	}
	return res
}

// CreateKind snapshots a single config file. Used as the safety net
// before a restore overwrites that file.
func (m *Manager) CreateKind(kind domain.Kind) (string, error) {
	name, err := m.snapshot(kind, m.now().Format(timestampLayout))
	if err != nil {
		return "", err
	}
	m.prune()
	return name, nil
}

func (m *Manager) snapshot(kind domain.Kind, ts string) (string, error) {
	src, ok := m.sources[kind]
	if !ok {
		return "", fmt.Errorf("no source file for kind %q", kind)
	}

	data, err := os.ReadFile(src)
	if errors.Is(err, fs.ErrNotExist) {
		// First backup of a not-yet-created config records an empty
		// object rather than failing.
		data = []byte("{}\n")
	} else if err != nil {
		return "", fmt.Errorf("read %s: %w", src, err)
	}

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	ext := filepath.Ext(src)
	if ext == "" {
		ext = ".json"
	}
	name := fmt.Sprintf("%s%s%s%s", kind, nameInfix, ts, ext)
	if err := os.WriteFile(filepath.Join(m.dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("write backup %s: %w", name, err)
	}

	m.log.Debug("created backup", zap.String("name", name), zap.Int("bytes", len(data)))
	return name, nil
}

// List returns backup filenames of both kinds sorted most recent
// first, truncated to limit (limit <= 0 means all).
func (m *Manager) List(limit int) ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := KindOf(e.Name()); err == nil {
			names = append(names, e.Name())
		}
	}

	sort.Slice(names, func(i, j int) bool {
		ti, tj := timestampOf(names[i]), timestampOf(names[j])
		if ti != tj {
			return ti > tj
		}
		return names[i] < names[j]
	})

	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// Read returns the raw contents of an archive entry.
func (m *Manager) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(m.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read backup %s: %w", name, err)
	}
	return data, nil
}

// Restore copies an archive entry over dest verbatim.
func (m *Manager) Restore(name, dest string) error {
	data, err := m.Read(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("restore %s: %w", name, err)
	}
	m.log.Info("restored backup", zap.String("name", name), zap.String("dest", dest))
	return nil
}

// RestoreWithSafety snapshots the current file of the entry's kind and
// then overwrites dest with the entry's bytes, returning the safety
// snapshot's name. The entry is read before the snapshot runs, so a
// full archive whose retention sweep prunes the entry being restored
// still restores it.
func (m *Manager) RestoreWithSafety(name, dest string) (string, error) {
	data, err := m.Read(name)
	if err != nil {
		return "", err
	}
	kind, err := KindOf(name)
	if err != nil {
		return "", err
	}
	safety, err := m.CreateKind(kind)
	if err != nil {
		return "", fmt.Errorf("snapshot %s config before restore: %w", kind, err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", fmt.Errorf("restore %s: %w", name, err)
	}
	m.log.Info("restored backup",
		zap.String("name", name),
		zap.String("dest", dest),
		zap.String("safety", safety))
	return safety, nil
}

// prune keeps the RetainCount most recent entries across both kinds
// and deletes the rest. Deletion failures are logged and swallowed;
// retention is best-effort.
func (m *Manager) prune() {
	names, err := m.List(0)
	if err != nil {
		m.log.Warn("retention sweep skipped", zap.Error(err))
		return
	}
	for _, name := range names[min(len(names), RetainCount):] {
		if err := os.Remove(filepath.Join(m.dir, name)); err != nil {
			m.log.Warn("could not delete old backup", zap.String("name", name), zap.Error(err))
		}
	}
}

// KindOf maps a backup filename to its config kind. Filenames with an
// unknown prefix are rejected.
func KindOf(name string) (domain.Kind, error) {
	switch {
	case strings.HasPrefix(name, string(domain.KindAgent)+nameInfix):
		return domain.KindAgent, nil
	case strings.HasPrefix(name, string(domain.KindProvider)+nameInfix):
		return domain.KindProvider, nil
	default:
		return "", domain.Validationf("unknown backup type for %q", name)
	}
}

// timestampOf extracts the sortable timestamp field from a backup
// filename. Zero-padded, so lexicographic order is chronological.
func timestampOf(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	idx := strings.Index(base, nameInfix)
	if idx < 0 {
		return base
	}
	return base[idx+len(nameInfix):]
}
