// Package store loads and saves the two opencode config documents.
// Reads are lenient (JSONC tolerated), writes are always canonical
// two-space JSON with a trailing newline.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/joss/agentcfg/internal/domain"
)

// Store reads and writes the agent and provider config files.
type Store struct {
	agentPath    string
	providerPath string
	log          *zap.Logger
}

// New creates a store over the two config file paths.
func New(agentPath, providerPath string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{agentPath: agentPath, providerPath: providerPath, log: log}
}

// AgentPath returns the agent config file path.
func (s *Store) AgentPath() string { return s.agentPath }

// ProviderPath returns the provider config file path.
func (s *Store) ProviderPath() string { return s.providerPath }

// PathFor returns the live file path for a config kind.
func (s *Store) PathFor(kind domain.Kind) string {
	if kind == domain.KindProvider {
		return s.providerPath
	}
	return s.agentPath
}

// LoadAgent reads the agent config. A missing file yields an empty
// document; any other read or parse failure is fatal for the request.
func (s *Store) LoadAgent() (*domain.Document, error) {
	return s.load(s.agentPath)
}

// LoadProvider reads the provider config.
func (s *Store) LoadProvider() (*domain.Document, error) {
	return s.load(s.providerPath)
}

// SaveAgent writes the agent config canonically.
func (s *Store) SaveAgent(doc *domain.Document) error {
	return s.save(s.agentPath, doc)
}

// SaveProvider writes the provider config canonically.
func (s *Store) SaveProvider(doc *domain.Document) error {
	return s.save(s.providerPath, doc)
}

func (s *Store) load(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug("config file missing, using empty default", zap.String("path", path))
		return domain.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	s.log.Debug("loaded config", zap.String("path", path), zap.Int("keys", doc.Len()))
	return doc, nil
}

func (s *Store) save(path string, doc *domain.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	s.log.Debug("saved config", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}
