package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"bizsite-backend/model"
)

// ProjectStore is the key-value registry the pipeline is given at
// process start. The pipeline itself never reaches for global state;
// persistence backends live behind this interface.
type ProjectStore interface {
	SaveProject(ctx context.Context, project *model.ProjectRecord) error
	GetProject(ctx context.Context, projectID string) (*model.ProjectRecord, error)
	DeleteProject(ctx context.Context, projectID string) error
	ListProjects(ctx context.Context) ([]string, error)
}

// MemoryStore keeps project records in process memory as JSON blobs, so
// records round-trip through the same serialization (and legacy-field
// migration) a durable backend would exercise.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	slog.Info("In-memory project store initialized")
	return &MemoryStore{records: make(map[string][]byte)}
}

// SaveProject stores a serialized copy of the record.
func (s *MemoryStore) SaveProject(ctx context.Context, project *model.ProjectRecord) error {
	data, err := project.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize project: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[project.ID] = data

	slog.Debug("Project saved", "project_id", project.ID)
	return nil
}

// GetProject retrieves and deserializes a record.
func (s *MemoryStore) GetProject(ctx context.Context, projectID string) (*model.ProjectRecord, error) {
	s.mu.RLock()
	data, exists := s.records[projectID]
	s.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("project not found: %s", projectID)
	}

	project, err := model.ProjectFromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize project: %w", err)
	}
	return project, nil
}

// DeleteProject removes a record. Deleting a missing record is not an
// error.
func (s *MemoryStore) DeleteProject(ctx context.Context, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, projectID)

	slog.Debug("Project deleted", "project_id", projectID)
	return nil
}

// ListProjects lists all stored project IDs in sorted order.
func (s *MemoryStore) ListProjects(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
