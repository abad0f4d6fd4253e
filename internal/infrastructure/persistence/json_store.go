package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSONStore keeps run records in a local JSON file
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	data     *jsonData
}

type jsonData struct {
	Runs map[string]RunRecord `json:"runs"`
}

// NewJSONStore opens the store at filePath, creating the file if needed
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{
		filePath: filePath,
		data:     &jsonData{Runs: make(map[string]RunRecord)},
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := store.loadFromFile(); err != nil {
			return nil, fmt.Errorf("failed to load JSON store: %w", err)
		}
	} else {
		if err := store.saveToFile(); err != nil {
			return nil, fmt.Errorf("failed to create JSON store file: %w", err)
		}
	}

	return store, nil
}

func (js *JSONStore) loadFromFile() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	file, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(file, js.data); err != nil {
		return err
	}
	if js.data.Runs == nil {
		js.data.Runs = make(map[string]RunRecord)
	}
	return nil
}

func (js *JSONStore) saveToFile() error {
	js.mutex.RLock()
	data, err := json.MarshalIndent(js.data, "", "  ")
	js.mutex.RUnlock()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(js.filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(js.filePath, data, 0644)
}

// SaveRun stores a run and flushes the file
func (js *JSONStore) SaveRun(run RunRecord) error {
	js.mutex.Lock()
	js.data.Runs[run.ID] = run
	js.mutex.Unlock()

	if err := js.saveToFile(); err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}
	return nil
}

// LoadRun loads a run by ID
func (js *JSONStore) LoadRun(id string) (RunRecord, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	run, ok := js.data.Runs[id]
	if !ok {
		return RunRecord{}, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	return run, nil
}

// TopRuns returns up to n best runs
func (js *JSONStore) TopRuns(n int) ([]RunRecord, error) {
	js.mutex.RLock()
	runs := make([]RunRecord, 0, len(js.data.Runs))
	for _, run := range js.data.Runs {
		runs = append(runs, run)
	}
	js.mutex.RUnlock()

	rankRuns(runs)
	if n >= 0 && len(runs) > n {
		runs = runs[:n]
	}
	return runs, nil
}

// Close closes the store (no-op for JSON store)
func (js *JSONStore) Close() error {
	return nil
}
