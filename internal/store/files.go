package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"brainrot-value-bot/internal/types"
)

const (
	dataFile     = "brainrots.json"
	overrideFile = "overrides.json"
	channelFile  = "channels.json"
)

// Files bundles the three durable documents: canonical valuations,
// administrator overrides, and channel configuration. Each document is
// read fully and rewritten fully; a per-document mutex serializes
// read-modify-write sequences so store mutations never interleave.
type Files struct {
	dir string

	dataMu     sync.Mutex
	overrideMu sync.Mutex
	channelMu  sync.Mutex
}

// Open prepares the store directory, creating any missing document with
// a sane empty default. A document that exists but does not parse is an
// error: administrator intent cannot be guessed, so the caller must
// refuse to run.
func Open(dir string) (*Files, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	f := &Files{dir: dir}

	if err := initDocument(filepath.Join(dir, dataFile), map[string]types.ValuationRecord{}); err != nil {
		return nil, err
	}
	if err := initDocument(filepath.Join(dir, overrideFile), map[string]types.OverrideRecord{}); err != nil {
		return nil, err
	}
	if err := initDocument(filepath.Join(dir, channelFile), types.ChannelConfig{}); err != nil {
		return nil, err
	}

	// Fail fast on corruption before anything mutates state.
	if _, err := f.Data(); err != nil {
		return nil, err
	}
	if _, err := f.Overrides(); err != nil {
		return nil, err
	}
	if _, err := f.Channels(); err != nil {
		return nil, err
	}
	return f, nil
}

func initDocument(path string, empty any) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return writeDocument(path, empty)
}

// writeDocument writes via a temp file and rename so a partially-written
// document is never observable.
func writeDocument(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

func readDocument(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Data returns the canonical valuation mapping.
func (f *Files) Data() (map[string]types.ValuationRecord, error) {
	m := map[string]types.ValuationRecord{}
	if err := readDocument(filepath.Join(f.dir, dataFile), &m); err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateData runs fn against the current data mapping under the data lock
// and persists the result. fn returning an error aborts without writing.
func (f *Files) UpdateData(fn func(map[string]types.ValuationRecord) error) error {
	f.dataMu.Lock()
	defer f.dataMu.Unlock()

	m, err := f.Data()
	if err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return err
	}
	return writeDocument(filepath.Join(f.dir, dataFile), m)
}

// Overrides returns the administrator override mapping.
func (f *Files) Overrides() (map[string]types.OverrideRecord, error) {
	m := map[string]types.OverrideRecord{}
	if err := readDocument(filepath.Join(f.dir, overrideFile), &m); err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateOverrides runs fn against the override mapping under the override
// lock and persists the result.
func (f *Files) UpdateOverrides(fn func(map[string]types.OverrideRecord) error) error {
	f.overrideMu.Lock()
	defer f.overrideMu.Unlock()

	m, err := f.Overrides()
	if err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return err
	}
	return writeDocument(filepath.Join(f.dir, overrideFile), m)
}

// Channels returns the notification channel configuration.
func (f *Files) Channels() (types.ChannelConfig, error) {
	var c types.ChannelConfig
	if err := readDocument(filepath.Join(f.dir, channelFile), &c); err != nil {
		return types.ChannelConfig{}, err
	}
	return c, nil
}

// UpdateChannels runs fn against the channel config under the channel
// lock and persists the result.
func (f *Files) UpdateChannels(fn func(*types.ChannelConfig) error) error {
	f.channelMu.Lock()
	defer f.channelMu.Unlock()

	c, err := f.Channels()
	if err != nil {
		return err
	}
	if err := fn(&c); err != nil {
		return err
	}
	return writeDocument(filepath.Join(f.dir, channelFile), c)
}
