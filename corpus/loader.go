package corpus

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"gopkg.in/yaml.v3"
)

// Loader reads test-case definitions from YAML documents. A document holds
// either a single test case or a list of them.
type Loader struct {
	fs afs.Service
}

// NewLoader creates a loader backed by the abstract file system.
func NewLoader() *Loader {
	return &Loader{fs: afs.New()}
}

// Load walks location and collects test cases from every .yaml/.yml file.
// Cases without an id are assigned one; every case gets a source fingerprint.
// Results are ordered by name for reproducible evaluation runs.
func (l *Loader) Load(ctx context.Context, location string) ([]*TestCase, error) {
	var cases []*TestCase
	visitor := func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		ext := strings.ToLower(filepath.Ext(info.Name()))
		if ext != ".yaml" && ext != ".yml" {
			return true, nil
		}
		data, err := io.ReadAll(reader)
		if err != nil {
			return false, fmt.Errorf("failed to read %s: %w", info.Name(), err)
		}
		loaded, err := parseTestCases(data)
		if err != nil {
			return false, fmt.Errorf("failed to parse %s: %w", info.Name(), err)
		}
		cases = append(cases, loaded...)
		return true, nil
	}
	if err := l.fs.Walk(ctx, location, storage.OnVisit(visitor)); err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", location, err)
	}
	if err := finalize(cases); err != nil {
		return nil, err
	}
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})
	return cases, nil
}

// LoadURL reads test cases from a single YAML document.
func (l *Loader) LoadURL(ctx context.Context, URL string) ([]*TestCase, error) {
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", URL, err)
	}
	cases, err := parseTestCases(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", URL, err)
	}
	if err := finalize(cases); err != nil {
		return nil, err
	}
	return cases, nil
}

func parseTestCases(data []byte) ([]*TestCase, error) {
	var cases []*TestCase
	if err := yaml.Unmarshal(data, &cases); err == nil {
		return cases, nil
	}
	var single TestCase
	if err := yaml.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []*TestCase{&single}, nil
}

func finalize(cases []*TestCase) error {
	for _, tc := range cases {
		if tc.ID == "" {
			tc.ID = uuid.New().String()
		}
		fingerprint, err := Fingerprint([]byte(tc.Source))
		if err != nil {
			return fmt.Errorf("failed to fingerprint %s: %w", tc.Name, err)
		}
		tc.Fingerprint = fingerprint
	}
	return nil
}
