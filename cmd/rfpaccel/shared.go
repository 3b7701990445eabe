package rfpaccel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/intelia/rfpaccel/config"
	"github.com/intelia/rfpaccel/service"
	"github.com/intelia/rfpaccel/workflow"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

var (
	cfgMu    sync.RWMutex
	cfgPath  string
	logLevel string
)

// called from CLI before full flag parsing
func setConfigPath(p string) {
	cfgMu.Lock()
	cfgPath = p
	cfgMu.Unlock()
}

func setLogLevel(l string) {
	cfgMu.Lock()
	logLevel = l
	cfgMu.Unlock()
}

// buildService loads configuration and assembles the application service.
func buildService(ctx context.Context) (*service.Service, error) {
	cfgMu.RLock()
	path, level := cfgPath, logLevel
	cfgMu.RUnlock()

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	if level != "" {
		cfg.LogLevel = level
	}
	return service.New(ctx, cfg)
}

// writeContext persists the workflow context so a later resume can pick
// the run up from where it stopped.
func writeContext(ctx context.Context, URL string, workflowContext workflow.Context) error {
	if URL == "" || workflowContext == nil {
		return nil
	}
	data, err := json.MarshalIndent(workflowContext, "", "  ")
	if err != nil {
		return err
	}
	if err := afs.New().Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write context %v: %w", URL, err)
	}
	return nil
}

func printOutcome(outcome *workflow.Outcome) {
	data, _ := json.MarshalIndent(outcome, "", "  ")
	fmt.Println(string(data))
}
