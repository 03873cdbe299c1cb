// Package external holds clients for the two collaborator Python scripts:
// the price forecaster and the landed-cost calculator. Both speak the same
// protocol: a single JSON document passed as argv[1], a single JSON document
// printed to stdout, and a {"success": false, "error": ...} envelope on
// script-level failure.
package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
)

// Runner invokes a collaborator script and returns its stdout. It exists so
// tests can swap out real subprocess execution.
type Runner interface {
	Run(ctx context.Context, script string, payload []byte) ([]byte, error)
}

// ScriptRunner runs collaborator scripts with a configured Python
// interpreter from a configured directory.
type ScriptRunner struct {
	Python     string // interpreter, e.g. "python3"
	ScriptsDir string // directory holding the collaborator scripts
}

// Run executes one script with the JSON payload as its only argument.
func (r *ScriptRunner) Run(ctx context.Context, script string, payload []byte) ([]byte, error) {
	path := filepath.Join(r.ScriptsDir, script)
	cmd := exec.CommandContext(ctx, r.Python, path, string(payload))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%s failed: %s", script, stderr.String())
		}
		return nil, fmt.Errorf("%s failed: %w", script, err)
	}
	return stdout.Bytes(), nil
}

// decodeEnvelope parses a collaborator response into out, surfacing the
// script's own error envelope as a Go error.
func decodeEnvelope(script string, raw []byte, out any) error {
	var envelope struct {
		Success *bool  `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("%s returned malformed output: %w", script, err)
	}
	if envelope.Success != nil && !*envelope.Success {
		return fmt.Errorf("%s reported error: %s", script, envelope.Error)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s returned malformed output: %w", script, err)
	}
	return nil
}
