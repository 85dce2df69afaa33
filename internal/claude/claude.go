// Package claude generates text by invoking the claude CLI in print mode.
package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/jadiha/little-prince/internal/util"
)

// Invoker runs the claude CLI. It satisfies prince.Generator.
type Invoker struct {
	ClaudePath   string
	Model        string
	MaxBudgetUSD float64
}

// buildEnv strips CLAUDECODE so the CLI can run from inside another session.
func buildEnv(base []string) []string {
	env := make([]string, 0, len(base)+1)
	for _, e := range base {
		if !strings.HasPrefix(e, "CLAUDECODE=") {
			env = append(env, e)
		}
	}
	env = append(env, "CLAUDE_CODE_DISABLE_MCP_POPUPS=1")
	return env
}

// buildArgs constructs the CLI arguments for one print-mode call.
func (inv *Invoker) buildArgs(system, prompt string) []string {
	args := []string{
		"-p", prompt,
		"--output-format", "json",
	}
	if system != "" {
		args = append(args, "--system-prompt", system)
	}
	if inv.Model != "" {
		args = append(args, "--model", inv.Model)
	}
	if inv.MaxBudgetUSD > 0 {
		args = append(args, "--max-budget-usd", fmt.Sprintf("%.2f", inv.MaxBudgetUSD))
	}
	return args
}

// Generate runs the CLI and returns its result text. The CLI has no token cap
// flag, so maxTokens is folded into the prompt as a length hint.
func (inv *Invoker) Generate(ctx context.Context, system, user string, maxTokens int) (string, error) {
	prompt := user
	if maxTokens > 0 {
		prompt = fmt.Sprintf("%s\n\n(Answer in at most %d tokens.)", user, maxTokens)
	}
	args := inv.buildArgs(system, prompt)

	cmd := exec.CommandContext(ctx, inv.ClaudePath, args...)
	cmd.SysProcAttr = sessionAttr()
	cmd.Env = buildEnv(os.Environ())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	util.Debugf("[claude] running: %s (model=%q)", inv.ClaudePath, inv.Model)

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("claude invocation failed: %w\nstderr: %s", err, stderr.String())
	}
	return parseOutput(stdout.Bytes())
}

func parseOutput(raw []byte) (string, error) {
	var resp CLIResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("failed to parse claude JSON output: %w\nraw output: %s", err, string(raw))
	}
	if resp.IsError {
		return "", fmt.Errorf("claude returned error: %s", resp.Result)
	}
	util.Debugf("[claude] cost=$%.4f duration=%dms", resp.TotalCostUSD, resp.DurationMs)
	return resp.Result, nil
}

// Validate checks that the CLI is installed and runnable.
func (inv *Invoker) Validate() error {
	cmd := exec.Command(inv.ClaudePath, "--version")
	cmd.Env = buildEnv(os.Environ())

	out, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("claude CLI not found at %q: %w", inv.ClaudePath, err)
	}
	util.Debugf("[claude] version: %s", strings.TrimSpace(string(out)))
	return nil
}
