package integration_test

import (
	"testing"

	"github.com/renato0307/versioninfo/test/integration/harness"
)

func TestLifecycle(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, repo *harness.TestRepo, result harness.CommandResult)
	}{
		{
			name:         "list commands",
			args:         []string{"--list"},
			wantExitCode: 0,
			validate: func(t *testing.T, repo *harness.TestRepo, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "deploy\n")
				harness.AssertStdoutContains(t, result, "deploy:function\n")
				harness.AssertStdoutContains(t, result, "offline:start\n")
			},
		},
		{
			name:         "deploy events include the plugin event first",
			args:         []string{"deploy", "--events"},
			wantExitCode: 0,
			validate: func(t *testing.T, repo *harness.TestRepo, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "before:deploy:functions\ndeploy:functions\nafter:deploy:functions\nbefore:deploy:initialize\n")
			},
		},
		{
			name:         "deploy fires the hook and sets the variable",
			args:         []string{"deploy"},
			wantExitCode: 0,
			validate: func(t *testing.T, repo *harness.TestRepo, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "before:deploy:functions")
				harness.AssertStdoutContains(t, result, `LAMBDA_VERSION="1.0.0-1 (main/`+repo.Head()+`+0)"`)
			},
		},
		{
			name:         "offline start fires the hook",
			args:         []string{"offline:start"},
			wantExitCode: 0,
			validate: func(t *testing.T, repo *harness.TestRepo, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "before:offline:start:init")
				harness.AssertStdoutContains(t, result, "LAMBDA_VERSION=")
			},
		},
		{
			name:         "space separated command path",
			args:         []string{"offline start"},
			wantExitCode: 0,
			validate: func(t *testing.T, repo *harness.TestRepo, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "before:offline:start:init")
			},
		},
		{
			name:         "deploy function fires no plugin hook",
			args:         []string{"deploy:function"},
			wantExitCode: 0,
			validate: func(t *testing.T, repo *harness.TestRepo, result harness.CommandResult) {
				harness.AssertStdoutNotContains(t, result, "LAMBDA_VERSION")
			},
		},
		{
			name:         "unknown command",
			args:         []string{"package"},
			wantExitCode: 1,
			validate: func(t *testing.T, repo *harness.TestRepo, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "package")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			repo := harness.NewTestRepo(t, "1.0.0")

			args := append([]string{"lifecycle", "--dir", repo.Path}, tt.args...)
			result := harness.RunCommand(t, env, args...)

			harness.AssertExitCode(t, result, tt.wantExitCode)
			if tt.validate != nil {
				tt.validate(t, repo, result)
			}
		})
	}
}
