package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantError   bool
		errorString string
	}{
		{
			name:        "Missing --candidate flag",
			args:        []string{"assess", "--job", "job.json"},
			wantError:   true,
			errorString: "required",
		},
		{
			name:        "Missing --job flag",
			args:        []string{"assess", "--candidate", "candidate.json"},
			wantError:   true,
			errorString: "required",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorString != "" {
					assert.Contains(t, string(output), tt.errorString)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBatchCommand_FlagsValidation(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "batch", "--job", "job.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestBatchesCommand_RequiresDatabaseURL(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "batches")
	cmd.Env = []string{} // no DATABASE_URL
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--db-url or DATABASE_URL is required")
}
