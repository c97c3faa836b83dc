package logger

import (
	"testing"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		wantErr    bool
	}{
		{
			name:       "JSON output mode",
			jsonOutput: true,
			wantErr:    false,
		},
		{
			name:       "Console output mode",
			jsonOutput: false,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset global logger
			Logger = nil
			JSONOutput = false

			err := Initialize(tt.jsonOutput)
			if (err != nil) != tt.wantErr {
				t.Errorf("Initialize() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if Logger == nil {
					t.Error("Initialize() did not set global Logger")
				}
				if JSONOutput != tt.jsonOutput {
					t.Errorf("Initialize() JSONOutput = %v, want %v", JSONOutput, tt.jsonOutput)
				}
			}

			// Cleanup
			if Logger != nil {
				Logger.Sync()
				Logger = nil
			}
		})
	}
}

func TestForwardersBeforeInitialize(t *testing.T) {
	// The package-level no-op logger must absorb calls made before Initialize.
	Logger = nil
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("logging before Initialize panicked: %v", r)
		}
	}()

	Info("info")
	Infof("info %d", 1)
	Infow("info", "k", "v")
	Warn("warn")
	Error("error")
	Debug("debug")
	Cleanup()
}
