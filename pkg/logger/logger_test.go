package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	testCases := []struct {
		name      string
		level     Level
		wantInfo  bool
		wantWarn  bool
		wantDebug bool
	}{
		{"quiet", Quiet, false, false, false},
		{"normal", Normal, true, true, false},
		{"verbose", Verbose, true, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tc.level, &buf)

			log.Infof("info %d", 1)
			log.Warnf("warn %d", 2)
			log.Debugf("debug %d", 3)

			out := buf.String()
			if got := strings.Contains(out, "info 1"); got != tc.wantInfo {
				t.Errorf("info visibility = %v, want %v", got, tc.wantInfo)
			}
			if got := strings.Contains(out, "warning: warn 2"); got != tc.wantWarn {
				t.Errorf("warn visibility = %v, want %v", got, tc.wantWarn)
			}
			if got := strings.Contains(out, "debug 3"); got != tc.wantDebug {
				t.Errorf("debug visibility = %v, want %v", got, tc.wantDebug)
			}
		})
	}
}

func TestLogger_DebugIndented(t *testing.T) {
	var buf bytes.Buffer
	New(Verbose, &buf).Debugf("detail")
	if buf.String() != "      detail\n" {
		t.Errorf("Unexpected debug line: %q", buf.String())
	}
}

func TestLogger_NilReceiverIsSafe(t *testing.T) {
	var log *Logger
	log.Infof("nothing happens")
	log.Warnf("nothing happens")
	log.Debugf("nothing happens")
}

func TestNop(t *testing.T) {
	Nop().Infof("discarded")
}
