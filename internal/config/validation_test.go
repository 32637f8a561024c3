package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr string
	}{
		{name: "defaults", mutate: func(s *Settings) {}},
		{name: "bm25 engine", mutate: func(s *Settings) { s.Engine = EngineBM25 }},
		{name: "zero limit", mutate: func(s *Settings) { s.SearchLimit = 0 }},
		{name: "negative limit", mutate: func(s *Settings) { s.SearchLimit = -1 }, wantErr: "searchLimit"},
		{name: "negative debounce", mutate: func(s *Settings) { s.DebounceMillis = -5 }, wantErr: "debounceMillis"},
		{name: "negative recent", mutate: func(s *Settings) { s.RecentLimit = -1 }, wantErr: "recentLimit"},
		{name: "zero retention keeps history", mutate: func(s *Settings) { s.HistoryRetentionDays = 0 }},
		{name: "negative retention", mutate: func(s *Settings) { s.HistoryRetentionDays = -1 }, wantErr: "historyRetentionDays"},
		{name: "unknown engine", mutate: func(s *Settings) { s.Engine = "vector" }, wantErr: "unknown engine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg.Settings)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMissingSettings(t *testing.T) {
	if err := Validate(&Config{}); err == nil {
		t.Error("config without settings should fail validation")
	}
	if err := Validate(nil); err == nil {
		t.Error("nil config should fail validation")
	}
}
