package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"search": map[string]any{
			"maxResults":  200,
			"maxRadiusKm": 100.0,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SEARCH_MAXRESULTS", want: "search.maxResults"},
		{envKey: "SEARCH_MAXRADIUSKM", want: "search.maxRadiusKm"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestSearchConfigNormalize(t *testing.T) {
	cfg := &SearchConfig{}
	cfg.Normalize()

	if cfg.MaxResults != defaultMaxResults {
		t.Fatalf("MaxResults = %d, want %d", cfg.MaxResults, defaultMaxResults)
	}
	if cfg.MaxRadiusKm != defaultMaxRadiusKm {
		t.Fatalf("MaxRadiusKm = %v, want %v", cfg.MaxRadiusKm, defaultMaxRadiusKm)
	}

	configured := &SearchConfig{MaxResults: 50, MaxRadiusKm: 10}
	configured.Normalize()
	if configured.MaxResults != 50 || configured.MaxRadiusKm != 10 {
		t.Fatalf("Normalize overwrote configured values: %+v", configured)
	}
}
