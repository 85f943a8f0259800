package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firestore": map[string]any{
			"projectId":       "",
			"credentialsPath": "",
		},
		"storage": map[string]any{
			"bucketUrl":     "",
			"publicBaseUrl": "",
		},
		"admin": map[string]any{
			"passwordHash": "",
			"jwtSecret":    "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIRESTORE_PROJECTID", want: "firestore.projectId"},
		{envKey: "FIRESTORE_CREDENTIALSPATH", want: "firestore.credentialsPath"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "ADMIN_PASSWORDHASH", want: "admin.passwordHash"},
		{envKey: "ADMIN_JWTSECRET", want: "admin.jwtSecret"},
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
