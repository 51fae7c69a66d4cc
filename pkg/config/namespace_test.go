package config

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNamespace(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "simple lowercase name",
			namespace: "backend",
			wantErr:   false,
		},
		{
			name:      "name with hyphens and digits",
			namespace: "team-a-service-2",
			wantErr:   false,
		},
		{
			name:      "single character",
			namespace: "x",
			wantErr:   false,
		},
		{
			name:      "exactly 32 characters",
			namespace: strings.Repeat("a", 32),
			wantErr:   false,
		},
		{
			name:      "empty",
			namespace: "",
			wantErr:   true,
			errMsg:    "empty",
		},
		{
			name:      "33 characters",
			namespace: strings.Repeat("a", 33),
			wantErr:   true,
			errMsg:    "exceeds 32 characters",
		},
		{
			name:      "uppercase rejected",
			namespace: "Backend",
			wantErr:   true,
			errMsg:    "outside [a-z0-9-]",
		},
		{
			name:      "underscore rejected",
			namespace: "team_a",
			wantErr:   true,
			errMsg:    "outside [a-z0-9-]",
		},
		{
			name:      "dot rejected",
			namespace: "team.a",
			wantErr:   true,
			errMsg:    "outside [a-z0-9-]",
		},
		{
			name:      "leading hyphen rejected",
			namespace: "-backend",
			wantErr:   true,
			errMsg:    "leading or trailing hyphen",
		},
		{
			name:      "trailing hyphen rejected",
			namespace: "backend-",
			wantErr:   true,
			errMsg:    "leading or trailing hyphen",
		},
		{
			name:      "reserved: default",
			namespace: "default",
			wantErr:   true,
			errMsg:    "reserved",
		},
		{
			name:      "reserved: system",
			namespace: "system",
			wantErr:   true,
			errMsg:    "reserved",
		},
		{
			name:      "reserved: internal",
			namespace: "internal",
			wantErr:   true,
			errMsg:    "reserved",
		},
		{
			name:      "reserved: admin",
			namespace: "admin",
			wantErr:   true,
			errMsg:    "reserved",
		},
		{
			name:      "reserved: pm-runner",
			namespace: "pm-runner",
			wantErr:   true,
			errMsg:    "reserved",
		},
		{
			name:      "reserved name as prefix is allowed",
			namespace: "default-api",
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNamespace(tt.namespace)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidNamespace)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// suffixFor computes the derivation suffix the same way DeriveNamespace does,
// so tests stay independent of where the test tree is checked out.
func suffixFor(t *testing.T, path string) string {
	t.Helper()
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	sum := sha256.Sum256([]byte(abs))
	return hex.EncodeToString(sum[:])[:4]
}

func TestDeriveNamespace(t *testing.T) {
	t.Run("simple folder name", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "my-awesome-project")

		ns, err := DeriveNamespace(dir)

		require.NoError(t, err)
		assert.Equal(t, "my-awesome-project-"+suffixFor(t, dir), ns)
		require.NoError(t, ValidateNamespace(ns))
	})

	t.Run("uppercase and punctuation normalized", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "My Project_v2.0")

		ns, err := DeriveNamespace(dir)

		require.NoError(t, err)
		assert.Equal(t, "my-project-v2-0-"+suffixFor(t, dir), ns)
	})

	t.Run("consecutive separators collapse to one hyphen", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a__b -- c")

		ns, err := DeriveNamespace(dir)

		require.NoError(t, err)
		assert.Equal(t, "a-b-c-"+suffixFor(t, dir), ns)
	})

	t.Run("long folder name truncated to fit 32 chars", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), strings.Repeat("verylong", 8))

		ns, err := DeriveNamespace(dir)

		require.NoError(t, err)
		assert.LessOrEqual(t, len(ns), 32)
		assert.True(t, strings.HasSuffix(ns, "-"+suffixFor(t, dir)))
		require.NoError(t, ValidateNamespace(ns))
	})

	t.Run("truncation never leaves a double hyphen", func(t *testing.T) {
		// 27th char lands on a separator; the trailing hyphen must be trimmed
		// before the suffix is appended.
		dir := filepath.Join(t.TempDir(), strings.Repeat("ab-", 20))

		ns, err := DeriveNamespace(dir)

		require.NoError(t, err)
		assert.NotContains(t, ns, "--")
		require.NoError(t, ValidateNamespace(ns))
	})

	t.Run("folder with no usable characters falls back to project", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "日本語")

		ns, err := DeriveNamespace(dir)

		require.NoError(t, err)
		assert.Equal(t, "project-"+suffixFor(t, dir), ns)
	})

	t.Run("identical folder names under different parents derive distinct namespaces", func(t *testing.T) {
		dirA := filepath.Join(t.TempDir(), "svc")
		dirB := filepath.Join(t.TempDir(), "svc")

		nsA, err := DeriveNamespace(dirA)
		require.NoError(t, err)
		nsB, err := DeriveNamespace(dirB)
		require.NoError(t, err)

		assert.NotEqual(t, nsA, nsB)
		assert.True(t, strings.HasPrefix(nsA, "svc-"))
		assert.True(t, strings.HasPrefix(nsB, "svc-"))
	})

	t.Run("derivation is deterministic", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "stable")

		first, err := DeriveNamespace(dir)
		require.NoError(t, err)
		second, err := DeriveNamespace(dir)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestResolveNamespace(t *testing.T) {
	t.Run("explicit namespace wins over derivation", func(t *testing.T) {
		dir := t.TempDir()

		ns, err := ResolveNamespace("team-a", dir)

		require.NoError(t, err)
		assert.Equal(t, "team-a", ns.Name)
		assert.False(t, ns.AutoDerived)
		assert.Equal(t, dir, ns.ProjectDir)
	})

	t.Run("invalid explicit namespace is rejected, not silently derived", func(t *testing.T) {
		_, err := ResolveNamespace("Team_A", t.TempDir())

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidNamespace)
	})

	t.Run("reserved explicit namespace is rejected", func(t *testing.T) {
		_, err := ResolveNamespace("default", t.TempDir())

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidNamespace)
	})

	t.Run("empty explicit namespace derives from project dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "billing")

		ns, err := ResolveNamespace("", dir)

		require.NoError(t, err)
		assert.Equal(t, "billing-"+suffixFor(t, dir), ns.Name)
		assert.True(t, ns.AutoDerived)
	})
}

func TestNamespaceTableName(t *testing.T) {
	ns := &NamespaceConfig{Name: "team-a"}
	assert.Equal(t, "pm-runner-queue-team-a", ns.TableName())
}

func TestNormalizeFolderName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"backend", "backend"},
		{"Backend", "backend"},
		{"My Project", "my-project"},
		{"a__b", "a-b"},
		{"v2.0.1", "v2-0-1"},
		{"--x--", "x"},
		{"!!!", ""},
		{"ABC123", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeFolderName(tt.in))
		})
	}
}
