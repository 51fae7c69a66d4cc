package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// TableNamePrefix is prepended to the namespace to form the logical queue
// table name reported by the health and namespace endpoints.
const TableNamePrefix = "pm-runner-queue-"

// maxNamespaceLen bounds the whole namespace key, derivation suffix included.
const maxNamespaceLen = 32

// namespaceSuffixLen is the number of hex chars taken from sha256(abs_path).
const namespaceSuffixLen = 4

var namespacePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// reservedNamespaces may not be used as namespace keys; they collide with
// operational tooling conventions.
var reservedNamespaces = map[string]struct{}{
	"default":   {},
	"system":    {},
	"internal":  {},
	"admin":     {},
	"pm-runner": {},
}

// NamespaceConfig is the resolved namespace identity for this process.
type NamespaceConfig struct {
	// Name is the validated namespace key
	Name string `yaml:"name"`
	// AutoDerived is true when Name came from the project path rather than
	// explicit configuration
	AutoDerived bool `yaml:"-"`
	// ProjectDir is the absolute project path the namespace was derived from
	ProjectDir string `yaml:"-"`
}

// TableName returns the logical queue table name for the namespace.
func (n *NamespaceConfig) TableName() string {
	return TableNamePrefix + n.Name
}

// ValidateNamespace checks a namespace key against the isolation rules:
// 1–32 chars, lowercase alphanumerics and hyphens, no leading or trailing
// hyphen, not a reserved name.
func ValidateNamespace(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidNamespace)
	}
	if len(name) > maxNamespaceLen {
		return fmt.Errorf("%w: %q exceeds %d characters", ErrInvalidNamespace, name, maxNamespaceLen)
	}
	if !namespacePattern.MatchString(name) {
		return fmt.Errorf("%w: %q contains characters outside [a-z0-9-]", ErrInvalidNamespace, name)
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		return fmt.Errorf("%w: %q has a leading or trailing hyphen", ErrInvalidNamespace, name)
	}
	if _, reserved := reservedNamespaces[name]; reserved {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidNamespace, name)
	}
	return nil
}

// DeriveNamespace builds the default namespace for a project path:
// the folder name normalized to [a-z0-9-], truncated so the whole key fits
// in 32 chars, suffixed with the first 4 hex chars of sha256(abs_path).
// Distinct paths with identical folder names stay isolated via the suffix.
func DeriveNamespace(projectPath string) (string, error) {
	abs, err := filepath.Abs(projectPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project path %q: %w", projectPath, err)
	}

	folder := normalizeFolderName(filepath.Base(abs))
	if folder == "" {
		folder = "project"
	}

	maxFolderLen := maxNamespaceLen - namespaceSuffixLen - 1 // room for "-" + suffix
	if len(folder) > maxFolderLen {
		folder = strings.TrimRight(folder[:maxFolderLen], "-")
	}

	sum := sha256.Sum256([]byte(abs))
	suffix := hex.EncodeToString(sum[:])[:namespaceSuffixLen]

	name := folder + "-" + suffix
	if err := ValidateNamespace(name); err != nil {
		return "", fmt.Errorf("derived namespace rejected: %w", err)
	}
	return name, nil
}

// normalizeFolderName lowercases the folder name and collapses every run of
// characters outside [a-z0-9] into a single hyphen.
func normalizeFolderName(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	lastHyphen := false
	for _, r := range lower {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// ResolveNamespace returns the process namespace: the explicit key when
// configured (validated), otherwise the auto-derived one.
func ResolveNamespace(explicit, projectDir string) (*NamespaceConfig, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project dir %q: %w", projectDir, err)
	}

	if explicit != "" {
		if err := ValidateNamespace(explicit); err != nil {
			return nil, err
		}
		return &NamespaceConfig{Name: explicit, AutoDerived: false, ProjectDir: abs}, nil
	}

	derived, err := DeriveNamespace(abs)
	if err != nil {
		return nil, err
	}
	return &NamespaceConfig{Name: derived, AutoDerived: true, ProjectDir: abs}, nil
}
