package templates

import (
	"fmt"
	"regexp"
	"strings"
)

// Fabric mod identifier rule: lowercase letter first, then lowercase
// letters, digits, underscores, or hyphens.
var modIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Java identifier rule, applied to every segment of the main class.
var javaIdentifierRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// ValidateModID checks a mod identifier against the Fabric convention.
func ValidateModID(id string) error {
	if id == "" {
		return fmt.Errorf("mod id cannot be empty")
	}
	if !modIDRegex.MatchString(id) {
		return fmt.Errorf("invalid mod id %q: must start with a lowercase letter and contain only lowercase letters, digits, underscores, and hyphens", id)
	}
	return nil
}

// SplitMainClass decomposes a fully qualified class name into its package
// and simple class name. The class must live in a package of at least two
// segments so a maven group can be split off for gradle.properties.
func SplitMainClass(fqn string) (pkg, class string, err error) {
	if fqn == "" {
		return "", "", fmt.Errorf("main class cannot be empty")
	}

	segments := strings.Split(fqn, ".")
	if len(segments) < 3 {
		return "", "", fmt.Errorf("invalid main class %q: expected a package of at least two segments and a class name, like com.example.MyMod", fqn)
	}

	for _, s := range segments {
		if !javaIdentifierRegex.MatchString(s) {
			return "", "", fmt.Errorf("invalid main class %q: segment %q is not a valid identifier", fqn, s)
		}
	}

	idx := strings.LastIndex(fqn, ".")
	return fqn[:idx], fqn[idx+1:], nil
}

// SplitPackage splits a package into the maven group (everything before the
// final segment) and the archives base name (the final segment), matching
// how the generated gradle.properties is filled in.
func SplitPackage(pkg string) (group, base string) {
	idx := strings.LastIndex(pkg, ".")
	if idx < 0 {
		return pkg, pkg
	}
	return pkg[:idx], pkg[idx+1:]
}

// PackagePath converts a package to its source-tree directory path.
func PackagePath(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}
