package hdf5

import (
	"fmt"
	"strings"
)

// ParseAttrPath splits an attribute path of the form
// /group/subgroup/object@attribute_name into the object path and the
// attribute name. The last '@' wins, so object names containing '@' still
// resolve as long as the attribute name follows one more.
//
//	"/@root_attr"              -> "/", "root_attr"
//	"/data@units"              -> "/data", "units"
//	"/sensors/temp@calibration" -> "/sensors/temp", "calibration"
func ParseAttrPath(path string) (objectPath, attrName string, err error) {
	if path == "" {
		return "", "", fmt.Errorf("%w: empty attribute path", ErrInvalidPath)
	}

	atIdx := strings.LastIndex(path, "@")
	if atIdx == -1 {
		return "", "", fmt.Errorf("%w: attribute path must contain '@': %s", ErrInvalidPath, path)
	}

	objectPath, attrName = path[:atIdx], path[atIdx+1:]
	if attrName == "" {
		return "", "", fmt.Errorf("%w: attribute name cannot be empty: %s", ErrInvalidPath, path)
	}

	// "/@attr" and "attr-on-root" shorthand both mean the root group.
	if objectPath == "" {
		objectPath = "/"
	}
	if !strings.HasPrefix(objectPath, "/") {
		objectPath = "/" + objectPath
	}

	return objectPath, attrName, nil
}

// JoinAttrPath is the inverse of ParseAttrPath.
func JoinAttrPath(objectPath, attrName string) string {
	if objectPath == "/" {
		return "/@" + attrName
	}
	return objectPath + "@" + attrName
}

// SplitPath splits a path into its components, dropping empty components
// from leading/trailing/repeated slashes.
//
//	"/"        -> []
//	"/foo"     -> ["foo"]
//	"/foo/bar" -> ["foo", "bar"]
func SplitPath(path string) []string {
	parts := []string{}
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// CleanPath normalizes a path to start with "/" and carry no trailing slash.
func CleanPath(path string) string {
	if path == "" || path == "/" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(path, "/")
}
