package quiz

import "strings"

// DefaultCategoryImage is served when a category has no image of its
// own.
const DefaultCategoryImage = "/default-category.webp"

// ResolveImageURL turns whatever image reference the backend stored
// into something displayable. Absolute URLs and data URLs pass
// through; relative paths are joined to base with exactly one slash.
func ResolveImageURL(base, path string) string {
	if path == "" {
		return DefaultCategoryImage
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "data:") {
		return path
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
