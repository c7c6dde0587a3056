package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Protected lists the built-in registries that the del, edit and rename menus never offer.
var Protected = []string{"npm", "cnpm", "yarn", "taobao", "tencent", "huawei", "npmMirror"}

// IsProtected reports whether name is one of the built-in registries.
func IsProtected(name string) bool {
	return slices.Contains(Protected, name)
}

// HasCustom reports whether the catalog holds more entries than the protected set.
// It compares sizes only and does not check key membership.
func HasCustom(c *Catalog) bool {
	return c.Len() > len(Protected)
}

// CustomNames returns the names outside the protected set, in catalog order.
func CustomNames(c *Catalog) []string {
	var names []string

	for _, name := range c.names {
		if !IsProtected(name) {
			names = append(names, name)
		}
	}

	return names
}

// ValidateName checks a candidate registry name against c.
// Whitespace is trimmed before the empty check; the duplicate check is case-sensitive.
func ValidateName(c *Catalog, name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return ErrEmptyName
	}

	if c.Has(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	return nil
}

// ValidateURL rejects URLs that are empty after trimming whitespace.
func ValidateURL(url string) error {
	if strings.TrimSpace(url) == "" {
		return ErrEmptyURL
	}

	return nil
}

// NewEntry builds an entry from a user-supplied registry URL.
// The ping URL drops exactly one trailing slash.
func NewEntry(url string) Entry {
	url = strings.TrimSpace(url)

	return Entry{
		Home:     url,
		Registry: url,
		Ping:     strings.TrimSuffix(url, "/"),
	}
}
