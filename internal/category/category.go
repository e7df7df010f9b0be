package category

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/guitarkeep/hub/internal/errors"
	"github.com/guitarkeep/hub/internal/models"
)

// Outside is the stored room type that every room-scoped query also matches.
const Outside = "Outside"

// OutsideID is the identifier of Outside.
const OutsideID = "outside"

// Kind names what a registry holds, used in error messages
type Kind string

const (
	RoomType Kind = "room type"
	DataType Kind = "data type"
)

// Category is one configured value
type Category struct {
	Name       string
	Identifier string
}

// Registry is the closed set of categories of one kind. It is immutable
// after construction and safe for concurrent use.
type Registry struct {
	kind    Kind
	ordered []Category
	byID    map[string]Category
	byName  map[string]Category
}

// IdentifierFor derives the short identifier of a display name: the first
// character is lowercased, spaces are removed from the rest and every other
// character keeps its case. "Living Room" becomes "livingRoom".
func IdentifierFor(displayName string) string {
	if displayName == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(displayName)
	rest := strings.ReplaceAll(displayName[size:], " ", "")
	return string(unicode.ToLower(first)) + rest
}

// NewRegistry builds a registry from display names in configured order.
// Empty, duplicate or colliding entries are configuration errors.
func NewRegistry(kind Kind, displayNames []string) (*Registry, error) {
	r := &Registry{
		kind:    kind,
		ordered: make([]Category, 0, len(displayNames)),
		byID:    make(map[string]Category, len(displayNames)),
		byName:  make(map[string]Category, len(displayNames)),
	}
	for i, raw := range displayNames {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, errors.NewConfigurationError(fmt.Sprintf("%s entry %d is empty", kind, i), nil)
		}
		id := IdentifierFor(name)
		if existing, ok := r.byID[id]; ok {
			return nil, errors.NewConfigurationError(
				fmt.Sprintf("%s %q collides with %q on identifier %q", kind, name, existing.Name, id), nil)
		}
		c := Category{Name: name, Identifier: id}
		r.ordered = append(r.ordered, c)
		r.byID[id] = c
		r.byName[name] = c
	}
	return r, nil
}

// Resolve looks a selector up by identifier first, then by display name.
func (r *Registry) Resolve(selector string) (Category, error) {
	if c, ok := r.byID[selector]; ok {
		return c, nil
	}
	if c, ok := r.byName[selector]; ok {
		return c, nil
	}
	return Category{}, errors.NewUnknownCategoryError(string(r.kind), selector)
}

// Categories returns the configured entries in order
func (r *Registry) Categories() []Category {
	out := make([]Category, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Info converts the registry to its API listing form
func (r *Registry) Info() []models.CategoryInfo {
	out := make([]models.CategoryInfo, 0, len(r.ordered))
	for _, c := range r.ordered {
		out = append(out, models.CategoryInfo{Name: c.Name, Identifier: c.Identifier})
	}
	return out
}

// Set bundles the room and data type registries loaded at startup
type Set struct {
	Rooms *Registry
	Data  *Registry
}

// Load parses both configured lists, failing on the first invalid one.
func Load(roomTypes, dataTypes []string) (*Set, error) {
	rooms, err := NewRegistry(RoomType, roomTypes)
	if err != nil {
		return nil, err
	}
	data, err := NewRegistry(DataType, dataTypes)
	if err != nil {
		return nil, err
	}
	return &Set{Rooms: rooms, Data: data}, nil
}

// Listing returns both registries in their API form
func (s *Set) Listing() models.CategoryListing {
	return models.CategoryListing{
		RoomTypes: s.Rooms.Info(),
		DataTypes: s.Data.Info(),
	}
}
