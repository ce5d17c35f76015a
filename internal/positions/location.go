package positions

import (
	"fmt"
	"strconv"
	"strings"
)

// Location names one map within a world. Index distinguishes maps that
// share a name, such as the floors of one building; zero means unindexed.
type Location struct {
	Name  string
	Index uint16
}

// NewLocation creates an unindexed location.
func NewLocation(name string) Location {
	return Location{Name: name}
}

// String renders the location as "name" or "name:index".
func (l Location) String() string {
	if l.Index == 0 {
		return l.Name
	}
	return l.Name + ":" + strconv.FormatUint(uint64(l.Index), 10)
}

// ParseLocation parses the String form.
func ParseLocation(s string) (Location, error) {
	name, index, found := strings.Cut(s, ":")
	if name == "" {
		return Location{}, fmt.Errorf("empty location name in %q", s)
	}
	if !found {
		return Location{Name: name}, nil
	}
	i, err := strconv.ParseUint(index, 10, 16)
	if err != nil {
		return Location{}, fmt.Errorf("invalid location index in %q: %w", s, err)
	}
	return Location{Name: name, Index: uint16(i)}, nil
}

// MarshalText lets locations key JSON objects.
func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText parses the String form.
func (l *Location) UnmarshalText(text []byte) error {
	parsed, err := ParseLocation(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
