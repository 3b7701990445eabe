package workflow

import (
	"encoding/json"
	"fmt"

	"github.com/intelia/rfpaccel/store"
)

// Context carries everything completed steps produced forward to later
// steps. Keys are only ever added or overwritten, never removed, so a
// context serialized after step N seeds a resume from step N+1. Values
// restored from JSON arrive as generic maps and slices; the accessors
// tolerate both the native and the restored shape.
type Context map[string]interface{}

// MissingKeyError reports a required context key a step could not find,
// typically because the step that produces it was skipped.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing required context key: %v", e.Key)
}

// Set stores value under key, overwriting any previous value.
func (c Context) Set(key string, value interface{}) {
	c[key] = value
}

// Merge folds updates into the context.
func (c Context) Merge(updates map[string]interface{}) {
	for key, value := range updates {
		c[key] = value
	}
}

// Value returns the raw value under key.
func (c Context) Value(key string) (interface{}, bool) {
	value, ok := c[key]
	return value, ok
}

// String returns the string under key, or "" when the key is absent or
// holds a non-string.
func (c Context) String(key string) string {
	value, ok := c[key]
	if !ok {
		return ""
	}
	text, _ := value.(string)
	return text
}

// RequiredString returns the non-empty string under key, or a
// MissingKeyError naming it.
func (c Context) RequiredString(key string) (string, error) {
	if text := c.String(key); text != "" {
		return text, nil
	}
	return "", &MissingKeyError{Key: key}
}

// Bool returns the boolean under key, false when absent.
func (c Context) Bool(key string) bool {
	value, ok := c[key]
	if !ok {
		return false
	}
	flag, _ := value.(bool)
	return flag
}

// Strings returns the string slice under key. A slice restored from JSON
// arrives as []interface{}; non-string elements are dropped.
func (c Context) Strings(key string) []string {
	value, ok := c[key]
	if !ok {
		return nil
	}
	switch actual := value.(type) {
	case []string:
		return actual
	case []interface{}:
		result := make([]string, 0, len(actual))
		for _, item := range actual {
			if text, ok := item.(string); ok {
				result = append(result, text)
			}
		}
		return result
	}
	return nil
}

// RequiredStrings returns the non-empty string slice under key, or a
// MissingKeyError naming it.
func (c Context) RequiredStrings(key string) ([]string, error) {
	if values := c.Strings(key); len(values) > 0 {
		return values, nil
	}
	return nil, &MissingKeyError{Key: key}
}

// Subfolders returns the workspace subfolders recorded by ingestion.
func (c Context) Subfolders() (*store.Subfolders, error) {
	value, ok := c[KeySubfolders]
	if !ok {
		return nil, &MissingKeyError{Key: KeySubfolders}
	}
	subfolders := &store.Subfolders{}
	if err := decode(value, subfolders); err != nil {
		return nil, fmt.Errorf("malformed %v context value: %w", KeySubfolders, err)
	}
	return subfolders, nil
}

// Clone returns a shallow copy of the context.
func (c Context) Clone() Context {
	clone := make(Context, len(c))
	for key, value := range c {
		clone[key] = value
	}
	return clone
}

// decode converts a context value into target through its JSON form, so
// native structs and shapes restored from persisted JSON both decode.
func decode(value, target interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}
