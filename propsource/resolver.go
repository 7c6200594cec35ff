package propsource

import (
	"errors"
	"github.com/saylorsolutions/cliprops/assert"
	"github.com/saylorsolutions/cliprops/structures/set"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingProperty = errors.New("missing required property")
)

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Resolver.Bool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Resolver.Bool], and can be changed.
)

// Resolver looks up properties across [Sources], returning the value from the first source that has it.
type Resolver struct {
	sources *Sources
}

// NewResolver creates a [Resolver] over the given [Sources].
// Changes made to sources later are visible to the Resolver.
//
// Passing nil sources will panic.
func NewResolver(sources *Sources) *Resolver {
	if sources == nil {
		panic("nil sources")
	}
	return &Resolver{sources: sources}
}

// Sources returns the [Sources] this Resolver reads from.
func (r *Resolver) Sources() *Sources {
	return r.sources
}

// Lookup returns the value of key and the source that provided it.
// A blank key will panic.
func (r *Resolver) Lookup(key string) (string, PropertySource, bool) {
	assert.NotBlank("property key", key)
	for _, src := range r.sources.All() {
		if val, ok := src.Property(key); ok {
			return val, src, true
		}
	}
	return "", nil, false
}

// Property returns the value of key from the first source that has it.
func (r *Resolver) Property(key string) (string, bool) {
	val, _, ok := r.Lookup(key)
	return val, ok
}

// ContainsProperty reports whether any source has key.
func (r *Resolver) ContainsProperty(key string) bool {
	_, ok := r.Property(key)
	return ok
}

// String returns the value of key, or defaultVal if no source has it.
// A present but empty value, like an option given without an argument, is returned as is.
func (r *Resolver) String(key, defaultVal string) string {
	val, ok := r.Property(key)
	if !ok {
		return defaultVal
	}
	return val
}

// Strings splits the value of key on commas, trimming space and dropping empty elements.
// Nil is returned if no source has key.
func (r *Resolver) Strings(key string) []string {
	val, ok := r.Property(key)
	if !ok {
		return nil
	}
	parts := strings.Split(val, valueSeparator)
	vals := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) == 0 {
			continue
		}
		vals = append(vals, part)
	}
	return vals
}

func (r *Resolver) trimmed(key string) string {
	val, _ := r.Property(key)
	return strings.TrimSpace(val)
}

// BoolIf translates the value of key to a boolean using the given translation map, compared case-insensitive.
// The defaultVal will be returned if no source has key, the value is empty, or can't be translated.
func (r *Resolver) BoolIf(key string, defaultVal bool, translation map[bool][]string) bool {
	sval := strings.ToLower(r.trimmed(key))
	if len(sval) == 0 || translation == nil {
		return defaultVal
	}
	for _, result := range []bool{true, false} {
		for _, candidate := range translation[result] {
			if sval == strings.ToLower(candidate) {
				return result
			}
		}
	}
	return defaultVal
}

// Bool interprets the value of key as a boolean, using [DefaultTrue] and [DefaultFalse].
func (r *Resolver) Bool(key string, defaultVal bool) bool {
	return r.BoolIf(key, defaultVal, map[bool][]string{
		true:  DefaultTrue,
		false: DefaultFalse,
	})
}

// Enabled is meant for switches.
// It's true when key is present with an empty value (e.g. "--verbose"), or a value in [DefaultTrue].
func (r *Resolver) Enabled(key string) bool {
	val, ok := r.Property(key)
	if !ok {
		return false
	}
	if len(strings.TrimSpace(val)) == 0 {
		return true
	}
	return r.Bool(key, false)
}

// Int interprets the value of key as an integer, returning defaultVal if it's missing or invalid.
func (r *Resolver) Int(key string, defaultVal int64) int64 {
	sval := r.trimmed(key)
	if len(sval) == 0 {
		return defaultVal
	}
	ival, err := strconv.ParseInt(sval, 10, 64)
	if err != nil {
		return defaultVal
	}
	return ival
}

// Float interprets the value of key as a float64, returning defaultVal if it's missing or invalid.
func (r *Resolver) Float(key string, defaultVal float64) float64 {
	sval := r.trimmed(key)
	if len(sval) == 0 {
		return defaultVal
	}
	fval, err := strconv.ParseFloat(sval, 64)
	if err != nil {
		return defaultVal
	}
	return fval
}

// Duration interprets the value of key as a [time.Duration], returning defaultVal if it's missing or invalid.
func (r *Resolver) Duration(key string, defaultVal time.Duration) time.Duration {
	sval := r.trimmed(key)
	if len(sval) == 0 {
		return defaultVal
	}
	dval, err := time.ParseDuration(sval)
	if err != nil {
		return defaultVal
	}
	return dval
}

// Require returns an error listing every key that no source has.
// The returned error matches [ErrMissingProperty] with [errors.Is].
func (r *Resolver) Require(keys ...string) error {
	errs := assert.CollectErrors(", ")
	for _, key := range keys {
		if !r.ContainsProperty(key) {
			errs.Addf("%w: %s", ErrMissingProperty, key)
		}
	}
	return errs.Err()
}

// PropertyNames returns the names enumerated by every source, in order of precedence without duplicates.
func (r *Resolver) PropertyNames() []string {
	names := set.NewOrdered[string]()
	for _, src := range r.sources.All() {
		names.Add(src.PropertyNames()...)
	}
	return names.Slice()
}
