package caseconv

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/katalvlaran/reshape/core"
)

// Word-boundary rules for ToSnake: first split an uppercase run from a
// following capitalized word (HTTPServer → HTTP_Server), then split a
// lower/digit-to-upper transition (fooBar → foo_Bar).
var (
	boundaryAcronym = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	boundaryLower   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// ToCapital converts a snake_case string to CapitalCase:
// "hello_world" → "HelloWorld".
func ToCapital(item string) string {
	words := strings.Split(item, "_")
	for i, w := range words {
		words[i] = title(w)
	}

	return strings.Join(words, "")
}

// ToSnake converts a CapitalCase or camelCase string to snake_case:
// "HelloWorld" → "hello_world", "HTTPServer" → "http_server".
func ToSnake(item string) string {
	item = boundaryAcronym.ReplaceAllString(item, "${1}_${2}")
	item = boundaryLower.ReplaceAllString(item, "${1}_${2}")

	return strings.ToLower(item)
}

// title uppercases the first rune of w and lowercases the rest.
func title(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return w
	}
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// Options configures the container-level dispatchers.
type Options struct {
	// Recursive overrides the Settings recursion default for this call.
	Recursive core.Flag

	// RaiseErrors overrides the Settings raise default for this call.
	RaiseErrors core.Flag

	// Settings supplies the configuration record; nil uses Defaults().
	Settings *core.Settings
}

// Capitalify applies ToCapital across the kind of item: text directly,
// elements of sequences, sets and tuples, keys of mappings. Unsupported
// values raise or degrade per the raise-on-failure policy.
func Capitalify(item any, opts *Options) (any, error) {
	return dispatch(item, ToCapital, opts)
}

// Snakify is the ToSnake counterpart of Capitalify.
func Snakify(item any, opts *Options) (any, error) {
	return dispatch(item, ToSnake, opts)
}

func dispatch(item any, fn func(string) string, opts *Options) (any, error) {
	var (
		recursive = core.FlagUnset
		raise     = core.FlagUnset
		set       = core.Defaults()
	)
	if opts != nil {
		recursive = opts.Recursive
		raise = opts.RaiseErrors
		if opts.Settings != nil {
			set = opts.Settings
		}
	}

	out, err := core.Apply(item, fn, recursive.Resolve(set.Recursive()))
	if err != nil {
		return core.Fallback(
			fmt.Sprintf("cannot convert case of %T", item), raise, "", item, set)
	}

	return out, nil
}
