// Package literal converts command-line words into Go values for the funs
// CLI, and renders normalized parameters back into the same notation.
//
// Accepted forms:
//   - JSON values: 1, "a", true, null, [1,2], {"k":1}
//   - undefined, NaN
//   - fn: a callback that returns the error it receives
//   - /expr/: a compiled regular expression
//   - @2006-01-02T15:04:05Z: an RFC 3339 date
package literal

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/copenhas/funs/value"
)

// Parse converts one word into a value.
func Parse(word string) (any, error) {
	switch {
	case word == "undefined":
		return value.Undefined, nil
	case word == "NaN":
		return math.NaN(), nil
	case word == "fn":
		return Echo, nil
	case len(word) >= 2 && strings.HasPrefix(word, "/") && strings.HasSuffix(word, "/"):
		re, err := regexp.Compile(word[1 : len(word)-1])
		if err != nil {
			return nil, fmt.Errorf("invalid regexp literal %s: %w", word, err)
		}
		return re, nil
	case strings.HasPrefix(word, "@"):
		t, err := time.Parse(time.RFC3339, word[1:])
		if err != nil {
			return nil, fmt.Errorf("invalid date literal %s: %w", word, err)
		}
		return t, nil
	}

	var v any
	if err := json.Unmarshal([]byte(word), &v); err != nil {
		return nil, fmt.Errorf("invalid literal %s: %w", word, err)
	}
	return v, nil
}

// ParseAll converts every word, stopping at the first error.
func ParseAll(words []string) ([]any, error) {
	out := make([]any, 0, len(words))
	for i, w := range words {
		v, err := Parse(w)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Echo is the callback produced by the fn literal.
func Echo(err error) any {
	return err
}

// Format renders v in literal notation.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case value.UndefinedType:
		return "undefined"
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = Format(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%q: %s", k, Format(x[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *regexp.Regexp:
		return "/" + x.String() + "/"
	case time.Time:
		return "@" + x.Format(time.RFC3339)
	case error:
		return fmt.Sprintf("error(%q)", x.Error())
	}

	switch value.Classify(v) {
	case value.NaN:
		return "NaN"
	case value.Function:
		return "fn"
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
