// Package templates provides lightweight placeholder substitution for
// strings of the form "Hello {name}". Placeholders are single-level keys;
// doubled braces ("{{", "}}") produce literal braces.
package templates

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for template parsing and substitution.
var (
	ErrUnclosedPlaceholder = errors.New("unclosed placeholder")
	ErrEmptyPlaceholder    = errors.New("empty placeholder")
	ErrMissingKey          = errors.New("no value for placeholder")
)

// Option configures substitution behavior.
type Option func(*options)

type options struct {
	lenient bool
}

// Lenient leaves placeholders with no corresponding value untouched
// instead of failing. Useful for multi-pass substitution.
func Lenient() Option {
	return func(o *options) {
		o.lenient = true
	}
}

// Substitute replaces each {key} placeholder in template with the
// corresponding value from values, formatted with fmt.Sprint. By default a
// placeholder without a value is an error; with Lenient it is left as-is.
func Substitute(template string, values map[string]any, opts ...Option) (string, error) {
	intOpts := &options{}

	for _, option := range opts {
		option(intOpts)
	}

	var out strings.Builder

	out.Grow(len(template))

	for i := 0; i < len(template); i++ {
		ch := template[i]

		switch ch {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				out.WriteByte('{')
				i++

				continue
			}

			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w at offset %d", ErrUnclosedPlaceholder, i)
			}

			key := template[i+1 : i+end]
			if key == "" {
				return "", fmt.Errorf("%w at offset %d", ErrEmptyPlaceholder, i)
			}

			val, ok := values[key]
			if !ok {
				if !intOpts.lenient {
					return "", fmt.Errorf("%w: %q", ErrMissingKey, key)
				}

				out.WriteString(template[i : i+end+1])
				i += end

				continue
			}

			out.WriteString(fmt.Sprint(val))
			i += end
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				out.WriteByte('}')
				i++

				continue
			}

			out.WriteByte('}')
		default:
			out.WriteByte(ch)
		}
	}

	return out.String(), nil
}

// MustSubstitute is like Substitute but panics on error. Use only with
// templates known to be well-formed at compile time.
func MustSubstitute(template string, values map[string]any, opts ...Option) string {
	out, err := Substitute(template, values, opts...)
	if err != nil {
		panic(err)
	}

	return out
}
