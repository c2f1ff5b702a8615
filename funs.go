// Package funs enforces argument contracts on loosely typed variadic calls.
//
// A pattern such as "string, object?, callback" is compiled once against a
// target function. The resulting Func validates every call's arguments,
// normalizes them into positional Params and forwards them to the target:
//
//	get := funs.MustCompile("string, object?, callback", fetch)
//	get.Call("example.com", func(err error) { ... })
//
// Errors returned (or panics raised) by the target are delivered to the
// callback slot when the pattern has one. With Options.Partial, a call that
// supplies only a prefix of the arguments returns a new Func waiting for the
// rest.
package funs

import (
	"fmt"
	"log/slog"

	"github.com/copenhas/funs/funserr"
	"github.com/copenhas/funs/pattern"
	"github.com/copenhas/funs/vocab"
)

// Target is the function a pattern guards. recv is the receiver the Func was
// called with (or the bound receiver, see Options.Bind).
type Target func(recv any, params Params) (any, error)

// Plain adapts a target that does not care about receivers.
func Plain(fn func(params Params) (any, error)) Target {
	if fn == nil {
		return nil
	}
	return func(_ any, params Params) (any, error) {
		return fn(params)
	}
}

// Options configures compilation.
type Options struct {
	// Partial makes a call that fails after matching at least one position
	// return a *Func for the remaining positions instead of an error.
	Partial bool

	// Bind fixes the receiver of the first call to the outermost Func for it
	// and every Func derived from it. Requires Partial.
	Bind bool

	// Vocabulary resolves type names. Defaults to vocab.Default().
	Vocabulary *vocab.Vocabulary

	// Logger receives debug records. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Vocabulary: vocab.Default(),
		Logger:     slog.Default(),
	}
}

func (o Options) withDefaults() Options {
	if o.Vocabulary == nil {
		o.Vocabulary = vocab.Default()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

func (o Options) validate() error {
	if o.Bind && !o.Partial {
		return funserr.NewDefinitionError("bind option can not be turned on without partial")
	}
	return nil
}

// Compile compiles src with default options. The empty pattern accepts zero
// arguments.
func Compile(src string, target Target) (*Func, error) {
	return CompileWithOptions(src, target, DefaultOptions())
}

// CompileWithOptions compiles src with the given options.
func CompileWithOptions(src string, target Target, opts Options) (*Func, error) {
	opts = opts.withDefaults()
	if err := checkDefinition(target, opts); err != nil {
		return nil, err
	}
	p, err := pattern.Compile(src, opts.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", src, err)
	}
	return newFunc(p, target, opts), nil
}

// CompileTokens compiles a pattern given as one string per position.
func CompileTokens(tokens []string, target Target, opts Options) (*Func, error) {
	opts = opts.withDefaults()
	if err := checkDefinition(target, opts); err != nil {
		return nil, err
	}
	p, err := pattern.CompileTokens(tokens, opts.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", tokens, err)
	}
	return newFunc(p, target, opts), nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string, target Target) *Func {
	f, err := Compile(src, target)
	if err != nil {
		panic(err)
	}
	return f
}

func checkDefinition(target Target, opts Options) error {
	if target == nil {
		return funserr.NewDefinitionError("a target function must be provided")
	}
	return opts.validate()
}
