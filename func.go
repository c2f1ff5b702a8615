package funs

import (
	"log/slog"
	"sync"

	"github.com/copenhas/funs/funserr"
	"github.com/copenhas/funs/pattern"
	"github.com/copenhas/funs/value"
)

// Func is a target guarded by a compiled pattern. A Func is safe for
// concurrent use; partial application never mutates it but returns a new
// Func.
type Func struct {
	pattern  *pattern.Pattern // positions still to be matched
	target   Target
	opts     Options
	callback int // index of the callback slot in the full parameter list, -1 if none
	cont     continuation
}

// continuation carries what earlier partial calls already established.
type continuation struct {
	consumed Params
	level    int
	binding  *binding
}

type binding struct {
	once sync.Once
	recv any
}

// capture stores recv on the first call and returns the stored receiver.
func (b *binding) capture(recv any) any {
	b.once.Do(func() { b.recv = recv })
	return b.recv
}

func newFunc(p *pattern.Pattern, target Target, opts Options) *Func {
	f := &Func{
		pattern:  p,
		target:   target,
		opts:     opts,
		callback: p.CallbackIndex(),
		cont:     continuation{binding: &binding{}},
	}
	opts.Logger.Debug("compiled pattern",
		slog.String("pattern", p.String()),
		slog.Int("positions", p.Len()),
		slog.Int("callback", f.callback),
		slog.Bool("partial", opts.Partial),
		slog.Bool("bind", opts.Bind))
	return f
}

// Call invokes f without a receiver.
func (f *Func) Call(args ...any) (any, error) {
	return f.CallWith(nil, args...)
}

// CallWith matches args against the pattern and invokes the target with the
// normalized parameters and recv.
//
// The result is the target's result, the callback's result when a target
// error was routed to the callback slot, or a *Func when Options.Partial is
// set and args only covered a prefix of the pattern.
func (f *Func) CallWith(recv any, args ...any) (any, error) {
	if f.opts.Bind {
		recv = f.cont.binding.capture(recv)
	}

	params := make(Params, 0, f.pattern.Len())
	cursor := 0
	for i := 0; i < f.pattern.Len(); i++ {
		r := f.pattern.Matcher(i).Match(cursor, args)
		if !r.Matched() {
			if f.opts.Partial && i > 0 {
				return f.derive(i, params), nil
			}
			f.opts.Logger.Debug("argument match failed",
				slog.String("pattern", f.pattern.String()),
				slog.Int("position", i),
				slog.String("reason", r.Failure.Msg))
			return nil, r.Failure
		}
		cursor += r.Consumed
		params = append(params, r.Value)
	}

	cls := f.opts.Vocabulary.Classifier()
	if len(params) == 0 && len(args) > 0 {
		return nil, funserr.NewMatchError(0, f.pattern.String(), string(cls.Classify(args[0])),
			"incorrect argument combination, all arguments were optional but none of them matched the ones given")
	}
	if cursor < len(args) {
		return nil, funserr.NewMatchError(cursor, f.pattern.String(), string(cls.Classify(args[cursor])),
			"incorrect argument combination, all arguments were not able to be parsed")
	}

	return f.invoke(recv, params)
}

func (f *Func) derive(matched int, params Params) *Func {
	consumed := make(Params, 0, len(f.cont.consumed)+len(params))
	consumed = append(consumed, f.cont.consumed...)
	consumed = append(consumed, params...)

	d := &Func{
		pattern:  f.pattern.Suffix(matched),
		target:   f.target,
		opts:     f.opts,
		callback: f.callback,
		cont: continuation{
			consumed: consumed,
			level:    f.cont.level + 1,
			binding:  f.cont.binding,
		},
	}
	f.opts.Logger.Debug("partial application",
		slog.Int("level", d.cont.level),
		slog.Int("captured", len(consumed)),
		slog.String("remaining", d.pattern.String()))
	return d
}

func (f *Func) invoke(recv any, params Params) (any, error) {
	full := params
	if len(f.cont.consumed) > 0 {
		full = make(Params, 0, len(f.cont.consumed)+len(params))
		full = append(full, f.cont.consumed...)
		full = append(full, params...)
	}

	result, recovered, panicked, err := f.run(recv, full)
	if err == nil && !panicked {
		return result, nil
	}

	if f.callback >= 0 && f.callback < len(full) && value.Invocable(full[f.callback]) {
		delivered := err
		if panicked {
			delivered = funserr.NewApplicationError(recovered)
		}
		f.opts.Logger.Debug("routing target error to callback",
			slog.Int("callback", f.callback),
			slog.String("error", delivered.Error()))
		return value.CallWithError(full[f.callback], delivered)
	}

	if panicked {
		panic(recovered)
	}
	return nil, err
}

func (f *Func) run(recv any, params Params) (result, recovered any, panicked bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			recovered = r
			panicked = true
		}
	}()
	result, err = f.target(recv, params)
	return result, nil, false, err
}

// Pattern renders the positions f still expects.
func (f *Func) Pattern() string {
	return f.pattern.String()
}

// Compiled returns the compiled positions f still expects.
func (f *Func) Compiled() *pattern.Pattern {
	return f.pattern
}

// CallbackIndex returns the callback slot relative to the positions f still
// expects, or -1 when there is none left to match.
func (f *Func) CallbackIndex() int {
	return f.pattern.CallbackIndex()
}

// Classifier returns the classifier f matches arguments with.
func (f *Func) Classifier() value.Classifier {
	return f.opts.Vocabulary.Classifier()
}

// Level returns how many partial applications produced f.
func (f *Func) Level() int {
	return f.cont.level
}

// Captured returns the parameters captured by earlier partial applications.
func (f *Func) Captured() Params {
	return f.cont.consumed.Clone()
}

// AsFunc reports whether a call result is a partially applied *Func.
func AsFunc(result any) (*Func, bool) {
	f, ok := result.(*Func)
	return f, ok
}
