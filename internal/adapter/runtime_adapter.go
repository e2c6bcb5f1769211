package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dop251/goja"

	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

// ErrNoResult is returned when the program handled the input without sending
// anything on its outbound port.
var ErrNoResult = errors.New("program produced no result")

// RuntimeAdapter loads compiled program text into an isolated execution
// context.
type RuntimeAdapter interface {
	// Load evaluates program in a fresh context and initializes the exported
	// module. Nothing is shared between two loaded programs.
	Load(ctx context.Context, program, module string) (Program, error)
}

// Program is a loaded, initialized host program.
type Program interface {
	// Run delivers input on the inbound port and returns the first message
	// received on the outbound port.
	Run(ctx context.Context, input json.RawMessage) (m.ExecutionResult, error)
}

// RuntimeError wraps an exception thrown inside the isolated context.
type RuntimeError struct {
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Runtime error: %v", e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// GojaRuntimeAdapter runs programs in a dedicated goja.Runtime per Load.
type GojaRuntimeAdapter struct{}

// NewGojaRuntimeAdapter constructs a GojaRuntimeAdapter.
func NewGojaRuntimeAdapter() *GojaRuntimeAdapter {
	return &GojaRuntimeAdapter{}
}

// Load evaluates the program and calls Elm.<module>.init().
func (a *GojaRuntimeAdapter) Load(ctx context.Context, program, module string) (Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vm := goja.New()
	timers := &timerQueue{}

	if err := installHostGlobals(vm, timers); err != nil {
		return nil, &RuntimeError{Err: err}
	}

	stop := context.AfterFunc(ctx, func() { vm.Interrupt(ctx.Err()) })
	defer stop()

	app, err := loadApp(vm, program, module)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, &RuntimeError{Err: err}
	}

	return &gojaProgram{vm: vm, app: app, timers: timers}, nil
}

func loadApp(vm *goja.Runtime, program, module string) (app *goja.Object, err error) {
	defer recoverJSPanic(&err)

	if _, err := vm.RunScript(module+".js", program); err != nil {
		return nil, err
	}

	exports, err := objectOf(vm, vm.Get("Elm"), "Elm")
	if err != nil {
		return nil, err
	}

	target := exports
	for _, segment := range strings.Split(module, ".") {
		target, err = objectOf(vm, target.Get(segment), "Elm."+module)
		if err != nil {
			return nil, err
		}
	}

	initFn, ok := goja.AssertFunction(target.Get("init"))
	if !ok {
		return nil, fmt.Errorf("Elm.%s.init is not a function", module)
	}

	appValue, err := initFn(target)
	if err != nil {
		return nil, err
	}

	return objectOf(vm, appValue, "application")
}

type gojaProgram struct {
	vm     *goja.Runtime
	app    *goja.Object
	timers *timerQueue
}

// Run sends one value and waits for the first outbound message. Later
// messages are ignored.
func (p *gojaProgram) Run(ctx context.Context, input json.RawMessage) (result m.ExecutionResult, err error) {
	if err := ctx.Err(); err != nil {
		return m.ExecutionResult{}, err
	}

	p.vm.ClearInterrupt()

	stop := context.AfterFunc(ctx, func() { p.vm.Interrupt(ctx.Err()) })
	defer stop()

	captured, err := p.exchange(input)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return m.ExecutionResult{}, ctxErr
		}

		return m.ExecutionResult{}, &RuntimeError{Err: err}
	}

	return captured, nil
}

func (p *gojaProgram) exchange(input json.RawMessage) (result m.ExecutionResult, err error) {
	defer recoverJSPanic(&err)

	ports, err := objectOf(p.vm, p.app.Get("ports"), "ports")
	if err != nil {
		return m.ExecutionResult{}, err
	}

	outbound, err := objectOf(p.vm, ports.Get(m.OutboundPort), "ports."+m.OutboundPort)
	if err != nil {
		return m.ExecutionResult{}, err
	}

	inbound, err := objectOf(p.vm, ports.Get(m.InboundPort), "ports."+m.InboundPort)
	if err != nil {
		return m.ExecutionResult{}, err
	}

	var captured *m.ExecutionResult

	handler := func(call goja.FunctionCall) goja.Value {
		if captured == nil {
			message := toExecutionResult(call.Argument(0).Export())
			captured = &message
		}

		return goja.Undefined()
	}

	subscribe, ok := goja.AssertFunction(outbound.Get("subscribe"))
	if !ok {
		return m.ExecutionResult{}, fmt.Errorf("ports.%s.subscribe is not a function", m.OutboundPort)
	}

	if _, err := subscribe(outbound, p.vm.ToValue(handler)); err != nil {
		return m.ExecutionResult{}, err
	}

	value, err := parseJSON(p.vm, input)
	if err != nil {
		return m.ExecutionResult{}, err
	}

	send, ok := goja.AssertFunction(inbound.Get("send"))
	if !ok {
		return m.ExecutionResult{}, fmt.Errorf("ports.%s.send is not a function", m.InboundPort)
	}

	if _, err := send(inbound, value); err != nil {
		return m.ExecutionResult{}, err
	}

	if err := p.timers.drain(func() bool { return captured != nil }); err != nil {
		return m.ExecutionResult{}, err
	}

	if captured == nil {
		return m.ExecutionResult{}, ErrNoResult
	}

	return *captured, nil
}

func toExecutionResult(message any) m.ExecutionResult {
	fields, ok := message.(map[string]any)
	if !ok {
		return m.ErrorResult(m.FailureRuntime, fmt.Sprintf("unexpected message: %v", message))
	}

	value, ok := fields["value"].(string)
	if !ok {
		value = fmt.Sprint(fields["value"])
	}

	if fields["tag"] == string(m.TagSuccess) {
		return m.SuccessResult(value)
	}

	return m.ErrorResult(m.FailureDecode, value)
}

func parseJSON(vm *goja.Runtime, input json.RawMessage) (goja.Value, error) {
	jsonObject, err := objectOf(vm, vm.Get("JSON"), "JSON")
	if err != nil {
		return nil, err
	}

	parse, ok := goja.AssertFunction(jsonObject.Get("parse"))
	if !ok {
		return nil, errors.New("JSON.parse is not a function")
	}

	return parse(jsonObject, vm.ToValue(string(input)))
}

func objectOf(vm *goja.Runtime, value goja.Value, what string) (*goja.Object, error) {
	if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return nil, fmt.Errorf("%s is not defined", what)
	}

	return value.ToObject(vm), nil
}

// recoverJSPanic turns goja panics (thrown from ToObject and friends) into
// errors.
func recoverJSPanic(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = e
			return
		}

		*err = fmt.Errorf("%v", r)
	}
}

// installHostGlobals provides the minimal host environment the compiled
// program expects: a silent console and setTimeout/clearTimeout backed by a
// synchronous queue.
func installHostGlobals(vm *goja.Runtime, timers *timerQueue) error {
	console := vm.NewObject()
	silent := func(goja.FunctionCall) goja.Value { return goja.Undefined() }

	for _, name := range []string{"log", "info", "warn", "error", "debug"} {
		if err := console.Set(name, silent); err != nil {
			return err
		}
	}

	if err := vm.Set("console", console); err != nil {
		return err
	}

	if err := vm.Set("setTimeout", func(call goja.FunctionCall) goja.Value {
		fn, ok := goja.AssertFunction(call.Argument(0))
		if !ok {
			return vm.ToValue(0)
		}

		delay := call.Argument(1).ToInteger()

		return vm.ToValue(timers.add(fn, delay, call.Arguments[min(2, len(call.Arguments)):]))
	}); err != nil {
		return err
	}

	return vm.Set("clearTimeout", func(call goja.FunctionCall) goja.Value {
		timers.cancel(call.Argument(0).ToInteger())
		return goja.Undefined()
	})
}

type timer struct {
	id    int64
	delay int64
	fn    goja.Callable
	args  []goja.Value
}

// timerQueue runs scheduled callbacks in delay order, without waiting.
type timerQueue struct {
	nextID  int64
	pending []timer
}

func (q *timerQueue) add(fn goja.Callable, delay int64, args []goja.Value) int64 {
	q.nextID++
	q.pending = append(q.pending, timer{id: q.nextID, delay: delay, fn: fn, args: args})

	return q.nextID
}

func (q *timerQueue) cancel(id int64) {
	for i, t := range q.pending {
		if t.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

func (q *timerQueue) drain(done func() bool) error {
	for len(q.pending) > 0 && !done() {
		sort.SliceStable(q.pending, func(i, j int) bool {
			return q.pending[i].delay < q.pending[j].delay
		})

		next := q.pending[0]
		q.pending = q.pending[1:]

		if _, err := next.fn(goja.Undefined(), next.args...); err != nil {
			return err
		}
	}

	return nil
}
