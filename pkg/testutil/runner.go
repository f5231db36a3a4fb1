package testutil

import (
	"github.com/npgrosser/houston/pkg/runner"
	"github.com/stretchr/testify/mock"
)

// FakeRunner implements runner.ScriptRunner with testify/mock.
//
// RunScript expectations return the lines to feed to the sink and an
// error; RunScriptAndCapture expectations return the output and an error:
//
//	r.On("RunScriptAndCapture", "echo world", mock.Anything).Return("world\n", nil)
type FakeRunner struct {
	mock.Mock
}

// NewFakeRunner returns a FakeRunner without expectations
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{}
}

// NewMapRunner returns a FakeRunner that captures outputs[script] for
// every script in outputs, regardless of arguments.
func NewMapRunner(outputs map[string]string) *FakeRunner {
	r := &FakeRunner{}
	for script, output := range outputs {
		r.On("RunScriptAndCapture", script, mock.Anything).Return(output, nil)
	}
	return r
}

// RunScript implements runner.ScriptRunner
func (f *FakeRunner) RunScript(script string, args []string, sink runner.LineSink) error {
	ret := f.Called(script, args)
	if lines, ok := ret.Get(0).([]string); ok && sink != nil {
		for _, line := range lines {
			sink(line)
		}
	}
	return ret.Error(1)
}

// RunScriptAndCapture implements runner.ScriptRunner
func (f *FakeRunner) RunScriptAndCapture(script string, args []string) (string, error) {
	ret := f.Called(script, args)
	return ret.String(0), ret.Error(1)
}
