package testutil

import (
	"context"

	"github.com/npgrosser/houston/pkg/generator"
	"github.com/stretchr/testify/mock"
)

// FakeGenerator implements generator.Generator with testify/mock.
// Expectations receive the specification only:
//
//	g.On("Generate", mock.Anything).Return("echo hi", nil)
type FakeGenerator struct {
	mock.Mock
}

// NewFakeGenerator returns a FakeGenerator without expectations
func NewFakeGenerator() *FakeGenerator {
	return &FakeGenerator{}
}

// Generate implements generator.Generator
func (f *FakeGenerator) Generate(ctx context.Context, spec generator.ScriptSpecification) (string, error) {
	ret := f.Called(spec)
	return ret.String(0), ret.Error(1)
}

// LastSpec returns the specification of the most recent Generate call
func (f *FakeGenerator) LastSpec() generator.ScriptSpecification {
	calls := f.Calls
	if len(calls) == 0 {
		return generator.ScriptSpecification{}
	}
	return calls[len(calls)-1].Arguments.Get(0).(generator.ScriptSpecification)
}
