package tests

import (
	"bytes"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/result/pkg/result"
	"github.com/ib-77/result/pkg/result/chain"
	"github.com/ib-77/result/pkg/result/fault"
)

func divide(a, b float64) result.Result[float64] {
	if b == 0 {
		return result.Err[float64](fault.New(fault.InvalidArgument, "cannot divide by zero"))
	}
	return result.Ok(a / b)
}

// propagate shows the caller-side early-return idiom: extract the value
// or hand the failure to the caller untouched.
func propagate() result.Result[result.Unit] {
	r := divide(10, 0)
	if r.IsErr() {
		return result.Err[result.Unit](r.Error())
	}

	_ = r.Get() * 1
	return result.Done()
}

func TestDivideOk(t *testing.T) {
	r := divide(10, 2)

	assert.True(t, r.IsOk())
	assert.Equal(t, 5.0, r.Get())
	assert.Equal(t, 5.0, r.GetOr(0.0))
}

func TestDivideErr(t *testing.T) {
	r := divide(10, 0)

	assert.True(t, r.IsErr())
	assert.Equal(t, "cannot divide by zero", r.ErrorMessage())
	assert.Equal(t, fault.InvalidArgument, fault.KindOf(r.Error()))
	assert.Equal(t, 0.0, r.GetOr(0.0))
	assert.Equal(t, 1.0, r.GetOrElse(func(error) float64 { return 1.0 }))
}

func TestPropagate(t *testing.T) {
	r := propagate()

	assert.True(t, r.IsErr())
	assert.Equal(t, fault.InvalidArgument, fault.KindOf(r.Error()))
}

func TestChainingScenario(t *testing.T) {
	var buf bytes.Buffer
	result.SetOutput(&buf)
	defer result.SetOutput(os.Stdout)

	err1Seen, err2Seen := false, false

	recovered := result.MapOr(
		divide(10, 0).OnErr(func(error) { err1Seen = true }), // called
		func(float64) result.Result[float64] { // not called
			return result.Err[float64](fault.New(fault.Internal, "unexpected"))
		},
		func(error) result.Result[float64] { // called
			return result.Ok(4.0)
		})

	text := result.Map(
		recovered.OnErr(func(error) { err2Seen = true }), // not called
		func(v float64) result.Result[string] {
			return result.Ok(strconv.FormatFloat(v, 'f', -1, 64))
		}).
		Get()

	assert.Equal(t, "4", text)
	assert.True(t, err1Seen)
	assert.False(t, err2Seen)

	divide(10, 0).PrintErrorMessage()
	assert.Equal(t, "cannot divide by zero\n", buf.String())
}

func TestChainDivide(t *testing.T) {
	out := chain.FromValue(2.0).
		Then(func(v float64) result.Result[float64] { return divide(10, v) }).
		Map(func(v float64) float64 { return v * 3 }).
		Finally(
			func(v float64) float64 { return v },
			func(error) float64 { return -1 })
	assert.Equal(t, 15.0, out)

	out = chain.FromValue(0.0).
		Then(func(v float64) result.Result[float64] { return divide(10, v) }).
		Map(func(v float64) float64 { return v * 3 }).
		Finally(
			func(v float64) float64 { return v },
			func(error) float64 { return -1 })
	assert.Equal(t, -1.0, out)
}
