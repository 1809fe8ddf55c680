package dispatch_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nx-org/nx/dispatch"
	"github.com/nx-org/nx/types"
	"github.com/nx-org/nx/typing"
)

// cmpTypes compares types by identity so that cmp does not reach into
// the unexported fields of the catalog singletons.
var cmpTypes = cmp.Comparer(func(a, b types.Type) bool { return a == b })

// fakeKernel records the signature it was compiled for and applies the
// scalar core directly.
type fakeKernel struct {
	sig typing.Signature
	fn  func(args ...any) (any, error)
}

func (k *fakeKernel) Call(args ...any) (any, error) {
	return k.fn(args...)
}

// fakeCompiler stands in for a backend: it wraps the scalar core without
// generating any code.
type fakeCompiler struct {
	compiled int
}

func (c *fakeCompiler) Compile(fn any, sig typing.Signature) (dispatch.Kernel, error) {
	c.compiled++
	return &fakeKernel{sig: sig, fn: fn.(func(args ...any) (any, error))}, nil
}

func (c *fakeCompiler) Describe(k dispatch.Kernel) (typing.Signature, error) {
	fake, ok := k.(*fakeKernel)
	if !ok {
		return typing.Signature{}, errors.New("kernel was not compiled by this compiler")
	}
	return fake.sig, nil
}

func addCore(args ...any) (any, error) {
	return args[0].(int) + args[1].(int), nil
}

func newAdd(t *testing.T) (*UFuncFixture, *fakeCompiler) {
	t.Helper()
	compiler := &fakeCompiler{}
	u := dispatch.NewUFunc("add", addCore, compiler)
	sigs := []typing.Signature{
		typing.Sig(types.Int32, types.Int32, types.Int32),
		typing.Sig(types.Int64, types.Int64, types.Int64),
	}
	for _, sig := range sigs {
		if err := u.Add(sig); err != nil {
			t.Fatalf("Add(%s): %v", sig, err)
		}
	}
	return &UFuncFixture{UFunc: u, sigs: sigs}, compiler
}

type UFuncFixture struct {
	*dispatch.UFunc
	sigs []typing.Signature
}

func TestUFuncSelect(t *testing.T) {
	u, compiler := newAdd(t)
	if compiler.compiled != 2 {
		t.Fatalf("compiled %d kernels but want 2", compiler.compiled)
	}
	kernel, ret, err := u.Select([]types.Type{types.Int64, types.Int64})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if ret != types.Int64 {
		t.Errorf("result type is %s but want int64", ret.Name())
	}
	got, err := kernel.Call(2, 3)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != 5 {
		t.Errorf("Call = %v but want 5", got)
	}
}

func TestUFuncSelectExactOnly(t *testing.T) {
	u, _ := newAdd(t)
	// No kernel was compiled for float32: selection does not promote.
	_, _, err := u.Select([]types.Type{types.Float32, types.Float32})
	var unsupported *typing.UnsupportedError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Select error is %v but want UnsupportedError", err)
	}
}

func TestUFuncAddDuplicate(t *testing.T) {
	u, _ := newAdd(t)
	// Same parameter types, different return type: the kernel table is
	// keyed by parameters only and refuses the replacement.
	err := u.Add(typing.Sig(types.Float64, types.Int32, types.Int32))
	var duplicate *typing.DuplicateError
	if !errors.As(err, &duplicate) {
		t.Fatalf("Add error is %v but want DuplicateError", err)
	}
}

func TestUFuncSignaturesOrder(t *testing.T) {
	u, _ := newAdd(t)
	if diff := cmp.Diff(u.sigs, u.Signatures(), cmpTypes); diff != "" {
		t.Errorf("signatures mismatch (-want +got):\n%s", diff)
	}
}

func TestUFuncDescribe(t *testing.T) {
	u, compiler := newAdd(t)
	kernel, _, err := u.Select([]types.Type{types.Int32, types.Int32})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	sig, err := compiler.Describe(kernel)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if diff := cmp.Diff(u.sigs[0], sig, cmpTypes); diff != "" {
		t.Errorf("described signature mismatch (-want +got):\n%s", diff)
	}
}
