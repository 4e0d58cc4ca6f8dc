package quantity

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/rotblauer/mks/dimension"
)

var (
	m  = Base("m")
	s  = Base("s")
	kg = Base("kg")
	A  = Base("A")
	cd = Base("cd")
)

func mustDiv(t *testing.T, a, b Operand) Quantity {
	t.Helper()
	q, err := Div(a, b)
	if err != nil {
		t.Fatalf("Div(%v, %v): %v", a, b, err)
	}
	return q
}

func assertQuantity(t *testing.T, got Quantity, magnitude float64, dim dimension.Dimension) {
	t.Helper()
	if got.Magnitude() != magnitude {
		t.Errorf("magnitude: got %v, want %v", got.Magnitude(), magnitude)
	}
	if !got.Dimension().Equal(dim) {
		t.Errorf("dimension: got %v, want %v", got.Dimension(), dim)
	}
}

func TestScenarios(t *testing.T) {
	three := Mul(Scalar(3), m)
	assertQuantity(t, three, 3, dimension.Dimension{"m": 1})
	if got := three.String(); got != "3 m" {
		t.Errorf("got %q, want %q", got, "3 m")
	}

	km := Mul(Scalar(1000), m)
	assertQuantity(t, km, 1000, dimension.Dimension{"m": 1})
	got, err := Cast(three, km)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.003 {
		t.Errorf("3 m in km: got %v, want 0.003", got)
	}

	assertQuantity(t, three.Mul(three), 9, dimension.Dimension{"m": 2})

	v := mustDiv(t, three, Mul(Scalar(1), s))
	assertQuantity(t, v, 3, dimension.Dimension{"m": 1, "s": -1})
}

func TestMul_Symmetric(t *testing.T) {
	a := Mul(Scalar(3), m)
	b := Mul(m, Scalar(3))
	if ok, err := a.Equal(b); err != nil || !ok {
		t.Errorf("3*m != m*3: %v %v (%v)", a, b, err)
	}
}

func TestMul_Identity(t *testing.T) {
	for _, q := range []Quantity{m, Mul(Scalar(2.5), kg), mustDiv(t, m, s), Scalar(7).Quantity()} {
		got := q.Mul(Scalar(1))
		assertQuantity(t, got, q.Magnitude(), q.Dimension())
	}
}

func TestMul_Commutative(t *testing.T) {
	a := Mul(Scalar(2), kg.Mul(m))
	b := mustDiv(t, Scalar(5), s)
	ab, ba := Mul(a, b), Mul(b, a)
	assertQuantity(t, ab, ba.Magnitude(), ba.Dimension())
}

func TestMul_DimensionAdditivity(t *testing.T) {
	a := New(2, dimension.Dimension{"m": 2, "s": -1})
	b := New(3, dimension.Dimension{"s": 1, "kg": 1})
	got := a.Mul(b).Dimension()
	for _, sym := range []dimension.Symbol{"m", "s", "kg", "A"} {
		want := a.Dimension().Get(sym) + b.Dimension().Get(sym)
		if got.Get(sym) != want {
			t.Errorf("exponent of %s: got %d, want %d", sym, got.Get(sym), want)
		}
	}
	if _, ok := got["s"]; ok {
		t.Errorf("zero exponent stored: %#v", got)
	}
}

func TestDiv_ByZero(t *testing.T) {
	if _, err := Div(m, Scalar(0)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("got %v, want ErrDivisionByZero", err)
	}
	if _, err := Div(m, Mul(Scalar(0), s)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("got %v, want ErrDivisionByZero", err)
	}
}

func TestDiv_Float(t *testing.T) {
	got := mustDiv(t, Mul(Scalar(2), m.Mul(s)), Mul(Scalar(4), m))
	if got.String() != "0.5 s" {
		t.Errorf("got %q, want %q", got.String(), "0.5 s")
	}
}

func TestDimensionless(t *testing.T) {
	got := mustDiv(t, Mul(Scalar(1), kg), kg)
	if !got.IsDimensionless() {
		t.Errorf("kg/kg is not dimensionless: %v", got)
	}
	if got.String() != "1" {
		t.Errorf("got %q, want %q", got.String(), "1")
	}
	cancelled := Mul(Scalar(6), m).Mul(Must(m.PowInt(-1)))
	if cancelled.String() != "6" {
		t.Errorf("got %q, want %q", cancelled.String(), "6")
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		q    Quantity
		want string
	}{
		{Mul(Scalar(3), kg), "3 kg"},
		{Mul(Scalar(2), m).Mul(Mul(Scalar(2), m)), "4 m²"},
		{Mul(Scalar(1), Mul(Scalar(2), s)).Mul(Scalar(3)), "6 s"},
		{Mul(Scalar(2), s).Mul(s).Mul(kg), "2 kg.s²"},
		{Must(s.PowInt(-1)), "1 s⁻¹"},
		{Mul(Scalar(6), m).Mul(Must(s.PowInt(-1))), "6 m.s⁻¹"},
		{mustDiv(t, mustDiv(t, kg.Mul(Must(A.PowInt(2))), cd), Must(m.PowInt(2))), "1 kg.A².cd⁻¹.m⁻²"},
		{Scalar(0.5).Quantity(), "0.5"},
	}
	for _, c := range cases {
		if got := c.q.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestPow(t *testing.T) {
	l := Mul(Scalar(3), m)
	area := l.Mul(l)
	root, err := area.Pow(0.5)
	if err != nil {
		t.Fatal(err)
	}
	assertQuantity(t, root, 3, dimension.Dimension{"m": 1})

	if _, err := l.Pow(0.5); !errors.Is(err, ErrFractionalDimension) {
		t.Errorf("got %v, want ErrFractionalDimension", err)
	}
	var fde *FractionalDimensionError
	if _, err := l.Pow(1.5); !errors.As(err, &fde) || fde.Exponent != 1.5 {
		t.Errorf("got %v, want *FractionalDimensionError with exponent 1.5", err)
	}

	got, err := Pow(Scalar(2), 0.5)
	if err != nil {
		t.Fatal(err)
	}
	assertQuantity(t, got, math.Sqrt2, nil)

	inv, err := s.Pow(-1)
	if err != nil {
		t.Fatal(err)
	}
	assertQuantity(t, inv, 1, dimension.Dimension{"s": -1})
}

func TestPow_ExponentOverflow(t *testing.T) {
	_, err := m.Pow(1e19)
	if !errors.Is(err, dimension.ErrExponentOverflow) {
		t.Errorf("m^1e19: got %v, want ErrExponentOverflow", err)
	}
	if errors.Is(err, ErrFractionalDimension) {
		t.Error("overflow reported as a fractional dimension")
	}
	area := Must(m.PowInt(2))
	if got, err := area.PowInt(math.MaxInt); !errors.Is(err, dimension.ErrExponentOverflow) {
		t.Errorf("(m²)^MaxInt: got %v (%v), want ErrExponentOverflow", got, err)
	}
	if got, err := Mul(Scalar(4), m).PowInt(1 << 62); !errors.Is(err, dimension.ErrExponentOverflow) {
		t.Errorf("(4 m)^2^62: got %v (%v), want ErrExponentOverflow", got, err)
	}
	if got, err := Scalar(2).Quantity().PowInt(math.MaxInt); err != nil || !got.IsDimensionless() {
		t.Errorf("2^MaxInt: got %v (%v), want dimensionless", got, err)
	}
}

func TestAddSub(t *testing.T) {
	sum, err := Add(Mul(Scalar(6), m), Mul(Scalar(6), m))
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := sum.Equal(Mul(Scalar(12), m)); err != nil || !ok {
		t.Errorf("6m+6m: got %v, want 12 m", sum)
	}

	diff, err := Sub(kg, kg)
	if err != nil {
		t.Fatal(err)
	}
	assertQuantity(t, diff, 0, dimension.Dimension{"kg": 1})

	a, _ := Add(Mul(Scalar(0.5), m), Mul(Scalar(1./5), m))
	b, err := a.Sub(Mul(Scalar(0.7), m))
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := b.Cast(m); got != 0 {
		t.Errorf("0.5m+0.2m-0.7m: got %v, want 0", got)
	}
}

func TestAdd_Mismatch(t *testing.T) {
	_, err := Add(Mul(Scalar(6), m), Mul(Scalar(2), s))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("got %v, want ErrDimensionMismatch", err)
	}
	var me *MismatchError
	if !errors.As(err, &me) {
		t.Fatalf("got %T, want *MismatchError", err)
	}
	if !me.Left.Equal(m.Dimension()) || !me.Right.Equal(s.Dimension()) {
		t.Errorf("got %v/%v, want m/s", me.Left, me.Right)
	}
	want := "quantity: add: dimension mismatch: lhs has units <m>, rhs has units <s>"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}

	if _, err := Sub(m, kg); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
	if _, err := m.Add(Scalar(1)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestNegAbs(t *testing.T) {
	q := Mul(Scalar(3), m).Neg()
	assertQuantity(t, q, -3, dimension.Dimension{"m": 1})
	assertQuantity(t, q.Abs(), 3, dimension.Dimension{"m": 1})
	assertQuantity(t, Neg(Scalar(2)), -2, nil)
	assertQuantity(t, Abs(Scalar(-2)), 2, nil)
	assertQuantity(t, Abs(q), 3, dimension.Dimension{"m": 1})
	assertQuantity(t, Neg(q), 3, dimension.Dimension{"m": 1})
}

func TestCompare(t *testing.T) {
	two, one := Mul(Scalar(2), m), Mul(Scalar(1), m)
	if ok, err := two.Greater(one); err != nil || !ok {
		t.Errorf("2m > 1m: got %v (%v)", ok, err)
	}
	if ok, err := one.Less(two); err != nil || !ok {
		t.Errorf("1m < 2m: got %v (%v)", ok, err)
	}
	if ok, err := one.LessEqual(one); err != nil || !ok {
		t.Errorf("1m <= 1m: got %v (%v)", ok, err)
	}
	if ok, err := one.GreaterEqual(two); err != nil || ok {
		t.Errorf("1m >= 2m: got %v (%v)", ok, err)
	}
	if c, err := Cmp(two, one); err != nil || c != 1 {
		t.Errorf("Cmp: got %d (%v), want 1", c, err)
	}
	if ok, err := Equal(Mul(Scalar(3.45), m), Mul(Scalar(3.45), m)); err != nil || !ok {
		t.Errorf("3.45m == 3.45m: got %v (%v)", ok, err)
	}

	cases := []struct {
		name string
		fn   func(a, b Operand) (bool, error)
		a, b Operand
		want bool
	}{
		{"Less", Less, Scalar(1), Scalar(2).Quantity(), true},
		{"Less", Less, two, one, false},
		{"LessEqual", LessEqual, Scalar(2).Quantity(), Scalar(2), true},
		{"Greater", Greater, two, one, true},
		{"Greater", Greater, Scalar(1), Scalar(1), false},
		{"GreaterEqual", GreaterEqual, one, one, true},
		{"GreaterEqual", GreaterEqual, Scalar(-1), Scalar(0).Quantity(), false},
		{"Equal", Equal, Scalar(0.5), Scalar(0.5).Quantity(), true},
	}
	for _, c := range cases {
		if got, err := c.fn(c.a, c.b); err != nil || got != c.want {
			t.Errorf("%s(%v, %v): got %v (%v), want %v", c.name, c.a, c.b, got, err, c.want)
		}
	}
	for _, fn := range []func(a, b Operand) (bool, error){Less, LessEqual, Greater, GreaterEqual} {
		if _, err := fn(Scalar(2), kg); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("got %v, want ErrDimensionMismatch", err)
		}
	}

	for _, fn := range []func(Operand) (bool, error){two.Equal, two.Less, two.Greater} {
		if _, err := fn(Mul(Scalar(2), kg)); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("got %v, want ErrDimensionMismatch", err)
		}
	}
}

func TestApproxEqual(t *testing.T) {
	a := Mul(Scalar(0.1+0.2), m)
	b := Mul(Scalar(0.3), m)
	if ok, _ := a.Equal(b); ok {
		t.Error("exact equality should not hold for 0.1+0.2 and 0.3")
	}
	if ok, err := a.ApproxEqual(b, 1e-12); err != nil || !ok {
		t.Errorf("ApproxEqual: got %v (%v)", ok, err)
	}
	if ok, _ := a.ApproxEqual(Mul(Scalar(0.31), m), 1e-12); ok {
		t.Error("0.3 and 0.31 should differ at 1e-12")
	}
	if _, err := a.ApproxEqual(s, 1); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
	if ok, err := ApproxEqual(Scalar(0.1+0.2), Scalar(0.3).Quantity(), 1e-12); err != nil || !ok {
		t.Errorf("package ApproxEqual: got %v (%v)", ok, err)
	}
	if _, err := ApproxEqual(Scalar(1), m, 1); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestCast(t *testing.T) {
	um := Mul(Scalar(1e-6), m)
	r := Mul(Scalar(1.32e-5), m)
	got, err := r.Cast(um)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-13.2) > 1e-12 {
		t.Errorf("got %v, want 13.2", got)
	}

	area := Must(m.PowInt(2))
	if _, err := area.Cast(m); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("m² as m: got %v, want ErrDimensionMismatch", err)
	}
	if got, err := area.Cast(Must(m.PowInt(2))); err != nil || got != 1 {
		t.Errorf("m² as m²: got %v (%v), want 1", got, err)
	}
	if _, err := m.Cast(Mul(Scalar(0), m)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("got %v, want ErrDivisionByZero", err)
	}
	if got, err := Scalar(4).Quantity().Cast(Scalar(2)); err != nil || got != 2 {
		t.Errorf("4 as 2: got %v (%v), want 2", got, err)
	}
}

func TestCast_RoundTrip(t *testing.T) {
	cases := []struct{ q, u Quantity }{
		{Mul(Scalar(3), m), Mul(Scalar(1000), m)},
		{Mul(Scalar(1.32e-5), m), Mul(Scalar(1e-6), m)},
		{mustDiv(t, Mul(Scalar(7), m), s), mustDiv(t, Mul(Scalar(1000), m), Mul(Scalar(3600), s))},
		{Scalar(42).Quantity(), Scalar(0.1).Quantity()},
	}
	for _, c := range cases {
		ratio, err := c.q.Cast(c.u)
		if err != nil {
			t.Fatal(err)
		}
		back := Mul(Scalar(ratio), c.u)
		if ok, err := back.ApproxEqual(c.q, 1e-12); err != nil || !ok {
			t.Errorf("round trip %v via %v: got %v (%v)", c.q, c.u, back, err)
		}
	}
}

func TestImmutable(t *testing.T) {
	dim := dimension.Dimension{"m": 1}
	q := New(2, dim)
	dim["m"] = 5
	if q.Dimension().Get("m") != 1 {
		t.Error("New aliased its dimension argument")
	}
	d := q.Dimension()
	d["s"] = 1
	if !q.Dimension().Equal(dimension.Dimension{"m": 1}) {
		t.Error("Dimension() exposed internal state")
	}
	_ = q.Mul(s)
	_, _ = q.Add(q)
	if q.Magnitude() != 2 || !q.Dimension().Equal(dimension.Dimension{"m": 1}) {
		t.Errorf("operand changed: %v", q)
	}
}

func TestRound(t *testing.T) {
	q := Mul(Scalar(2.675), m).Round(2)
	assertQuantity(t, q, 2.68, dimension.Dimension{"m": 1})
}

func TestMust(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Must(Div(m, Scalar(0)))
}

func TestAggregates(t *testing.T) {
	qs := []Operand{Mul(Scalar(1), m), Mul(Scalar(4), m), Mul(Scalar(2), m)}
	cases := []struct {
		name string
		fn   func(...Operand) (Quantity, error)
		want float64
	}{
		{"sum", Sum, 7},
		{"mean", Mean, 7. / 3},
		{"median", Median, 2},
		{"min", Min, 1},
		{"max", Max, 4},
	}
	for _, c := range cases {
		got, err := c.fn(qs...)
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		assertQuantity(t, got, c.want, dimension.Dimension{"m": 1})

		if _, err := c.fn(append(qs, s)...); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("%s mixed: got %v, want ErrDimensionMismatch", c.name, err)
		}
	}

	zero, err := Sum()
	if err != nil || zero.Magnitude() != 0 || !zero.IsDimensionless() {
		t.Errorf("Sum(): got %v (%v), want 0", zero, err)
	}
	if _, err := Mean(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Mean(): got %v, want ErrEmpty", err)
	}
}

func TestJSON(t *testing.T) {
	v := mustDiv(t, Mul(Scalar(3), m), s)
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"magnitude":3,"unit":"m.s^-1"}`; string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
	var back Quantity
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	assertQuantity(t, back, 3, dimension.Dimension{"m": 1, "s": -1})

	var label Quantity
	if err := json.Unmarshal([]byte(`{"magnitude": 9.81, "unit": "m.s⁻²"}`), &label); err != nil {
		t.Fatal(err)
	}
	assertQuantity(t, label, 9.81, dimension.Dimension{"m": 1, "s": -2})

	var bare Quantity
	if err := json.Unmarshal([]byte(`{"magnitude": 2}`), &bare); err != nil {
		t.Fatal(err)
	}
	assertQuantity(t, bare, 2, nil)

	for _, in := range []string{
		`{"unit": "m"}`,
		`{"magnitude": "3", "unit": "m"}`,
		`{"magnitude": 3, "unit": 1}`,
		`{"magnitude": 3, "unit": "m/s/s"}`,
	} {
		var q Quantity
		if err := q.UnmarshalJSON([]byte(in)); !errors.Is(err, ErrDecode) {
			t.Errorf("%s: got %v, want ErrDecode", in, err)
		}
	}
}
