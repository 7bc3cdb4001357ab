package pricing

import (
	"math"
	"testing"

	"OptionPulse/internal/domain/models"
)

func TestPriceKnownValue(t *testing.T) {
	k := NewKernel(0.05)

	// Textbook reference: S=100, K=100, T=1y, r=5%, sigma=20%.
	got := k.Price(100, 100, 1, 0.05, 0.2, models.Call)
	want := 10.450583572185565
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("ATM call price = %v, want %v", got, want)
	}
}

func TestPutCallParity(t *testing.T) {
	k := NewKernel(0.05)

	cases := []struct {
		s, strike, tt, r, sigma float64
	}{
		{100, 100, 45.0 / 365, 0.03, 0.25},
		{50000, 52000, 30.0 / 365, 0.05, 0.8},
		{50000, 45000, 90.0 / 365, 0.05, 0.4},
		{1200, 1500, 0.5, 0.01, 1.2},
	}
	for _, c := range cases {
		call := k.Price(c.s, c.strike, c.tt, c.r, c.sigma, models.Call)
		put := k.Price(c.s, c.strike, c.tt, c.r, c.sigma, models.Put)

		lhs := call - put
		rhs := c.s - c.strike*math.Exp(-c.r*c.tt)
		if math.Abs(lhs-rhs) > 1e-6 {
			t.Fatalf("parity violated for %+v: lhs=%v rhs=%v", c, lhs, rhs)
		}
	}
}

func TestExpiryIntrinsicValue(t *testing.T) {
	k := NewKernel(0.05)

	if got := k.Price(51000, 50000, 0, 0.05, 0.8, models.Call); got != 1000 {
		t.Fatalf("expired ITM call = %v, want exactly 1000", got)
	}
	if got := k.Price(51000, 50000, 0, 0.05, 0.8, models.Put); got != 0 {
		t.Fatalf("expired OTM put = %v, want 0", got)
	}
	if got := k.Price(48000, 50000, -0.01, 0.05, 0.8, models.Put); got != 2000 {
		t.Fatalf("past-expiry ITM put = %v, want 2000", got)
	}
}

func TestPriceConvergesToIntrinsic(t *testing.T) {
	k := NewKernel(0.05)

	intrinsic := 1000.0
	for _, tt := range []float64{1.0 / 365, 0.1 / 365, 0.01 / 365} {
		got := k.Price(51000, 50000, tt, 0.05, 0.4, models.Call)
		if got < intrinsic {
			t.Fatalf("T=%v: price %v below intrinsic %v", tt, got, intrinsic)
		}
	}
	near := k.Price(51000, 50000, 0.01/365, 0.05, 0.4, models.Call)
	if math.Abs(near-intrinsic) > 5 {
		t.Fatalf("near-expiry price %v not converging to intrinsic %v", near, intrinsic)
	}
}

func TestGreeksZeroAtExpiry(t *testing.T) {
	k := NewKernel(0.05)

	g := k.Greeks(51000, 50000, 0, 0.05, 0.8, models.Call)
	if g != (models.Greeks{}) {
		t.Fatalf("expected all-zero Greeks at expiry, got %+v", g)
	}
}

func TestGreeksRelations(t *testing.T) {
	k := NewKernel(0.05)
	s, strike, tt, r, sigma := 50000.0, 52000.0, 30.0/365, 0.05, 0.8

	call := k.Greeks(s, strike, tt, r, sigma, models.Call)
	put := k.Greeks(s, strike, tt, r, sigma, models.Put)

	// Delta identity: N(d1) - (N(d1)-1) = 1.
	if math.Abs(call.Delta-put.Delta-1) > 1e-9 {
		t.Fatalf("delta identity violated: call=%v put=%v", call.Delta, put.Delta)
	}
	if call.Gamma != put.Gamma {
		t.Fatalf("gamma differs between sides: %v vs %v", call.Gamma, put.Gamma)
	}
	if call.Vega != put.Vega {
		t.Fatalf("vega differs between sides: %v vs %v", call.Vega, put.Vega)
	}
	if call.Gamma <= 0 || call.Vega <= 0 {
		t.Fatalf("gamma/vega must be positive: %+v", call)
	}
	if call.Theta >= 0 {
		t.Fatalf("long call theta should be negative, got %v", call.Theta)
	}
	if call.Rho <= 0 || put.Rho >= 0 {
		t.Fatalf("rho signs wrong: call=%v put=%v", call.Rho, put.Rho)
	}
}

func TestImpliedVolatilityRoundTrip(t *testing.T) {
	k := NewKernel(0.05)
	s, strike, tt, r := 50000.0, 50000.0, 30.0/365, 0.05

	for _, sigma := range []float64{0.05, 0.2, 0.5, 0.8, 1.5, 3.0} {
		for _, side := range []models.OptionSide{models.Call, models.Put} {
			market := k.Price(s, strike, tt, r, sigma, side)
			got := k.ImpliedVolatility(s, strike, tt, r, market, side)
			if math.Abs(got-sigma) > 1e-3 {
				t.Fatalf("IV round trip sigma=%v side=%s: got %v", sigma, side, got)
			}
		}
	}
}

func TestImpliedVolatilityStaysClamped(t *testing.T) {
	k := NewKernel(0.05)

	// A price above the no-arbitrage bound cannot be matched; the
	// estimate must still come back inside the clamp band.
	got := k.ImpliedVolatility(50000, 52000, 30.0/365, 0.05, 60000, models.Call)
	if got < 0.01 || got > 5.0 {
		t.Fatalf("unconverged IV %v escaped [0.01, 5.0]", got)
	}
}

func TestProbabilityITMMonotonic(t *testing.T) {
	k := NewKernel(0.05)
	strike, tt, sigma := 50000.0, 30.0/365, 0.8

	prevCall, prevPut := -1.0, 2.0
	for s := 40000.0; s <= 60000; s += 1000 {
		call := k.ProbabilityITM(s, strike, tt, sigma, models.Call)
		put := k.ProbabilityITM(s, strike, tt, sigma, models.Put)

		if call <= prevCall {
			t.Fatalf("call ITM probability not increasing at S=%v: %v <= %v", s, call, prevCall)
		}
		if put >= prevPut {
			t.Fatalf("put ITM probability not decreasing at S=%v: %v >= %v", s, put, prevPut)
		}
		if call < 0 || call > 1 || put < 0 || put > 1 {
			t.Fatalf("probability out of range at S=%v: call=%v put=%v", s, call, put)
		}
		prevCall, prevPut = call, put
	}
}

func TestProbabilityITMAtExpiry(t *testing.T) {
	k := NewKernel(0.05)

	if got := k.ProbabilityITM(51000, 50000, 0, 0.8, models.Call); got != 1.0 {
		t.Fatalf("expired ITM call probability = %v, want 1", got)
	}
	if got := k.ProbabilityITM(51000, 50000, 0, 0.8, models.Put); got != 0.0 {
		t.Fatalf("expired OTM put probability = %v, want 0", got)
	}
}

func TestBreakEven(t *testing.T) {
	k := NewKernel(0.05)

	if got := k.BreakEven(50000, 1500, models.Call); got != 51500 {
		t.Fatalf("call break-even = %v, want 51500", got)
	}
	if got := k.BreakEven(50000, 1500, models.Put); got != 48500 {
		t.Fatalf("put break-even = %v, want 48500", got)
	}
}
