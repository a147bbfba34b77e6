package quantity_test

import (
	"errors"
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rayleigh/internal/dim"
	"github.com/san-kum/rayleigh/internal/quantity"
	"github.com/san-kum/rayleigh/internal/units"
)

// Velocity is declared locally to check that markers outside the catalog
// work the same way.
type Velocity struct{}

func (Velocity) Dimension() dim.Vector {
	return dim.New(dim.Pow(dim.Length, 1), dim.Pow(dim.Time, -1))
}

type anonymous struct{}

func (anonymous) Dimension() dim.Vector { return dim.New(dim.Pow(dim.Mass, 2)) }

var _ = Describe("Quantity", func() {
	Describe("erase and cast round trip", func() {
		DescribeTable("returns the magnitude unchanged",
			func(x float64) {
				q, err := quantity.TryCast[units.Newton](quantity.Of[units.Newton](x).Erase())
				Expect(err).NotTo(HaveOccurred())
				Expect(q.Value()).To(Equal(x))
			},
			Entry("zero", 0.0),
			Entry("positive", 12.5),
			Entry("negative", -3.25),
			Entry("tiny", 1e-300),
			Entry("huge", math.MaxFloat64),
		)

		It("round trips through every catalog marker", func() {
			check := func(err error) { Expect(err).NotTo(HaveOccurred()) }
			_, err := quantity.TryCast[units.Meter](quantity.Of[units.Meter](1).Erase())
			check(err)
			_, err = quantity.TryCast[units.Unitless](quantity.Of[units.Unitless](1).Erase())
			check(err)
			_, err = quantity.TryCast[units.Ohm](quantity.Of[units.Ohm](1).Erase())
			check(err)
			_, err = quantity.TryCast[Velocity](quantity.Of[Velocity](1))
			check(err)
		})
	})

	Describe("zero value", func() {
		It("still carries the marker's dimension", func() {
			var q quantity.Quantity[units.Newton]
			Expect(q.Dimension()).To(Equal(quantity.DimensionOf[units.Newton]()))
			Expect(q.Erase().Dimension()).To(Equal(quantity.DimensionOf[units.Newton]()))
		})
	})

	Describe("addition", func() {
		It("preserves the marker's dimension", func() {
			sum := quantity.Of[units.Joule](2).Add(quantity.Of[units.Joule](3))
			Expect(sum.Value()).To(Equal(5.0))
			Expect(sum.Dimension()).To(Equal(quantity.DimensionOf[units.Joule]()))
			Expect(sum.Erase().Dimension()).To(Equal(quantity.DimensionOf[units.Joule]()))
		})

		It("subtracts and negates without touching the dimension", func() {
			q := quantity.Of[units.Meter](10).Sub(quantity.Of[units.Meter](4)).Neg()
			Expect(q.Value()).To(Equal(-6.0))
			Expect(q.Dimension()).To(Equal(dim.New(dim.Pow(dim.Length, 1))))
		})

		It("sums any number of quantities", func() {
			total := quantity.Sum(
				quantity.Of[units.Watt](1),
				quantity.Of[units.Watt](2),
				quantity.Of[units.Watt](3.5),
			)
			Expect(total.Value()).To(Equal(6.5))
			Expect(quantity.Sum[units.Watt]().Value()).To(BeZero())
		})
	})

	Describe("relabel", func() {
		It("moves torque to energy when the dimensions match", func() {
			torque := quantity.Of[units.NewtonMeter](4)
			j, err := quantity.Relabel[units.Joule](torque)
			Expect(err).NotTo(HaveOccurred())
			Expect(j.Add(quantity.Of[units.Joule](1)).Value()).To(Equal(5.0))
		})

		It("refuses markers with different dimensions", func() {
			_, err := quantity.Relabel[units.Newton](quantity.Of[units.Joule](1))
			Expect(err).To(MatchError(quantity.ErrDimensionMismatch))
		})
	})

	Describe("mismatch detection", func() {
		dims := []dim.Vector{
			dim.Identity(),
			dim.New(dim.Pow(dim.Length, 1)),
			dim.New(dim.Pow(dim.Length, 1), dim.Pow(dim.Time, -1)),
			dim.New(dim.Pow(dim.Mass, 1), dim.Pow(dim.Length, 1), dim.Pow(dim.Time, -2)),
			dim.New(dim.Pow(dim.Mass, 1), dim.Pow(dim.Length, 2), dim.Pow(dim.Time, -2)),
			dim.New(dim.Pow(dim.Current, 1)),
			dim.New(dim.Pow(dim.Length, 1), dim.Pow(dim.Time, -1+1e-9)),
		}

		It("fails for every dimension other than the target's", func() {
			target := quantity.DimensionOf[units.Newton]()
			for _, d := range dims {
				_, err := quantity.TryCast[units.Newton](quantity.New(1, d))
				if d == target {
					Expect(err).NotTo(HaveOccurred())
					continue
				}
				Expect(err).To(MatchError(quantity.ErrDimensionMismatch), "dimension %v", d)
			}
		})

		It("reports both vectors and the target name", func() {
			_, err := quantity.TryCast[units.Newton](quantity.New(1, quantity.DimensionOf[units.Joule]()))

			var mismatch *quantity.MismatchError
			Expect(errors.As(err, &mismatch)).To(BeTrue())
			Expect(mismatch.Target).To(Equal("newton"))
			Expect(mismatch.Expected).To(Equal(quantity.DimensionOf[units.Newton]()))
			Expect(mismatch.Observed).To(Equal(quantity.DimensionOf[units.Joule]()))
			Expect(err.Error()).To(Equal("quantity: cannot cast to newton: expected length¹·mass¹·time⁻², got length²·mass¹·time⁻²"))
		})

		It("falls back to the type name for unnamed markers", func() {
			_, err := quantity.TryCast[anonymous](quantity.New(1, dim.Identity()))
			Expect(err).To(MatchError(ContainSubstring("cannot cast to anonymous")))
		})

		It("panics in Cast", func() {
			Expect(func() {
				quantity.Cast[units.Meter](quantity.New(1, dim.Identity()))
			}).To(PanicWith(BeAssignableToTypeOf(&quantity.MismatchError{})))
		})
	})

	Describe("scenario: sprint velocity", func() {
		var (
			distance quantity.Quantity[units.Meter]
			elapsed  quantity.Quantity[units.Second]
		)

		BeforeEach(func() {
			distance = quantity.Of[units.Meter](100.0)
			elapsed = quantity.Of[units.Second](9.6)
		})

		It("casts meter per second to velocity", func() {
			v, err := quantity.TryCast[Velocity](distance.Div(elapsed))
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Value()).To(BeNumerically("~", 10.4167, 1e-4))
			Expect(v.Dimension()).To(Equal(dim.New(dim.Pow(dim.Length, 1), dim.Pow(dim.Time, -1))))
		})

		It("agrees with the catalog velocity marker", func() {
			v := quantity.Cast[units.MetersPerSecond](quantity.Div(distance, elapsed))
			Expect(v.Value()).To(BeNumerically("~", 100.0/9.6, 1e-12))
		})

		It("refuses to cast meter per second to meter", func() {
			_, err := quantity.TryCast[units.Meter](distance.Div(elapsed))
			Expect(err).To(MatchError(quantity.ErrDimensionMismatch))

			var mismatch *quantity.MismatchError
			Expect(errors.As(err, &mismatch)).To(BeTrue())
			Expect(mismatch.Observed).To(Equal(dim.New(dim.Pow(dim.Length, 1), dim.Pow(dim.Time, -1))))
			Expect(mismatch.Expected).To(Equal(dim.New(dim.Pow(dim.Length, 1))))
			Expect(err.Error()).To(ContainSubstring("expected length¹·time⁰, got length¹·time⁻¹"))
		})
	})

	Describe("scenario: force from kg·m/s/s", func() {
		It("casts to newton", func() {
			mass := quantity.Of[units.Kilogram](2.0)
			length := quantity.Of[units.Meter](3.0)
			second := quantity.Of[units.Second](1.0)

			f, err := quantity.TryCast[units.Newton](mass.Mul(length).Div(second).Div(second))
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Value()).To(BeNumerically("~", 6.0, 1e-12))
		})

		It("fails after a single division by time", func() {
			mass := quantity.Of[units.Kilogram](2.0)
			_, err := quantity.TryCast[units.Newton](mass.Mul(quantity.Of[units.Meter](3.0)).Div(quantity.Of[units.Second](1.0)))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("scenario: division by zero", func() {
		It("keeps the dimensional bookkeeping", func() {
			d := quantity.Of[units.Meter](5)
			zero := quantity.Of[units.Second](0)

			var q quantity.Dynamic
			Expect(func() { q = d.Div(zero) }).NotTo(Panic())
			Expect(math.IsInf(q.Value(), 1)).To(BeTrue())
			Expect(q.IsFinite()).To(BeFalse())
			Expect(q.Dimension()).To(Equal(d.Dimension().Div(zero.Dimension())))

			v, err := quantity.TryCast[units.MetersPerSecond](q)
			Expect(err).NotTo(HaveOccurred())
			Expect(math.IsInf(v.Value(), 1)).To(BeTrue())
		})

		It("yields NaN for zero over zero", func() {
			q := quantity.Of[units.Meter](0).Div(quantity.Of[units.Second](0))
			Expect(math.IsNaN(q.Value())).To(BeTrue())
			Expect(q.Dimension()).To(Equal(quantity.DimensionOf[units.MetersPerSecond]()))
		})
	})

	Describe("dynamic arithmetic", func() {
		It("is commutative in dimension", func() {
			a := quantity.Of[units.Newton](2)
			b := quantity.Of[units.Second](3)
			Expect(a.Mul(b).Dimension()).To(Equal(b.Mul(a).Dimension()))
			Expect(a.Mul(b).Value()).To(Equal(b.Mul(a).Value()))
		})

		It("restores the dimension after dividing out a factor", func() {
			a := quantity.Of[units.Pascal](7)
			b := quantity.Of[units.CubicMeter](2)
			back, err := quantity.TryCast[units.Pascal](a.Mul(b).Div(b))
			Expect(err).NotTo(HaveOccurred())
			Expect(back.Value()).To(BeNumerically("~", 7, 1e-12))
		})

		It("raises to a power", func() {
			side := quantity.Of[units.SquareMeter](16).Erase().Pow(0.5)
			m, err := quantity.TryCast[units.Meter](side)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Value()).To(Equal(4.0))
		})

		It("negates and scales without touching the dimension", func() {
			q := quantity.Of[units.Volt](3).Erase().Neg().Scale(1e3)
			Expect(q.Value()).To(Equal(-3000.0))
			Expect(q.Dimension()).To(Equal(quantity.DimensionOf[units.Volt]()))
		})

		It("orders totally, NaN first", func() {
			one := quantity.New(1, dim.Identity())
			nan := quantity.New(math.NaN(), dim.Identity())
			Expect(nan.Compare(one)).To(Equal(-1))
			Expect(nan.Compare(nan)).To(Equal(0))
			Expect(one.Compare(quantity.New(1, dim.New(dim.Pow(dim.Length, 1))))).To(Equal(-1))
		})

		It("formats value and dimension", func() {
			Expect(quantity.Of[units.MetersPerSecond](2.5).String()).To(Equal("2.5 length¹·time⁻¹"))
			Expect(quantity.Of[units.Unitless](2).String()).To(Equal("2"))
		})

		It("returns the bare value from TryCastValue", func() {
			v, err := quantity.TryCastValue[units.Hertz](quantity.Of[units.Unitless](1).Div(quantity.Of[units.Second](0.5)))
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(2.0))

			_, err = quantity.TryCastValue[units.Hertz](quantity.Of[units.Second](1))
			Expect(err).To(HaveOccurred())
		})

		It("returns the bare value from CastValue and panics on mismatch", func() {
			Expect(quantity.CastValue[units.Hertz](quantity.Of[units.Unitless](3).Div(quantity.Of[units.Second](1.5)))).To(Equal(2.0))

			Expect(func() {
				quantity.CastValue[units.Hertz](quantity.Of[units.Second](1))
			}).To(PanicWith(BeAssignableToTypeOf(&quantity.MismatchError{})))
		})
	})

	Describe("concurrent use", func() {
		It("shares values across goroutines without locking", func() {
			mass := quantity.Of[units.Kilogram](2)
			accel := quantity.Of[units.MetersPerSecondSquared](9.81)

			var wg sync.WaitGroup
			results := make([]float64, 32)
			errs := make([]error, 32)
			for i := range results {
				wg.Add(1)
				go func(idx int) {
					defer wg.Done()
					f, err := quantity.TryCast[units.Newton](mass.Mul(accel))
					results[idx], errs[idx] = f.Value(), err
				}(i)
			}
			wg.Wait()

			for i := range results {
				Expect(errs[i]).NotTo(HaveOccurred())
				Expect(results[i]).To(BeNumerically("~", 19.62, 1e-9))
			}
		})
	})
})
