package middleware

import (
	"context"
	"strconv"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the RPC and calculation collectors.
type Metrics struct {
	rpcs         *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	calculations *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rpcs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tipcalc",
			Name:      "rpc_requests_total",
			Help:      "RPCs handled, by procedure and Connect code.",
		}, []string{"procedure", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tipcalc",
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}, []string{"procedure"}),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tipcalc",
			Name:      "calculations_total",
			Help:      "Tip calculations, by tip mode and whether rounding was requested.",
		}, []string{"mode", "round_up"}),
	}
	reg.MustRegister(m.rpcs, m.duration, m.calculations)
	return m
}

// ObserveCalculation counts one calculation. A nil receiver is a no-op.
func (m *Metrics) ObserveCalculation(mode string, roundUp bool) {
	if m == nil {
		return
	}
	m.CalculationCounter(mode, roundUp).Inc()
}

// CalculationCounter returns the calculation counter for one label pair.
func (m *Metrics) CalculationCounter(mode string, roundUp bool) prometheus.Counter {
	return m.calculations.WithLabelValues(mode, strconv.FormatBool(roundUp))
}

// RPCCounter returns the RPC counter for one procedure and code.
func (m *Metrics) RPCCounter(procedure, code string) prometheus.Counter {
	return m.rpcs.WithLabelValues(procedure, code)
}

// Interceptor returns a Connect interceptor recording count and latency of
// every unary RPC.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.RPCCounter(procedure, code).Inc()
			m.duration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}
