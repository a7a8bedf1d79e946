package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/mmynk/tipcalc/pkg/tipv1"
)

// echoService answers Calculate and fails GetLabels.
type echoService struct {
	tipv1.UnimplementedTipServiceHandler
	seenRequestID string
}

func (s *echoService) Calculate(ctx context.Context, req *connect.Request[tipv1.CalculateRequest]) (*connect.Response[tipv1.CalculateResponse], error) {
	s.seenRequestID = GetRequestID(ctx)
	return connect.NewResponse(&tipv1.CalculateResponse{Tip: req.Msg.AmountInput}), nil
}

func (s *echoService) GetLabels(context.Context, *connect.Request[wrapperspb.StringValue]) (*connect.Response[structpb.Struct], error) {
	return nil, connect.NewError(connect.CodeFailedPrecondition, errors.New("no labels"))
}

func TestInterceptors(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	svc := &echoService{}

	path, handler := tipv1.NewTipServiceHandler(svc,
		connect.WithInterceptors(LoggingInterceptor(), metrics.Interceptor()))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	client := tipv1.NewTipServiceClient(http.DefaultClient, server.URL)

	resp, err := client.Calculate(context.Background(), connect.NewRequest(&tipv1.CalculateRequest{AmountInput: "12"}))
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if resp.Msg.Tip != "12" {
		t.Errorf("Tip = %q, want 12", resp.Msg.Tip)
	}
	id := resp.Header().Get(RequestIDHeader)
	if id == "" || id != svc.seenRequestID {
		t.Errorf("request id header %q, handler saw %q", id, svc.seenRequestID)
	}

	_, err = client.GetLabels(context.Background(), connect.NewRequest(wrapperspb.String("en")))
	if connect.CodeOf(err) != connect.CodeFailedPrecondition {
		t.Fatalf("GetLabels code = %v, want failed_precondition", connect.CodeOf(err))
	}

	if got := testutil.ToFloat64(metrics.RPCCounter(tipv1.TipServiceCalculateProcedure, "ok")); got != 1 {
		t.Errorf("calculate ok count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.RPCCounter(tipv1.TipServiceGetLabelsProcedure, "failed_precondition")); got != 1 {
		t.Errorf("get labels error count = %v, want 1", got)
	}

	n, err := testutil.GatherAndCount(reg, "tipcalc_rpc_duration_seconds")
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if n != 2 {
		t.Errorf("duration series = %d, want 2", n)
	}
}

func TestObserveCalculationNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveCalculation("custom", true)

	m = NewMetrics(prometheus.NewRegistry())
	m.ObserveCalculation("custom", true)
	m.ObserveCalculation("custom", true)
	if got := testutil.ToFloat64(m.CalculationCounter("custom", true)); got != 2 {
		t.Errorf("custom/true = %v, want 2", got)
	}
}
