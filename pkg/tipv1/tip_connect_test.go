package tipv1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
)

type echoTipService struct {
	UnimplementedTipServiceHandler
}

func (echoTipService) Calculate(_ context.Context, req *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error) {
	return connect.NewResponse(&CalculateResponse{Tip: req.Msg.AmountInput, Mode: "percentage"}), nil
}

func newEchoServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle(NewTipServiceHandler(echoTipService{}))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestCalculateContentTypes(t *testing.T) {
	server := newEchoServer(t)

	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
	}{
		{"json", "application/json", `{"amountInput":"33"}`, http.StatusOK},
		{"json with charset", "application/json; charset=utf-8", `{"amountInput":"33"}`, http.StatusOK},
		{"binary proto", "application/proto", "\x0a\x0233", http.StatusUnsupportedMediaType},
		{"no content type", "", `{"amountInput":"33"}`, http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, server.URL+TipServiceCalculateProcedure, strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("NewRequest failed: %v", err)
			}
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			resp, err := server.Client().Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var out CalculateResponse
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if out.Tip != "33" {
				t.Errorf("tip = %q, want 33", out.Tip)
			}
		})
	}
}

func TestCalculateClientRoundTrip(t *testing.T) {
	server := newEchoServer(t)
	client := NewTipServiceClient(server.Client(), server.URL)

	resp, err := client.Calculate(context.Background(), connect.NewRequest(&CalculateRequest{AmountInput: "50"}))
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if resp.Msg.Tip != "50" || resp.Msg.Mode != "percentage" {
		t.Errorf("response = %+v", resp.Msg)
	}
}
