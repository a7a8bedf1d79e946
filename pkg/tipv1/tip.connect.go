package tipv1

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// TipServiceName is the fully-qualified name of the TipService service.
const TipServiceName = "tipcalc.v1.TipService"

// Procedure names, used for routing and in interceptors.
const (
	// TipServiceCalculateProcedure is the path of TipService.Calculate.
	TipServiceCalculateProcedure = "/tipcalc.v1.TipService/Calculate"
	// TipServiceGetLabelsProcedure is the path of TipService.GetLabels.
	TipServiceGetLabelsProcedure = "/tipcalc.v1.TipService/GetLabels"
)

// TipServiceClient is a client for the tipcalc.v1.TipService service.
type TipServiceClient interface {
	// Calculate renders the tip and total for raw screen input.
	Calculate(context.Context, *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error)
	// GetLabels returns the localized screen labels for a locale.
	GetLabels(context.Context, *connect.Request[wrapperspb.StringValue]) (*connect.Response[structpb.Struct], error)
}

// NewTipServiceClient constructs a client for the tipcalc.v1.TipService
// service. baseURL is the server root, e.g. http://localhost:8080.
// The client always speaks the JSON codec.
func NewTipServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TipServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &tipServiceClient{
		calculate: connect.NewClient[CalculateRequest, CalculateResponse](
			httpClient, baseURL+TipServiceCalculateProcedure, opts...,
		),
		getLabels: connect.NewClient[wrapperspb.StringValue, structpb.Struct](
			httpClient, baseURL+TipServiceGetLabelsProcedure, opts...,
		),
	}
}

type tipServiceClient struct {
	calculate *connect.Client[CalculateRequest, CalculateResponse]
	getLabels *connect.Client[wrapperspb.StringValue, structpb.Struct]
}

func (c *tipServiceClient) Calculate(ctx context.Context, req *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}

func (c *tipServiceClient) GetLabels(ctx context.Context, req *connect.Request[wrapperspb.StringValue]) (*connect.Response[structpb.Struct], error) {
	return c.getLabels.CallUnary(ctx, req)
}

// TipServiceHandler is implemented by servers of tipcalc.v1.TipService.
type TipServiceHandler interface {
	Calculate(context.Context, *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error)
	GetLabels(context.Context, *connect.Request[wrapperspb.StringValue]) (*connect.Response[structpb.Struct], error)
}

// NewTipServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and
// the handler itself.
//
// Calculate messages are plain Go structs, so Calculate only speaks JSON;
// other encodings get 415 Unsupported Media Type.
func NewTipServiceHandler(svc TipServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{}), connect.WithCodec(charsetCodec{})}, opts...)
	calculate := jsonOnly(connect.NewUnaryHandler(TipServiceCalculateProcedure, svc.Calculate, opts...))
	getLabels := connect.NewUnaryHandler(TipServiceGetLabelsProcedure, svc.GetLabels, opts...)
	return "/" + TipServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TipServiceCalculateProcedure:
			calculate.ServeHTTP(w, r)
		case TipServiceGetLabelsProcedure:
			getLabels.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

func jsonOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if r.Method == http.MethodPost && !strings.HasSuffix(mediaType, "json") {
			w.Header().Set("Accept-Post", "application/json, application/grpc+json, application/grpc-web+json")
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UnimplementedTipServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTipServiceHandler struct{}

func (UnimplementedTipServiceHandler) Calculate(context.Context, *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tipcalc.v1.TipService.Calculate is not implemented"))
}

func (UnimplementedTipServiceHandler) GetLabels(context.Context, *connect.Request[wrapperspb.StringValue]) (*connect.Response[structpb.Struct], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tipcalc.v1.TipService.GetLabels is not implemented"))
}
