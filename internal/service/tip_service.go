package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"golang.org/x/text/language"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/mmynk/tipcalc/internal/i18n"
	"github.com/mmynk/tipcalc/internal/middleware"
	"github.com/mmynk/tipcalc/internal/screen"
	"github.com/mmynk/tipcalc/pkg/tipv1"
)

// TipService implements the Connect TipService.
//
// Every call renders a fresh screen: nothing is kept between requests.
type TipService struct {
	tipv1.UnimplementedTipServiceHandler
	defaultLocale string
	metrics       *middleware.Metrics
}

// NewTipService creates a TipService. defaultLocale applies to requests
// without a locale; metrics may be nil.
func NewTipService(defaultLocale string, metrics *middleware.Metrics) *TipService {
	return &TipService{defaultLocale: defaultLocale, metrics: metrics}
}

func (s *TipService) locale(requested string) string {
	if requested == "" {
		return s.defaultLocale
	}
	return requested
}

// Calculate renders the tip and total for the raw field text in the request.
// Numeric input never causes an error; only an invalid locale does.
func (s *TipService) Calculate(ctx context.Context, req *connect.Request[tipv1.CalculateRequest]) (*connect.Response[tipv1.CalculateResponse], error) {
	locale := s.locale(req.Msg.Locale)
	scr, err := screen.NewForLocale(locale)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	st := scr.State()
	st.SetAmount(req.Msg.AmountInput)
	st.SetTipPercent(req.Msg.TipPercentInput)
	st.SetCustomTip(req.Msg.CustomTipInput)
	st.SetRoundUp(req.Msg.RoundUp)

	v := scr.Render()
	s.metrics.ObserveCalculation(string(v.Result.Mode), v.Input.RoundUp)

	slog.Debug("Calculated tip",
		"request_id", middleware.GetRequestID(ctx),
		"locale", locale,
		"mode", v.Result.Mode,
		"tip", v.FormattedTip,
		"total", v.FormattedTotal,
	)

	return connect.NewResponse(ResponseFromView(scr, v)), nil
}

// GetLabels returns the screen labels for the requested locale. The
// response's Content-Language header names the language actually used.
func (s *TipService) GetLabels(ctx context.Context, req *connect.Request[wrapperspb.StringValue]) (*connect.Response[structpb.Struct], error) {
	locale := s.locale(req.Msg.GetValue())
	if _, err := language.Parse(locale); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid locale %q: %w", locale, err))
	}

	labels := i18n.NewLabels(locale)
	fields := make(map[string]any, len(i18n.Keys))
	for key, msg := range labels.All() {
		fields[key] = msg
	}
	msg, err := structpb.NewStruct(fields)
	if err != nil {
		slog.Error("GetLabels failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := connect.NewResponse(msg)
	resp.Header().Set("Content-Language", labels.Language().String())
	return resp, nil
}

// ResponseFromView converts a rendered screen into the wire response.
func ResponseFromView(scr *screen.Screen, v screen.View) *tipv1.CalculateResponse {
	return &tipv1.CalculateResponse{
		Tip:            v.Result.Tip.String(),
		Total:          v.Result.Total.String(),
		FormattedTip:   v.FormattedTip,
		FormattedTotal: v.FormattedTotal,
		TipLine:        v.TipLine,
		TotalLine:      v.TotalLine,
		Mode:           string(v.Result.Mode),
		Currency:       scr.Currency().Unit().String(),
		Locale:         scr.Currency().Tag().String(),
	}
}
