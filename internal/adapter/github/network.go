package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"time"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/yourusername/gitscout/internal/adapter/github"

// Doer sends a single HTTP request. *http.Client satisfies it; retrying,
// caching or rate-limited clients can be swapped in without changing any
// call site.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher performs one GET and decodes the body into out.
type Fetcher interface {
	Fetch(ctx context.Context, u *url.URL, out any) error
}

// validator is implemented by decoded types that have required fields.
type validator interface {
	Validate() error
}

// NetworkService is the default Fetcher. It holds no per-request state and
// is safe for concurrent use.
type NetworkService struct {
	client Doer
	logger *slog.Logger
}

// NewNetworkService creates a NetworkService. A nil client selects
// http.DefaultClient and a nil logger discards output.
func NewNetworkService(client Doer, logger *slog.Logger) *NetworkService {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &NetworkService{client: client, logger: logger}
}

// Fetch issues a GET for u and decodes a 2xx JSON body into out.
//
// Transport errors are returned exactly as the client produced them. A nil
// response yields ErrNoData, a status outside [200,300) yields a server
// error carrying the status, and a body that does not decode into out
// yields ErrDecoding. A body decodes only when it also passes validate.
func (s *NetworkService) Fetch(ctx context.Context, u *url.URL, out any) (err error) {
	requestID := xid.New().String()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "github.fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("request.id", requestID),
			attribute.String("url.path", u.Path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return invalidURL(err)
	}

	start := time.Now()
	logger := s.logger.With(
		slog.String("request_id", requestID),
		slog.String("method", req.Method),
		slog.String("url", u.String()),
	)
	if sc := span.SpanContext(); sc.HasTraceID() {
		logger = logger.With(slog.String("trace_id", sc.TraceID().String()))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Debug("request failed", slog.Duration("duration", time.Since(start)), slog.Any("error", err))
		return err
	}
	if resp == nil {
		logger.Debug("request returned no response", slog.Duration("duration", time.Since(start)))
		return &NetworkError{Kind: KindNoData}
	}
	if resp.Body == nil {
		resp.Body = http.NoBody
	}
	defer resp.Body.Close()

	logger.Debug("request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return serverError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return decodingError(err)
	}
	if err := validate(out); err != nil {
		logger.Debug("response rejected", slog.Any("error", err))
		return decodingError(err)
	}
	return nil
}

// validate checks a decoded value: a null top-level array is rejected, and
// the value, or each element of a slice, is checked when it implements
// validator.
func validate(out any) error {
	if v, ok := out.(validator); ok {
		return v.Validate()
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if v, ok := rv.Interface().(validator); ok {
		return v.Validate()
	}
	if rv.Kind() != reflect.Slice {
		return nil
	}
	if rv.IsNil() {
		return errors.New("expected an array, got null")
	}
	for i := range rv.Len() {
		if v, ok := rv.Index(i).Interface().(validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
	}
	return nil
}

// Fetch decodes the response for u into a new T using f.
func Fetch[T any](ctx context.Context, f Fetcher, u *url.URL) (T, error) {
	var out T
	if err := f.Fetch(ctx, u, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
