// Package rpc exposes the split calculator as a Connect service.
//
// Messages are the plain Go types from internal/models carried as JSON, so the
// service can be called with any Connect client, or with curl:
//
//	curl -H 'Content-Type: application/json' \
//	  -d @session.json http://localhost:8080/splitwiser.v1.SplitService/CalculateSplit
package rpc

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/receiptsplit/internal/models"
)

const (
	// SplitServiceName is the fully-qualified name of the SplitService.
	SplitServiceName = "splitwiser.v1.SplitService"

	// SplitServiceCalculateSplitProcedure is the path of the CalculateSplit RPC.
	SplitServiceCalculateSplitProcedure = "/" + SplitServiceName + "/CalculateSplit"
)

// SplitServiceHandler is implemented by the server side of the SplitService.
type SplitServiceHandler interface {
	CalculateSplit(context.Context, *connect.Request[models.Session]) (*connect.Response[models.SplitSummary], error)
}

// NewSplitServiceHandler builds an HTTP handler for the service. It returns the
// path to mount the handler on.
func NewSplitServiceHandler(svc SplitServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
	calculateSplit := connect.NewUnaryHandler(
		SplitServiceCalculateSplitProcedure,
		svc.CalculateSplit,
		opts...,
	)
	return "/" + SplitServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SplitServiceCalculateSplitProcedure:
			calculateSplit.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// SplitServiceClient is a client for the SplitService.
type SplitServiceClient struct {
	calculateSplit *connect.Client[models.Session, models.SplitSummary]
}

// NewSplitServiceClient constructs a client for the service at baseURL
// (e.g. "http://localhost:8080").
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SplitServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &SplitServiceClient{
		calculateSplit: connect.NewClient[models.Session, models.SplitSummary](
			httpClient,
			baseURL+SplitServiceCalculateSplitProcedure,
			opts...,
		),
	}
}

// CalculateSplit calls splitwiser.v1.SplitService.CalculateSplit.
func (c *SplitServiceClient) CalculateSplit(ctx context.Context, req *connect.Request[models.Session]) (*connect.Response[models.SplitSummary], error) {
	return c.calculateSplit.CallUnary(ctx, req)
}

// JSONCodec marshals plain Go structs with encoding/json. It registers under
// the "json" name, replacing Connect's protobuf JSON codec.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) { return json.Marshal(msg) }

func (JSONCodec) Unmarshal(data []byte, msg any) error { return json.Unmarshal(data, msg) }
