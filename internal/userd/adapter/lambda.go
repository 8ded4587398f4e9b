// Copyright © 2025 jackelyj <dreamerlyj@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
//

// Package adapter bridges serverless invocation events onto the HTTP
// router. Dispatch is in-process: the event becomes an *http.Request served
// straight through the gin engine, never a network loopback.
package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/innovationmech/userd/pkg/logger"
	"go.uber.org/zap"
)

// Adapter translates API Gateway proxy events to router calls and back.
type Adapter struct {
	engine *gin.Engine
}

// New creates an adapter dispatching into the given engine.
func New(engine *gin.Engine) *Adapter {
	return &Adapter{engine: engine}
}

// Handle translates one invocation event, dispatches it, and repackages the
// router's response. Translation failures never pass through the router's
// own boundary; they are shaped into a 500 event reply here. The returned
// body is always plain text, so IsBase64Encoded is always false.
func (a *Adapter) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := a.buildRequest(ctx, event)
	if err != nil {
		logger.GetLogger().Error("failed to translate invocation event", zap.Error(err))
		return errorResponse(err), nil
	}

	rec := newResponseRecorder()
	a.engine.ServeHTTP(rec, req)

	headers := make(map[string]string, len(rec.header))
	for key, values := range rec.header {
		headers[key] = strings.Join(values, ",")
	}

	return events.APIGatewayProxyResponse{
		StatusCode:      rec.status,
		Headers:         headers,
		Body:            rec.body.String(),
		IsBase64Encoded: false,
	}, nil
}

// buildRequest converts the event into an in-process HTTP request.
func (a *Adapter) buildRequest(ctx context.Context, event events.APIGatewayProxyRequest) (*http.Request, error) {
	method := event.HTTPMethod
	if method == "" {
		method = http.MethodGet
	}
	path := event.Path
	if path == "" {
		path = "/"
	}

	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 body: %w", err)
		}
		body = string(decoded)
	}

	target := url.URL{Path: path}
	if len(event.QueryStringParameters) > 0 {
		query := url.Values{}
		for key, value := range event.QueryStringParameters {
			query.Set(key, value)
		}
		target.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	for key, value := range event.Headers {
		req.Header.Set(key, value)
	}
	return req, nil
}

// errorResponse shapes an adapter-boundary failure as a 500 event reply.
func errorResponse(err error) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(map[string]string{
		"error":   "Internal server error",
		"message": err.Error(),
	})
	return events.APIGatewayProxyResponse{
		StatusCode:      http.StatusInternalServerError,
		Headers:         map[string]string{"Content-Type": "application/json"},
		Body:            string(body),
		IsBase64Encoded: false,
	}
}

// responseRecorder captures the engine's response without a network hop.
type responseRecorder struct {
	status int
	header http.Header
	body   strings.Builder
}

func newResponseRecorder() *responseRecorder {
	return &responseRecorder{
		status: http.StatusOK,
		header: make(http.Header),
	}
}

func (r *responseRecorder) Header() http.Header {
	return r.header
}

func (r *responseRecorder) Write(p []byte) (int, error) {
	return r.body.Write(p)
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
}
