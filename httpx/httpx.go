/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package httpx writes dargs errors as HTTP responses.
package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/dargs/adapter"
	"dirpx.dev/dargs/apis"
	"dirpx.dev/dargs/grpcx"
	"dirpx.dev/dargs/mapper"
)

// Format selects the response body encoding.
type Format uint8

const (
	// FormatView writes the apis.ErrorView as plain JSON.
	FormatView Format = iota

	// FormatStatus writes the google.rpc.Status produced by grpcx.Status
	// through protojson, for clients that already decode gRPC error details.
	FormatStatus
)

// ContentType is set on every error response.
const ContentType = "application/json; charset=utf-8"

// Writer turns errors into HTTP responses using the provided status mapper.
// The zero value is ready to use with mapper.Default() and FormatView.
type Writer struct {
	// Mapper resolves HTTP statuses. nil means mapper.Default().
	Mapper apis.Mapper

	// Format selects the body encoding.
	Format Format

	// Logger, when set, receives one debug record per written error.
	Logger *slog.Logger
}

// Write resolves the HTTP status of err and writes the error body.
//
// Errors without a known kind resolve to the mapper fallback and their text
// is replaced with the status text. Errors of a known kind are exposed as-is;
// callers apply redaction before calling Write if needed. nil writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	m := w.mapper()
	k, r, known := adapter.Classify(err)
	status := m.HTTPStatus(k, r)

	var (
		body []byte
		merr error
	)
	switch w.Format {
	case FormatStatus:
		var st *gstatus.Status
		if known {
			st = grpcx.Status(err, m)
		} else {
			st = gstatus.New(m.GRPCStatus(k, r), http.StatusText(status))
		}
		body, merr = protojson.Marshal(st.Proto())
	default:
		view := adapter.ToView(err)
		if !known {
			view = apis.ErrorView{Message: http.StatusText(status)}
		}
		body, merr = json.Marshal(view)
	}
	if merr != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"message":"` + http.StatusText(status) + `"}`)
	}

	if w.Logger != nil {
		w.Logger.Debug("argument error written",
			slog.Int("http_status", status),
			slog.String("kind", k.String()),
			slog.String("reason", r.String()),
			slog.Any("error", err),
		)
	}

	rw.Header().Set("Content-Type", ContentType)
	rw.WriteHeader(status)
	_, _ = rw.Write(append(body, '\n'))
}

// HandlerFunc is an HTTP handler that reports failures by returning them.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Wrap adapts h into an http.Handler that writes returned errors with w.
func (w Writer) Wrap(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		if err := h(rw, req); err != nil {
			w.Write(rw, err)
		}
	})
}

func (w Writer) mapper() apis.Mapper {
	if w.Mapper == nil {
		return mapper.Default()
	}
	return w.Mapper
}
