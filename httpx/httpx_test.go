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

package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/dargs"
	"dirpx.dev/dargs/apis"
	"dirpx.dev/dargs/datatype"
	"dirpx.dev/dargs/grpcx"
	"dirpx.dev/dargs/kind"
	"dirpx.dev/dargs/mapper"
	"dirpx.dev/dargs/reason"
)

func rangeError() *dargs.ArgumentError {
	return dargs.InvalidArgument("limit", "is out of range",
		dargs.WithReason(reason.NumericClosedRange),
		dargs.WithExpected("[1, 100]"),
		dargs.WithActual("500"),
		dargs.WithType(datatype.Int64),
	)
}

func TestWriter_View(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, rangeError())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ContentType, rec.Header().Get("Content-Type"))

	var got apis.ErrorView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, rangeError().ErrorView(), got)
}

func TestWriter_ViewUnknownError(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, errors.New("db password leaked"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	var got apis.ErrorView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), got.Message)
}

func TestWriter_CustomMapper(t *testing.T) {
	m := mapper.MustNew(mapper.WithHTTPPrefix(kind.InvalidArgument, "numeric.range", http.StatusUnprocessableEntity))
	rec := httptest.NewRecorder()
	Writer{Mapper: m}.Write(rec, rangeError())
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestWriter_Status(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{Format: FormatStatus}.Write(rec, rangeError())
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var p spb.Status
	require.NoError(t, protojson.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, int32(gcodes.InvalidArgument), p.GetCode())

	ae, ok := grpcx.FromError(gstatus.FromProto(&p).Err())
	require.True(t, ok)
	assert.True(t, rangeError().Equal(ae))
}

func TestWriter_StatusUnknownError(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{Format: FormatStatus}.Write(rec, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var p spb.Status
	require.NoError(t, protojson.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, int32(gcodes.Internal), p.GetCode())
	assert.Empty(t, p.GetDetails())
}

func TestWriter_NilError(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestWriter_Wrap(t *testing.T) {
	var buf bytes.Buffer
	w := Writer{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	h := w.Wrap(func(rw http.ResponseWriter, req *http.Request) error {
		if req.URL.Query().Get("state") == "" {
			return dargs.IllegalState("", "service not started")
		}
		rw.WriteHeader(http.StatusNoContent)
		return nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, buf.String(), "http_status=409")
	assert.Contains(t, buf.String(), "kind=illegal_state")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?state=ok", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
