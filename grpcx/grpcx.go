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

// Package grpcx maps dargs errors onto gRPC statuses.
//
// A converted status carries the standard google.rpc error details:
//   - ErrorInfo with the full error in its metadata, so clients can rebuild
//     the *dargs.ArgumentError with FromError;
//   - BadRequest for invalid argument and index errors;
//   - PreconditionFailure for illegal state errors.
package grpcx

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"dirpx.dev/dargs"
	"dirpx.dev/dargs/adapter"
	"dirpx.dev/dargs/apis"
	"dirpx.dev/dargs/datatype"
	"dirpx.dev/dargs/kind"
	"dirpx.dev/dargs/mapper"
	"dirpx.dev/dargs/reason"
)

// Domain is the ErrorInfo domain of statuses produced by this package.
const Domain = "dargs.dirpx.dev"

// Metadata keys of the ErrorInfo detail.
const (
	MetaKind      = "kind"
	MetaReason    = "reason"
	MetaParameter = "parameter"
	MetaMessage   = "message"
	MetaExpected  = "expected"
	MetaActual    = "actual"
	MetaType      = "type"
)

// Status converts err into a gRPC status using m. A nil m means
// mapper.Default().
//
// Errors that already are gRPC statuses are returned unchanged. Errors
// without a known kind become codes.Unknown with err's text. nil yields nil.
func Status(err error, m apis.Mapper) *gstatus.Status {
	if err == nil {
		return nil
	}
	if m == nil {
		m = mapper.Default()
	}
	if st, ok := gstatus.FromError(err); ok {
		return st
	}

	k, r, ok := adapter.Classify(err)
	if !ok {
		return gstatus.New(gcodes.Unknown, err.Error())
	}
	code := m.GRPCStatus(k, r)
	ae, _ := dargs.AsArgumentError(err)
	if ae == nil {
		return gstatus.New(code, err.Error())
	}

	details := []protoadapt.MessageV1{errorInfo(ae)}
	switch k {
	case kind.IllegalState:
		details = append(details, &errdetails.PreconditionFailure{
			Violations: []*errdetails.PreconditionFailure_Violation{{
				Type:        violationType(ae.Reason()),
				Subject:     ae.Parameter(),
				Description: ae.Message(),
			}},
		})
	default:
		if ae.Parameter() != "" {
			details = append(details, &errdetails.BadRequest{
				FieldViolations: []*errdetails.BadRequest_FieldViolation{{
					Field:       ae.Parameter(),
					Description: ae.Message(),
				}},
			})
		}
	}

	base := gstatus.New(code, ae.Error())
	// Attaching details only fails for an OK status, which never reaches here.
	if with, derr := base.WithDetails(details...); derr == nil {
		return with
	}
	return base
}

// Error is Status(err, m).Err().
func Error(err error, m apis.Mapper) error {
	return Status(err, m).Err()
}

// FromError rebuilds the *dargs.ArgumentError carried by a status produced
// by Status. ok is false when err is not a status or carries no dargs
// ErrorInfo.
func FromError(err error) (*dargs.ArgumentError, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		info, isInfo := d.(*errdetails.ErrorInfo)
		if !isInfo || info.GetDomain() != Domain {
			continue
		}
		return fromInfo(info)
	}
	return nil, false
}

// UnaryServerInterceptor converts handler errors of a known kind into gRPC
// statuses resolved through m. A nil m means mapper.Default(). Other errors
// pass through unchanged.
//
// Each conversion is logged at debug level when log is not nil.
func UnaryServerInterceptor(m apis.Mapper, log *slog.Logger) grpc.UnaryServerInterceptor {
	if m == nil {
		m = mapper.Default()
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, _, ok := adapter.Classify(err); !ok {
			return nil, err
		}

		st := Status(err, m)
		log.DebugContext(ctx, "argument error mapped",
			slog.String("method", info.FullMethod),
			slog.String("grpc_code", st.Code().String()),
			slog.Any("error", err),
		)
		return nil, st.Err()
	}
}

// UnaryClientInterceptor replaces status errors that carry a dargs
// ErrorInfo with the rebuilt *dargs.ArgumentError, so callers can use
// errors.Is with the dargs sentinels.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		if ae, ok := FromError(err); ok {
			return ae
		}
		return err
	}
}

func errorInfo(e *dargs.ArgumentError) *errdetails.ErrorInfo {
	md := map[string]string{MetaKind: e.Kind().String()}
	put := func(k, v string) {
		if v != "" {
			md[k] = v
		}
	}
	put(MetaReason, e.Reason().String())
	put(MetaParameter, e.Parameter())
	put(MetaMessage, e.Message())
	put(MetaExpected, e.Expected())
	put(MetaActual, e.Actual())
	put(MetaType, e.Type().String())

	return &errdetails.ErrorInfo{
		Reason:   infoReason(e),
		Domain:   Domain,
		Metadata: md,
	}
}

// infoReason renders the reason, or the kind when there is none, as
// UPPER_SNAKE_CASE.
func infoReason(e *dargs.ArgumentError) string {
	s := e.Reason().String()
	if s == "" {
		s = e.Kind().String()
	}
	return strings.ToUpper(strings.ReplaceAll(s, ".", "_"))
}

func violationType(r reason.Reason) string {
	if r == reason.Empty {
		return "STATE"
	}
	return strings.ToUpper(r.Category())
}

func fromInfo(info *errdetails.ErrorInfo) (*dargs.ArgumentError, bool) {
	md := info.GetMetadata()
	k, err := kind.Parse(md[MetaKind])
	if err != nil {
		return nil, false
	}

	var opts []dargs.Option
	if s := md[MetaReason]; s != "" {
		r, rerr := reason.Parse(s)
		if rerr != nil {
			return nil, false
		}
		opts = append(opts, dargs.WithReason(r))
	}
	if s := md[MetaType]; s != "" {
		t, terr := datatype.Parse(s)
		if terr != nil {
			return nil, false
		}
		opts = append(opts, dargs.WithType(t))
	}
	opts = append(opts,
		dargs.WithExpected(md[MetaExpected]),
		dargs.WithActual(md[MetaActual]),
	)
	return dargs.New(k, md[MetaParameter], md[MetaMessage], opts...), true
}
