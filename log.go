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

package dargs

import "log/slog"

var _ slog.LogValuer = (*ArgumentError)(nil)

// LogValue implements slog.LogValuer. Handlers render the error as a group,
// so
//
//	logger.Warn("rejected", "error", err)
//
// yields error.kind=..., error.parameter=... and so on. Empty fields are
// left out.
func (e *ArgumentError) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}
	attrs := make([]slog.Attr, 0, 7)
	attrs = append(attrs, slog.String("kind", e.kind.String()))
	attrs = appendString(attrs, "reason", e.reason.String())
	attrs = appendString(attrs, "parameter", e.parameter)
	attrs = appendString(attrs, "message", e.message)
	attrs = appendString(attrs, "expected", e.expected)
	attrs = appendString(attrs, "actual", e.actual)
	attrs = appendString(attrs, "type", e.typ.String())
	return slog.GroupValue(attrs...)
}

func appendString(attrs []slog.Attr, key, val string) []slog.Attr {
	if val == "" {
		return attrs
	}
	return append(attrs, slog.String(key, val))
}
