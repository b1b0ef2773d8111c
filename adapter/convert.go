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

// Package adapter projects errors onto the transport-neutral apis types.
//
// It works on any error: a dargs *ArgumentError anywhere in the chain, a
// foreign error implementing the apis interfaces, or a plain error.
package adapter

import (
	"errors"

	"dirpx.dev/dargs/apis"
	"dirpx.dev/dargs/kind"
	"dirpx.dev/dargs/mapper"
	"dirpx.dev/dargs/reason"
)

// Classify extracts the kind and reason from err's chain. ok is false when
// no error in the chain carries a known kind. An unparsable reason is
// reported as reason.Empty.
func Classify(err error) (k kind.Kind, r reason.Reason, ok bool) {
	var ke apis.KindedError
	if !errors.As(err, &ke) {
		return kind.Empty, reason.Empty, false
	}
	k, perr := kind.Parse(ke.ErrorKind())
	if perr != nil {
		return kind.Empty, reason.Empty, false
	}
	if re, isReasoned := ke.(apis.ReasonedError); isReasoned {
		if parsed, rerr := reason.Parse(re.ErrorReason()); rerr == nil {
			r = parsed
		}
	}
	return k, r, true
}

// ToView converts err into an ErrorView. An apis.ViewProvider in the chain
// supplies its own view. Otherwise the view is assembled from the apis
// interfaces err implements, with err.Error() as the message.
//
// No redaction is performed; callers expose exactly what the error holds.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		return vp.ErrorView()
	}

	v := apis.ErrorView{Message: err.Error()}
	if k, r, ok := Classify(err); ok {
		v.Kind = k.String()
		v.Reason = r.String()
	}
	var pe apis.ParameterError
	if errors.As(err, &pe) {
		v.Parameter = pe.ErrorParameter()
	}
	var de apis.DetailedError
	if errors.As(err, &de) {
		if ds := de.ErrorDetails(); len(ds) > 0 {
			v.Details = ds
		}
	}
	return v
}

// ToDescriptor resolves err through m and returns the flat descriptor used
// for logs, traces and message buses. A nil m means mapper.Default().
func ToDescriptor(err error, m apis.Mapper) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	if m == nil {
		m = mapper.Default()
	}
	k, r, _ := Classify(err)
	st := m.Status(k, r)
	d := apis.ErrorDescriptor{
		Kind:       k.String(),
		Reason:     r.String(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
	var pe apis.ParameterError
	if errors.As(err, &pe) {
		d.Parameter = pe.ErrorParameter()
	}
	return d
}
