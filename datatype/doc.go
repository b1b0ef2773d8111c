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

// Package datatype provides a closed, serializable tag for primitive and
// common library types.
//
// Tags have stable lowercase names ("int32", "string", "bigdecimal") and
// implement encoding.TextMarshaler, so they encode as their name in JSON,
// YAML and TOML. Of and OfValue map Go types to tags; argument errors use
// them to record the type of the value that failed a check.
package datatype
