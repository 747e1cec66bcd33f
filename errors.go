// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package docconv

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidFormatError is returned when a requested format label is not in the
// supported set. Detected before any conversion work.
type InvalidFormatError struct {
	Direction string // "input" or "output"
	Value     string
	Supported []string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("Unsupported %s format '%s'. Supported: %s",
		e.Direction, e.Value, strings.Join(e.Supported, ", "))
}

// MalformedPayloadError is returned when base64 decoding fails for a
// declared-binary input.
type MalformedPayloadError struct {
	Format string
	Err    error
}

func (e *MalformedPayloadError) Error() string {
	return "Binary formats require base64 encoded content"
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }

// BackendUnavailableError is returned when a conversion path needs an
// optional backend that is not wired into the engine.
type BackendUnavailableError struct {
	Backend string
	Module  string
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("%s backend not available. Rebuild with %s wired in", e.Backend, e.Module)
}

// UnsupportedOperationError is returned for format combinations that are
// nominally listed as supported but deliberately not implemented (PDF input
// extraction, RTF in either direction).
type UnsupportedOperationError struct {
	Message string
}

func (e *UnsupportedOperationError) Error() string { return e.Message }

// IsBackendUnavailable reports whether the error is a BackendUnavailableError.
func IsBackendUnavailable(err error) bool {
	var target *BackendUnavailableError
	return errors.As(err, &target)
}
