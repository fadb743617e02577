// Copyright 2026 aarith Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package aarith

import "errors"

var (
	// ErrDivByZero indicates an attempt to divide by zero.
	ErrDivByZero = errors.New("aarith: division by zero")

	// ErrOverflow indicates that a checked narrowing conversion could not
	// represent the value.
	ErrOverflow = errors.New("aarith: value out of range")

	// ErrInvalidRange indicates a malformed bit-range request.
	ErrInvalidRange = errors.New("aarith: invalid bit range")
)
