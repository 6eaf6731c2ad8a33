// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var (
	_ Error = new(methodNotFoundError)
	_ Error = new(parseError)
	_ Error = new(invalidRequestError)
	_ Error = new(internalError)
	_ Error = new(InvalidParamsError)
)

type methodNotFoundError struct{ method string }

func (e *methodNotFoundError) ErrorCode() int { return methodNotFoundCode }

func (e *methodNotFoundError) Error() string {
	return fmt.Sprintf("the method %s does not exist/is not available", e.method)
}

type parseError struct{ message string }

func (e *parseError) ErrorCode() int { return parseErrorCode }

func (e *parseError) Error() string { return e.message }

type invalidRequestError struct{ message string }

func (e *invalidRequestError) ErrorCode() int { return invalidRequestCode }

func (e *invalidRequestError) Error() string { return e.message }

type internalError struct{ message string }

func (e *internalError) ErrorCode() int { return internalErrorCode }

func (e *internalError) Error() string { return e.message }

// InvalidParamsError is reported when a method receives the wrong number or
// shape of positional params. Its code is 100, which existing clients match on.
type InvalidParamsError struct {
	Method string
	Params json.RawMessage
}

func (e *InvalidParamsError) ErrorCode() int { return invalidParamsCode }

func (e *InvalidParamsError) Error() string {
	var compact bytes.Buffer
	if len(e.Params) == 0 || json.Compact(&compact, e.Params) != nil {
		compact.Reset()
		compact.Write(e.Params)
	}
	params := compact.String()
	if params == "" {
		params = "null"
	}
	return fmt.Sprintf(errorMessageParamsPrefix, e.Method, params)
}
