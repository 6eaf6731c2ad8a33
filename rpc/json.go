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
	"context"
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

const (
	vsn                      = "2.0"
	defaultErrorCode         = -32000
	methodNotFoundCode       = -32601
	invalidRequestCode       = -32600
	parseErrorCode           = -32700
	internalErrorCode        = -32603
	invalidParamsCode        = 100
	maxRequestContentLength  = 1024 * 1024 * 5
	contentType              = "application/json"
	errorMessageParamsPrefix = "invalid %s params: %s"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Message is a JSON-RPC 2.0 request, response or notification.
type Message struct {
	Version string          `json:"jsonrpc,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Error   *jsonError      `json:"error,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
}

func (msg *Message) isNotification() bool {
	return msg.ID == nil && msg.Method != ""
}

func (msg *Message) isCall() bool {
	return msg.hasValidID() && msg.Method != ""
}

func (msg *Message) hasValidID() bool {
	return len(msg.ID) > 0 && msg.ID[0] != '{' && msg.ID[0] != '['
}

// ParamsArray splits positional params. Absent params are an empty list.
func (msg *Message) ParamsArray() ([]json.RawMessage, error) {
	if len(msg.Params) == 0 || bytes.Equal(msg.Params, []byte("null")) {
		return nil, nil
	}
	var params []json.RawMessage
	if err := jsonAPI.Unmarshal(msg.Params, &params); err != nil {
		return nil, fmt.Errorf("non-array params: %w", err)
	}
	return params, nil
}

// ReplyTo prepares msg as the response envelope for req.
func (msg *Message) ReplyTo(req *Message) {
	msg.Version = vsn
	msg.ID = req.ID
	if msg.ID == nil {
		msg.ID = null
	}
}

// SetResult encodes v as the result. Encoding failures become an internal error.
func (msg *Message) SetResult(v any) {
	res, err := jsonAPI.Marshal(v)
	if err != nil {
		msg.SetError(&internalError{message: err.Error()})
		return
	}
	msg.Error = nil
	msg.Result = res
}

// SetError maps err to the error object of msg, keeping its code when err is a rpc Error.
func (msg *Message) SetError(err error) {
	msg.Result = nil
	msg.Error = errorObject(err)
}

// SetInvalidParams writes the code 100 error for a parameter-shape violation of req.
func (msg *Message) SetInvalidParams(req *Message) {
	msg.SetError(&InvalidParamsError{Method: req.Method, Params: req.Params})
}

var null = json.RawMessage("null")

func errorObject(err error) *jsonError {
	je := &jsonError{Code: defaultErrorCode, Message: err.Error()}
	if ec, ok := err.(Error); ok {
		je.Code = ec.ErrorCode()
	}
	if de, ok := err.(DataError); ok {
		je.Data = de.ErrorData()
	}
	return je
}

func errorMessage(err error) *Message {
	msg := &Message{Version: vsn, ID: null}
	msg.SetError(err)
	return msg
}

type jsonError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (err *jsonError) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("json-rpc error %d", err.Code)
	}
	return err.Message
}

func (err *jsonError) ErrorCode() int {
	return err.Code
}

// parseMessage parses raw bytes as a single message or a batch.
func parseMessage(raw json.RawMessage) ([]*Message, bool, error) {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	if len(raw) == 0 {
		return nil, false, &parseError{"empty request"}
	}
	if raw[0] != '[' {
		msg := new(Message)
		if err := jsonAPI.Unmarshal(raw, msg); err != nil {
			return nil, false, &parseError{err.Error()}
		}
		return []*Message{msg}, false, nil
	}
	var batch []json.RawMessage
	if err := jsonAPI.Unmarshal(raw, &batch); err != nil {
		return nil, true, &parseError{err.Error()}
	}
	msgs := make([]*Message, len(batch))
	for i, m := range batch {
		msgs[i] = new(Message)
		// malformed members are answered individually
		if err := jsonAPI.Unmarshal(m, msgs[i]); err != nil {
			msgs[i] = &Message{Error: &jsonError{Code: invalidRequestCode, Message: err.Error()}}
		}
	}
	return msgs, true, nil
}

// write sends v as the complete response body.
func write(ctx context.Context, stream *jsoniter.Stream, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stream.WriteVal(v)
	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}
