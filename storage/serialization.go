// Copyright 2025 Poiesic Systems
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


package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/poiesic/zakaut/core"
)

// idSize is the encoded size of a core.ID in index values.
const idSize = 8

// MarshalID serializes an ID to a fixed-width big-endian encoding, so that
// encoded IDs sort the same way the numeric values do.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, idSize)
	binary.BigEndian.PutUint64(buf, uint64(id))
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	if len(data) < idSize {
		return 0, fmt.Errorf("%w: id needs %d bytes, got %d", ErrTruncatedData, idSize, len(data))
	}
	return core.ID(binary.BigEndian.Uint64(data)), nil
}

// MarshalCaseRecord serializes a CaseRecord to bytes.
func MarshalCaseRecord(record *core.CaseRecord) ([]byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: case record: %v", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalCaseRecord deserializes a CaseRecord from bytes.
func UnmarshalCaseRecord(data []byte) (*core.CaseRecord, error) {
	var record core.CaseRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: case record: %v", ErrSerializationFailed, err)
	}
	return &record, nil
}

// MarshalRouteResult serializes a RouteResult to bytes.
func MarshalRouteResult(result *core.RouteResult) ([]byte, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("%w: route result: %v", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalRouteResult deserializes a RouteResult from bytes.
func UnmarshalRouteResult(data []byte) (*core.RouteResult, error) {
	var result core.RouteResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: route result: %v", ErrSerializationFailed, err)
	}
	return &result, nil
}
