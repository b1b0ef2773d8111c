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

package condition

import (
	"fmt"
	"math"
	"strconv"

	"dirpx.dev/dargs"
	"dirpx.dev/dargs/datatype"
	"dirpx.dev/dargs/reason"
)

var intType = datatype.Of[int]()

// CheckBounds validates that [offset, offset+length) lies within
// [0, total). It returns offset and length unchanged on success.
//
// A negative offset or length, an offset+length that does not fit in an int
// and a range running past total all fail with IndexOutOfBounds, each with
// its own reason. A negative total fails the same way with reason
// condition.size.
func CheckBounds(offset, length, total int) (int, int, error) {
	if err := checkSize("total", total); err != nil {
		return 0, 0, err
	}
	if offset < 0 {
		return 0, 0, outOfBounds("offset", reason.BoundsOffset,
			fmt.Sprintf("offset %d must not be negative", offset), ">= 0", offset)
	}
	if length < 0 {
		return 0, 0, outOfBounds("length", reason.BoundsLength,
			fmt.Sprintf("length %d must not be negative", length), ">= 0", length)
	}
	if offset > math.MaxInt-length {
		return 0, 0, outOfBounds("length", reason.BoundsOverflow,
			fmt.Sprintf("offset %d plus length %d overflows", offset, length),
			"<= "+strconv.Itoa(total), length)
	}
	if offset+length > total {
		return 0, 0, outOfBounds("length", reason.BoundsRange,
			fmt.Sprintf("length %d starting from offset %d exceeds total length %d", length, offset, total),
			"<= "+strconv.Itoa(max(total-offset, 0)), length)
	}
	return offset, length, nil
}

// CheckElementIndex validates an element index over [0, size) and returns it.
func CheckElementIndex(index, size int) (int, error) {
	if err := checkSize("size", size); err != nil {
		return 0, err
	}
	if index < 0 || index >= size {
		return 0, outOfBounds("index", reason.IndexElement,
			fmt.Sprintf("index %d out of range [0, %d)", index, size),
			"[0, "+strconv.Itoa(size)+")", index)
	}
	return index, nil
}

// CheckPositionIndex validates a position over [0, size] and returns it.
// Unlike an element index, size itself is a valid position.
func CheckPositionIndex(index, size int) (int, error) {
	if err := checkSize("size", size); err != nil {
		return 0, err
	}
	if index < 0 || index > size {
		return 0, outOfBounds("index", reason.IndexPosition,
			fmt.Sprintf("position index %d out of range [0, %d]", index, size),
			"[0, "+strconv.Itoa(size)+"]", index)
	}
	return index, nil
}

// CheckPositionIndexes validates 0 <= start <= end <= size and returns
// start and end. The conditions are checked in that order and each one
// fails with a distinct reason and message.
func CheckPositionIndexes(start, end, size int) (int, int, error) {
	if err := checkSize("size", size); err != nil {
		return 0, 0, err
	}
	if start < 0 {
		return 0, 0, outOfBounds("start", reason.IndexRangeStart,
			fmt.Sprintf("start index %d must not be negative", start), ">= 0", start)
	}
	if start > end {
		return 0, 0, outOfBounds("start", reason.IndexRangeOrder,
			fmt.Sprintf("start index %d is greater than end index %d", start, end),
			"<= "+strconv.Itoa(end), start)
	}
	if end > size {
		return 0, 0, outOfBounds("end", reason.IndexRangeEnd,
			fmt.Sprintf("end index %d out of range [0, %d]", end, size),
			"[0, "+strconv.Itoa(size)+"]", end)
	}
	return start, end, nil
}

func checkSize(name string, size int) error {
	if size >= 0 {
		return nil
	}
	return outOfBounds(name, reason.ConditionSize, "must not be negative", ">= 0", size)
}

func outOfBounds(name string, r reason.Reason, message, expected string, actual int) error {
	return dargs.IndexOutOfBounds(name, message,
		dargs.WithReason(r),
		dargs.WithExpected(expected),
		dargs.WithActual(strconv.Itoa(actual)),
		dargs.WithType(intType),
	)
}
