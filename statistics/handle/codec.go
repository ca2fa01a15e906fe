// Copyright 2022 StarRocks Authors.
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

package handle

import (
	"strconv"
	"time"

	"github.com/pingcap/errors"

	"github.com/shineyearpf/starrocks/types"
	"github.com/shineyearpf/starrocks/util/timeutil"
)

// Statistics storage serializes date and datetime values with fixed layouts.
const (
	dateLayout     = "20060102"
	datetimeLayout = "20060102150405"
)

// DecodeStatsValue maps one textual statistics value into the float64 value
// domain shared by histogram buckets and top-n entries. The mapping preserves
// the natural order of the column's type: chronological order for date and
// datetime values, numeric order otherwise.
func DecodeStatsValue(tp *types.FieldType, text string) (float64, error) {
	switch {
	case tp.IsDate():
		t, err := time.ParseInLocation(dateLayout, text, time.UTC)
		if err != nil {
			return 0, errors.Annotatef(ErrMalformedValue, "%q is not a %s date", text, dateLayout)
		}
		return float64(timeutil.DateTimeToNumber(t)), nil
	case tp.IsDatetime():
		t, err := time.ParseInLocation(datetimeLayout, text, time.UTC)
		if err != nil {
			return 0, errors.Annotatef(ErrMalformedValue, "%q is not a %s datetime", text, datetimeLayout)
		}
		return float64(timeutil.DateTimeToNumber(t)), nil
	default:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, errors.Annotatef(ErrMalformedValue, "%q is not a number", text)
		}
		return v, nil
	}
}

func decodeStatsInt(text string) (int64, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, errors.Annotatef(ErrMalformedValue, "%q is not an integer", text)
	}
	return v, nil
}
