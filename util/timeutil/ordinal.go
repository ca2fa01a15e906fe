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

package timeutil

import "time"

// DateTimeToNumber maps a moment to the numeric ordinal used across the
// optimizer for date and datetime values: seconds since the Unix epoch.
// The mapping is strictly increasing in chronological order at second
// granularity, so float64 comparisons over encoded values agree with
// comparisons over the original times.
func DateTimeToNumber(t time.Time) int64 {
	return t.Unix()
}
