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
	"github.com/pingcap/errors"
)

// Load failures form a closed taxonomy. Catalog resolution failures are the
// infoschema errors; the ones below cover payload decoding and the upstream
// fetch. A load that returns zero rows is not an error.
var (
	// ErrMalformedHistogram reports a histogram payload that is not a JSON
	// object with the expected buckets and top-n arrays.
	ErrMalformedHistogram = errors.New("malformed histogram payload")
	// ErrMalformedValue reports a bucket or top-n value that cannot be
	// decoded under the owning column's type.
	ErrMalformedValue = errors.New("malformed statistics value")
	// ErrQueryHistogramFailed wraps any error returned by the statistics
	// storage fetch.
	ErrQueryHistogramFailed = errors.New("query histogram statistics failed")
)
