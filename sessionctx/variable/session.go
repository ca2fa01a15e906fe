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

package variable

// DefDegreeOfParallelism is the default per-backend pipeline parallelism.
const DefDegreeOfParallelism = 1

// SessionVars is the set of session-scoped variables the optimizer reads.
type SessionVars struct {
	// DegreeOfParallelism is the configured per-backend degree of
	// parallelism used for capacity-aware cost scaling.
	DegreeOfParallelism int
}

// NewSessionVars creates SessionVars with default values.
func NewSessionVars() *SessionVars {
	return &SessionVars{
		DegreeOfParallelism: DefDegreeOfParallelism,
	}
}
