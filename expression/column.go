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

package expression

import (
	"fmt"

	"github.com/shineyearpf/starrocks/types"
)

// Column represents a column reference used by the optimizer. Two Column
// values refer to the same column iff their UniqueIDs are equal.
type Column struct {
	UniqueID int64
	Name     string
	RetType  *types.FieldType
}

// GetType returns the logical type of the column.
func (col *Column) GetType() *types.FieldType {
	return col.RetType
}

// String implements fmt.Stringer.
func (col *Column) String() string {
	return fmt.Sprintf("Column#%d(%s)", col.UniqueID, col.Name)
}
