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

package types

// TypeKind is the kind of a column's logical type.
type TypeKind byte

// Logical type kinds known to the optimizer statistics layer.
const (
	KindUnknown TypeKind = iota
	KindBoolean
	KindTinyInt
	KindSmallInt
	KindInt
	KindBigInt
	KindFloat
	KindDouble
	KindDecimal
	KindDate
	KindDatetime
	KindChar
	KindVarchar
)

// FieldType describes the logical type of a column.
type FieldType struct {
	Kind TypeKind
}

// NewFieldType creates a FieldType of the given kind.
func NewFieldType(kind TypeKind) *FieldType {
	return &FieldType{Kind: kind}
}

// IsDate reports whether the type is the DATE type.
func (ft *FieldType) IsDate() bool {
	return ft.Kind == KindDate
}

// IsDatetime reports whether the type is the DATETIME type.
func (ft *FieldType) IsDatetime() bool {
	return ft.Kind == KindDatetime
}

// IsNumeric reports whether the type belongs to the numeric family.
func (ft *FieldType) IsNumeric() bool {
	switch ft.Kind {
	case KindBoolean, KindTinyInt, KindSmallInt, KindInt, KindBigInt,
		KindFloat, KindDouble, KindDecimal:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (ft *FieldType) String() string {
	switch ft.Kind {
	case KindBoolean:
		return "boolean"
	case KindTinyInt:
		return "tinyint"
	case KindSmallInt:
		return "smallint"
	case KindInt:
		return "int"
	case KindBigInt:
		return "bigint"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindDecimal:
		return "decimal"
	case KindDate:
		return "date"
	case KindDatetime:
		return "datetime"
	case KindChar:
		return "char"
	case KindVarchar:
		return "varchar"
	}
	return "unknown"
}
