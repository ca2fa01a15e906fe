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

package model

import (
	"github.com/shineyearpf/starrocks/types"
)

// TableKind is the storage kind of a table.
type TableKind byte

// Table kinds. Only OLAP tables carry collected statistics.
const (
	TableKindOlap TableKind = iota
	TableKindMysql
	TableKindView
	TableKindLake
)

// ColumnInfo is the metadata of a column.
type ColumnInfo struct {
	ID        int64
	Name      string
	FieldType *types.FieldType
}

// TableInfo is the metadata of a table.
type TableInfo struct {
	ID      int64
	Name    string
	Kind    TableKind
	Columns []*ColumnInfo
}

// IsOlapTable reports whether the table is of the analytic columnar kind.
func (t *TableInfo) IsOlapTable() bool {
	return t.Kind == TableKindOlap
}

// FindColumn returns the column with the given name, or nil.
func (t *TableInfo) FindColumn(name string) *ColumnInfo {
	for _, col := range t.Columns {
		if col.Name == name {
			return col
		}
	}
	return nil
}

// DBInfo is the metadata of a database.
type DBInfo struct {
	ID     int64
	Name   string
	Tables []*TableInfo
}

// TableByID returns the table with the given id, or nil.
func (db *DBInfo) TableByID(id int64) *TableInfo {
	for _, tbl := range db.Tables {
		if tbl.ID == id {
			return tbl
		}
	}
	return nil
}
