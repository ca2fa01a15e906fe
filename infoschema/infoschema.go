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

package infoschema

import (
	"github.com/pingcap/errors"

	"github.com/shineyearpf/starrocks/model"
)

// Catalog resolution errors.
var (
	// ErrDatabaseNotExists reports an unresolvable database id.
	ErrDatabaseNotExists = errors.New("unknown database")
	// ErrTableNotExists reports an unresolvable table id, or a table that is
	// not of the analytic columnar kind.
	ErrTableNotExists = errors.New("unknown table")
	// ErrColumnNotExists reports an unresolvable column name.
	ErrColumnNotExists = errors.New("unknown column")
)

// InfoSchema is the snapshot of the catalog metadata visible to the
// optimizer. Implementations must be safe for concurrent readers.
type InfoSchema interface {
	// SchemaByID returns the database with the given id.
	SchemaByID(id int64) (*model.DBInfo, bool)
}

type infoSchema struct {
	schemas map[int64]*model.DBInfo
}

// MockInfoSchema creates an InfoSchema over a fixed set of databases. It is
// used by tests and tools that do not run a full catalog service.
func MockInfoSchema(dbs []*model.DBInfo) InfoSchema {
	is := &infoSchema{schemas: make(map[int64]*model.DBInfo, len(dbs))}
	for _, db := range dbs {
		is.schemas[db.ID] = db
	}
	return is
}

func (is *infoSchema) SchemaByID(id int64) (*model.DBInfo, bool) {
	db, ok := is.schemas[id]
	return db, ok
}
