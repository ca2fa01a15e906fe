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

package testsetup

import (
	"fmt"
	"os"

	"github.com/shineyearpf/starrocks/util/logutil"
)

// SetupForCommonTest runs before packages which are expected to be quiet in
// tests. It mutes the global logger.
func SetupForCommonTest() {
	cfg := logutil.NewLogConfig("fatal", logutil.DefaultLogFormat, "", false)
	if err := logutil.InitLogger(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "setup logger for test failed: %v", err)
	}
}
