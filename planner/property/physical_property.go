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

package property

// DistributionType is how a plan fragment's output is distributed across
// backend workers.
type DistributionType byte

// Distribution kinds. Shuffle, BucketShuffle and Colocate all partition both
// join sides across workers; their execution cost profile is equivalent and
// cost models treat them alike.
const (
	DistributionAny DistributionType = iota
	DistributionBroadcast
	DistributionShuffle
	DistributionBucketShuffle
	DistributionColocate
)

// DistributionProperty is the distribution part of a physical property.
type DistributionProperty struct {
	Type DistributionType
}

// IsBroadcast reports whether the property replicates the data to every
// worker.
func (p DistributionProperty) IsBroadcast() bool {
	return p.Type == DistributionBroadcast
}

// PhysicalPropertySet is the set of physical properties required from or
// provided by one plan node input.
type PhysicalPropertySet struct {
	Distribution DistributionProperty
}

// NewBroadcastPropertySet creates a property set with broadcast distribution.
func NewBroadcastPropertySet() PhysicalPropertySet {
	return PhysicalPropertySet{Distribution: DistributionProperty{Type: DistributionBroadcast}}
}

// NewShufflePropertySet creates a property set with shuffle distribution.
func NewShufflePropertySet() PhysicalPropertySet {
	return PhysicalPropertySet{Distribution: DistributionProperty{Type: DistributionShuffle}}
}
