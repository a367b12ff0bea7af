/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

// Package internal holds build metadata stamped in at link time.
package internal

var (
	// GitCommit is the commit hash of this build, set via ldflags.
	GitCommit = "unknown"

	// BuildTime is the UTC timestamp of this build, set via ldflags.
	BuildTime = "unknown"
)
