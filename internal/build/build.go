// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package build holds build-time information injected via linker
// flags (see scripts/build), so the engine can report its own version
// in response to the "uci" command without a hand-maintained constant.
package build

// Version is overwritten at build time with -ldflags
// "-X github.com/mcthouacbb/Calamity/internal/build.Version=...".
var Version = "dev"
