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

// Package engine wires the search, board, and UCI option machinery
// into a runnable uci.Client: one command per UCI verb, sharing the
// context.Engine state they read and mutate.
package engine

import (
	"github.com/mcthouacbb/Calamity/internal/engine/cmd"
	"github.com/mcthouacbb/Calamity/internal/engine/context"
	"github.com/mcthouacbb/Calamity/internal/engine/options"
	"github.com/mcthouacbb/Calamity/pkg/board"
	"github.com/mcthouacbb/Calamity/pkg/search"
	"github.com/mcthouacbb/Calamity/pkg/uci"
	"github.com/mcthouacbb/Calamity/pkg/uci/option"
)

// NewClient builds a UCI client with every command and option this
// engine supports, and a fresh search context on the starting position.
func NewClient() uci.Client {
	client := uci.NewClient()

	engine := &context.Engine{
		Client: client,
		Search: search.NewContext(board.NewStartingBoard()),
	}

	engine.OptionSchema = newOptionSchema(engine)
	if err := engine.OptionSchema.SetDefaults(); err != nil {
		panic("engine: bad default option value: " + err.Error())
	}

	client.AddCommand(cmd.NewD(engine))
	client.AddCommand(cmd.NewUci(engine))
	client.AddCommand(cmd.NewUciNewGame(engine))
	client.AddCommand(cmd.NewGo(engine))
	client.AddCommand(cmd.NewPosition(engine))
	client.AddCommand(cmd.NewStop(engine))
	client.AddCommand(cmd.NewSetOption(engine))
	client.AddCommand(cmd.NewPonderHit(engine))

	return client
}

func newOptionSchema(engine *context.Engine) option.Schema {
	schema := option.NewSchema()
	schema.AddOption("Hash", options.NewHash(engine))
	schema.AddOption("Threads", options.NewThreads(engine))
	schema.AddOption("Ponder", options.NewPonder(engine))
	return schema
}
