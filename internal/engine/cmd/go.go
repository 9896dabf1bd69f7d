// Copyright © 2023 Rak Laptudirm <raklaptudirm@gmail.com>
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

package cmd

import (
	"errors"
	"math"
	"strconv"

	"github.com/mcthouacbb/Calamity/internal/engine/context"
	"github.com/mcthouacbb/Calamity/pkg/move"
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/search"
	"github.com/mcthouacbb/Calamity/pkg/uci/cmd"
	"github.com/mcthouacbb/Calamity/pkg/uci/flag"
)

// UCI command go [flags]
//
// Start calculating on the current position set up with the position
// command.
//
// There are a number of commands that can follow this command, all will be
// sent in the same string. If one command is not sent its value should be
// interpreted as it would not influence the search.
//
// searchmoves move... [not implemented]
//
//	restrict search to this moves only
//	Example: After position startpos and go infinite searchmoves e2e4
//	d2d4 the engine should only search the two moves e2e4 and d2d4 in
//	the initial position.
//
// ponder
//
//	Start searching in pondering mode.
//	Do not exit the search in ponder mode, even if it's mate!
//	This means that the last move sent in in the position string is the
//	ponder move. The engine can do what it wants to do, but after a
//	ponderhit command it should execute the suggested move to ponder on.
//	This means that the ponder move sent by the GUI can be interpreted as
//	a recommendation about which move to ponder. However, if the engine
//	decides to ponder on a different move, it should not display any mainlines
//	as they are likely to be misinterpreted by the GUI because the GUI expects
//	the engine to ponder on the suggested move.
//
// wtime x
//
//	White has x msec left on the clock
//
// btime x
//
//	black has x msec left on the clock
//
// winc x
//
//	white increment per move in milliseconds if x > 0
//
// binc x
//
//	black increment per move in milliseconds if x > 0
//
// movestogo x
//
//	there are x moves to the next time control,
//	this will only be sent if x > 0,
//	if you don't get this and get the wtime and btime it's sudden death
//
// depth x
//
//	search x plies only.
//
// nodes x
//
//	search x nodes only,
//
// mate x [not implemented]
//
//	search for a mate in x moves
//
// movetime x
//
//	search exactly x milliseconds
//
// infinite
//
//	search until the stop command. Do not exit the search without being told so in this mode!
func NewGo(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()

	// schema.Variadic("searchmoves")
	schema.Button("ponder")
	schema.Single("wtime")
	schema.Single("btime")
	schema.Single("winc")
	schema.Single("binc")
	schema.Single("movestogo")
	schema.Single("depth")
	schema.Single("nodes")
	// schema.Single("mate")
	schema.Single("movetime")
	schema.Button("infinite")

	return cmd.Command{
		Name: "go",
		Run: func(interaction cmd.Interaction) error {
			if engine.Search.InProgress() {
				// search already ongoing
				return errors.New("error: search currently in progress")
			}

			// parse search limits from flags
			limits, err := parseSearchLimits(engine, interaction.Values)
			if err != nil {
				return err
			}

			// ponder search
			if interaction.Values["ponder"].Set {
				if !engine.Options.Ponder {
					return errors.New("go ponder: pondering is disabled")
				}

				engine.Pondering = true

				// store search limits for later
				engine.PonderLimits = limits

				// for now, start an infinite search
				limits = search.Limits{
					Depth:    search.MaxDepth,
					Nodes:    math.MaxInt,
					Infinite: true,
				}
			}

			// start searching
			engine.Searching = true
			engine.Search.SetReportFunc(func(r search.Report) {
				interaction.Reply(r)
			})
			// search in a separate thread that we don't block the repl
			go func() {
				defer func() {
					// set search booleans to false
					// since the search has ended
					engine.Searching = false
					engine.Pondering = false
				}()

				// start search
				pv, _ := engine.Search.Search(limits)

				if bestMove, ponderMove := pv.Move(0), pv.Move(1); ponderMove == move.Null {
					// just print bestmove since pondermove is null
					interaction.Replyf("bestmove %s", bestMove)
				} else {
					// print bestmove and pondermove
					interaction.Replyf("bestmove %s ponder %s", bestMove, ponderMove)
				}
			}()

			return nil
		},

		Flags: schema,
	}
}

// parseSearchLimits parses the search flags and returns the limits.
func parseSearchLimits(engine *context.Engine, values flag.Values) (search.Limits, error) {
	var limits search.Limits

	// depth limit (default MaxDepth)
	limits.Depth = search.MaxDepth
	if depth := values["depth"]; depth.Set {
		d, _ := strconv.Atoi(depth.Value.(string))
		limits.Depth = d
	}

	// node limit (default unbounded)
	if nodes := values["nodes"]; nodes.Set {
		n, _ := strconv.Atoi(nodes.Value.(string))
		limits.Nodes = n
	}

	// check if wtime-btime controls are set
	timeSet := false
	if values["wtime"].Set || values["btime"].Set {
		if !values["wtime"].Set || !values["btime"].Set {
			return limits, errors.New("go: both wtime and btime should be set")
		}

		timeSet = true
	}

	switch {
	// only one of base time controls should be set
	case (values["movetime"].Set && values["infinite"].Set),
		(values["infinite"].Set && timeSet),
		(timeSet && values["movetime"].Set):

		return limits, errors.New("go: multiple time controls set")

	case values["movetime"].Set:
		// parse movetime
		t, err := strconv.Atoi(values["movetime"].Value.(string))
		if err != nil {
			return limits, err
		}

		limits.MoveTime = t

	case timeSet:
		var err error

		// parse times

		limits.Time[piece.White], err = strconv.Atoi(values["wtime"].Value.(string))
		if err != nil {
			return limits, err
		}

		limits.Time[piece.Black], err = strconv.Atoi(values["btime"].Value.(string))
		if err != nil {
			return limits, err
		}

		if values["winc"].Set || values["binc"].Set {
			// if one is set, both should be set
			if !values["winc"].Set || !values["binc"].Set {
				return limits, errors.New("go: both winc and binc should be set")
			}

			// parse increments

			limits.Increment[piece.White], err = strconv.Atoi(values["winc"].Value.(string))
			if err != nil {
				return limits, err
			}

			limits.Increment[piece.Black], err = strconv.Atoi(values["binc"].Value.(string))
			if err != nil {
				return limits, err
			}
		}

		// parse moves to next time control
		if values["movestogo"].Set {
			limits.MovesToGo, err = strconv.Atoi(values["movestogo"].Value.(string))
			if err != nil {
				return limits, err
			}
		}

	case values["infinite"].Set:
		limits.Infinite = true

	default:
		// no time control given at all: don't let a zero clock expire
		// the search instantly, run it out as depth/node bounded only
		limits.Infinite = true
	}

	return limits, nil
}
