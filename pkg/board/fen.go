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

package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcthouacbb/Calamity/pkg/castling"
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
	"github.com/mcthouacbb/Calamity/pkg/zobrist"
)

// ParseFEN parses a Three-Check FEN: the usual six fields plus a
// seventh "A+B" check-count field, where A is the number of checks
// White may still receive before losing and B is Black's equivalent
// (so "3+3" is the starting count and "0+2" means White has already
// lost by check).
func ParseFEN(fen string) (*BoardState, error) {
	fields := strings.Fields(fen)
	if len(fields) != 7 {
		return nil, fmt.Errorf("board: fen %q: want 7 fields, got %d", fen, len(fields))
	}

	s := &BoardState{}

	if err := s.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		s.SideToMove = piece.White
	case "b":
		s.SideToMove = piece.Black
	default:
		return nil, fmt.Errorf("board: fen %q: bad side to move %q", fen, fields[1])
	}

	s.CastlingRights = castling.NewRights(fields[2])
	s.CastlingRooks = castling.NewSquares(s.CastlingRights)

	if fields[3] == "-" {
		s.EPSquare = square.None
	} else {
		s.EPSquare = square.New(fields[3])
	}

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("board: fen %q: bad halfmove clock: %w", fen, err)
	}
	s.HalfMoveClock = halfMove

	fullMoves, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("board: fen %q: bad fullmove counter: %w", fen, err)
	}
	s.FullMoves = fullMoves

	white, black, err := parseCheckCounts(fields[6])
	if err != nil {
		return nil, fmt.Errorf("board: fen %q: %w", fen, err)
	}
	s.CheckCount[piece.White] = white
	s.CheckCount[piece.Black] = black

	// s.Hash already accumulated the piece-placement component during
	// parsePlacement (every FillSquare XORs its own key in); fold in
	// the remaining FEN-derived components here.
	if s.SideToMove == piece.Black {
		s.Hash ^= zobrist.SideToMove
	}
	s.Hash ^= zobrist.Castling[s.CastlingRights]
	if s.EPSquare != square.None {
		s.Hash ^= zobrist.EnPassant[s.EPSquare.File()]
	}

	s.updateCheckInfo()
	s.updatePinInfo()

	return s, nil
}

// parseCheckCounts turns an "A+B" field (the checks White, resp. Black,
// may still receive) into the number of checks each side has already
// delivered: White has delivered the checks Black has used up, and
// Black the checks White has used up.
func parseCheckCounts(field string) (white, black int, err error) {
	parts := strings.SplitN(field, "+", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad check-count field %q", field)
	}

	whiteLeft, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad check-count field %q: %w", field, err)
	}
	blackLeft, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad check-count field %q: %w", field, err)
	}

	return ChecksToLose - blackLeft, ChecksToLose - whiteLeft, nil
}

func (s *BoardState) parsePlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: placement %q: want 8 ranks, got %d", field, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := square.Rank8 - square.Rank(i)
		file := square.FileA

		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += square.File(c - '0')
				continue
			}
			if file > square.FileH {
				return fmt.Errorf("board: placement %q: rank %d overflows", field, i)
			}

			p := piece.NewFromString(string(c))
			s.FillSquare(square.From(file, rank), p)
			file++
		}
	}

	return nil
}

// FEN renders the state back into a Three-Check FEN string.
func (s *BoardState) FEN() string {
	whiteLeft := ChecksToLose - s.CheckCount[piece.Black]
	blackLeft := ChecksToLose - s.CheckCount[piece.White]

	var ep string
	if s.EPSquare == square.None {
		ep = "-"
	} else {
		ep = s.EPSquare.String()
	}

	return fmt.Sprintf("%s %s %s %s %d %d %d+%d",
		s.Mailbox.FEN(), s.SideToMove, s.CastlingRights, ep,
		s.HalfMoveClock, s.FullMoves, whiteLeft, blackLeft)
}
