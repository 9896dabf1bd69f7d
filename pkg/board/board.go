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
	"github.com/mcthouacbb/Calamity/pkg/board/bitboard"
	"github.com/mcthouacbb/Calamity/pkg/castling"
	"github.com/mcthouacbb/Calamity/pkg/move"
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
	"github.com/mcthouacbb/Calamity/pkg/zobrist"
)

// StartFEN is the Three-Check starting position: the standard chess
// setup with zero checks delivered by either side.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 3+3"

// Board is a stack of BoardStates. MakeMove pushes a clone of the
// current state and mutates the clone (copy-make); UnmakeMove simply
// pops it, since the prior state is untouched underneath.
type Board struct {
	states []BoardState
}

// NewBoard parses fen into a fresh Board with a single state.
func NewBoard(fen string) (*Board, error) {
	s, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}

	b := &Board{states: make([]BoardState, 0, move.MaxMoves)}
	b.states = append(b.states, *s)
	return b, nil
}

// NewStartingBoard returns a Board set to the Three-Check starting position.
func NewStartingBoard() *Board {
	b, err := NewBoard(StartFEN)
	if err != nil {
		panic("board: invalid start FEN: " + err.Error())
	}
	return b
}

// Current returns the state on top of the stack, the position as of
// the last make (or the initial position, if none has been made yet).
func (b *Board) Current() *BoardState {
	return &b.states[len(b.states)-1]
}

// Ply returns the number of moves made since the board was created.
func (b *Board) Ply() int {
	return len(b.states) - 1
}

func (b *Board) String() string {
	return b.Current().String()
}

// MakeMove clones the current state, applies m to the clone, and
// pushes it: the canonical copy-make make/unmake pattern.
func (b *Board) MakeMove(m move.Move) {
	next := *b.Current()
	b.states = append(b.states, next)
	s := &b.states[len(b.states)-1]

	us := s.SideToMove
	them := us.Other()

	if s.EPSquare != square.None {
		s.Hash ^= zobrist.EnPassant[s.EPSquare.File()]
	}
	s.Hash ^= zobrist.Castling[s.CastlingRights]

	from, to := m.From(), m.To()
	moving := s.Mailbox[from]
	s.CapturedPiece = piece.NoPiece
	s.EPSquare = square.None

	switch m.Kind() {
	case move.Castle:
		kingSide := to == s.CastlingRooks.KingSide[us]
		kingDest := castling.KingDestination(kingSide, us)
		rookDest := castling.RookDestination(kingSide, us)
		rookFrom := to

		rook := s.Mailbox[rookFrom]

		s.ClearSquare(from)
		s.ClearSquare(rookFrom)
		s.FillSquare(kingDest, moving)
		s.FillSquare(rookDest, rook)

		s.CastlingRooks.RemoveColor(us)

	case move.EnPassant:
		captureSq := square.From(to.File(), from.Rank())
		s.CapturedPiece = s.Mailbox[captureSq]
		s.ClearSquare(captureSq)
		s.MovePiece(from, to)

	case move.Promotion:
		if s.Mailbox[to] != piece.NoPiece {
			s.CapturedPiece = s.Mailbox[to]
			s.ClearSquare(to)
		}
		s.ClearSquare(from)
		s.FillSquare(to, piece.New(m.PromotionPiece(), us))

	default: // move.Normal
		if s.Mailbox[to] != piece.NoPiece {
			s.CapturedPiece = s.Mailbox[to]
			s.ClearSquare(to)
		}
		s.MovePiece(from, to)

		if moving.Type() == piece.Pawn {
			diff := int(to) - int(from)
			if diff == 16 || diff == -16 {
				s.EPSquare = square.Square((int(from) + int(to)) / 2)
			}
		}
	}

	switch {
	case moving.Type() == piece.King:
		s.CastlingRooks.RemoveColor(us)
	case moving.Type() == piece.Rook:
		s.CastlingRooks.Remove(us, from)
	}
	if s.CapturedPiece.Type() == piece.Rook {
		s.CastlingRooks.Remove(them, to)
	}
	s.CastlingRights = s.CastlingRooks.Rights()

	if s.EPSquare != square.None {
		s.Hash ^= zobrist.EnPassant[s.EPSquare.File()]
	}
	s.Hash ^= zobrist.Castling[s.CastlingRights]
	s.Hash ^= zobrist.SideToMove

	if moving.Type() == piece.Pawn || s.CapturedPiece != piece.NoPiece {
		s.HalfMoveClock = 0
	} else {
		s.HalfMoveClock++
	}
	if us == piece.Black {
		s.FullMoves++
	}

	s.SideToMove = them
	s.LastMove = m

	s.updateCheckInfo()
	s.updatePinInfo()

	if s.Checkers != bitboard.Empty {
		s.CheckCount[us]++
	}
}

// UnmakeMove discards the current state, exposing the one beneath it.
// The Board must have a move to unmake (len(states) > 1).
func (b *Board) UnmakeMove() {
	b.states = b.states[:len(b.states)-1]
}

// MakeNullMove passes the turn without moving a piece, used by the
// null-move pruning heuristic in search. UnmakeMove undoes it exactly
// like any other move.
func (b *Board) MakeNullMove() {
	next := *b.Current()
	b.states = append(b.states, next)
	s := &b.states[len(b.states)-1]

	if s.EPSquare != square.None {
		s.Hash ^= zobrist.EnPassant[s.EPSquare.File()]
		s.EPSquare = square.None
	}

	s.SideToMove = s.SideToMove.Other()
	s.Hash ^= zobrist.SideToMove
	s.LastMove = move.Null
	s.HalfMoveClock++

	s.updateCheckInfo()
	s.updatePinInfo()
}

// IsDraw reports whether the current position is a draw by the
// 50-move rule or by repetition. Threefold repetition is not tracked
// separately from this point on; any repetition found in the reachable
// history is treated as a draw, which is simpler and sufficient for
// search purposes.
func (b *Board) IsDraw() bool {
	return b.Current().HalfMoveClock >= 100 || b.IsRepetition()
}

// IsRepetition reports whether the current position has occurred
// before since the last irreversible move (a pawn move or a capture
// resets the window, since no earlier position is reachable again
// past one of those).
func (b *Board) IsRepetition() bool {
	hash := b.Current().Hash
	n := len(b.states)
	depth := n - 1 - b.Current().HalfMoveClock
	if depth < 0 {
		depth = 0
	}

	for i := n - 3; i >= depth; i -= 2 {
		if b.states[i].Hash == hash {
			return true
		}
	}

	return false
}

// InCheck reports whether the side to move is in check.
func (s *BoardState) InCheck() bool {
	return s.Checkers != bitboard.Empty
}

// HasWonByChecks reports whether c has delivered ChecksToLose checks,
// which wins the game outright regardless of the board otherwise.
func (s *BoardState) HasWonByChecks(c piece.Color) bool {
	return s.CheckCount[c] >= ChecksToLose
}
