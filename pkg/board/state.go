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

// Package board implements a Three-Check chessboard: piece placement,
// FEN parsing/formatting, fully-legal move generation, and make/unmake
// via a stack of copied positions.
package board

import (
	"fmt"

	"github.com/mcthouacbb/Calamity/pkg/attacks"
	"github.com/mcthouacbb/Calamity/pkg/board/bitboard"
	"github.com/mcthouacbb/Calamity/pkg/board/mailbox"
	"github.com/mcthouacbb/Calamity/pkg/castling"
	"github.com/mcthouacbb/Calamity/pkg/move"
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
	"github.com/mcthouacbb/Calamity/pkg/zobrist"
)

// ChecksToLose is the number of checks a side must deliver to win a
// Three-Check game outright.
const ChecksToLose = 3

// BoardState is a complete, self-contained snapshot of a position. The
// Board stack clones one of these before every move and discards the
// clone on unmake, rather than recording an incremental diff.
type BoardState struct {
	Pieces  [piece.NType]bitboard.Board
	Colors  [piece.NColor]bitboard.Board
	Mailbox mailbox.Board
	Kings   [piece.NColor]square.Square

	SideToMove     piece.Color
	EPSquare       square.Square
	CastlingRights castling.Rights
	CastlingRooks  castling.Squares

	HalfMoveClock int
	FullMoves     int
	CheckCount    [piece.NColor]int

	// derived, recomputed after every make/unmake
	Checkers   bitboard.Board
	CheckMask  bitboard.Board
	DiagPinned bitboard.Board
	HVPinned   bitboard.Board

	Hash zobrist.Key

	// the move that produced this state and what it captured; MakeMove
	// reads CapturedPiece for the halfmove clock and castling rights.
	LastMove      move.Move
	CapturedPiece piece.Piece
}

func (s *BoardState) Occupied() bitboard.Board {
	return s.Colors[piece.White] | s.Colors[piece.Black]
}

func (s *BoardState) Pawns(c piece.Color) bitboard.Board   { return s.Pieces[piece.Pawn] & s.Colors[c] }
func (s *BoardState) Knights(c piece.Color) bitboard.Board { return s.Pieces[piece.Knight] & s.Colors[c] }
func (s *BoardState) Bishops(c piece.Color) bitboard.Board { return s.Pieces[piece.Bishop] & s.Colors[c] }
func (s *BoardState) Rooks(c piece.Color) bitboard.Board   { return s.Pieces[piece.Rook] & s.Colors[c] }
func (s *BoardState) Queens(c piece.Color) bitboard.Board  { return s.Pieces[piece.Queen] & s.Colors[c] }
func (s *BoardState) King(c piece.Color) bitboard.Board    { return s.Pieces[piece.King] & s.Colors[c] }

// ClearSquare empties sq, which must hold a piece, updating every
// derived record including the incremental hash.
func (s *BoardState) ClearSquare(sq square.Square) {
	p := s.Mailbox[sq]

	s.Colors[p.Color()].Unset(sq)
	s.Pieces[p.Type()].Unset(sq)
	s.Mailbox[sq] = piece.NoPiece
	s.Hash ^= zobrist.PieceSquare[p][sq]
}

// FillSquare places p on sq, which must be empty.
func (s *BoardState) FillSquare(sq square.Square, p piece.Piece) {
	c, t := p.Color(), p.Type()

	s.Colors[c].Set(sq)
	s.Pieces[t].Set(sq)
	s.Mailbox[sq] = p
	s.Hash ^= zobrist.PieceSquare[p][sq]

	if t == piece.King {
		s.Kings[c] = sq
	}
}

// MovePiece relocates whatever occupies from to to, which must be
// empty; it is a ClearSquare/FillSquare pair that preserves identity.
func (s *BoardState) MovePiece(from, to square.Square) {
	p := s.Mailbox[from]
	s.ClearSquare(from)
	s.FillSquare(to, p)
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (s *BoardState) IsAttacked(sq square.Square, by piece.Color) bool {
	return s.AttackersTo(sq, s.Occupied())&s.Colors[by] != bitboard.Empty
}

// IsCapture reports whether m captures a piece, including en passant.
// The move encoding itself carries no piece information, so this is a
// board query rather than a method on move.Move.
func (s *BoardState) IsCapture(m move.Move) bool {
	return m.IsEnPassant() || s.Mailbox[m.To()] != piece.NoPiece
}

// IsNoisy reports whether m is a capture or promotion: a tactical move
// quiescence search considers even after the main search has stopped
// extending the line.
func (s *BoardState) IsNoisy(m move.Move) bool {
	return s.IsCapture(m) || m.IsPromotion()
}

// ParseMove finds the legal move whose long algebraic notation
// (e.g. "e2e4", "e7e8q", castling in king-destination form "e1g1")
// matches str, as used to replay a UCI "position ... moves ..."
// command. It returns an error if str doesn't name a legal move.
func (s *BoardState) ParseMove(str string) (move.Move, error) {
	list := s.GenerateMoves()
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if m.String() == str {
			return m, nil
		}
	}
	return move.Null, fmt.Errorf("illegal or malformed move %q", str)
}

// AttackersTo returns every piece (of either color) attacking sq given
// occ as the board's occupancy (the caller may pass a modified
// occupancy to "see through" a piece being moved away, e.g. when
// checking a slider's attack after the king has vacated its square).
func (s *BoardState) AttackersTo(sq square.Square, occ bitboard.Board) bitboard.Board {
	queens := s.Pieces[piece.Queen]

	attackers := attacks.PawnAttacks(piece.White, sq) & s.Pawns(piece.Black)
	attackers |= attacks.PawnAttacks(piece.Black, sq) & s.Pawns(piece.White)
	attackers |= attacks.KnightAttacks(sq) & s.Pieces[piece.Knight]
	attackers |= attacks.KingAttacks(sq) & s.Pieces[piece.King]
	attackers |= attacks.Bishop(sq, occ) & (s.Pieces[piece.Bishop] | queens)
	attackers |= attacks.Rook(sq, occ) & (s.Pieces[piece.Rook] | queens)

	return attackers
}

// updateCheckInfo recomputes Checkers and CheckMask for the side to
// move. CheckMask is Universe with no checker (every square is a legal
// non-king destination), Empty with two or more checkers (only king
// moves are legal), and otherwise the checker's square together with
// the squares between it and the king (the squares a block or capture
// may land on).
func (s *BoardState) updateCheckInfo() {
	us := s.SideToMove
	them := us.Other()
	occ := s.Occupied()
	kingSq := s.Kings[us]

	s.Checkers = s.AttackersTo(kingSq, occ) & s.Colors[them]
	s.CheckMask = bitboard.Empty

	switch s.Checkers.Count() {
	case 0:
		s.CheckMask = bitboard.Universe
	case 1:
		checker := s.Checkers.FirstOne()
		s.CheckMask = bitboard.Squares[checker] | bitboard.Between[kingSq][checker]
	default:
		// double check: only king moves are legal, CheckMask stays Empty
	}
}

// updatePinInfo recomputes DiagPinned and HVPinned: the squares of our
// own pieces that stand alone between our king and an enemy slider
// along a diagonal or orthogonal line respectively. A pinned piece may
// only move along bitboard.Through[kingSq][pinnedSquare].
func (s *BoardState) updatePinInfo() {
	us := s.SideToMove
	them := us.Other()
	ourOcc := s.Colors[us]
	enemyOcc := s.Colors[them]
	kingSq := s.Kings[us]

	s.DiagPinned = bitboard.Empty
	s.HVPinned = bitboard.Empty

	diagSliders := (s.Pieces[piece.Bishop] | s.Pieces[piece.Queen]) & enemyOcc
	hvSliders := (s.Pieces[piece.Rook] | s.Pieces[piece.Queen]) & enemyOcc

	for xray := attacks.Bishop(kingSq, enemyOcc) & diagSliders; xray != bitboard.Empty; {
		pinner := xray.Pop()
		blockers := bitboard.Between[kingSq][pinner] & ourOcc
		if blockers.Count() == 1 {
			s.DiagPinned |= blockers
		}
	}

	for xray := attacks.Rook(kingSq, enemyOcc) & hvSliders; xray != bitboard.Empty; {
		pinner := xray.Pop()
		blockers := bitboard.Between[kingSq][pinner] & ourOcc
		if blockers.Count() == 1 {
			s.HVPinned |= blockers
		}
	}
}

// String renders a human-readable board, its FEN, and its zobrist key.
func (s *BoardState) String() string {
	return fmt.Sprintf("%s\nFen: %s\nKey: %016X\n", s.Mailbox, s.FEN(), uint64(s.Hash))
}
