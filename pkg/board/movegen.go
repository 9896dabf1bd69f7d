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
	"github.com/mcthouacbb/Calamity/pkg/attacks"
	"github.com/mcthouacbb/Calamity/pkg/board/bitboard"
	"github.com/mcthouacbb/Calamity/pkg/castling"
	"github.com/mcthouacbb/Calamity/pkg/move"
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/square"
)

// GenerateMoves produces every fully-legal move in the position: there
// is no pseudo-legal pass and no after-the-fact king-safety filter.
// Pins are resolved by intersecting a pinned piece's destinations with
// the line between it and its king (bitboard.Through); checks are
// resolved by intersecting every non-king move's destination with
// CheckMask, which already collapses to Empty on a double check.
func (s *BoardState) GenerateMoves() move.List {
	var list move.List

	us := s.SideToMove
	them := us.Other()
	occ := s.Occupied()
	ourOcc := s.Colors[us]
	kingSq := s.Kings[us]

	s.generateKingMoves(&list, us, them, occ, ourOcc, kingSq)

	if s.Checkers.Count() >= 2 {
		return list // double check: only the king can move
	}

	s.generatePawnMoves(&list, us, them, occ, kingSq)
	s.generateKnightMoves(&list, us, ourOcc, kingSq)
	s.generateSliderMoves(&list, us, occ, ourOcc, kingSq)

	return list
}

// pinMask returns the legal destination mask a piece on from (belonging
// to the side to move) is restricted to: the full pin line if it is
// pinned, or an unrestricted mask otherwise. Applying it uniformly to
// every piece type is sufficient — a pinned knight's L-shaped targets
// never lie on a straight line, so it naturally loses all of them.
func (s *BoardState) pinMask(kingSq, from square.Square) bitboard.Board {
	if (s.DiagPinned|s.HVPinned)&bitboard.Squares[from] != bitboard.Empty {
		return bitboard.Through[kingSq][from]
	}
	return bitboard.Universe
}

func (s *BoardState) generateKnightMoves(list *move.List, us piece.Color, ourOcc bitboard.Board, kingSq square.Square) {
	for b := s.Knights(us); b != bitboard.Empty; {
		from := b.Pop()
		targets := attacks.Knight(from, ourOcc) & s.CheckMask & s.pinMask(kingSq, from)
		for t := targets; t != bitboard.Empty; {
			list.Add(move.New(from, t.Pop()))
		}
	}
}

func (s *BoardState) generateSliderMoves(list *move.List, us piece.Color, occ, ourOcc bitboard.Board, kingSq square.Square) {
	for b := s.Bishops(us) | s.Queens(us); b != bitboard.Empty; {
		from := b.Pop()
		var base bitboard.Board
		if s.Pieces[piece.Bishop]&bitboard.Squares[from] != bitboard.Empty {
			base = attacks.Bishop(from, occ)
		} else {
			base = attacks.Bishop(from, occ) | attacks.Rook(from, occ)
		}
		targets := base &^ ourOcc & s.CheckMask & s.pinMask(kingSq, from)
		for t := targets; t != bitboard.Empty; {
			list.Add(move.New(from, t.Pop()))
		}
	}

	for b := s.Rooks(us); b != bitboard.Empty; {
		from := b.Pop()
		targets := attacks.Rook(from, occ) &^ ourOcc & s.CheckMask & s.pinMask(kingSq, from)
		for t := targets; t != bitboard.Empty; {
			list.Add(move.New(from, t.Pop()))
		}
	}
}

func (s *BoardState) generateKingMoves(list *move.List, us, them piece.Color, occ, ourOcc bitboard.Board, kingSq square.Square) {
	occWithoutKing := occ &^ bitboard.Squares[kingSq]
	targets := attacks.King(kingSq, ourOcc, occ, s.CastlingRooks, us)

	kingSideDest := castling.KingDestination(true, us)
	queenSideDest := castling.KingDestination(false, us)

	for b := targets; b != bitboard.Empty; {
		to := b.Pop()

		if (to == kingSideDest && s.CastlingRooks.KingSide[us] != square.None) ||
			(to == queenSideDest && s.CastlingRooks.QueenSide[us] != square.None) {
			if s.Checkers != bitboard.Empty {
				continue // can't castle out of check
			}
			path := bitboard.Between[kingSq][to] | bitboard.Squares[to]
			if s.anyAttacked(path, them, occ) {
				continue // can't castle through or into check
			}

			var rookSq square.Square
			if to == kingSideDest {
				rookSq = s.CastlingRooks.KingSide[us]
			} else {
				rookSq = s.CastlingRooks.QueenSide[us]
			}
			list.Add(move.NewCastle(kingSq, rookSq))
			continue
		}

		if s.AttackersTo(to, occWithoutKing)&s.Colors[them] != bitboard.Empty {
			continue
		}
		list.Add(move.New(kingSq, to))
	}
}

// anyAttacked reports whether any square in targets is attacked by by.
func (s *BoardState) anyAttacked(targets bitboard.Board, by piece.Color, occ bitboard.Board) bool {
	for b := targets; b != bitboard.Empty; {
		sq := b.Pop()
		if s.AttackersTo(sq, occ)&s.Colors[by] != bitboard.Empty {
			return true
		}
	}
	return false
}

func (s *BoardState) generatePawnMoves(list *move.List, us, them piece.Color, occ bitboard.Board, kingSq square.Square) {
	theirOcc := s.Colors[them]

	homeRank := square.Rank2
	promoRank := square.Rank8
	if us == piece.Black {
		homeRank = square.Rank7
		promoRank = square.Rank1
	}

	for b := s.Pawns(us); b != bitboard.Empty; {
		from := b.Pop()
		pin := s.pinMask(kingSq, from)

		push := pawnPush(us, from) &^ occ
		if push != bitboard.Empty {
			to := push.FirstOne()
			if push&pin&s.CheckMask != bitboard.Empty {
				addPawnMove(list, from, to, to.Rank() == promoRank)
			}
			if from.Rank() == homeRank {
				double := pawnPush(us, to) &^ occ
				if double&pin&s.CheckMask != bitboard.Empty {
					list.Add(move.New(from, double.FirstOne()))
				}
			}
		}

		for caps := attacks.PawnAttacks(us, from) & theirOcc; caps != bitboard.Empty; {
			to := caps.Pop()
			if bitboard.Squares[to]&pin&s.CheckMask == bitboard.Empty {
				continue
			}
			addPawnMove(list, from, to, to.Rank() == promoRank)
		}

		s.tryEnPassant(list, us, from, kingSq, occ, pin)
	}
}

// pawnPush returns the single square ahead of s for color c, using the
// precomputed push table (it does not check occupancy).
func pawnPush(c piece.Color, s square.Square) bitboard.Board {
	return attacks.PushTable(c, s)
}

func addPawnMove(list *move.List, from, to square.Square, promotion bool) {
	if !promotion {
		list.Add(move.New(from, to))
		return
	}
	for _, p := range piece.Promotions {
		list.Add(move.NewPromotion(from, to, p))
	}
}

// tryEnPassant generates the en-passant capture from from, if legal.
// Beyond the ordinary pin/check-mask test, en passant has a unique
// failure mode: removing both the capturing and captured pawn from the
// board can expose the king to a rook/queen sliding along the rank
// they shared, or a bishop/queen sliding along a diagonal either pawn
// happened to be blocking — neither pawn's own pin state would have
// caught either discovery on its own.
func (s *BoardState) tryEnPassant(list *move.List, us piece.Color, from, kingSq square.Square, occ bitboard.Board, pin bitboard.Board) {
	if s.EPSquare == square.None {
		return
	}
	if attacks.PawnAttacks(us, from)&bitboard.Squares[s.EPSquare] == bitboard.Empty {
		return
	}

	them := us.Other()
	captureSq := square.From(s.EPSquare.File(), from.Rank())

	blocksCheck := (bitboard.Squares[s.EPSquare] | bitboard.Squares[captureSq]) & s.CheckMask
	if s.Checkers != bitboard.Empty && blocksCheck == bitboard.Empty {
		return
	}
	if bitboard.Squares[s.EPSquare]&pin == bitboard.Empty {
		return
	}

	occAfter := occ &^ bitboard.Squares[from] &^ bitboard.Squares[captureSq]
	occAfter |= bitboard.Squares[s.EPSquare]

	rankAttackers := attacks.Rook(kingSq, occAfter) & (s.Rooks(them) | s.Queens(them))
	if rankAttackers&bitboard.Ranks[kingSq.Rank()] != bitboard.Empty {
		return
	}

	diagAttackers := attacks.Bishop(kingSq, occAfter) & (s.Bishops(them) | s.Queens(them))
	if diagAttackers != bitboard.Empty {
		return
	}

	list.Add(move.NewEnPassant(from, s.EPSquare))
}
