// Command board is an interactive terminal viewer for stepping through
// a game and watching the engine's evaluation of each position update
// live: arrow keys move through the move list, 's' triggers a fresh
// search of the position on screen, and 'q' quits.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/colorstring"
	"github.com/mitchellh/go-wordwrap"
	"github.com/rivo/uniseg"

	"github.com/mcthouacbb/Calamity/pkg/board"
	"github.com/mcthouacbb/Calamity/pkg/move"
	"github.com/mcthouacbb/Calamity/pkg/piece"
	"github.com/mcthouacbb/Calamity/pkg/search"
)

func main() {
	fen := board.StartFEN
	var moves []string
	if len(os.Args) > 1 {
		if os.Args[1] != "startpos" {
			fen = os.Args[1]
		}
		if len(os.Args) > 2 {
			moves = os.Args[2:]
		}
	}

	v, err := newViewer(fen, moves)
	if err != nil {
		log.Fatal(err)
	}

	if err := ui.Init(); err != nil {
		log.Fatalf("board: failed to init terminal ui: %v", err)
	}
	defer ui.Close()

	v.run()
}

// viewer owns a board replayed up to some ply of a fixed move list,
// and the two widgets it renders into.
type viewer struct {
	root  *board.Board
	moves []move.Move
	ply   int // number of moves[0:ply] currently applied to root

	boardW *widgets.Paragraph
	infoW  *widgets.Paragraph

	engine         *search.Context
	lastSearchText string
}

func newViewer(fen string, moveStrs []string) (*viewer, error) {
	b, err := board.NewBoard(fen)
	if err != nil {
		return nil, err
	}

	moves := make([]move.Move, 0, len(moveStrs))
	replay, err := board.NewBoard(fen)
	if err != nil {
		return nil, err
	}
	for _, str := range moveStrs {
		m, err := replay.Current().ParseMove(str)
		if err != nil {
			return nil, fmt.Errorf("board: bad move %q: %w", str, err)
		}
		moves = append(moves, m)
		replay.MakeMove(m)
	}

	v := &viewer{
		root:   b,
		moves:  moves,
		boardW: widgets.NewParagraph(),
		infoW:  widgets.NewParagraph(),
		engine: search.NewContext(b),
	}
	v.boardW.Title = "position"
	v.infoW.Title = "engine"
	return v, nil
}

// current replays root through moves[:ply] and returns the resulting
// board state; it is cheap enough to call on every redraw since a
// viewer session only ever holds a handful of moves.
func (v *viewer) current() (*board.Board, error) {
	b, err := board.NewBoard(v.root.Current().FEN())
	if err != nil {
		return nil, err
	}
	for i := 0; i < v.ply; i++ {
		b.MakeMove(v.moves[i])
	}
	return b, nil
}

func (v *viewer) run() {
	grid := ui.NewGrid()
	w, h := ui.TerminalDimensions()
	grid.SetRect(0, 0, w, h)
	grid.Set(
		ui.NewRow(0.6, ui.NewCol(1.0, v.boardW)),
		ui.NewRow(0.4, ui.NewCol(1.0, v.infoW)),
	)

	v.redraw(grid)
	ui.Render(grid)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>":
			return
		case "<Right>":
			if v.ply < len(v.moves) {
				v.ply++
			}
		case "<Left>":
			if v.ply > 0 {
				v.ply--
			}
		case "s":
			v.search()
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			grid.SetRect(0, 0, payload.Width, payload.Height)
		}

		v.redraw(grid)
		ui.Render(grid)
	}
}

func (v *viewer) redraw(grid *ui.Grid) {
	b, err := v.current()
	if err != nil {
		v.boardW.Text = colorstring.Color("[red]" + err.Error())
		return
	}

	v.boardW.Text = renderBoard(b)

	s := b.Current()
	info := fmt.Sprintf(
		"fen: %s\nside to move: %s  checks w/b: %d/%d\nmove %d/%d\n\n%s",
		s.FEN(), s.SideToMove, s.CheckCount[0], s.CheckCount[1],
		v.ply, len(v.moves), v.lastSearchText,
	)
	v.infoW.Text = wordwrap.WrapString(info, uint(wrapWidth(v.infoW)))
}

func wrapWidth(p *widgets.Paragraph) int {
	width := p.Inner.Dx()
	if width <= 0 {
		width = 40
	}
	return width
}

// renderBoard draws an 8x8 grid of colorized piece glyphs, rank 8 at
// the top as a human board diagram would show it.
func renderBoard(b *board.Board) string {
	var sb strings.Builder
	s := b.Current()

	for rank := 7; rank >= 0; rank-- {
		sb.WriteString(fmt.Sprintf("%d ", rank+1))
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			glyph, color := glyphFor(s.Mailbox[sq])

			// pad every cell to the same terminal column width
			// before colorizing, since the ANSI escapes added by
			// colorstring aren't visible runes themselves
			pad := strings.Repeat(" ", max(0, 2-runewidth.StringWidth(glyph)))
			sb.WriteString(colorstring.Color("[" + color + "]" + glyph + "[reset]"))
			sb.WriteString(pad)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c d e f g h")

	text := sb.String()
	// uniseg counts grapheme clusters, not bytes, so a future fixed-width
	// layout can size the board pane off of it rather than len(text)
	_ = uniseg.GraphemeClusterCount(text)
	return text
}

// glyphFor returns a piece's unicode glyph and the colorstring color
// name it should be rendered in.
func glyphFor(p piece.Piece) (glyph, color string) {
	glyphs := map[piece.Piece]string{
		piece.WhitePawn: "♙", piece.WhiteKnight: "♘", piece.WhiteBishop: "♗",
		piece.WhiteRook: "♖", piece.WhiteQueen: "♕", piece.WhiteKing: "♔",
		piece.BlackPawn: "♟", piece.BlackKnight: "♞", piece.BlackBishop: "♝",
		piece.BlackRook: "♜", piece.BlackQueen: "♛", piece.BlackKing: "♚",
	}

	g, ok := glyphs[p]
	if !ok {
		return "·", "default"
	}
	if p < piece.BlackPawn {
		return g, "white"
	}
	return g, "red"
}

func (v *viewer) search() {
	b, err := v.current()
	if err != nil {
		return
	}
	v.engine = search.NewContext(b)
	pv, score := v.engine.Search(search.Limits{Depth: 10, Nodes: 2_000_000})
	v.lastSearchText = fmt.Sprintf("score %s  pv %s", score, pv.String())
}
