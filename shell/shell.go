// Package shell is an interactive driver for playing against the engine.
// It is a debugging surface, not a UI layer: it renders boards as text and
// dispatches typed commands straight into the core functions.
package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/nickelliottpimm/nodi-boardgame/ai"
	"github.com/nickelliottpimm/nodi-boardgame/board"
	"github.com/nickelliottpimm/nodi-boardgame/config"
	"github.com/nickelliottpimm/nodi-boardgame/game"
	"github.com/nickelliottpimm/nodi-boardgame/move"
	"github.com/nickelliottpimm/nodi-boardgame/movegen"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	g      *game.Game
	aiSide board.Player
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mnodi>\033[0m ",
		HistoryFile:     "/tmp/nodi_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{
		l:      l,
		cfg:    cfg,
		g:      game.NewGame(),
		aiSide: board.White,
	}
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "show - display the board\n")
	io.WriteString(w, "values - display the ability value of every occupied square\n")
	io.WriteString(w, "moves <sq> - list legal actions for the piece on <sq> (e.g. moves c2)\n")
	io.WriteString(w, "play <from> <to> - move, capture or combine from one square to another\n")
	io.WriteString(w, "scatter <from> [base] - scatter the king on <from>, optionally pre-stepping to base\n")
	io.WriteString(w, "rotate <sq> cw|ccw - rotate the king's arrow\n")
	io.WriteString(w, "ai - let the engine pick and play a move for the side on turn\n")
	io.WriteString(w, "undo - take back the last action\n")
	io.WriteString(w, "new - start a fresh game\n")
	io.WriteString(w, "exit - quit\n")
}

// Loop runs the REPL until exit or EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	sc.showBoard()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "exit", "bye":
			return
		case "help":
			usage(sc.l.Stderr())
		case "show":
			sc.showBoard()
		case "values":
			sc.showValues()
		case "moves":
			sc.cmdMoves(fields[1:])
		case "play":
			sc.cmdPlay(fields[1:])
		case "scatter":
			sc.cmdScatter(fields[1:])
		case "rotate":
			sc.cmdRotate(fields[1:])
		case "ai":
			sc.cmdAI()
		case "undo":
			sc.report(sc.g.Undo())
			sc.showBoard()
		case "new":
			sc.g = game.NewGame()
			sc.showBoard()
		default:
			showMessage("unknown command; try help", sc.l.Stderr())
		}
		if over, winner := sc.g.Status(); over {
			showMessage(fmt.Sprintf("game over: %v wins", winner), sc.l.Stdout())
		}
	}
}

func (sc *ShellController) showBoard() {
	showMessage(sc.g.Board().String(), sc.l.Stdout())
	showMessage(fmt.Sprintf("%v to move", sc.g.PlayerOnTurn()), sc.l.Stdout())
}

func (sc *ShellController) showValues() {
	b := sc.g.Board()
	var sb strings.Builder
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			pos := board.Pos{Row: r, Col: c}
			if b.At(pos) == nil {
				sb.WriteString(" .")
				continue
			}
			fmt.Fprintf(&sb, " %d", b.ValueAt(pos))
		}
		sb.WriteString("\n")
	}
	showMessage(sb.String(), sc.l.Stdout())
}

func (sc *ShellController) cmdMoves(args []string) {
	if len(args) != 1 {
		showMessage("usage: moves <sq>", sc.l.Stderr())
		return
	}
	pos, err := board.ParsePos(args[0])
	if err != nil {
		sc.report(err)
		return
	}
	set := movegen.LegalActionsFor(sc.g.Board(), pos)
	if set.Empty() {
		showMessage("no legal actions for that square", sc.l.Stdout())
		return
	}
	out := sc.l.Stdout()
	showMessage(fmt.Sprintf("moves:    %v", set.Moves), out)
	showMessage(fmt.Sprintf("captures: %v", set.Captures), out)
	showMessage(fmt.Sprintf("combines: %v", set.Combines), out)
	for _, opt := range set.ScatterOptions {
		showMessage(fmt.Sprintf("scatter:  base %v -> %v, %v", opt.Base, opt.L1, opt.L2), out)
	}
	if set.CanRotate {
		showMessage("rotate:   cw / ccw", out)
	}
}

func (sc *ShellController) cmdPlay(args []string) {
	if len(args) != 2 {
		showMessage("usage: play <from> <to>", sc.l.Stderr())
		return
	}
	from, err := board.ParsePos(args[0])
	if err != nil {
		sc.report(err)
		return
	}
	to, err := board.ParsePos(args[1])
	if err != nil {
		sc.report(err)
		return
	}
	a := actionFor(sc.g.Board(), from, to)
	if a == nil {
		showMessage("not a legal destination for that piece", sc.l.Stderr())
		return
	}
	sc.report(sc.g.PlayAction(a))
	sc.showBoard()
}

// actionFor classifies a from/to pair against the legal action sets, so
// the shell user doesn't have to say whether a step is a move, capture or
// combine.
func actionFor(b *board.Board, from, to board.Pos) *move.Action {
	set := movegen.LegalActionsFor(b, from)
	for _, p := range set.Moves {
		if p == to {
			return move.NewMove(from, to)
		}
	}
	for _, p := range set.Captures {
		if p == to {
			return move.NewCapture(from, to)
		}
	}
	for _, p := range set.Combines {
		if p == to {
			return move.NewCombine(from, to)
		}
	}
	return nil
}

func (sc *ShellController) cmdScatter(args []string) {
	if len(args) < 1 || len(args) > 2 {
		showMessage("usage: scatter <from> [base]", sc.l.Stderr())
		return
	}
	from, err := board.ParsePos(args[0])
	if err != nil {
		sc.report(err)
		return
	}
	base := from
	if len(args) == 2 {
		if base, err = board.ParsePos(args[1]); err != nil {
			sc.report(err)
			return
		}
	}
	chk := movegen.ValidateScatter(sc.g.Board(), from, base)
	if !chk.Can {
		showMessage(fmt.Sprintf("illegal scatter: %s", chk.Reason), sc.l.Stderr())
		return
	}
	sc.report(sc.g.PlayAction(move.NewScatter(from, base, chk.L1, chk.L2)))
	sc.showBoard()
}

func (sc *ShellController) cmdRotate(args []string) {
	if len(args) != 2 || (args[1] != "cw" && args[1] != "ccw") {
		showMessage("usage: rotate <sq> cw|ccw", sc.l.Stderr())
		return
	}
	pos, err := board.ParsePos(args[0])
	if err != nil {
		sc.report(err)
		return
	}
	rot := move.CW
	if args[1] == "ccw" {
		rot = move.CCW
	}
	sc.report(sc.g.PlayAction(move.NewRotate(pos, rot)))
	sc.showBoard()
}

func (sc *ShellController) cmdAI() {
	side := sc.g.PlayerOnTurn()
	action, err := ai.PickWithLookahead(context.Background(), sc.g.Board(), side,
		ai.Options{
			MoveLimit:  sc.cfg.MoveLimit,
			ReplyLimit: sc.cfg.ReplyLimit,
			TieEpsilon: sc.cfg.TieEpsilon,
			Threads:    sc.cfg.Threads,
			Weights:    &sc.cfg.Weights,
		})
	if err != nil {
		sc.report(err)
		return
	}
	showMessage(fmt.Sprintf("%v plays %v (score %.1f)",
		side, action.ShortDescription(), action.Score()), sc.l.Stdout())
	if err := sc.g.PlayAction(action); err != nil {
		log.Error().Err(err).Msg("engine picked an unplayable action")
		return
	}
	sc.showBoard()
}

func (sc *ShellController) report(err error) {
	if err != nil {
		showMessage(fmt.Sprintf("error: %v", err), sc.l.Stderr())
	}
}
