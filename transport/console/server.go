package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/mancala/internal/apperror"
	"github.com/rocketscienceinc/mancala/internal/entity"
	"github.com/rocketscienceinc/mancala/internal/mancala"
)

const (
	colorActive = "2"
	colorError  = "1"
	colorStore  = "3"
)

type gameController interface {
	MoveStones(startPit, player int) (int, error)
	CurrentPlayer() int
	Snapshot() mancala.Snapshot
	EndGame() (bool, error)
	Result() (mancala.Result, error)
	Player(number int) (*entity.Player, error)
}

// Server drives one game over a line based text stream.
type Server struct {
	logger *slog.Logger
	game   gameController

	scanner *bufio.Scanner
	output  *termenv.Output
}

func New(logger *slog.Logger, game gameController, in io.Reader, out io.Writer, color bool) *Server {
	options := []termenv.OutputOption{}
	if !color {
		options = append(options, termenv.WithProfile(termenv.Ascii))
	}

	return &Server{
		logger:  logger.With("component", "console"),
		game:    game,
		scanner: bufio.NewScanner(in),
		output:  termenv.NewOutput(out, options...),
	}
}

type inputLine struct {
	text string
	err  error
}

// Start runs turns until the game ends, the input is exhausted, the player
// quits or ctx is cancelled. Cancellation also interrupts a pending prompt.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := that.readLines(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving game")
			return nil
		default:
		}

		over, err := that.game.EndGame()
		if err != nil {
			return fmt.Errorf("failed to check game over: %w", err)
		}

		that.renderBoard()

		if over {
			return that.announceResult()
		}

		player := that.game.CurrentPlayer()
		that.printf("%s, choose a pit (%s): ", that.playerName(player), pitRange(player))

		var input inputLine
		var ok bool
		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving game")
			return nil
		case input, ok = <-lines:
		}

		if !ok {
			log.Info("input closed, leaving game")
			return nil
		}

		if input.err != nil {
			return fmt.Errorf("failed to read input: %w", input.err)
		}

		line := strings.TrimSpace(input.text)
		if line == "q" || line == "quit" {
			that.printf("\nbye\n")
			return nil
		}

		pit, err := strconv.Atoi(line)
		if err != nil {
			that.printError(fmt.Sprintf("%q is not a pit number", line))
			continue
		}

		banked, err := that.game.MoveStones(pit, player)
		if err != nil {
			if errors.Is(err, apperror.ErrInvalidMove) || errors.Is(err, apperror.ErrPitNotFound) {
				that.printError(err.Error())
				continue
			}

			return fmt.Errorf("failed to move stones: %w", err)
		}

		if banked > 0 {
			that.printf("%s banked %d\n", that.playerName(player), banked)
		}

		if that.game.CurrentPlayer() == player {
			that.printf("%s goes again\n", that.playerName(player))
		}
	}
}

// readLines scans the input on its own goroutine so a blocked read never holds
// up cancellation. The channel is closed once the input is exhausted.
func (that *Server) readLines(ctx context.Context) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)

		for that.scanner.Scan() {
			select {
			case lines <- inputLine{text: that.scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}

		if err := that.scanner.Err(); err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return lines
}

func (that *Server) announceResult() error {
	result, err := that.game.Result()
	if err != nil {
		return fmt.Errorf("failed to get result: %w", err)
	}

	that.printf("\nGame over: %d - %d\n", result.StoreOne, result.StoreTwo)

	if result.Winner == mancala.Tie {
		that.printf("It's a tie!\n")
		return nil
	}

	winner := that.output.String(that.playerName(result.Winner) + " wins!").Bold().Foreground(that.output.Color(colorActive))
	that.printf("%s\n", winner.String())

	return nil
}

// renderBoard prints the board from player one's seat with the side to move
// highlighted.
func (that *Server) renderBoard() {
	snapshot := that.game.Snapshot()

	var sb strings.Builder
	sb.WriteString("\n    ")
	for pit := entity.NumPits; pit > entity.PitsPerSide; pit-- {
		fmt.Fprintf(&sb, "%5d", pit)
	}

	sb.WriteString("\n    ")
	for pit := entity.NumPits; pit > entity.PitsPerSide; pit-- {
		sb.WriteString(that.pitCell(snapshot, pit))
	}

	store := func(total int) string {
		return that.output.String(fmt.Sprintf("%4d", total)).Foreground(that.output.Color(colorStore)).String()
	}

	fmt.Fprintf(&sb, "\n%s%s%s\n    ", store(snapshot.Stores[1]), strings.Repeat(" ", 5*entity.PitsPerSide), store(snapshot.Stores[0]))

	for pit := 1; pit <= entity.PitsPerSide; pit++ {
		sb.WriteString(that.pitCell(snapshot, pit))
	}

	sb.WriteString("\n    ")
	for pit := 1; pit <= entity.PitsPerSide; pit++ {
		fmt.Fprintf(&sb, "%5d", pit)
	}

	sb.WriteString("\n\n")
	that.printf("%s", sb.String())
}

func (that *Server) pitCell(snapshot mancala.Snapshot, pit int) string {
	cell := fmt.Sprintf("[%3d]", snapshot.Pits[pit-1])

	side, err := entity.SideOf(pit)
	if err != nil || side != snapshot.CurrentPlayer || snapshot.Status == mancala.StatusFinished {
		return cell
	}

	return that.output.String(cell).Bold().Foreground(that.output.Color(colorActive)).String()
}

func (that *Server) printError(message string) {
	styled := that.output.String(message).Foreground(that.output.Color(colorError))
	that.printf("%s\n", styled.String())
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.output, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func (that *Server) playerName(number int) string {
	player, err := that.game.Player(number)
	if err != nil || player.Name == "" {
		return fmt.Sprintf("Player %d", number)
	}

	return player.Name
}

func pitRange(player int) string {
	first := entity.FirstPit(player)
	return fmt.Sprintf("%d-%d", first, first+entity.PitsPerSide-1)
}
