package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abalidoth/reversi/internal/reversi"
)

func playerMarker(p reversi.Player) string {
	if p == reversi.White {
		return "○"
	}
	return "●"
}

// readMove prompts until the player enters a playable move, a legal pass or
// quits. The second return value is false when the game should stop.
func readMove(scanner *bufio.Scanner, board *reversi.Board) (reversi.Move, bool) {
	for {
		fmt.Printf("%s's move: ", playerMarker(board.Turn()))

		if !scanner.Scan() {
			return reversi.Move{}, false
		}

		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch input {
		case "":
			continue
		case "quit":
			return reversi.Move{}, false
		case "pass":
			if board.HasLegalMoves() {
				fmt.Println("you still have a legal move")
				continue
			}
			return reversi.PassMove, true
		}

		move, err := reversi.ParseField(input)
		if err != nil {
			fmt.Println(err)
			continue
		}

		if move.Pass || !board.IsLegalMove(move.Coord) {
			fmt.Println("not a valid move")
			continue
		}

		return move, true
	}
}

func main() {
	height := flag.Int("height", 8, "board height")
	width := flag.Int("width", 8, "board width")
	twoPlayers := flag.Bool("two-players", false, "two human players instead of playing against the bot")
	flag.Parse()

	board, err := reversi.NewBoard(*height, *width)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	bot := reversi.NewRandomSelector(time.Now().UnixNano())
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println()
		board.Print()
		fmt.Println()

		if over, winner := board.CheckWinner(); over {
			if winner == reversi.Nobody {
				fmt.Println("draw!")
			} else {
				fmt.Printf("%s wins!\n", playerMarker(winner))
			}
			return
		}

		move, ok := readMove(scanner, board)
		if !ok {
			return
		}

		if err := board.Apply(move); err != nil {
			fmt.Println(err)
			continue
		}

		if *twoPlayers {
			continue
		}

		// The bot answers, passing when it must.
		if over, _ := board.CheckWinner(); !over {
			if err := board.Apply(bot.Select(board)); err != nil {
				fmt.Println(err)
				return
			}
		}
	}
}
