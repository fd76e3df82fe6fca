package main

import (
	"fmt"
	"os"

	"github.com/memmaker/skirmish/engine/util"
	"github.com/memmaker/skirmish/game"
	"github.com/memmaker/skirmish/server"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "skirmish",
		Short:        "Headless grid tactics battle server and clients",
		SilenceUsage: true,
	}
	root.AddCommand(serveCommand(), botCommand())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the TCP battle server",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := server.ConfigFromEnv()
			if err != nil {
				return err
			}
			if config.Debug {
				util.SetLogLevel(util.LogLevelDebug)
			}
			return server.NewBattleServer(config).ListenTCP()
		},
	}
}

func botCommand() *cobra.Command {
	var endpoint string
	var name string
	var difficulty string
	var gameID string
	var create bool
	var gridSize int
	var seed int64
	var aiOpponent string

	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Connect a scripted player to a battle server",
		RunE: func(cmd *cobra.Command, args []string) error {
			bot, err := game.NewBotClient(endpoint, name, game.AIDifficulty(difficulty))
			if err != nil {
				return err
			}
			defer bot.Close()
			if create {
				if err := bot.CreateGame(gameID, gridSize, seed, game.AIDifficulty(aiOpponent)); err != nil {
					return err
				}
			} else {
				if err := bot.JoinGame(gameID); err != nil {
					return err
				}
			}
			result := bot.WaitForGameOver()
			switch {
			case result.Draw:
				fmt.Println("Draw")
			case result.YouWon:
				fmt.Println("Victory for", name)
			default:
				fmt.Println("Defeat for", name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&endpoint, "endpoint", "localhost:9999", "server address")
	cmd.Flags().StringVar(&name, "name", "bot", "player name")
	cmd.Flags().StringVar(&difficulty, "difficulty", "normal", "bot difficulty (easy, normal, hard)")
	cmd.Flags().StringVar(&gameID, "game", "", "game identifier (empty lets the server pick one)")
	cmd.Flags().BoolVar(&create, "create", false, "create the game instead of joining")
	cmd.Flags().IntVar(&gridSize, "grid-size", 0, "grid size when creating (0 uses the server default)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "terrain seed when creating")
	cmd.Flags().StringVar(&aiOpponent, "ai-opponent", "", "server-side opponent difficulty when creating")
	return cmd
}
