package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"recipechat/internal/api"
)

var quitWords = map[string]bool{"quit": true, "exit": true, "q": true}

func newChatCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [url]",
		Short: "Chat interactively about a recipe",
		Long: "Chat interactively about a recipe. Without a URL the first line read is\n" +
			"treated as the recipe URL. Type quit, exit or q to leave.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := ctx.openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			var url string
			if len(args) == 1 {
				url = args[0]
			}
			return runChat(cmd.Context(), rt.service, cmd.InOrStdin(), cmd.OutOrStdout(), url, isInteractive(cmd.InOrStdin()))
		},
	}
}

func newAskCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <url> <query>...",
		Short: "Answer one or more questions about a recipe",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := ctx.openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			parsed, err := rt.service.Parse(cmd.Context(), api.ParseRequest{URL: args[0]})
			if err != nil {
				return cliError(err)
			}
			out := cmd.OutOrStdout()
			for _, query := range args[1:] {
				answer, err := rt.service.Query(cmd.Context(), api.QueryRequest{SessionID: parsed.SessionID, Query: query})
				if err != nil {
					return cliError(err)
				}
				fmt.Fprintln(out, answer.Response)
			}
			return nil
		},
	}
}

// runChat drives one session from in until EOF or a quit word. Prompts
// and the banner are only written when interactive.
func runChat(ctx context.Context, service *api.Service, in io.Reader, out io.Writer, url string, interactive bool) error {
	scanner := bufio.NewScanner(in)
	prompt := func(label string) {
		if interactive {
			fmt.Fprint(out, label)
		}
	}

	if strings.TrimSpace(url) == "" {
		prompt("Recipe URL: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		url = scanner.Text()
	}

	parsed, err := service.Parse(ctx, api.ParseRequest{URL: url})
	if err != nil {
		return cliError(err)
	}
	if interactive {
		if parsed.Title != "" {
			fmt.Fprintf(out, "%s\n", parsed.Title)
		}
		fmt.Fprintln(out, parsed.Message)
		fmt.Fprintln(out, `Ask "show ingredients", "start", "next", "how much flour?"... or "quit" to leave.`)
	}

	for {
		prompt("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quitWords[strings.ToLower(line)] {
			return nil
		}
		answer, err := service.Query(ctx, api.QueryRequest{SessionID: parsed.SessionID, Query: line})
		if err != nil {
			return cliError(err)
		}
		fmt.Fprintln(out, answer.Response)
	}
}

func isInteractive(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// cliError surfaces the caller-facing message of a service error.
func cliError(err error) error {
	return errors.New(api.Message(err))
}
