package cli

import (
	"context"
	"strings"
)

func (a *App) prompt() string {
	if sess, ok := a.sess.Current(); ok {
		return "jobkeeper (" + sess.User.Username + ")> "
	}
	return "jobkeeper> "
}

// Root runs the command loop until exit or EOF.
func (a *App) Root(ctx context.Context) {
	a.printf("Welcome to jobkeeper (type 'help' for commands)\n")

	for {
		a.printf("%s", a.prompt())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "list", "l":
			a.list(ctx)
		case "add":
			a.add(ctx)
		case "edit":
			a.edit(ctx, args)
		case "delete", "del":
			a.delete(ctx, args)
		case "show":
			a.show(ctx, args)
		case "counts":
			a.counts(ctx)
		case "search":
			a.search(ctx, args)
		case "filter":
			a.filter(ctx, args)
		case "sort":
			a.sort(ctx, args)
		case "url":
			a.printf("%s\n", a.nav.Location().String())
		case "back":
			a.back(ctx)
		case "forward":
			a.forward(ctx)
		case "reset":
			a.reset(ctx)
		case "exit", "quit":
			a.printf("Bye!\n")
			return
		default:
			a.printf("Unknown command: %s\n", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		a.printf("Available commands: (l)ist, add, edit <id>, delete <id>, show <id>, counts,\n")
		a.printf("  search <text>, filter <All|Applied|Interviewed|Rejected>, sort <asc|desc>,\n")
		a.printf("  url, back, forward, reset, logout, exit\n")
	} else {
		a.printf("Available commands: register, login, exit\n")
	}
}
