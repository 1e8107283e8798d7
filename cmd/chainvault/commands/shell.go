package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DisDoh/chainvault-go/auth"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive session; state persists across commands until exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runShell()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

const shellHelp = `commands:
  register <username> <password>
  login <username> <password>
  add <path>
  get_file <file> <output>
  get_all
  grant_permission <file> <grantee>
  search <keyword>...
  backup <name>
  load_backup <name>
  backups
  verify
  exit`

func runShell() {
	var current *auth.Session
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("chainvault> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		action, rest := parts[0], parts[1:]
		if action == "exit" || action == "quit" {
			return
		}
		if done := runShellCommand(action, rest, &current); !done {
			fmt.Println(shellHelp)
		}
	}
}

// runShellCommand dispatches one shell line. Returns false for unknown
// commands so the loop can print help.
func runShellCommand(action string, args []string, current **auth.Session) bool {
	fail := func(err error) {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	need := func(n int) bool {
		if len(args) != n {
			fmt.Printf("%s takes %d argument(s)\n", action, n)
			return false
		}
		return true
	}
	authed := func() *auth.Session {
		if *current == nil {
			fmt.Println("please log in first")
		}
		return *current
	}

	switch action {
	case "help":
		fmt.Println(shellHelp)

	case "register":
		if !need(2) {
			return true
		}
		if err := svc.Register(args[0], args[1]); err != nil {
			fail(err)
			return true
		}
		fmt.Printf("user %s registered\n", args[0])

	case "login":
		if !need(2) {
			return true
		}
		session, err := svc.Login(args[0], args[1])
		if err != nil {
			fail(err)
			return true
		}
		*current = session
		fmt.Printf("user %s logged in\n", args[0])

	case "add":
		session := authed()
		if session == nil || !need(1) {
			return true
		}
		content, err := os.ReadFile(args[0])
		if err != nil {
			fail(err)
			return true
		}
		if err := svc.AddFile(session, args[0], content); err != nil {
			fail(err)
			return true
		}
		fmt.Printf("added %s (%d bytes)\n", args[0], len(content))

	case "get_file":
		session := authed()
		if session == nil || !need(2) {
			return true
		}
		content, err := svc.GetFile(session, args[0])
		if err != nil {
			fail(err)
			return true
		}
		if err := os.WriteFile(args[1], content, 0600); err != nil {
			fail(err)
			return true
		}
		fmt.Printf("content of %s saved to %s\n", args[0], args[1])

	case "get_all":
		session := authed()
		if session == nil {
			return true
		}
		names, err := svc.GetAll(session)
		if err != nil {
			fail(err)
			return true
		}
		for _, name := range names {
			fmt.Println(name)
		}

	case "grant_permission":
		session := authed()
		if session == nil || !need(2) {
			return true
		}
		if err := svc.GrantPermission(session, args[0], args[1]); err != nil {
			fail(err)
			return true
		}
		fmt.Printf("access to %s granted to %s\n", args[0], args[1])

	case "search":
		for _, name := range svc.Search(args) {
			fmt.Println(name)
		}

	case "backup":
		if !need(1) {
			return true
		}
		if err := svc.Backup(args[0]); err != nil {
			fail(err)
			return true
		}
		fmt.Printf("backup %s written\n", args[0])

	case "load_backup":
		if !need(1) {
			return true
		}
		if err := svc.LoadBackup(args[0]); err != nil {
			fail(err)
			return true
		}
		fmt.Printf("backup %s loaded\n", args[0])

	case "backups":
		names, err := svc.ListBackups()
		if err != nil {
			fail(err)
			return true
		}
		for _, name := range names {
			fmt.Println(name)
		}

	case "verify":
		if err := svc.VerifyIntegrity(); err != nil {
			fail(err)
			return true
		}
		fmt.Println("chain intact")

	default:
		return false
	}
	return true
}
