package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"xidach-server/internal/jwt"
	"xidach-server/pkg/model"
)

var command = flag.String("c", "account", "specifies the command (account, accounts, token)")

func main() {
	flag.Parse()

	switch *command {
	case "account":
		id := getInt64("Account ID")
		if id <= 0 {
			os.Exit(1)
		}

		balance := getInt64("Opening balance")
		if balance < 0 {
			os.Exit(1)
		}

		if !confirm(fmt.Sprintf("Create account %d with balance %d (Y/n)", id, balance)) {
			os.Exit(1)
		}

		account, err := model.DefaultStore().CreateAccount(context.Background(), id, balance)
		if err != nil {
			logrus.WithError(err).Fatal("could not create account")
		}

		fmt.Printf("Created account %d with balance %d\n", account.ID, account.Balance)

	case "accounts":
		accounts, err := model.DefaultStore().GetAccounts(context.Background(), 0, 100)
		if err != nil {
			logrus.WithError(err).Fatal("could not list accounts")
		}

		for _, account := range accounts {
			fmt.Printf("%d\t%d\t%s\n", account.ID, account.Balance, account.Updated.Format("2006-01-02 15:04:05"))
		}

	case "token":
		jwt.LoadKeys()

		id := getInt64("Account ID")
		if id <= 0 {
			os.Exit(1)
		}

		if _, err := model.DefaultStore().GetAccountByID(context.Background(), id); err != nil {
			logrus.WithError(err).Fatal("could not find account")
		}

		token, err := jwt.Sign(id)
		if err != nil {
			logrus.WithError(err).Fatal("could not sign token")
		}

		fmt.Println(token)

	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

// getInt64 asks until it gets a number. An empty answer returns -1.
func getInt64(question string) int64 {
	for {
		str, err := getInput(question)
		if err != nil {
			logrus.WithError(err).Warn("could not read answer")
			return -1
		}

		if str == "" {
			return -1
		}

		n, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%q is not a number\n", str)
			continue
		}

		return n
	}
}

// confirm always succeeds when stdin is not a terminal, so the tool can be scripted
func confirm(question string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return true
	}

	answer, err := getInput(question)
	if err != nil {
		logrus.WithError(err).Fatal("could not get answer")
	}

	return answer == "" || strings.ToLower(answer)[0] == 'y'
}

var stdin = bufio.NewReader(os.Stdin)

func getInput(question string) (string, error) {
	fmt.Printf("%s: ", question)
	str, err := stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	str = strings.TrimRight(str, "\r\n")

	return str, nil
}
