package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"team-backoffice/internal/lib/token"
)

// token_generator prints a bearer token for an existing user, handy for curl sessions.
func main() {
	var (
		userID int
		secret string
		ttl    time.Duration
	)

	flag.IntVar(&userID, "user", 0, "id of the user the token is issued for")
	flag.StringVar(&secret, "secret", os.Getenv("JWT_SECRET"), "signing secret, defaults to $JWT_SECRET")
	flag.DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if userID <= 0 || secret == "" {
		flag.Usage()
		os.Exit(2)
	}

	t, err := token.NewManager(secret, ttl).Issue(userID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to issue token:", err)
		os.Exit(1)
	}

	fmt.Println("TOKEN=" + t)
}
