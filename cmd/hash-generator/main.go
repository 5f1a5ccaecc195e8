// Command hash-generator prints bcrypt hashes for seeding users directly
// into the database. Each argument is hashed and verified before printing.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/quill-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("hash-generator", flag.ContinueOnError)
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *cost < bcrypt.MinCost || *cost > bcrypt.MaxCost {
		return fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if fs.NArg() == 0 {
		return errors.New("usage: hash-generator [-cost n] password...")
	}

	verifier := auth.NewBcryptVerifier()
	for _, password := range fs.Args() {
		hash, err := auth.HashPassword(password, *cost)
		if err != nil {
			return err
		}
		if err := verifier.Compare(hash, password); err != nil {
			return fmt.Errorf("generated hash failed verification: %w", err)
		}
		if _, err := fmt.Fprintln(out, hash); err != nil {
			return err
		}
	}
	return nil
}
