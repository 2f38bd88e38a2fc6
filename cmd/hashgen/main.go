package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lpserve/lpserve/pkg"
)

// hashgen produces a bcrypt hash for a given password, together with an
// insert statement for the users table. Handy when seeding the first
// user by hand.
func main() {
	password := flag.String("password", "", "password to hash")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "usage: hashgen -password <password>")
		os.Exit(1)
	}

	hash, err := pkg.HashPassword(*password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("hash:\n%s\n\n", hash)
	fmt.Println("insert statement:")
	fmt.Println("INSERT INTO users (email, password_hash, nome, ativo)")
	fmt.Println("VALUES (")
	fmt.Println("  'seu-email@exemplo.com',")
	fmt.Printf("  '%s',\n", hash)
	fmt.Println("  'Seu Nome',")
	fmt.Println("  true")
	fmt.Println(");")
}
