package cmn

import (
	"fmt"
	"syscall"

	"golang.org/x/crypto/ssh/terminal"
)

/*
	interactive password prompt for configs that carry a username but
	no password. opt-in - a library must never block a service on
	stdin by surprise.
*/
var PromptPassword = false

func ReadPassword(name string) (string, error) {
	if !PromptPassword {
		return "", nil
	}
	fmt.Printf("password for %s: ", name)
	bytes, err := terminal.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return string(bytes), nil
}
