package main

import (
	"fmt"

	"github.com/trezcool/colegio/core/auth"
)

// login checks credentials the way the dashboard login form does.
func (cli *commandLine) login(email, role, pwd string) error {
	usr, err := cli.authSvc.Authenticate(auth.LoginRequest{Email: email, Password: pwd, Role: role})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "OK: %s (%s)\n", usr.Name, usr.Role)
	if usr.IsStudent() {
		fmt.Fprintf(cli.out, "grado: %s\n", usr.Grade)
	}
	return nil
}
