package cli

import (
	"context"
	"fmt"

	"github.com/archeolens/archeolens-server/internal/client/api"
	"github.com/archeolens/archeolens-server/internal/client/session"
	"github.com/archeolens/archeolens-server/internal/model"
)

func (a *App) signup(ctx context.Context) {
	var params model.SignupParams
	var err error

	if params.Email, err = getSimpleText(a.reader, "E-mail", a.out); err != nil {
		return
	}
	if params.Password, err = getPassword(a.out); err != nil {
		return
	}
	if params.Name, err = getSimpleText(a.reader, "Nome", a.out); err != nil {
		return
	}
	if params.Profession, err = getSimpleText(a.reader, "Profissão", a.out); err != nil {
		return
	}
	if params.Age, err = getInt(a.reader, "Idade", a.out); err != nil {
		return
	}
	if params.Specialty, err = getSimpleText(a.reader, "Especialidade (opcional)", a.out); err != nil {
		return
	}

	user, err := a.api.Signup(ctx, params)
	if err != nil {
		a.printErr(err)
		return
	}

	fmt.Fprintf(a.out, "Conta criada para %s, agora faça login.\n", user.Email)
}

func (a *App) login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "E-mail", a.out)
	if err != nil {
		return
	}
	password, err := getPassword(a.out)
	if err != nil {
		return
	}

	token, user, err := a.api.Signin(ctx, email, password)
	if err != nil {
		a.printErr(err)
		return
	}

	a.user = user
	a.loggedIn = true

	if err := a.sessions.Save(session.Session{
		AccessToken: token,
		Email:       user.Email,
		UserID:      user.ID,
	}); err != nil {
		fmt.Fprintf(a.out, "aviso: sessão não foi salva: %v\n", err)
	}

	fmt.Fprintf(a.out, "Bem-vindo, %s!\n", user.Name)
}

func (a *App) logout() {
	a.api.SetToken("")
	a.user = api.User{}
	a.loggedIn = false
	if err := a.sessions.Clear(); err != nil {
		fmt.Fprintf(a.out, "aviso: %v\n", err)
	}
	fmt.Fprintln(a.out, "Sessão encerrada.")
}

func (a *App) whoami() {
	if !a.loggedIn {
		fmt.Fprintln(a.out, "Você não está logado.")
		return
	}
	fmt.Fprintf(a.out, "%s <%s>\n", a.user.Name, a.user.Email)
	fmt.Fprintf(a.out, "Profissão: %s | Idade: %d", a.user.Profession, a.user.Age)
	if a.user.Specialty != "" {
		fmt.Fprintf(a.out, " | Especialidade: %s", a.user.Specialty)
	}
	fmt.Fprintln(a.out)
}
