package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) prompt() string {
	if a.loggedIn {
		return fmt.Sprintf("archeolens (%s)> ", a.user.Email)
	}
	return "archeolens> "
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, "Comandos disponíveis:")
	fmt.Fprintln(a.out, "  sites [busca]        — listar ou buscar sítios (busca: <tipo> <termo>)")
	fmt.Fprintln(a.out, "  site <id>            — detalhar um sítio")
	fmt.Fprintln(a.out, "  artifacts [termo]    — listar ou buscar artefatos")
	fmt.Fprintln(a.out, "  artifact <id>        — detalhar um artefato")
	fmt.Fprintln(a.out, "  archaeologists [q]   — listar arqueólogos")
	if a.loggedIn {
		fmt.Fprintln(a.out, "  addsite              — cadastrar sítio")
		fmt.Fprintln(a.out, "  editsite <id>        — editar sítio")
		fmt.Fprintln(a.out, "  delsite <id>         — excluir sítio")
		fmt.Fprintln(a.out, "  addartifact          — cadastrar artefato")
		fmt.Fprintln(a.out, "  editartifact <id>    — editar artefato")
		fmt.Fprintln(a.out, "  delartifact <id>     — excluir artefato")
		fmt.Fprintln(a.out, "  upload <arquivo>     — enviar foto de artefato")
		fmt.Fprintln(a.out, "  whoami               — exibir perfil atual")
		fmt.Fprintln(a.out, "  logout               — encerrar sessão")
	} else {
		fmt.Fprintln(a.out, "  signup               — criar conta")
		fmt.Fprintln(a.out, "  login                — entrar")
	}
	fmt.Fprintln(a.out, "  exit                 — sair")
}

// repl reads commands until EOF or exit. Command errors are printed, never
// fatal.
func (a *App) repl(ctx context.Context) error {
	fmt.Fprintln(a.out, "ArcheoLens — digite 'help' para ver os comandos")

	for {
		fmt.Fprint(a.out, a.prompt())

		line, err := a.reader.ReadString('\n')
		if err != nil {
			fmt.Fprintln(a.out)
			return nil
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "signup":
			a.signup(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout()
		case "whoami":
			a.whoami()
		case "sites":
			a.listSites(ctx, args)
		case "site":
			a.showSite(ctx, args)
		case "addsite":
			a.addSite(ctx)
		case "editsite":
			a.editSite(ctx, args)
		case "delsite":
			a.deleteSite(ctx, args)
		case "artifacts":
			a.listArtifacts(ctx, args)
		case "artifact":
			a.showArtifact(ctx, args)
		case "addartifact":
			a.addArtifact(ctx)
		case "editartifact":
			a.editArtifact(ctx, args)
		case "delartifact":
			a.deleteArtifact(ctx, args)
		case "archaeologists":
			a.listArchaeologists(ctx, args)
		case "upload":
			a.uploadPhoto(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Até logo!")
			return nil
		default:
			fmt.Fprintln(a.out, "Comando desconhecido:", cmd)
		}
	}
}
