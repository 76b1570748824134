package cli

import (
	"context"
	"fmt"

	"github.com/archeolens/archeolens-server/internal/model"
)

func (a *App) printSite(site model.Site) {
	fmt.Fprintf(a.out, "%s  %s — %s/%s\n", site.ID, site.Name, site.City, site.State)
}

// listSites lists all sites, or searches when args are given. With two args
// the first is the search field (name, state or city).
func (a *App) listSites(ctx context.Context, args []string) {
	var sites []model.Site
	var err error

	switch len(args) {
	case 0:
		sites, err = a.api.ListSites(ctx)
	case 1:
		sites, err = a.api.SearchSites(ctx, args[0], "")
	default:
		sites, err = a.api.SearchSites(ctx, args[1], args[0])
	}
	if err != nil {
		a.printErr(err)
		return
	}

	if len(sites) == 0 {
		fmt.Fprintln(a.out, "Nenhum sítio encontrado.")
		return
	}
	for _, site := range sites {
		a.printSite(site)
	}
}

func (a *App) showSite(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: site <id>")
		return
	}

	site, err := a.api.GetSite(ctx, args[0])
	if err != nil {
		a.printErr(err)
		return
	}

	fmt.Fprintf(a.out, "Nome: %s\n", site.Name)
	fmt.Fprintf(a.out, "Descrição: %s\n", site.Description)
	fmt.Fprintf(a.out, "Localização: %s\n", site.Location)
	fmt.Fprintf(a.out, "Destaque: %s\n", site.Highlight)
	fmt.Fprintf(a.out, "Cidade/Estado: %s/%s\n", site.City, site.State)
	fmt.Fprintf(a.out, "Cadastrado em: %s\n", site.CreatedAt.Format("02/01/2006"))
}

func (a *App) readSiteParams(optional bool) (model.SiteParams, error) {
	suffix := ""
	if optional {
		suffix = " (vazio mantém o atual)"
	}

	var params model.SiteParams
	var err error

	if params.Name, err = getSimpleText(a.reader, "Nome"+suffix, a.out); err != nil {
		return params, err
	}
	if params.Description, err = getSimpleText(a.reader, "Descrição"+suffix, a.out); err != nil {
		return params, err
	}
	if params.Location, err = getSimpleText(a.reader, "Localização"+suffix, a.out); err != nil {
		return params, err
	}
	if params.Highlight, err = getSimpleText(a.reader, "Destaque"+suffix, a.out); err != nil {
		return params, err
	}
	if params.State, err = getSimpleText(a.reader, "Estado"+suffix, a.out); err != nil {
		return params, err
	}
	if params.City, err = getSimpleText(a.reader, "Cidade"+suffix, a.out); err != nil {
		return params, err
	}
	return params, nil
}

func (a *App) addSite(ctx context.Context) {
	params, err := a.readSiteParams(false)
	if err != nil {
		return
	}

	site, err := a.api.CreateSite(ctx, params)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Sítio cadastrado: %s\n", site.ID)
}

func (a *App) editSite(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: editsite <id>")
		return
	}

	params, err := a.readSiteParams(true)
	if err != nil {
		return
	}

	site, err := a.api.UpdateSite(ctx, args[0], params)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Sítio atualizado: %s\n", site.Name)
}

func (a *App) deleteSite(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: delsite <id>")
		return
	}

	if err := a.api.DeleteSite(ctx, args[0]); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "Sítio excluído.")
}
