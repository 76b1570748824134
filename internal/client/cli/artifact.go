package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/archeolens/archeolens-server/internal/model"
)

func (a *App) printArtifact(artifact model.Artifact) {
	fmt.Fprintf(a.out, "%s  %s — descoberto por %s\n", artifact.ID, artifact.Name, artifact.Archaeologist)
}

func (a *App) listArtifacts(ctx context.Context, args []string) {
	var artifacts []model.Artifact
	var err error

	if len(args) == 0 {
		artifacts, err = a.api.ListArtifacts(ctx)
	} else {
		artifacts, err = a.api.SearchArtifacts(ctx, args[0])
	}
	if err != nil {
		a.printErr(err)
		return
	}

	if len(artifacts) == 0 {
		fmt.Fprintln(a.out, "Nenhum artefato encontrado.")
		return
	}
	for _, artifact := range artifacts {
		a.printArtifact(artifact)
	}
}

func (a *App) showArtifact(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: artifact <id>")
		return
	}

	artifact, err := a.api.GetArtifact(ctx, args[0])
	if err != nil {
		a.printErr(err)
		return
	}

	fmt.Fprintf(a.out, "Nome: %s\n", artifact.Name)
	fmt.Fprintf(a.out, "Arqueólogo: %s\n", artifact.Archaeologist)
	fmt.Fprintf(a.out, "Local: %s\n", artifact.Location)
	fmt.Fprintf(a.out, "Sítio: %s\n", artifact.SiteID)
	if artifact.Description != "" {
		fmt.Fprintf(a.out, "Descrição: %s\n", artifact.Description)
	}
	if artifact.PhotoURL != "" {
		fmt.Fprintf(a.out, "Foto: %s\n", artifact.PhotoURL)
	}
}

func (a *App) readArtifactParams(optional bool) (model.ArtifactParams, error) {
	suffix := ""
	if optional {
		suffix = " (vazio mantém o atual)"
	}

	var params model.ArtifactParams
	var err error

	if params.Name, err = getSimpleText(a.reader, "Nome"+suffix, a.out); err != nil {
		return params, err
	}
	if params.Archaeologist, err = getSimpleText(a.reader, "Arqueólogo"+suffix, a.out); err != nil {
		return params, err
	}
	if params.Location, err = getSimpleText(a.reader, "Local do achado"+suffix, a.out); err != nil {
		return params, err
	}
	if params.SiteID, err = getSimpleText(a.reader, "ID do sítio"+suffix, a.out); err != nil {
		return params, err
	}
	if params.Description, err = getSimpleText(a.reader, "Descrição (opcional)", a.out); err != nil {
		return params, err
	}
	if params.PhotoURL, err = getSimpleText(a.reader, "URL da foto (opcional)", a.out); err != nil {
		return params, err
	}
	return params, nil
}

func (a *App) addArtifact(ctx context.Context) {
	params, err := a.readArtifactParams(false)
	if err != nil {
		return
	}

	artifact, err := a.api.CreateArtifact(ctx, params)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Artefato cadastrado: %s\n", artifact.ID)
}

func (a *App) editArtifact(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: editartifact <id>")
		return
	}

	params, err := a.readArtifactParams(true)
	if err != nil {
		return
	}

	artifact, err := a.api.UpdateArtifact(ctx, args[0], params)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Artefato atualizado: %s\n", artifact.Name)
}

func (a *App) deleteArtifact(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: delartifact <id>")
		return
	}

	if err := a.api.DeleteArtifact(ctx, args[0]); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "Artefato excluído.")
}

func (a *App) listArchaeologists(ctx context.Context, args []string) {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	archaeologists, err := a.api.SearchArchaeologists(ctx, query)
	if err != nil {
		a.printErr(err)
		return
	}

	if len(archaeologists) == 0 {
		fmt.Fprintln(a.out, "Nenhum arqueólogo encontrado.")
		return
	}
	for _, person := range archaeologists {
		fmt.Fprintf(a.out, "%s — %s", person.Name, person.Profession)
		if person.Specialty != "" {
			fmt.Fprintf(a.out, " (%s)", person.Specialty)
		}
		fmt.Fprintln(a.out)
	}
}

// uploadPhoto sends a local image file and prints the signed URL, which can
// then be attached to an artifact with editartifact.
func (a *App) uploadPhoto(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Uso: upload <arquivo>")
		return
	}

	file, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "erro: %v\n", err)
		return
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(args[0]))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	result, err := a.api.UploadPhoto(ctx, filepath.Base(args[0]), contentType, file)
	if err != nil {
		a.printErr(err)
		return
	}

	fmt.Fprintf(a.out, "Foto enviada: %s\n", result.PhotoURL)
}
